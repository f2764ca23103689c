package store_test

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/jthurston/EmbCalc/internal/domain"
	"github.com/jthurston/EmbCalc/internal/store"
)

func newStore(t *testing.T) (*store.SettingsFileStore, string) {
	t.Helper()
	dir := t.TempDir()
	return store.NewSettingsFileStore(dir, zaptest.NewLogger(t)), dir
}

func TestLoad_NoFile_DefaultsAndSelfHeal(t *testing.T) {
	s, _ := newStore(t)

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}

	// Self-heal must have written the defaults back.
	b, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("settings file not written: %v", err)
	}
	var onDisk domain.Settings
	if err := json.Unmarshal(b, &onDisk); err != nil {
		t.Fatalf("healed file not valid JSON: %v", err)
	}
	if onDisk != domain.DefaultSettings() {
		t.Fatalf("healed file holds %+v", onDisk)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s, _ := newStore(t)

	want := domain.Settings{StitchRate: 0.75, AppliqueRate: 1.50, InsuranceRate: 0.20}
	if err := s.Save(want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != want {
		t.Fatalf("round trip mismatch: got %+v want %+v", got, want)
	}

	// Saving the just-loaded settings must be idempotent.
	if err := s.Save(got); err != nil {
		t.Fatalf("re-save: %v", err)
	}
	again, err := s.Load()
	if err != nil {
		t.Fatalf("re-load: %v", err)
	}
	if again != got {
		t.Fatalf("idempotence broken: %+v vs %+v", again, got)
	}
}

func TestLoad_MalformedFile_Defaults(t *testing.T) {
	s, dir := newStore(t)

	path := filepath.Join(dir, "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != domain.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", got)
	}
}

func TestLoad_FieldLevelIsolation(t *testing.T) {
	s, dir := newStore(t)

	// One out-of-range field, two valid ones.
	record := `{"stitch_rate": 99.0, "applique_rate": 2.25, "insurance_rate": 0.05}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.StitchRate != domain.DefaultStitchRate {
		t.Errorf("corrupt stitch_rate not defaulted: %v", got.StitchRate)
	}
	if got.AppliqueRate != 2.25 {
		t.Errorf("valid applique_rate lost: %v", got.AppliqueRate)
	}
	if got.InsuranceRate != 0.05 {
		t.Errorf("valid insurance_rate lost: %v", got.InsuranceRate)
	}
}

func TestLoad_WrongTypeField_Defaults(t *testing.T) {
	s, dir := newStore(t)

	record := `{"stitch_rate": "fast", "applique_rate": 3.0, "insurance_rate": 0.10}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.StitchRate != domain.DefaultStitchRate {
		t.Errorf("string-typed stitch_rate not defaulted: %v", got.StitchRate)
	}
	if got.AppliqueRate != 3.0 {
		t.Errorf("valid applique_rate lost: %v", got.AppliqueRate)
	}
}

func TestLoad_NullField_Defaults(t *testing.T) {
	s, dir := newStore(t)

	record := `{"stitch_rate": null, "applique_rate": 2.25, "insurance_rate": 0.05}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.StitchRate != domain.DefaultStitchRate {
		t.Errorf("null stitch_rate not defaulted: got %v want %v",
			got.StitchRate, domain.DefaultStitchRate)
	}
	if got.AppliqueRate != 2.25 {
		t.Errorf("valid applique_rate lost: %v", got.AppliqueRate)
	}
	if got.InsuranceRate != 0.05 {
		t.Errorf("valid insurance_rate lost: %v", got.InsuranceRate)
	}
}

func TestLoad_MissingField_Defaults(t *testing.T) {
	s, dir := newStore(t)

	record := `{"applique_rate": 4.0}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(record), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := domain.DefaultSettings()
	want.AppliqueRate = 4.0
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}
}

func TestSave_MissingDir_StorageError(t *testing.T) {
	dir := t.TempDir()
	s := store.NewSettingsFileStore(filepath.Join(dir, "absent"), zaptest.NewLogger(t))

	err := s.Save(domain.DefaultSettings())
	if err == nil {
		t.Fatal("expected save failure for missing directory")
	}
	var serr *domain.StorageError
	if !errors.As(err, &serr) {
		t.Fatalf("expected StorageError, got %T", err)
	}
	if serr.Op != "save" {
		t.Errorf("op = %q", serr.Op)
	}
}

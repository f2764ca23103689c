package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"github.com/jthurston/EmbCalc/internal/domain"
	"github.com/jthurston/EmbCalc/internal/validate"
)

// settingsFile is the fixed name of the durable settings record.
const settingsFile = "settings.json"

// SettingsFileStore persists the pricing rates as one JSON file on disk.
type SettingsFileStore struct {
	dir string
	log *zap.Logger
	mu  sync.Mutex
}

func NewSettingsFileStore(dir string, log *zap.Logger) *SettingsFileStore {
	return &SettingsFileStore{dir: dir, log: log}
}

// Path returns the location of the settings record.
func (s *SettingsFileStore) Path() string {
	return filepath.Join(s.dir, settingsFile)
}

// Load reads the stored settings. An absent or undecodable record yields
// the defaults and triggers a save of them so the next load finds a clean
// file. A decodable record is validated field by field: an out-of-range or
// wrongly typed field reverts to its default while the others are kept.
func (s *SettingsFileStore) Load() (domain.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := readFile(s.Path())
	if err != nil {
		// Unreadable store: in-memory defaults stay authoritative.
		return domain.DefaultSettings(), &domain.StorageError{Op: "load", Err: err}
	}
	if b == nil {
		return s.heal("no settings file"), nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return s.heal("settings file is not valid JSON"), nil
	}

	settings := domain.DefaultSettings()
	for _, f := range domain.SettingsFields() {
		msg, ok := raw[f.Name]
		if !ok {
			continue
		}
		// Decode through a pointer so JSON null reads as "no number"
		// rather than silently leaving a zero behind.
		var v *float64
		if err := json.Unmarshal(msg, &v); err != nil || v == nil {
			s.log.Warn("settings field is not a number, using default",
				zap.String("field", f.Name))
			continue
		}
		*settings.Field(f.Name) = validate.Value(*v, f.Default, f.Min, f.Max)
	}
	return settings, nil
}

// Save serializes the settings and writes them atomically.
func (s *SettingsFileStore) Save(settings domain.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(settings)
}

func (s *SettingsFileStore) save(settings domain.Settings) error {
	b, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	if err := writeFile(s.Path(), b, 0o644); err != nil {
		return &domain.StorageError{Op: "save", Err: err}
	}
	return nil
}

// heal falls back to the defaults and rewrites the record with them.
// A failed rewrite is only logged; the defaults are still usable.
func (s *SettingsFileStore) heal(reason string) domain.Settings {
	s.log.Warn("falling back to default settings", zap.String("reason", reason))
	defaults := domain.DefaultSettings()
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Warn("cannot create settings dir", zap.Error(err))
		return defaults
	}
	if err := s.save(defaults); err != nil {
		s.log.Warn("cannot rewrite settings file", zap.Error(err))
	}
	return defaults
}

// Compile-time assertion that SettingsFileStore implements domain.SettingsStore.
var _ domain.SettingsStore = (*SettingsFileStore)(nil)

package settings

import (
	"go.uber.org/zap"

	"github.com/jthurston/EmbCalc/internal/domain"
	"github.com/jthurston/EmbCalc/internal/validate"
)

// Service owns the pricing rates backed by a durable store.
type Service struct {
	store domain.SettingsStore
	log   *zap.Logger
}

// New returns a settings service backed by the given store.
func New(store domain.SettingsStore, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Current returns the stored settings. The returned settings are always
// usable; a non-nil error means the durable store could not be read and
// the defaults are standing in.
func (s *Service) Current() (domain.Settings, error) {
	return s.store.Load()
}

// Update applies the patch on top of the current settings and persists the
// result. Each provided value passes the shared validation policy: a value
// that fails to parse or falls outside its range reverts to the field's
// default, never to garbage. The insurance rate is a fraction, and an
// entered 0 is kept as 0.
//
// The merged settings are returned even when persisting fails, since the
// in-memory rates stay authoritative; the error then reports the
// storage failure.
func (s *Service) Update(patch domain.SettingsPatch) (domain.Settings, error) {
	current, err := s.store.Load()
	if err != nil {
		s.log.Warn("updating on top of default settings", zap.Error(err))
	}

	merged := current
	apply(&merged, "stitch_rate", patch.StitchRate)
	apply(&merged, "applique_rate", patch.AppliqueRate)
	apply(&merged, "insurance_rate", patch.InsuranceRate)

	if err := s.store.Save(merged); err != nil {
		return merged, err
	}
	return merged, nil
}

// Reset persists the default rates.
func (s *Service) Reset() (domain.Settings, error) {
	defaults := domain.DefaultSettings()
	if err := s.store.Save(defaults); err != nil {
		return defaults, err
	}
	return defaults, nil
}

func apply(s *domain.Settings, name string, raw *string) {
	if raw == nil {
		return
	}
	for _, f := range domain.SettingsFields() {
		if f.Name == name {
			*s.Field(name) = validate.Number(*raw, f.Default, f.Min, f.Max)
			return
		}
	}
}

// Compile-time assertion that Service implements domain.SettingsService.
var _ domain.SettingsService = (*Service)(nil)

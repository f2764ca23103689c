package quote

import (
	"go.uber.org/zap"

	"github.com/jthurston/EmbCalc/internal/domain"
	"github.com/jthurston/EmbCalc/internal/pricing"
)

// Service turns raw order forms into price breakdowns.
type Service struct {
	settings domain.SettingsService
	schema   pricing.FormSchema
	log      *zap.Logger
}

// New returns a quote service using the default form schema.
func New(settings domain.SettingsService, log *zap.Logger) *Service {
	return &Service{settings: settings, schema: pricing.DefaultSchema(), log: log}
}

// Quote admits the form, snapshots the current rates and computes the
// breakdown. A rejected form returns a domain.ValidationError and the
// engine is never invoked. Each quote uses one consistent rate set: the
// snapshot taken here is the only settings read of the calculation.
func (s *Service) Quote(form domain.OrderForm) (domain.PriceBreakdown, error) {
	order, err := pricing.AdmitOrder(form, s.schema)
	if err != nil {
		return domain.PriceBreakdown{}, err
	}

	rates, err := s.settings.Current()
	if err != nil {
		// Unreadable store already degraded to defaults; quote anyway.
		s.log.Warn("quoting with default rates", zap.Error(err))
	}
	return pricing.Compute(order, rates), nil
}

// Compile-time assertion that Service implements domain.QuoteService.
var _ domain.QuoteService = (*Service)(nil)

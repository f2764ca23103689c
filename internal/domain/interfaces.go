package domain

// SettingsStore persists the pricing rates as a single durable record.
type SettingsStore interface {
	// Load returns the stored settings, falling back field-by-field to
	// defaults when the record is absent, malformed or out of range.
	Load() (Settings, error)
	// Save validates nothing; it writes the given settings verbatim.
	// Callers are expected to have run them through the validation policy.
	Save(Settings) error
}

// SettingsService owns validation and persistence of the pricing rates.
type SettingsService interface {
	Current() (Settings, error)
	Update(changes SettingsPatch) (Settings, error)
	Reset() (Settings, error)
}

// SettingsPatch carries raw user-entered values for any subset of the
// settings fields. Nil means "leave unchanged"; values are raw text so the
// one shared numeric validation policy can be applied to them.
type SettingsPatch struct {
	StitchRate    *string
	AppliqueRate  *string
	InsuranceRate *string
}

// QuoteService prices one order from raw form input.
type QuoteService interface {
	Quote(form OrderForm) (PriceBreakdown, error)
}

// OrderForm carries the raw text fields of the order form, exactly as the
// user entered them. Admission turns it into an OrderInput or rejects it.
type OrderForm struct {
	Stitches   string
	Items      string
	Appliques  string
	BlankCost  string
	DesignCost string
}

package domain

// Settings holds the three pricing rates every calculation depends on.
// Amounts are in the shop's single working currency.
type Settings struct {
	// StitchRate is the charge per 1000 stitches.
	StitchRate float64 `json:"stitch_rate"`
	// AppliqueRate is the charge per applique.
	AppliqueRate float64 `json:"applique_rate"`
	// InsuranceRate is a fraction of the blank-garment cost added to cover
	// ruined blanks, e.g. 0.10 for 10%.
	InsuranceRate float64 `json:"insurance_rate"`
}

// Bounds and defaults for each settings field. One validation policy is
// applied on both the storage-load path and the user-input path, so the
// limits live here rather than in either layer.
const (
	DefaultStitchRate = 0.50
	MinStitchRate     = 0.0
	MaxStitchRate     = 10.0

	DefaultAppliqueRate = 1.00
	MinAppliqueRate     = 0.0
	MaxAppliqueRate     = 50.0

	DefaultInsuranceRate = 0.10
	MinInsuranceRate     = 0.0
	MaxInsuranceRate     = 1.0
)

// DefaultSettings returns the rates used before the user has saved any.
func DefaultSettings() Settings {
	return Settings{
		StitchRate:    DefaultStitchRate,
		AppliqueRate:  DefaultAppliqueRate,
		InsuranceRate: DefaultInsuranceRate,
	}
}

// SettingsField describes one settings field's name, default and range.
type SettingsField struct {
	Name    string
	Default float64
	Min     float64
	Max     float64
}

// SettingsFields enumerates the fields in a fixed order. Stores and
// validators iterate this table instead of hard-coding field knowledge.
func SettingsFields() []SettingsField {
	return []SettingsField{
		{Name: "stitch_rate", Default: DefaultStitchRate, Min: MinStitchRate, Max: MaxStitchRate},
		{Name: "applique_rate", Default: DefaultAppliqueRate, Min: MinAppliqueRate, Max: MaxAppliqueRate},
		{Name: "insurance_rate", Default: DefaultInsuranceRate, Min: MinInsuranceRate, Max: MaxInsuranceRate},
	}
}

// Field returns a pointer to the struct member backing the named field.
// Returns nil for an unknown name.
func (s *Settings) Field(name string) *float64 {
	switch name {
	case "stitch_rate":
		return &s.StitchRate
	case "applique_rate":
		return &s.AppliqueRate
	case "insurance_rate":
		return &s.InsuranceRate
	}
	return nil
}

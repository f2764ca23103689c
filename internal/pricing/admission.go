package pricing

import (
	"github.com/jthurston/EmbCalc/internal/domain"
	"github.com/jthurston/EmbCalc/internal/validate"
)

// FormSchema carries the per-field upper bounds the form layer imposes on
// an order. Lower bounds are fixed by the data model: counts are
// non-negative, items at least 1.
type FormSchema struct {
	MaxStitches  int
	MaxItems     int
	MaxAppliques int
	MaxCost      float64
}

// DefaultSchema returns caps generous enough for any realistic order while
// keeping arithmetic inputs finite and sane.
func DefaultSchema() FormSchema {
	return FormSchema{
		MaxStitches:  1_000_000,
		MaxItems:     10_000,
		MaxAppliques: 1_000,
		MaxCost:      1_000_000,
	}
}

// AdmitOrder applies the admission policy to raw form input.
//
// Stitches is the primary size driver and is required: a blank or
// non-numeric value is a validation failure, never defaulted to zero. The
// remaining fields default when left blank (items to 1, the rest to 0).
// On failure every offending field is reported and no OrderInput exists.
func AdmitOrder(form domain.OrderForm, schema FormSchema) (domain.OrderInput, error) {
	var (
		order domain.OrderInput
		fails []domain.FieldError
	)
	reject := func(field, reason string) {
		fails = append(fails, domain.FieldError{Field: field, Reason: reason})
	}

	if form.Stitches == "" {
		reject("stitches", "required")
	} else if v, ok := validate.Int(form.Stitches); !ok {
		reject("stitches", "must be a whole number")
	} else if v < 0 {
		reject("stitches", "must not be negative")
	} else if v > schema.MaxStitches {
		reject("stitches", "too large")
	} else {
		order.Stitches = v
	}

	order.Items = 1
	if form.Items != "" {
		if v, ok := validate.Int(form.Items); !ok {
			reject("items", "must be a whole number")
		} else if v < 1 {
			reject("items", "must be at least 1")
		} else if v > schema.MaxItems {
			reject("items", "too large")
		} else {
			order.Items = v
		}
	}

	if form.Appliques != "" {
		if v, ok := validate.Int(form.Appliques); !ok {
			reject("appliques", "must be a whole number")
		} else if v < 0 {
			reject("appliques", "must not be negative")
		} else if v > schema.MaxAppliques {
			reject("appliques", "too large")
		} else {
			order.Appliques = v
		}
	}

	order.BlankCost = admitCost(form.BlankCost, "blank_cost", schema.MaxCost, reject)
	order.DesignCost = admitCost(form.DesignCost, "design_cost", schema.MaxCost, reject)

	if len(fails) > 0 {
		return domain.OrderInput{}, &domain.ValidationError{Fields: fails}
	}
	return order, nil
}

func admitCost(raw, field string, max float64, reject func(field, reason string)) float64 {
	if raw == "" {
		return 0
	}
	v, ok := validate.Float(raw)
	switch {
	case !ok:
		reject(field, "must be a number")
	case v < 0:
		reject(field, "must not be negative")
	case v > max:
		reject(field, "too large")
	default:
		return v
	}
	return 0
}

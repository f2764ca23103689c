package pricing

import "github.com/jthurston/EmbCalc/internal/domain"

// stitchUnit is the batch size the stitch rate is quoted against.
const stitchUnit = 1000.0

// Compute prices one order against a settings snapshot.
//
// Per-item cost is the sum of stitching, appliques, the blank garment,
// insurance on the blank, and the design fee; the total multiplies that by
// the item count. Results are unrounded.
func Compute(order domain.OrderInput, s domain.Settings) domain.PriceBreakdown {
	b := domain.PriceBreakdown{
		StitchCost:    float64(order.Stitches) / stitchUnit * s.StitchRate,
		AppliqueCost:  float64(order.Appliques) * s.AppliqueRate,
		BlankCost:     order.BlankCost,
		InsuranceCost: order.BlankCost * s.InsuranceRate,
		DesignCost:    order.DesignCost,
	}
	b.PerItemCost = b.StitchCost + b.AppliqueCost + b.BlankCost + b.InsuranceCost + b.DesignCost
	b.TotalCost = b.PerItemCost * float64(order.Items)
	return b
}

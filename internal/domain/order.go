package domain

// OrderInput is one validated calculation request. Values have already
// passed the admission policy: counts are non-negative integers, Items is
// at least 1, and costs are non-negative finite amounts.
type OrderInput struct {
	Stitches   int     `json:"stitches"`
	Items      int     `json:"items"`
	Appliques  int     `json:"appliques"`
	BlankCost  float64 `json:"blank_cost"`
	DesignCost float64 `json:"design_cost"`
}

// PriceBreakdown is the result of pricing one order: per-item component
// costs plus the order total. All amounts are unrounded; formatting to
// display precision is the caller's concern.
type PriceBreakdown struct {
	StitchCost    float64 `json:"stitch_cost"`
	AppliqueCost  float64 `json:"applique_cost"`
	BlankCost     float64 `json:"blank_cost"`
	InsuranceCost float64 `json:"insurance_cost"`
	DesignCost    float64 `json:"design_cost"`
	PerItemCost   float64 `json:"per_item_cost"`
	TotalCost     float64 `json:"total_cost"`
}

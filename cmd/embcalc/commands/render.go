package commands

import (
	"fmt"
	"strings"

	"github.com/jthurston/EmbCalc/internal/domain"
)

// formatBreakdown renders a breakdown for the terminal. Zero-valued extras
// (appliques, blank, insurance, design) are omitted; stitching, per-item
// and total always print. Amounts are rounded here and only here.
func formatBreakdown(b domain.PriceBreakdown, currency string) string {
	var sb strings.Builder
	line := func(label string, amount float64) {
		fmt.Fprintf(&sb, "%-15s %s%.2f\n", label+":", currency, amount)
	}

	line("Stitching", b.StitchCost)
	if b.AppliqueCost > 0 {
		line("Appliques", b.AppliqueCost)
	}
	if b.BlankCost > 0 {
		line("Blank garment", b.BlankCost)
	}
	if b.InsuranceCost > 0 {
		line("Insurance", b.InsuranceCost)
	}
	if b.DesignCost > 0 {
		line("Design fee", b.DesignCost)
	}
	sb.WriteString(strings.Repeat("-", 24) + "\n")
	line("Per item", b.PerItemCost)
	line("Total", b.TotalCost)
	return sb.String()
}

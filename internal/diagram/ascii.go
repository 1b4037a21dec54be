package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"github.com/guptarohit/asciigraph"
)

// CapacityBar is one wall in a capacity chart
type CapacityBar struct {
	Tag      string
	Standard float64 // φVn, standard method
	Annex    float64 // φVn, annex method
}

// AlphaSamples evaluates αc at n evenly spaced ratios in [from, to]
func AlphaSamples(from, to float64, n int) (ratios, alphas []float64) {
	if n < 2 {
		n = 2
	}
	step := (to - from) / float64(n-1)
	for i := 0; i < n; i++ {
		r := from + float64(i)*step
		ratios = append(ratios, r)
		alphas = append(alphas, aci.AlphaC(r))
	}
	return ratios, alphas
}

// DrawAlphaCurve plots αc against hw/lw in the terminal
func DrawAlphaCurve(from, to float64, width int) string {
	if width < 10 {
		width = 10
	}
	_, alphas := AlphaSamples(from, to, width)

	graph := asciigraph.Plot(alphas,
		asciigraph.Height(10),
		asciigraph.Precision(3),
		asciigraph.LowerBound(aci.AlphaCSlender-0.01),
		asciigraph.UpperBound(aci.AlphaCSquat+0.01),
		asciigraph.Caption(fmt.Sprintf("αc vs hw/lw from %.2f to %.2f", from, to)),
	)

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(graph)
	sb.WriteString("\n\n")
	sb.WriteString(fmt.Sprintf("  hw/lw <= %.1f : αc = %.2f\n", aci.SquatRatio, aci.AlphaCSquat))
	sb.WriteString(fmt.Sprintf("  hw/lw >= %.1f : αc = %.2f\n", aci.SlenderRatio, aci.AlphaCSlender))
	sb.WriteString("  in between   : linear interpolation\n")
	return sb.String()
}

// DrawCapacityBars draws horizontal bars for both methods, scaled to the largest capacity
func DrawCapacityBars(bars []CapacityBar, width int) string {
	if len(bars) == 0 {
		return "  (no results)\n"
	}
	if width < 10 {
		width = 10
	}

	tagWidth := 3
	maxValue := 0.0
	for _, b := range bars {
		tagWidth = max(tagWidth, len(b.Tag))
		maxValue = math.Max(maxValue, math.Max(b.Standard, b.Annex))
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString("  SHEAR CAPACITY (kN)          █ = standard φVn   ░ = annex φVn\n")
	sb.WriteString("  ───────────────────\n")
	for _, b := range bars {
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.1f\n", tagWidth, b.Tag, bar(b.Standard, maxValue, width, "█"), b.Standard/1000))
		sb.WriteString(fmt.Sprintf("  %-*s │%s %.1f\n", tagWidth, "", bar(b.Annex, maxValue, width, "░"), b.Annex/1000))
	}
	return sb.String()
}

func bar(value, maxValue float64, width int, glyph string) string {
	if maxValue <= 0 || value <= 0 {
		return ""
	}
	n := int(math.Round(value / maxValue * float64(width)))
	return strings.Repeat(glyph, n)
}

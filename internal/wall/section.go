package wall

import (
	"math"

	"github.com/alexiusacademia/gorcw/internal/aci"
)

// Section represents a reinforced concrete structural wall section.
// All derived properties are computed by NewSection and never change afterwards.
type Section struct {
	tag string

	// Geometry (mm)
	wallLength      float64 // lw - horizontal length of wall
	wallHeight      float64 // h - web thickness used for the shear area
	totalWallHeight float64 // hw - full height of wall

	// Distributed web reinforcement
	barDiameter float64 // mm
	numBars     float64 // bars per layer set, may be fractional
	spacing     float64 // mm

	// Derived
	sectionArea         float64 // Acv (mm²)
	momentOfInertia     float64 // mm⁴, reported only
	heightToLengthRatio float64 // hw/lw
	barArea             float64 // mm²
	reinforcementArea   float64 // mm²
	rho                 float64 // ρt
	alphaC              float64 // αc
}

// NewSection validates the raw inputs and derives every section property
func NewSection(tag string, lw, hw, htw, phiT, numBars, s float64) (*Section, error) {
	checks := []struct {
		field string
		value float64
	}{
		{"l_w", lw},
		{"h_w", hw},
		{"h_tw", htw},
		{"phi_t", phiT},
		{"num_bars", numBars},
		{"s", s},
	}
	for _, c := range checks {
		if err := requirePositive(c.field, c.value); err != nil {
			return nil, err
		}
	}

	sec := &Section{
		tag:             tag,
		wallLength:      lw,
		wallHeight:      hw,
		totalWallHeight: htw,
		barDiameter:     phiT,
		numBars:         numBars,
		spacing:         s,
	}

	sec.sectionArea = lw * hw
	sec.momentOfInertia = lw * math.Pow(hw, 3) / 12
	sec.heightToLengthRatio = htw / lw
	sec.barArea = math.Pi * math.Pow(phiT/2, 2)
	sec.reinforcementArea = sec.barArea * numBars
	sec.rho = sec.reinforcementArea / (s * hw)
	sec.alphaC = aci.AlphaC(sec.heightToLengthRatio)

	// Very large or very small inputs can still overflow the products
	derived := []struct {
		field string
		value float64
	}{
		{"section_area", sec.sectionArea},
		{"moment_of_inertia", sec.momentOfInertia},
		{"height_to_length_ratio", sec.heightToLengthRatio},
		{"reinforcement_area", sec.reinforcementArea},
		{"rho", sec.rho},
	}
	for _, d := range derived {
		if err := RequireFinite(d.field, d.value); err != nil {
			return nil, err
		}
	}

	return sec, nil
}

func (s *Section) Tag() string                  { return s.tag }
func (s *Section) WallLength() float64          { return s.wallLength }
func (s *Section) WallHeight() float64          { return s.wallHeight }
func (s *Section) TotalWallHeight() float64     { return s.totalWallHeight }
func (s *Section) BarDiameter() float64         { return s.barDiameter }
func (s *Section) NumBars() float64             { return s.numBars }
func (s *Section) Spacing() float64             { return s.spacing }
func (s *Section) SectionArea() float64         { return s.sectionArea }
func (s *Section) MomentOfInertia() float64     { return s.momentOfInertia }
func (s *Section) HeightToLengthRatio() float64 { return s.heightToLengthRatio }
func (s *Section) BarArea() float64             { return s.barArea }
func (s *Section) ReinforcementArea() float64   { return s.reinforcementArea }
func (s *Section) Rho() float64                 { return s.rho }
func (s *Section) AlphaC() float64              { return s.alphaC }

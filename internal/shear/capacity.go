package shear

import (
	"errors"
	"math"

	"github.com/alexiusacademia/gorcw/internal/aci"
	"github.com/alexiusacademia/gorcw/internal/wall"
)

// Result holds the shear capacities of one wall section (N)
type Result struct {
	// Standard method (Section 18.10.4)
	NominalStandard float64 // Vn
	DesignStandard  float64 // φVn

	// Annex overstrength method
	PhiAnnex     float64 // φ = 0.9 × total overstrength
	NominalAnnex float64 // Vn
	DesignAnnex  float64 // φVn
}

// Calculate computes both shear capacities for a section and material pair
func Calculate(sec *wall.Section, mat *wall.Material) (*Result, error) {
	if sec == nil || mat == nil {
		return nil, errors.New("shear: section and material are required")
	}
	if mat.Fc() < 0 {
		return nil, &wall.DomainError{Field: "f_c", Value: mat.Fc(), Reason: "square root of a negative strength"}
	}

	sqrtFc := math.Sqrt(mat.Fc())
	concrete := sec.AlphaC() * mat.Lambda() * sqrtFc

	result := &Result{}

	// Vn = Acv(0.083 αc λ √f'c + ρt fy)
	result.NominalStandard = sec.SectionArea() * (aci.ConcreteCoefStandard*concrete + sec.Rho()*mat.Fy())
	result.DesignStandard = aci.PhiShear * result.NominalStandard

	// Vn = 1.5 Acv(0.17 αc λ √f'c + ρt fye), uses expected steel strength
	result.PhiAnnex = aci.PhiAnnex(mat.TotalOverstrength())
	result.NominalAnnex = aci.AreaFactorAnnex * sec.SectionArea() * (aci.ConcreteCoefAnnex*concrete + sec.Rho()*mat.Fye())
	result.DesignAnnex = result.PhiAnnex * result.NominalAnnex

	for _, c := range []struct {
		field string
		value float64
	}{
		{"nominal_capacity_standard", result.NominalStandard},
		{"design_capacity_standard", result.DesignStandard},
		{"nominal_capacity_annex", result.NominalAnnex},
		{"design_capacity_annex", result.DesignAnnex},
	} {
		if err := wall.RequireFinite(c.field, c.value); err != nil {
			return nil, err
		}
	}

	return result, nil
}

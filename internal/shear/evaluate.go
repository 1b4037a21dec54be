package shear

import (
	"github.com/alexiusacademia/gorcw/internal/wall"
)

// Input is one fully parsed wall row
type Input struct {
	Tag     string   `json:"tag"`
	Lw      float64  `json:"l_w"`
	Hw      float64  `json:"h_w"`
	Htw     float64  `json:"h_tw"`
	PhiT    float64  `json:"phi_t"`
	NumBars float64  `json:"num_bars"`
	S       float64  `json:"s"`
	Fc      float64  `json:"f_c"`
	Fy      float64  `json:"f_y"`
	Fce     float64  `json:"f_ce"`
	Fye     float64  `json:"f_ye"`
	Lambda  *float64 `json:"lambda_c,omitempty"` // nil means wall.DefaultLambda
}

// Evaluation bundles the models built from an Input with their capacities
type Evaluation struct {
	Section  *wall.Section
	Material *wall.Material
	Result   *Result
}

// Evaluate builds the section and material for a row and calculates its capacities
func Evaluate(in Input) (*Evaluation, error) {
	sec, err := wall.NewSection(in.Tag, in.Lw, in.Hw, in.Htw, in.PhiT, in.NumBars, in.S)
	if err != nil {
		return nil, err
	}

	lambda := wall.DefaultLambda
	if in.Lambda != nil {
		lambda = *in.Lambda
	}
	mat, err := wall.NewMaterial(in.Fc, in.Fy, in.Fce, in.Fye, wall.WithLambda(lambda))
	if err != nil {
		return nil, err
	}

	result, err := Calculate(sec, mat)
	if err != nil {
		return nil, err
	}

	return &Evaluation{Section: sec, Material: mat, Result: result}, nil
}

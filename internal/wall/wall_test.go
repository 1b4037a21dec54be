package wall

import (
	"errors"
	"math"
	"testing"
)

func TestNewSection(t *testing.T) {
	sec, err := NewSection("W1", 200, 20, 300, 12, 10, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		got      float64
		expected float64
	}{
		{"section area", sec.SectionArea(), 200 * 20},
		{"moment of inertia", sec.MomentOfInertia(), 200 * 20 * 20 * 20 / 12.0},
		{"height to length", sec.HeightToLengthRatio(), 1.5},
		{"bar area", sec.BarArea(), math.Pi * 36},
		{"reinforcement area", sec.ReinforcementArea(), math.Pi * 360},
		{"rho", sec.Rho(), math.Pi * 360 / 500},
		{"alpha c", sec.AlphaC(), 0.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.got-tt.expected) > 1e-9 {
				t.Errorf("got %v, want %v", tt.got, tt.expected)
			}
		})
	}

	if math.Abs(sec.BarArea()-113.097) > 1e-3 {
		t.Errorf("bar area = %v, want ~113.097", sec.BarArea())
	}
	if math.Abs(sec.Rho()-2.2619) > 1e-4 {
		t.Errorf("rho = %v, want ~2.2619", sec.Rho())
	}
	if sec.Tag() != "W1" {
		t.Errorf("tag = %q, want W1", sec.Tag())
	}
}

func TestNewSectionExactArea(t *testing.T) {
	lw, hw := 3048.7, 254.3
	sec, err := NewSection("A", lw, hw, 6000, 16, 2, 300)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sec.SectionArea() != lw*hw {
		t.Errorf("section area = %v, want %v", sec.SectionArea(), lw*hw)
	}
	if sec.MomentOfInertia() != lw*math.Pow(hw, 3)/12 {
		t.Errorf("moment of inertia = %v, want %v", sec.MomentOfInertia(), lw*math.Pow(hw, 3)/12)
	}
}

func TestNewSectionInterpolatedAlpha(t *testing.T) {
	sec, err := NewSection("W2", 200, 20, 350, 12, 10, 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(sec.AlphaC()-0.21) > 1e-12 {
		t.Errorf("alpha c = %v, want 0.21", sec.AlphaC())
	}
}

func TestNewSectionIdempotent(t *testing.T) {
	a, err := NewSection("W", 1200, 200, 2100, 10, 4, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := NewSection("W", 1200, 200, 2100, 10, 4, 150)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if *a != *b {
		t.Errorf("sections differ: %+v vs %+v", *a, *b)
	}
}

func TestNewSectionDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		args  [6]float64
	}{
		{"zero wall length", "l_w", [6]float64{0, 20, 300, 12, 10, 25}},
		{"negative wall length", "l_w", [6]float64{-200, 20, 300, 12, 10, 25}},
		{"zero wall height", "h_w", [6]float64{200, 0, 300, 12, 10, 25}},
		{"zero total height", "h_tw", [6]float64{200, 20, 0, 12, 10, 25}},
		{"zero bar diameter", "phi_t", [6]float64{200, 20, 300, 0, 10, 25}},
		{"zero bars", "num_bars", [6]float64{200, 20, 300, 12, 0, 25}},
		{"zero spacing", "s", [6]float64{200, 20, 300, 12, 10, 0}},
		{"NaN spacing", "s", [6]float64{200, 20, 300, 12, 10, math.NaN()}},
		{"infinite length", "l_w", [6]float64{math.Inf(1), 20, 300, 12, 10, 25}},
		{"overflowing area", "section_area", [6]float64{1e200, 1e200, 300, 12, 10, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := tt.args
			sec, err := NewSection("X", a[0], a[1], a[2], a[3], a[4], a[5])
			if sec != nil {
				t.Errorf("expected nil section, got %+v", sec)
			}
			if !errors.Is(err, ErrInputDomain) {
				t.Fatalf("expected ErrInputDomain, got %v", err)
			}
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DomainError, got %T", err)
			}
			if de.Field != tt.field {
				t.Errorf("field = %q, want %q", de.Field, tt.field)
			}
		})
	}
}

func TestNewMaterial(t *testing.T) {
	m, err := NewMaterial(28, 420, 35, 525)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Lambda() != DefaultLambda {
		t.Errorf("lambda = %v, want %v", m.Lambda(), DefaultLambda)
	}
	if math.Abs(m.ConcreteOverstrength()-0.8) > 1e-12 {
		t.Errorf("concrete overstrength = %v, want 0.8", m.ConcreteOverstrength())
	}
	if math.Abs(m.SteelOverstrength()-0.8) > 1e-12 {
		t.Errorf("steel overstrength = %v, want 0.8", m.SteelOverstrength())
	}
	want := m.ConcreteOverstrength() * m.SteelOverstrength()
	if m.TotalOverstrength() != want {
		t.Errorf("total overstrength = %v, want %v", m.TotalOverstrength(), want)
	}
	if math.Abs(m.TotalOverstrength()-0.64) > 1e-12 {
		t.Errorf("total overstrength = %v, want %v", m.TotalOverstrength(), want)
	}
}

func TestNewMaterialScaleInvariant(t *testing.T) {
	base, err := NewMaterial(28, 420, 35, 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, k := range []float64{0.5, 2, 10, 1e3} {
		scaled, err := NewMaterial(28*k, 420*k, 35*k, 500*k)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if math.Abs(scaled.TotalOverstrength()-base.TotalOverstrength()) > 1e-12 {
			t.Errorf("k=%v: total overstrength %v, want %v", k, scaled.TotalOverstrength(), base.TotalOverstrength())
		}
	}
}

func TestNewMaterialLambda(t *testing.T) {
	m, err := NewMaterial(28, 420, 28, 420, WithLambda(0.75))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.Lambda() != 0.75 {
		t.Errorf("lambda = %v, want 0.75", m.Lambda())
	}
}

func TestNewMaterialDomainErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		fc    float64
		fy    float64
		fce   float64
		fye   float64
		opts  []MaterialOption
	}{
		{"zero expected concrete", "f_ce", 28, 420, 0, 420, nil},
		{"zero expected steel", "f_ye", 28, 420, 28, 0, nil},
		{"negative expected steel", "f_ye", 28, 420, 28, -420, nil},
		{"negative concrete strength", "f_c", -1, 420, 28, 420, nil},
		{"NaN steel strength", "f_y", 28, math.NaN(), 28, 420, nil},
		{"zero lambda", "lambda_c", 28, 420, 28, 420, []MaterialOption{WithLambda(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMaterial(tt.fc, tt.fy, tt.fce, tt.fye, tt.opts...)
			var de *DomainError
			if !errors.As(err, &de) {
				t.Fatalf("expected *DomainError, got %v", err)
			}
			if de.Field != tt.field {
				t.Errorf("field = %q, want %q", de.Field, tt.field)
			}
			if !errors.Is(err, ErrInputDomain) {
				t.Errorf("expected errors.Is(err, ErrInputDomain)")
			}
		})
	}
}

func TestDomainErrorMessage(t *testing.T) {
	err := &DomainError{Field: "l_w", Value: 0, Reason: "must be positive"}
	if got := err.Error(); got != "invalid l_w=0: must be positive" {
		t.Errorf("Error() = %q", got)
	}
}

package wall

// DefaultLambda is the modification factor for normalweight concrete
const DefaultLambda = 1.0

// Material holds specified and expected material strengths (MPa)
// and the overstrength ratios derived from them.
type Material struct {
	fc     float64 // f'c - specified concrete strength
	fy     float64 // fy - specified steel yield strength
	fce    float64 // f'ce - expected concrete strength
	fye    float64 // fye - expected steel yield strength
	lambda float64 // λ - lightweight concrete modifier

	concreteOverstrength float64
	steelOverstrength    float64
	totalOverstrength    float64
}

// MaterialOption customizes optional material inputs
type MaterialOption func(*Material)

// WithLambda sets the lightweight concrete modification factor λ
func WithLambda(lambda float64) MaterialOption {
	return func(m *Material) {
		m.lambda = lambda
	}
}

// NewMaterial validates the strengths and derives the overstrength ratios
func NewMaterial(fc, fy, fce, fye float64, opts ...MaterialOption) (*Material, error) {
	m := &Material{
		fc:     fc,
		fy:     fy,
		fce:    fce,
		fye:    fye,
		lambda: DefaultLambda,
	}
	for _, opt := range opts {
		opt(m)
	}

	if err := requireNonNegative("f_c", fc); err != nil {
		return nil, err
	}
	if err := RequireFinite("f_y", fy); err != nil {
		return nil, err
	}
	if err := requirePositive("f_ce", fce); err != nil {
		return nil, err
	}
	if err := requirePositive("f_ye", fye); err != nil {
		return nil, err
	}
	if err := requirePositive("lambda_c", m.lambda); err != nil {
		return nil, err
	}

	m.concreteOverstrength = fc / fce
	m.steelOverstrength = fy / fye
	m.totalOverstrength = m.concreteOverstrength * m.steelOverstrength

	if err := RequireFinite("total_overstrength", m.totalOverstrength); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Material) Fc() float64                   { return m.fc }
func (m *Material) Fy() float64                   { return m.fy }
func (m *Material) Fce() float64                  { return m.fce }
func (m *Material) Fye() float64                  { return m.fye }
func (m *Material) Lambda() float64               { return m.lambda }
func (m *Material) ConcreteOverstrength() float64 { return m.concreteOverstrength }
func (m *Material) SteelOverstrength() float64    { return m.steelOverstrength }
func (m *Material) TotalOverstrength() float64    { return m.totalOverstrength }

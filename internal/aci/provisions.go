package aci

// Structural wall shear provisions (ACI 318-19 Section 18.10.4 and the
// overstrength-based annex check)

const (
	// Strength reduction factor for the standard wall shear method
	PhiShear = 0.6

	// Standard method, Vn = Acv(0.083 αc λ √f'c + ρt fy)
	ConcreteCoefStandard = 0.083

	// Annex method, Vn = 1.5 Acv(0.17 αc λ √f'c + ρt fye)
	ConcreteCoefAnnex = 0.17
	AreaFactorAnnex   = 1.5

	// φ for the annex method is 0.9 times the total overstrength ratio
	PhiAnnexBase = 0.9

	// Shear coefficient αc limits (Section 18.10.4.1)
	AlphaCSquat   = 0.25 // hw/lw <= 1.5
	AlphaCSlender = 0.17 // hw/lw >= 2.0

	// Slenderness breakpoints for αc
	SquatRatio   = 1.5
	SlenderRatio = 2.0
)

// alphaCSlope is the drop in αc per unit of hw/lw between the breakpoints (0.08/0.5)
const alphaCSlope = (AlphaCSquat - AlphaCSlender) / (SlenderRatio - SquatRatio)

// AlphaC returns the wall shear coefficient αc for a height-to-length ratio
// Section 18.10.4.1: 0.25 for hw/lw <= 1.5, 0.17 for hw/lw >= 2.0,
// linear in between
func AlphaC(ratio float64) float64 {
	if ratio <= SquatRatio {
		return AlphaCSquat
	}
	if ratio >= SlenderRatio {
		return AlphaCSlender
	}
	return AlphaCSquat - (ratio-SquatRatio)*alphaCSlope
}

// PhiAnnex calculates the annex strength factor from the total overstrength ratio
func PhiAnnex(totalOverstrength float64) float64 {
	return PhiAnnexBase * totalOverstrength
}

package event

import "math"

// etaAtZeroPt is the pseudorapidity reported for a vector along the beam axis.
const etaAtZeroPt = 1e10

// FourMomentum is a Lorentz vector in Cartesian components.
type FourMomentum struct {
	Px, Py, Pz, E float64
}

// PtEtaPhiM builds a FourMomentum from transverse momentum, pseudorapidity,
// azimuth and mass.
func PtEtaPhiM(pt, eta, phi, m float64) FourMomentum {
	px := pt * math.Cos(phi)
	py := pt * math.Sin(phi)
	pz := pt * math.Sinh(eta)

	return FourMomentum{
		Px: px,
		Py: py,
		Pz: pz,
		E:  math.Sqrt(px*px + py*py + pz*pz + m*m),
	}
}

// Pt returns the transverse momentum.
func (v FourMomentum) Pt() float64 {
	return math.Hypot(v.Px, v.Py)
}

// P returns the magnitude of the three-momentum.
func (v FourMomentum) P() float64 {
	return math.Sqrt(v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
}

// Phi returns the azimuth in (-π, π]; a vector with zero transverse part has Phi 0.
func (v FourMomentum) Phi() float64 {
	if v.Px == 0 && v.Py == 0 {
		return 0
	}

	return math.Atan2(v.Py, v.Px)
}

// Eta returns the pseudorapidity. A vector with zero transverse momentum
// reports ±1e10 following the sign of Pz, or 0 for the null vector.
func (v FourMomentum) Eta() float64 {
	pt := v.Pt()
	if pt == 0 {
		switch {
		case v.Pz > 0:
			return etaAtZeroPt
		case v.Pz < 0:
			return -etaAtZeroPt
		default:
			return 0
		}
	}

	return math.Asinh(v.Pz / pt)
}

// Mass returns the invariant mass; space-like vectors yield a negative value.
func (v FourMomentum) Mass() float64 {
	m2 := v.E*v.E - (v.Px*v.Px + v.Py*v.Py + v.Pz*v.Pz)
	if m2 < 0 {
		return -math.Sqrt(-m2)
	}

	return math.Sqrt(m2)
}

// Add returns the component-wise sum v + w.
func (v FourMomentum) Add(w FourMomentum) FourMomentum {
	return FourMomentum{Px: v.Px + w.Px, Py: v.Py + w.Py, Pz: v.Pz + w.Pz, E: v.E + w.E}
}

// DeltaPhi returns the azimuthal difference v.Phi() − w.Phi() folded into [-π, π].
func (v FourMomentum) DeltaPhi(w FourMomentum) float64 {
	return math.Remainder(v.Phi()-w.Phi(), 2*math.Pi)
}

// DeltaR returns the angular separation √(Δη² + Δφ²).
func (v FourMomentum) DeltaR(w FourMomentum) float64 {
	return math.Hypot(v.Eta()-w.Eta(), v.DeltaPhi(w))
}

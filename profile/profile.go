// Package profile samples radial equilibrium profiles and exports them for
// plotting or downstream tooling.
package profile

import (
	"fmt"

	"github.com/plasmalab/tokamak"
	"github.com/plasmalab/tokamak/interp"
)

// Data holds profiles sampled on a uniform flux grid. B is sampled along the
// grid at the fixed angle Theta.
type Data struct {
	Psi   []float64 `json:"psi"`
	Q     []float64 `json:"q"`
	Psip  []float64 `json:"psip"`
	I     []float64 `json:"i"`
	G     []float64 `json:"g"`
	B     []float64 `json:"b"`
	Theta float64   `json:"theta"`
}

// Sample evaluates all four quantities on n points spanning [psiMin, psiMax].
// This is a one-time batch sweep, so local accelerators suffice.
func Sample(eq *tokamak.Dynamic, psiMin, psiMax float64, n int, theta float64) (*Data, error) {
	if n < 2 {
		return nil, fmt.Errorf("profile: need at least 2 samples, got %d", n)
	}
	if psiMax <= psiMin {
		return nil, fmt.Errorf("profile: empty flux range [%g, %g]", psiMin, psiMax)
	}

	d := &Data{
		Psi:   make([]float64, n),
		Q:     make([]float64, n),
		Psip:  make([]float64, n),
		I:     make([]float64, n),
		G:     make([]float64, n),
		B:     make([]float64, n),
		Theta: theta,
	}

	psiAcc, thetaAcc := interp.NewAccel(), interp.NewAccel()
	for k := 0; k < n; k++ {
		psi := psiMin + (psiMax-psiMin)*float64(k)/float64(n-1)
		d.Psi[k] = psi

		var err error
		if d.Q[k], err = eq.Qfactor.Q(psi, psiAcc); err != nil {
			return nil, fmt.Errorf("profile: q at psi=%g: %w", psi, err)
		}
		if d.Psip[k], err = eq.Qfactor.Psip(psi, psiAcc); err != nil {
			return nil, fmt.Errorf("profile: psip at psi=%g: %w", psi, err)
		}
		if d.I[k], err = eq.Current.I(psi, psiAcc); err != nil {
			return nil, fmt.Errorf("profile: i at psi=%g: %w", psi, err)
		}
		if d.G[k], err = eq.Current.G(psi, psiAcc); err != nil {
			return nil, fmt.Errorf("profile: g at psi=%g: %w", psi, err)
		}
		if d.B[k], err = eq.Bfield.B(psi, theta, psiAcc, thetaAcc); err != nil {
			return nil, fmt.Errorf("profile: b at psi=%g: %w", psi, err)
		}
	}
	return d, nil
}

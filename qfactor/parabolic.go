package qfactor

import (
	"fmt"
	"math"

	"github.com/plasmalab/tokamak/interp"
)

// Parabolic is the closed-form profile
//
//	q(psi) = q0 + (qwall - q0) * (psi/psiWall)^2
//
// with psip obtained from the arctangent antiderivative of psi/q(psi).
type Parabolic struct {
	Q0      float64
	Qwall   float64
	PsiWall float64

	// precomputed at construction
	diff        float64 // qwall - q0
	sqrtDiff    float64 // sqrt(diff)
	sqrtProd    float64 // sqrt(q0) * sqrt(diff)
	sqrtQ0Wall  float64 // sqrt(q0) * psiWall
}

// NewParabolic builds a parabolic q-factor profile. The closed-form psip
// divides by sqrt(q0)*sqrt(qwall-q0), so q0 <= 0, qwall <= q0 or
// psiWall <= 0 are construction errors.
func NewParabolic(q0, qwall, psiWall float64) (*Parabolic, error) {
	if q0 <= 0 {
		return nil, fmt.Errorf("parabolic q-factor: q0 must be positive, got %g", q0)
	}
	if qwall <= q0 {
		return nil, fmt.Errorf("parabolic q-factor: qwall (%g) must exceed q0 (%g)", qwall, q0)
	}
	if psiWall <= 0 {
		return nil, fmt.Errorf("parabolic q-factor: psiWall must be positive, got %g", psiWall)
	}

	diff := qwall - q0
	sqrtQ0 := math.Sqrt(q0)
	return &Parabolic{
		Q0:         q0,
		Qwall:      qwall,
		PsiWall:    psiWall,
		diff:       diff,
		sqrtDiff:   math.Sqrt(diff),
		sqrtProd:   sqrtQ0 * math.Sqrt(diff),
		sqrtQ0Wall: sqrtQ0 * psiWall,
	}, nil
}

// Q returns q0 + (qwall-q0)*(psi/psiWall)^2.
func (p *Parabolic) Q(psi float64, acc *interp.Accel) (float64, error) {
	r := psi / p.PsiWall
	return p.Q0 + p.diff*r*r, nil
}

// Psip returns psiWall/(sqrt(q0)*sqrt(qwall-q0)) * atan(sqrt(qwall-q0)*psi/(sqrt(q0)*psiWall)).
func (p *Parabolic) Psip(psi float64, acc *interp.Accel) (float64, error) {
	atan := math.Atan(p.sqrtDiff * psi / p.sqrtQ0Wall)
	return p.PsiWall / p.sqrtProd * atan, nil
}

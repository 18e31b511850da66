package numeric

import (
	"math"

	"gonum.org/v1/gonum/num/dual"
)

// Number is the arithmetic capability set shared by every generic function
// in this module. T is the implementing type itself.
type Number[T any] interface {
	// Value returns the real (primal) part.
	Value() float64
	Neg() T
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Inv() T
	AddReal(float64) T
	MulReal(float64) T
	DivReal(float64) T
	Exp() T
	Log() T
	Sinh() T
	Cosh() T
	Tanh() T
}

// Real is a plain float64 satisfying Number.
type Real float64

var _ Number[Real] = Real(0)

func (r Real) Value() float64 { return float64(r) }
func (r Real) Neg() Real { return -r }
func (r Real) Add(o Real) Real { return r + o }
func (r Real) Sub(o Real) Real { return r - o }
func (r Real) Mul(o Real) Real { return r * o }
func (r Real) Div(o Real) Real { return r / o }
func (r Real) Inv() Real { return 1 / r }
func (r Real) AddReal(f float64) Real { return r + Real(f) }
func (r Real) MulReal(f float64) Real { return r * Real(f) }
func (r Real) DivReal(f float64) Real { return r / Real(f) }
func (r Real) Exp() Real { return Real(math.Exp(float64(r))) }
func (r Real) Log() Real { return Real(math.Log(float64(r))) }
func (r Real) Sinh() Real { return Real(math.Sinh(float64(r))) }
func (r Real) Cosh() Real { return Real(math.Cosh(float64(r))) }
func (r Real) Tanh() Real { return Real(math.Tanh(float64(r))) }

// Dual is a forward-mode dual number a + bϵ (ϵ² = 0). Seeding the ϵ part
// with 1 propagates the first derivative through any generic function.
type Dual dual.Number

var _ Number[Dual] = Dual{}

// NewDual returns value + derivative·ϵ.
func NewDual(value, derivative float64) Dual {
	return Dual{Real: value, Emag: derivative}
}

// Derivative returns the ϵ part.
func (d Dual) Derivative() float64 { return d.Emag }

func (d Dual) Value() float64 { return d.Real }
func (d Dual) Neg() Dual { return Dual(dual.Scale(-1, dual.Number(d))) }
func (d Dual) Add(o Dual) Dual {
	return Dual{Real: d.Real + o.Real, Emag: d.Emag + o.Emag}
}
func (d Dual) Sub(o Dual) Dual {
	return Dual{Real: d.Real - o.Real, Emag: d.Emag - o.Emag}
}
func (d Dual) Mul(o Dual) Dual { return Dual(dual.Mul(dual.Number(d), dual.Number(o))) }
func (d Dual) Div(o Dual) Dual {
	return Dual(dual.Mul(dual.Number(d), dual.Inv(dual.Number(o))))
}
func (d Dual) Inv() Dual { return Dual(dual.Inv(dual.Number(d))) }
func (d Dual) AddReal(f float64) Dual { return Dual{Real: d.Real + f, Emag: d.Emag} }
func (d Dual) MulReal(f float64) Dual { return Dual(dual.Scale(f, dual.Number(d))) }
func (d Dual) DivReal(f float64) Dual { return Dual(dual.Scale(1/f, dual.Number(d))) }
func (d Dual) Exp() Dual { return Dual(dual.Exp(dual.Number(d))) }
func (d Dual) Log() Dual { return Dual(dual.Log(dual.Number(d))) }
func (d Dual) Sinh() Dual { return Dual(dual.Sinh(dual.Number(d))) }
func (d Dual) Cosh() Dual { return Dual(dual.Cosh(dual.Number(d))) }
func (d Dual) Tanh() Dual { return Dual(dual.Tanh(dual.Number(d))) }

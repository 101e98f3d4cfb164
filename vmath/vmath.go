package vmath

import (
	"math"
	"math/bits"
)

// Q32.32 Fixed Point constants
const (
	Shift = 32
	Scale = 1 << Shift
	Half  = 1 << (Shift - 1)
)

// --- Arithmetic ---

func FromInt(i int) int64       { return int64(i) << Shift }
func ToInt(f int64) int         { return int(f >> Shift) }
func FromFloat(f float64) int64 { return int64(f * Scale) }
func ToFloat(f int64) float64   { return float64(f) / Scale }

// Mul multiplies two Q32.32 values through a 128-bit intermediate
func Mul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi, lo := bits.Mul64(ua, ub)
	result := int64((hi << 32) | (lo >> 32))

	if negative {
		return -result
	}
	return result
}

// Div divides two Q32.32 values, saturating on overflow and returning 0 for b == 0
func Div(a, b int64) int64 {
	if b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := uint64(a), uint64(b)
	if a < 0 {
		ua = uint64(-a)
	}
	if b < 0 {
		ub = uint64(-b)
	}

	hi := ua >> 32
	lo := ua << 32
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	if negative {
		return -int64(quo)
	}
	return int64(quo)
}

func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -Scale, 0, or Scale
func Sign(x int64) int64 {
	if x < 0 {
		return -Scale
	}
	if x > 0 {
		return Scale
	}
	return 0
}

func Min(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func Max(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Clamp limits x to [lo, hi]
func Clamp(x, lo, hi int64) int64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Sqrt returns the Q32.32 square root, zero for non-positive input
func Sqrt(x int64) int64 {
	if x <= 0 {
		return 0
	}
	return FromFloat(math.Sqrt(ToFloat(x)))
}

// MagnitudeSq returns x² + y²
func MagnitudeSq(x, y int64) int64 {
	return Mul(x, x) + Mul(y, y)
}

// DotProduct returns x1*x2 + y1*y2 in Q32.32
func DotProduct(x1, y1, x2, y2 int64) int64 {
	return Mul(x1, x2) + Mul(y1, y2)
}

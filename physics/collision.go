package physics

import (
	"github.com/lixenwraith/maze-collapse/vmath"
)

// manifold describes the overlap of two bodies. Normal is a Q32.32 unit vector pointing
// from a to b; Depth is the penetration, negative when the shapes are apart.
type manifold struct {
	NormalX, NormalY int64
	Depth            int64
}

// contact computes the manifold for any shape combination
func contact(a, b *Body) manifold {
	switch {
	case a.Shape == ShapeRect && b.Shape == ShapeRect:
		return rectRect(a, b)
	case a.Shape == ShapeCircle && b.Shape == ShapeRect:
		return circleRect(a, b)
	case a.Shape == ShapeRect && b.Shape == ShapeCircle:
		m := circleRect(b, a)
		m.NormalX, m.NormalY = -m.NormalX, -m.NormalY
		return m
	default:
		return circleCircle(a, b)
	}
}

// axisSign returns the unit sign of d, positive for zero
func axisSign(d int64) int64 {
	if d < 0 {
		return -vmath.Scale
	}
	return vmath.Scale
}

func rectRect(a, b *Body) manifold {
	dx := b.PreciseX - a.PreciseX
	dy := b.PreciseY - a.PreciseY
	px := a.HalfW + b.HalfW - vmath.Abs(dx)
	py := a.HalfH + b.HalfH - vmath.Abs(dy)

	if px < py {
		return manifold{NormalX: axisSign(dx), Depth: vmath.Min(px, py)}
	}
	return manifold{NormalY: axisSign(dy), Depth: vmath.Min(px, py)}
}

func circleRect(c, r *Body) manifold {
	qx := vmath.Clamp(c.PreciseX, r.PreciseX-r.HalfW, r.PreciseX+r.HalfW)
	qy := vmath.Clamp(c.PreciseY, r.PreciseY-r.HalfH, r.PreciseY+r.HalfH)
	dx := qx - c.PreciseX
	dy := qy - c.PreciseY

	if dx == 0 && dy == 0 {
		// Center inside the rectangle: push out along the shallower axis
		ox := c.PreciseX - r.PreciseX
		oy := c.PreciseY - r.PreciseY
		px := r.HalfW - vmath.Abs(ox) + c.Radius
		py := r.HalfH - vmath.Abs(oy) + c.Radius
		if px < py {
			return manifold{NormalX: -axisSign(ox), Depth: px}
		}
		return manifold{NormalY: -axisSign(oy), Depth: py}
	}

	dist := vmath.Sqrt(vmath.MagnitudeSq(dx, dy))
	if dist == 0 {
		return manifold{NormalX: vmath.Scale, Depth: c.Radius}
	}
	return manifold{
		NormalX: vmath.Div(dx, dist),
		NormalY: vmath.Div(dy, dist),
		Depth:   c.Radius - dist,
	}
}

func circleCircle(a, b *Body) manifold {
	dx := b.PreciseX - a.PreciseX
	dy := b.PreciseY - a.PreciseY
	dist := vmath.Sqrt(vmath.MagnitudeSq(dx, dy))
	if dist == 0 {
		return manifold{NormalX: vmath.Scale, Depth: a.Radius + b.Radius}
	}
	return manifold{
		NormalX: vmath.Div(dx, dist),
		NormalY: vmath.Div(dy, dist),
		Depth:   a.Radius + b.Radius - dist,
	}
}

// resolve separates an overlapping pair and removes the approaching velocity component.
// Static bodies never move.
func resolve(a, b *Body, m manifold) {
	if m.Depth <= 0 || (a.Static && b.Static) {
		return
	}

	switch {
	case a.Static:
		b.PreciseX += vmath.Mul(m.NormalX, m.Depth)
		b.PreciseY += vmath.Mul(m.NormalY, m.Depth)
		if vn := vmath.DotProduct(b.VelX, b.VelY, m.NormalX, m.NormalY); vn < 0 {
			b.VelX -= vmath.Mul(vn, m.NormalX)
			b.VelY -= vmath.Mul(vn, m.NormalY)
		}

	case b.Static:
		a.PreciseX -= vmath.Mul(m.NormalX, m.Depth)
		a.PreciseY -= vmath.Mul(m.NormalY, m.Depth)
		if vn := vmath.DotProduct(a.VelX, a.VelY, m.NormalX, m.NormalY); vn > 0 {
			a.VelX -= vmath.Mul(vn, m.NormalX)
			a.VelY -= vmath.Mul(vn, m.NormalY)
		}

	default:
		half := m.Depth >> 1
		a.PreciseX -= vmath.Mul(m.NormalX, half)
		a.PreciseY -= vmath.Mul(m.NormalY, half)
		b.PreciseX += vmath.Mul(m.NormalX, half)
		b.PreciseY += vmath.Mul(m.NormalY, half)

		// Equal masses, perfectly inelastic along the normal
		rel := vmath.DotProduct(b.VelX-a.VelX, b.VelY-a.VelY, m.NormalX, m.NormalY)
		if rel < 0 {
			share := rel >> 1
			a.VelX += vmath.Mul(share, m.NormalX)
			a.VelY += vmath.Mul(share, m.NormalY)
			b.VelX -= vmath.Mul(share, m.NormalX)
			b.VelY -= vmath.Mul(share, m.NormalY)
		}
	}
}

package physics

import (
	"github.com/lixenwraith/maze-collapse/core"
	"github.com/lixenwraith/maze-collapse/vmath"
)

// Integrate performs semi-implicit Euler integration: v = v + a*dt; p = p + v*dt
func Integrate(k *core.Kinetic, dt int64) {
	k.VelX += vmath.Mul(k.AccelX, dt)
	k.VelY += vmath.Mul(k.AccelY, dt)
	k.PreciseX += vmath.Mul(k.VelX, dt)
	k.PreciseY += vmath.Mul(k.VelY, dt)
}

// SetImpulse overrides velocity
func SetImpulse(k *core.Kinetic, vx, vy int64) {
	k.VelX = vx
	k.VelY = vy
}

// CapSpeed limits the velocity vector magnitude to maxSpeed
// Returns true if velocity was clamped
func CapSpeed(k *core.Kinetic, maxSpeed int64) bool {
	if maxSpeed <= 0 {
		return false
	}
	magSq := vmath.MagnitudeSq(k.VelX, k.VelY)
	maxSq := vmath.Mul(maxSpeed, maxSpeed)

	if magSq > maxSq {
		mag := vmath.Sqrt(magSq)
		if mag == 0 {
			return false
		}
		scale := vmath.Div(maxSpeed, mag)
		k.VelX = vmath.Mul(k.VelX, scale)
		k.VelY = vmath.Mul(k.VelY, scale)
		return true
	}
	return false
}

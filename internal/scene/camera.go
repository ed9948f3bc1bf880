// Package scene rasterizes the 3D world into a core.Screen.
//
// It is a tiny software renderer: perspective projection, near-plane clipping,
// convex fills and line edges. Depth is resolved by draw order (painter's
// algorithm), so callers draw far objects first.
package scene

import (
	"math"

	"github.com/vovakirdan/crawl/internal/entity"
)

// Camera is a perspective camera looking from Position at Target.
type Camera struct {
	Position entity.Vec3
	Target   entity.Vec3
	Up       entity.Vec3
	Fovy     float64 // vertical field of view in degrees
}

// DefaultCamera returns a camera at the origin looking down -z with a 60° fov.
func DefaultCamera() Camera {
	return Camera{
		Position: entity.Vec3{},
		Target:   entity.Vec3{Z: -1},
		Up:       entity.Vec3{Y: 1},
		Fovy:     60,
	}
}

// basis is the camera's orthonormal frame.
type basis struct {
	origin  entity.Vec3
	right   entity.Vec3
	up      entity.Vec3
	forward entity.Vec3
}

func (c Camera) basis() basis {
	forward := normalize(c.Target.Sub(c.Position))
	if forward == (entity.Vec3{}) {
		forward = entity.Vec3{Z: -1}
	}
	up := c.Up
	if up == (entity.Vec3{}) {
		up = entity.Vec3{Y: 1}
	}
	right := normalize(cross(forward, up))
	if right == (entity.Vec3{}) {
		// Looking straight along up; any perpendicular will do.
		right = entity.Vec3{X: 1}
	}
	return basis{
		origin:  c.Position,
		right:   right,
		up:      cross(right, forward),
		forward: forward,
	}
}

// view converts a world point into camera space: x right, y up, z depth.
func (b basis) view(p entity.Vec3) entity.Vec3 {
	d := p.Sub(b.origin)
	return entity.Vec3{X: dot(d, b.right), Y: dot(d, b.up), Z: dot(d, b.forward)}
}

func dot(a, b entity.Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b entity.Vec3) entity.Vec3 {
	return entity.Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v entity.Vec3) entity.Vec3 {
	mag := math.Sqrt(dot(v, v))
	if mag == 0 {
		return entity.Vec3{}
	}
	return v.Scale(1 / mag)
}

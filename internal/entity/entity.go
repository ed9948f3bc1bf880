package entity

import "github.com/vovakirdan/crawl/internal/core"

// CubeSize is the extent every entity is built with.
var CubeSize = Vec3{2, 2, 2}

// Renderer draws boxes. The scene package provides the terminal implementation.
type Renderer interface {
	DrawCube(center, size Vec3, color core.Color)
	DrawCubeWires(center, size Vec3, color core.Color)
}

// Entity is a colored box in the world.
type Entity struct {
	Position Vec3
	Size     Vec3
	Color    core.Color
}

// New creates an entity centered at position.
func New(position, size Vec3, color core.Color) Entity {
	return Entity{Position: position, Size: size, Color: color}
}

// Bounds returns the entity's AABB: [Position - Size/2, Position + Size/2].
func (e Entity) Bounds() Box {
	half := e.Size.Scale(0.5)
	return Box{
		Min: e.Position.Sub(half),
		Max: e.Position.Add(half),
	}
}

// Collide reports whether the two entities' boxes touch or overlap.
func (e Entity) Collide(other Entity) bool {
	return e.Bounds().Overlaps(other.Bounds())
}

// Draw renders the entity as a solid box, with an optional wire outline on top.
func (e Entity) Draw(r Renderer, wires bool, wireColor core.Color) {
	r.DrawCube(e.Position, e.Size, e.Color)
	if wires {
		r.DrawCubeWires(e.Position, e.Size, wireColor)
	}
}

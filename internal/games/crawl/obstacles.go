package crawl

import (
	"math/rand"

	"github.com/vovakirdan/crawl/internal/entity"
)

// ObstaclePool owns the obstacles by value in one contiguous slice.
//
// The slice is used as a ring ordered by spawn depth: head is the obstacle
// nearest the player and each following slot lies further down -z. Because
// recycled obstacles always respawn beyond the current farthest one, the ring
// order never needs re-sorting and only the head can ever scroll past the player.
type ObstaclePool struct {
	slots []entity.Entity
	head  int
}

// NewObstaclePool creates an empty pool with room for capacity obstacles.
func NewObstaclePool(capacity int) *ObstaclePool {
	return &ObstaclePool{slots: make([]entity.Entity, 0, capacity)}
}

// Rebuild replaces every obstacle with spawn(0..count-1), nearest first.
func (p *ObstaclePool) Rebuild(count int, spawn func(i int) entity.Entity) {
	p.slots = p.slots[:0]
	p.head = 0
	for i := 0; i < count; i++ {
		p.slots = append(p.slots, spawn(i))
	}
}

// Len returns the number of obstacles.
func (p *ObstaclePool) Len() int {
	return len(p.slots)
}

// At returns the i-th obstacle counting from the nearest.
func (p *ObstaclePool) At(i int) *entity.Entity {
	return &p.slots[(p.head+i)%len(p.slots)]
}

// Nearest returns the obstacle closest to the player, or nil when empty.
func (p *ObstaclePool) Nearest() *entity.Entity {
	if len(p.slots) == 0 {
		return nil
	}
	return &p.slots[p.head]
}

// RecycleNearest overwrites the nearest obstacle's slot with e, which becomes
// the farthest obstacle.
func (p *ObstaclePool) RecycleNearest(e entity.Entity) {
	if len(p.slots) == 0 {
		return
	}
	p.slots[p.head] = e
	p.head = (p.head + 1) % len(p.slots)
}

// LaneSampler draws lanes uniformly from a fixed set.
type LaneSampler struct {
	lanes []float64
	rng   *rand.Rand
}

// NewLaneSampler creates a sampler over lanes using rng.
func NewLaneSampler(lanes []float64, rng *rand.Rand) LaneSampler {
	return LaneSampler{lanes: lanes, rng: rng}
}

// Next returns a lane offset. Intn is bounded and unbiased, so every lane is
// equally likely.
func (s LaneSampler) Next() float64 {
	return s.lanes[s.rng.Intn(len(s.lanes))]
}

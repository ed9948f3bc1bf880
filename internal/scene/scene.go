package scene

import (
	"math"
	"sort"

	"github.com/vovakirdan/crawl/internal/core"
	"github.com/vovakirdan/crawl/internal/entity"
)

const (
	// NearPlane is the closest depth that is still drawn.
	NearPlane = 0.1

	// cellAspect is how much taller a terminal cell is than it is wide.
	cellAspect = 2.0

	solidRune = '█'
)

// point2 is a projected screen position in fractional cells.
type point2 struct {
	X, Y float64
}

// Scene draws into a screen through a camera. It implements entity.Renderer.
type Scene struct {
	dst   *core.Screen
	cam   Camera
	frame basis
	focal float64 // 1 / tan(fovy/2)
}

var _ entity.Renderer = (*Scene)(nil)

// Begin starts 3D drawing onto dst with the given camera.
func Begin(dst *core.Screen, cam Camera) *Scene {
	fovy := core.ClampF(cam.Fovy, 1, 179)
	return &Scene{
		dst:   dst,
		cam:   cam,
		frame: cam.basis(),
		focal: 1 / math.Tan(fovy*math.Pi/360),
	}
}

// Project maps a world point to fractional screen coordinates.
// ok is false when the point is at or behind the near plane.
func (s *Scene) Project(p entity.Vec3) (x, y float64, ok bool) {
	v := s.frame.view(p)
	if v.Z < NearPlane {
		return 0, 0, false
	}
	pt := s.projectView(v)
	return pt.X, pt.Y, true
}

func (s *Scene) projectView(v entity.Vec3) point2 {
	w := float64(s.dst.Width())
	h := float64(s.dst.Height())
	aspect := 1.0
	if h > 0 {
		aspect = w / (h * cellAspect)
	}
	ndcX := v.X * s.focal / (v.Z * aspect)
	ndcY := v.Y * s.focal / v.Z
	return point2{
		X: (ndcX + 1) * 0.5 * w,
		Y: (1 - ndcY) * 0.5 * h,
	}
}

// corners returns the 8 corners of a box in world space.
func corners(center, size entity.Vec3) [8]entity.Vec3 {
	h := size.Scale(0.5)
	var out [8]entity.Vec3
	for i := range out {
		sx, sy, sz := -1.0, -1.0, -1.0
		if i&1 != 0 {
			sx = 1
		}
		if i&2 != 0 {
			sy = 1
		}
		if i&4 != 0 {
			sz = 1
		}
		out[i] = entity.Vec3{
			X: center.X + sx*h.X,
			Y: center.Y + sy*h.Y,
			Z: center.Z + sz*h.Z,
		}
	}
	return out
}

// boxEdges indexes corners() pairs that differ in exactly one axis.
var boxEdges = [12][2]int{
	{0, 1}, {2, 3}, {4, 5}, {6, 7}, // along x
	{0, 2}, {1, 3}, {4, 6}, {5, 7}, // along y
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // along z
}

// DrawCube fills the silhouette of a box. Boxes crossing the near plane are skipped.
func (s *Scene) DrawCube(center, size entity.Vec3, color core.Color) {
	pts := make([]point2, 0, 8)
	for _, c := range corners(center, size) {
		x, y, ok := s.Project(c)
		if !ok {
			return
		}
		pts = append(pts, point2{x, y})
	}
	s.fill(convexHull(pts), core.Cell{Rune: solidRune, Fg: color, Bg: color})
}

// DrawCubeWires draws the 12 edges of a box.
func (s *Scene) DrawCubeWires(center, size entity.Vec3, color core.Color) {
	cs := corners(center, size)
	for _, e := range boxEdges {
		s.DrawLine(cs[e[0]], cs[e[1]], color)
	}
}

// DrawLine draws a world-space segment, clipped to the near plane.
func (s *Scene) DrawLine(a, b entity.Vec3, color core.Color) {
	va, vb := s.frame.view(a), s.frame.view(b)
	if va.Z < NearPlane && vb.Z < NearPlane {
		return
	}
	if va.Z < NearPlane {
		va = clipAt(vb, va)
	} else if vb.Z < NearPlane {
		vb = clipAt(va, vb)
	}
	p, q := s.projectView(va), s.projectView(vb)
	s.line(p, q, color)
}

// DrawPlane fills a horizontal rectangle centered at center with the given
// x/z extents. Parts behind the camera are clipped away.
func (s *Scene) DrawPlane(center entity.Vec3, width, depth float64, color core.Color) {
	hw, hd := width/2, depth/2
	quad := []entity.Vec3{
		s.frame.view(entity.Vec3{X: center.X - hw, Y: center.Y, Z: center.Z - hd}),
		s.frame.view(entity.Vec3{X: center.X + hw, Y: center.Y, Z: center.Z - hd}),
		s.frame.view(entity.Vec3{X: center.X + hw, Y: center.Y, Z: center.Z + hd}),
		s.frame.view(entity.Vec3{X: center.X - hw, Y: center.Y, Z: center.Z + hd}),
	}
	clipped := clipNear(quad)
	if len(clipped) < 3 {
		return
	}
	pts := make([]point2, len(clipped))
	for i, v := range clipped {
		pts[i] = s.projectView(v)
	}
	s.fill(convexHull(pts), core.Cell{Rune: ' ', Bg: color})
}

// clipAt returns the point on segment in→out lying on the near plane.
func clipAt(in, out entity.Vec3) entity.Vec3 {
	t := (NearPlane - in.Z) / (out.Z - in.Z)
	return in.Add(out.Sub(in).Scale(t))
}

// clipNear clips a camera-space polygon against the near plane (Sutherland–Hodgman).
func clipNear(poly []entity.Vec3) []entity.Vec3 {
	out := make([]entity.Vec3, 0, len(poly)+2)
	for i, cur := range poly {
		prev := poly[(i+len(poly)-1)%len(poly)]
		curIn, prevIn := cur.Z >= NearPlane, prev.Z >= NearPlane
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, clipAt(cur, prev), cur)
		case !curIn && prevIn:
			out = append(out, clipAt(prev, cur))
		}
	}
	return out
}

// convexHull returns the hull of pts in counter-clockwise order (monotone chain).
func convexHull(pts []point2) []point2 {
	if len(pts) < 3 {
		return pts
	}
	sorted := append([]point2(nil), pts...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})

	hull := make([]point2, 0, 2*len(sorted))
	for _, p := range sorted {
		for len(hull) >= 2 && cross2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		p := sorted[i]
		for len(hull) >= lower && cross2(hull[len(hull)-2], hull[len(hull)-1], p) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, p)
	}
	return hull[:len(hull)-1]
}

func cross2(o, a, b point2) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}

// insideConvex reports whether p lies in a counter-clockwise convex polygon.
func insideConvex(poly []point2, p point2) bool {
	for i := range poly {
		if cross2(poly[i], poly[(i+1)%len(poly)], p) < 0 {
			return false
		}
	}
	return true
}

// fill paints every cell whose center lies inside the convex polygon.
func (s *Scene) fill(poly []point2, cell core.Cell) {
	if len(poly) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range poly {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	x0 := core.Clamp(int(math.Floor(minX)), 0, s.dst.Width())
	x1 := core.Clamp(int(math.Ceil(maxX)), 0, s.dst.Width())
	y0 := core.Clamp(int(math.Floor(minY)), 0, s.dst.Height())
	y1 := core.Clamp(int(math.Ceil(maxY)), 0, s.dst.Height())

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if insideConvex(poly, point2{float64(x) + 0.5, float64(y) + 0.5}) {
				s.dst.SetCell(x, y, cell)
			}
		}
	}
}

// line draws a screen-space segment with slope-appropriate glyphs.
func (s *Scene) line(p, q point2, color core.Color) {
	dx, dy := q.X-p.X, q.Y-p.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}

	glyph := '╲'
	switch {
	case math.Abs(dy) < math.Abs(dx)*0.25:
		glyph = '─'
	case math.Abs(dx) < math.Abs(dy)*0.25:
		glyph = '│'
	case (dx > 0) != (dy > 0):
		glyph = '╱'
	}

	// Keep whatever background is already under the edge.
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Floor(p.X + dx*t))
		y := int(math.Floor(p.Y + dy*t))
		under := s.dst.GetCell(x, y)
		s.dst.SetCell(x, y, core.Cell{Rune: glyph, Fg: color, Bg: under.Bg})
	}
}

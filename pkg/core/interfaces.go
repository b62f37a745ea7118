package core

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Shape interface for objects that can be hit by rays.
//
// Hit returns the intersection with the smallest t strictly inside
// (tMin, tMax), or false when there is none. A geometric miss and a hit
// outside the interval are reported the same way. Implementations must
// not mutate their state, so one shape may be queried from many
// goroutines at once.
type Shape interface {
	Hit(ray Ray, tMin, tMax float64) (HitRecord, bool)
}

// Material is the shading capability attached to a surface.
// Shapes only carry the reference into the hit record; the renderer is
// the only caller of Shade. Implementations are shared between render
// workers and must be safe for concurrent use.
type Material interface {
	Shade(rayIn Ray, hit HitRecord) Vec3
}

package core

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	T         float64  // Parameter t along the ray
	Point     Vec3     // Point of intersection, equal to ray.At(T)
	Normal    Vec3     // Outward unit surface normal, never flipped
	FrontFace bool     // Whether the ray arrived from outside the surface
	Material  Material // Material of the hit object (not owned by the record)
}

// NewHitRecord builds a hit at parameter t from the outward normal at that point
func NewHitRecord(ray Ray, t float64, outwardNormal Vec3, material Material) HitRecord {
	return HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    outwardNormal,
		FrontFace: ray.Direction.Dot(outwardNormal) < 0,
		Material:  material,
	}
}

// FacingNormal returns the normal oriented against the incoming ray
func (h HitRecord) FacingNormal() Vec3 {
	if h.FrontFace {
		return h.Normal
	}
	return h.Normal.Negate()
}

// Interval is an open range of ray parameters
type Interval struct {
	Min, Max float64
}

// NewInterval creates an interval (min, max)
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// Surrounds reports whether t lies strictly inside the interval.
// Values equal to either bound are outside.
func (i Interval) Surrounds(t float64) bool {
	return i.Min < t && t < i.Max
}

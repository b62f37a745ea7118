package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrDegenerateSphere is returned by Validate for spheres that cannot be intersected meaningfully
var ErrDegenerateSphere = errors.New("degenerate sphere")

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// Validate checks the construction-time invariants. Hit does not call it.
func (s *Sphere) Validate() error {
	if math.IsNaN(s.Radius) || math.IsInf(s.Radius, 0) || s.Radius <= 0 {
		return fmt.Errorf("%w: radius %v must be positive and finite", ErrDegenerateSphere, s.Radius)
	}
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: center %v is not finite", ErrDegenerateSphere, s.Center)
	}
	return nil
}

// Hit tests if a ray intersects with the sphere.
//
// Only roots strictly inside (tMin, tMax) count. A discriminant of exactly
// zero (a tangent ray) is reported as a miss. A zero-length ray direction
// or a non-positive radius is not guarded against and yields
// undefined results.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic a*t² + 2*b*t + c = 0, so roots are (-b ± sqrt(b² - a*c)) / a
	a := ray.Direction.Dot(ray.Direction)
	b := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - a*c
	if discriminant <= 0 {
		return core.HitRecord{}, false
	}

	sqrtD := math.Sqrt(discriminant)
	interval := core.NewInterval(tMin, tMax)

	// Nearer root wins; the farther one is only tried when it is out of range
	root := (-b - sqrtD) / a
	if !interval.Surrounds(root) {
		root = (-b + sqrtD) / a
		if !interval.Surrounds(root) {
			return core.HitRecord{}, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return core.NewHitRecord(ray, root, outwardNormal, s.Material), true
}

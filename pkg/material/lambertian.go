package material

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// DefaultLightDirection points from surfaces toward the key light
var DefaultLightDirection = core.NewVec3(-1, 1, 1).Normalize()

// Lambertian represents a perfectly diffuse material lit by a single
// directional light plus a constant ambient term
type Lambertian struct {
	Albedo         ColorSource // Base color/reflectance (can be solid or procedural)
	LightDirection core.Vec3   // Unit direction toward the light
	Ambient        float64     // Fraction of albedo returned for unlit surfaces
}

// NewLambertian creates a new lambertian material with solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return NewTexturedLambertian(NewSolidColor(albedo))
}

// NewTexturedLambertian creates a new lambertian material with a color source
func NewTexturedLambertian(albedo ColorSource) *Lambertian {
	return &Lambertian{
		Albedo:         albedo,
		LightDirection: DefaultLightDirection,
		Ambient:        0.1,
	}
}

// Shade implements the Material interface
func (l *Lambertian) Shade(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	// Two-sided: back faces are lit as seen from inside
	normal := hit.FacingNormal()

	cosTheta := normal.Dot(l.LightDirection)
	if cosTheta < 0 {
		cosTheta = 0 // Clamp to avoid negative values
	}

	albedo := l.Albedo.Evaluate(hit.Point)
	return albedo.Multiply(l.Ambient + (1.0-l.Ambient)*cosTheta)
}

// NormalShade visualizes the outward surface normal as a color
type NormalShade struct{}

// NewNormalShade creates a normal visualization material
func NewNormalShade() *NormalShade {
	return &NormalShade{}
}

// Shade maps each normal component from [-1, 1] to [0, 1]
func (n *NormalShade) Shade(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5)
}

package material

import (
	"math"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ColorSource provides spatially-varying colors for materials
type ColorSource interface {
	// Evaluate returns the color at a world-space point
	Evaluate(point core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color source
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of position
func (s *SolidColor) Evaluate(point core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two colors on a 3D grid of cubes with side Scale
type Checker struct {
	Scale float64
	Even  core.Vec3
	Odd   core.Vec3
}

// NewChecker creates a procedural checker pattern
func NewChecker(scale float64, even, odd core.Vec3) *Checker {
	return &Checker{Scale: scale, Even: even, Odd: odd}
}

// Evaluate returns Even or Odd depending on which cell contains the point
func (c *Checker) Evaluate(point core.Vec3) core.Vec3 {
	inv := 1.0 / c.Scale
	x := int(math.Floor(point.X * inv))
	y := int(math.Floor(point.Y * inv))
	z := int(math.Floor(point.Z * inv))

	if (x+y+z)%2 == 0 {
		return c.Even
	}
	return c.Odd
}

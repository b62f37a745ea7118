package scene

import (
	"fmt"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// Validator is implemented by shapes that can check their construction invariants
type Validator interface {
	Validate() error
}

// Scene contains all the elements needed for rendering
type Scene struct {
	Name           string
	Camera         *renderer.Camera
	Shapes         []core.Shape // Objects in the scene
	CameraConfig   renderer.CameraConfig
	SamplingConfig renderer.SamplingConfig
	TopColor       core.Vec3 // Background gradient at the zenith
	BottomColor    core.Vec3 // Background gradient at the nadir
}

// NewScene creates an empty scene with a sky gradient background
func NewScene(name string, cameraConfig renderer.CameraConfig, samplingConfig renderer.SamplingConfig) *Scene {
	return &Scene{
		Name:           name,
		Camera:         renderer.NewCamera(cameraConfig),
		Shapes:         make([]core.Shape, 0),
		CameraConfig:   cameraConfig,
		SamplingConfig: samplingConfig,
		TopColor:       core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:    core.NewVec3(1.0, 1.0, 1.0),
	}
}

// Add appends shapes to the scene
func (s *Scene) Add(shapes ...core.Shape) {
	s.Shapes = append(s.Shapes, shapes...)
}

// Hit returns the closest intersection over all shapes in (tMin, tMax).
// Each shape is queried with the window shrunk to the closest hit so far.
func (s *Scene) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closestHit core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// Validate checks every shape that implements Validator
func (s *Scene) Validate() error {
	for i, shape := range s.Shapes {
		if v, ok := shape.(Validator); ok {
			if err := v.Validate(); err != nil {
				return fmt.Errorf("scene %q shape %d: %w", s.Name, i, err)
			}
		}
	}
	return nil
}

// GetCamera returns the scene camera
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors returns the sky gradient colors
func (s *Scene) GetBackgroundColors() (topColor, bottomColor core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetPrimitiveCount returns the total number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

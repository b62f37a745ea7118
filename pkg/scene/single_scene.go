package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewSingleSphereScene creates a scene with one sphere in front of the camera
func NewSingleSphereScene() *Scene {
	cameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       200,
		AspectRatio: 1.0,
		VFov:        90.0,
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 1

	s := NewScene("single", cameraConfig, samplingConfig)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewNormalShade()))
	return s
}

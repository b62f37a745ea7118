package scene

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/material"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
)

// NewDefaultScene creates a default scene with three spheres resting on a large ground sphere
func NewDefaultScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		Center:      core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        90.0,
	}

	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	samplingConfig := renderer.DefaultSamplingConfig()
	samplingConfig.SamplesPerPixel = 16

	s := NewScene("default", cameraConfig, samplingConfig)

	groundChecker := material.NewTexturedLambertian(material.NewChecker(0.5,
		core.NewVec3(0.8, 0.8, 0.0).Multiply(0.6),
		core.NewVec3(0.9, 0.9, 0.9)))
	lambertianRed := material.NewLambertian(core.NewVec3(0.65, 0.25, 0.2))
	lambertianBlue := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewNormalShade()),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, lambertianRed),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, lambertianBlue),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, groundChecker),
	)

	return s
}

package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string
	Description string
	build       func() *Scene
}

var builtinScenes = []SceneInfo{
	{
		Name:        "default",
		Description: "Three spheres on a checkered ground sphere",
		build:       func() *Scene { return NewDefaultScene() },
	},
	{
		Name:        "spheregrid",
		Description: "10x10 grid of colored spheres",
		build:       func() *Scene { return NewSphereGridScene(10) },
	},
	{
		Name:        "single",
		Description: "One unit sphere shaded by its normals",
		build:       NewSingleSphereScene,
	},
}

// ListScenes returns the built-in scenes sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	copy(scenes, builtinScenes)
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// Names returns the names of the built-in scenes
func Names() []string {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.Name)
	}
	return names
}

// Create builds and validates the named scene
func Create(name string, logger core.Logger) (*Scene, error) {
	for _, info := range builtinScenes {
		if info.Name != name {
			continue
		}

		s := info.build()
		if err := s.Validate(); err != nil {
			return nil, fmt.Errorf("invalid scene: %w", err)
		}
		if logger != nil {
			logger.Printf("Using %s scene (%d shapes)...\n", s.Name, s.GetPrimitiveCount())
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
}

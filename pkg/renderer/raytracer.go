package renderer

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int     // Number of rays per pixel; 1 shoots through pixel centers
	TMin            float64 // Lower bound of accepted hits, avoids surface acne
	TMax            float64 // Upper bound of accepted hits
	NumWorkers      int     // Parallel row workers, 0 means runtime.NumCPU()
	Seed            int64   // Base seed for per-row jitter
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 16,
		TMin:            0.001,
		TMax:            math.Inf(1),
		NumWorkers:      0,
		Seed:            42,
	}
}

// MergeSamplingConfig fills zero fields of config from the defaults
func MergeSamplingConfig(config SamplingConfig) SamplingConfig {
	defaults := DefaultSamplingConfig()
	if config.SamplesPerPixel <= 0 {
		config.SamplesPerPixel = defaults.SamplesPerPixel
	}
	if config.TMin <= 0 {
		config.TMin = defaults.TMin
	}
	if config.TMax <= config.TMin {
		config.TMax = defaults.TMax
	}
	return config
}

// Scene interface to avoid circular imports
type Scene interface {
	core.Shape
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
}

// Raytracer renders a scene by shading the first hit of each primary ray
type Raytracer struct {
	scene  Scene
	camera *Camera
	config SamplingConfig
	logger core.Logger
}

// NewRaytracer creates a new raytracer
func NewRaytracer(scene Scene, config SamplingConfig, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		scene:  scene,
		camera: scene.GetCamera(),
		config: MergeSamplingConfig(config),
		logger: logger,
	}
}

// Width returns the output image width
func (rt *Raytracer) Width() int {
	return rt.camera.Width()
}

// Height returns the output image height
func (rt *Raytracer) Height() int {
	return rt.camera.Height()
}

// RayColor returns the color seen along r and whether it hit a shape
func (rt *Raytracer) RayColor(r core.Ray) (core.Vec3, bool) {
	hit, isHit := rt.scene.Hit(r, rt.config.TMin, rt.config.TMax)
	if !isHit {
		return rt.backgroundGradient(r), false
	}
	if hit.Material == nil {
		return hit.Normal.Add(core.NewVec3(1, 1, 1)).Multiply(0.5), true
	}
	return hit.Material.Shade(r, hit), true
}

// backgroundGradient returns a gradient color based on ray direction
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	// Normalize the ray direction to get consistent results
	unitDirection := r.Direction.Normalize()

	// Use the y-component to create a gradient (map from -1,1 to 0,1)
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// rowSampler returns the sampler for row j; its sequence does not depend on which worker renders it
func (rt *Raytracer) rowSampler(j int) core.Sampler {
	if rt.config.SamplesPerPixel == 1 {
		return core.CenterSampler{}
	}
	return core.NewRandomSampler(rand.New(rand.NewSource(rt.config.Seed + int64(j))))
}

// RenderRow renders row j into img and returns its statistics
func (rt *Raytracer) RenderRow(j int, img *image.RGBA) RenderStats {
	sampler := rt.rowSampler(j)
	stats := RenderStats{Rows: 1}

	for i := 0; i < rt.Width(); i++ {
		var ps PixelStats
		for s := 0; s < rt.config.SamplesPerPixel; s++ {
			ray := rt.camera.GetRay(i, j, sampler.Get2D())
			sampleColor, isHit := rt.RayColor(ray)
			if isHit {
				stats.Hits++
			}
			ps.AddSample(sampleColor)
		}
		img.SetRGBA(i, j, vec3ToColor(ps.GetColor()))
		stats.TotalPixels++
		stats.TotalSamples += ps.SampleCount
	}

	return stats
}

// Render renders the full image on a worker pool.
// If ctx is cancelled before every row finishes, it returns the wrapped
// ctx.Err() with the stats of rows finished so far.
func (rt *Raytracer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	startTime := time.Now()
	width, height := rt.Width(), rt.Height()
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	pool := NewWorkerPool(ctx, rt, img, rt.config.NumWorkers)
	rt.logger.Printf("Rendering %dx%d at %d samples per pixel (using %d workers)...\n",
		width, height, rt.config.SamplesPerPixel, pool.GetNumWorkers())

	pool.Start()
	for j := 0; j < height; j++ {
		pool.SubmitTask(RowTask{Row: j})
	}
	pool.Stop()

	var stats RenderStats
	for {
		result, ok := pool.GetResult()
		if !ok {
			break
		}
		stats.Merge(result.Stats)
	}
	stats.Duration = time.Since(startTime)

	if err := ctx.Err(); err != nil && stats.Rows < height {
		rt.logger.Printf("Rendering cancelled after %d of %d rows\n", stats.Rows, height)
		return nil, stats, fmt.Errorf("render cancelled: %w", err)
	}

	rt.logger.Printf("Render completed in %v (%d rays, %.1f%% hit)\n",
		stats.Duration, stats.TotalSamples, 100*stats.HitRatio())
	return img, stats, nil
}

// vec3ToColor converts a Vec3 color to RGBA with proper clamping and gamma correction
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Clamp first so gamma never sees negative values
	colorVec = colorVec.Clamp(0.0, 1.0)

	// Apply gamma correction (gamma = 2.0)
	colorVec = colorVec.GammaCorrect(2.0)

	return color.RGBA{
		R: uint8(255 * colorVec.X),
		G: uint8(255 * colorVec.Y),
		B: uint8(255 * colorVec.Z),
		A: 255,
	}
}

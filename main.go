package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/preview"
	"github.com/df07/go-sphere-tracer/pkg/renderer"
	"github.com/df07/go-sphere-tracer/pkg/scene"
)

// Config holds the command line options
type Config struct {
	SceneType   string
	Width       int
	Samples     int
	Workers     int
	OutputDir   string
	ThumbSize   uint
	Preview     bool
	ShowHelp    bool
	RenderStart time.Time
}

func parseFlags(args []string) (Config, error) {
	var config Config
	fs := flag.NewFlagSet("sphere-tracer", flag.ContinueOnError)
	fs.StringVar(&config.SceneType, "scene", "default", "Scene type: one of the built-in scene names")
	fs.IntVar(&config.Width, "width", 0, "Image width in pixels (0 uses the scene default)")
	fs.IntVar(&config.Samples, "samples", 0, "Samples per pixel (0 uses the scene default)")
	fs.IntVar(&config.Workers, "workers", 0, "Number of render workers (0 = number of CPUs)")
	fs.StringVar(&config.OutputDir, "output", "output", "Directory for rendered images")
	fs.UintVar(&config.ThumbSize, "thumb", 0, "Also write a thumbnail no larger than NxN pixels")
	fs.BoolVar(&config.Preview, "preview", false, "Show the render in the terminal when done")
	fs.BoolVar(&config.ShowHelp, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if config.Width < 0 || config.Samples < 0 || config.Workers < 0 {
		return Config{}, fmt.Errorf("width, samples and workers must not be negative")
	}
	return config, nil
}

func showHelp() {
	fmt.Println("Sphere Tracer")
	fmt.Println("Usage: sphere-tracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -scene NAME     scene to render (default \"default\")")
	fmt.Println("  -width N        image width in pixels")
	fmt.Println("  -samples N      samples per pixel")
	fmt.Println("  -workers N      number of render workers")
	fmt.Println("  -output DIR     output directory (default \"output\")")
	fmt.Println("  -thumb N        also write an NxN-bounded thumbnail")
	fmt.Println("  -preview        show the result in the terminal (q or Esc to quit)")
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-12s %s\n", info.Name, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to <output>/<scene>/render_<timestamp>.png")
}

// createScene builds the named scene and applies command line overrides
func createScene(config Config, logger core.Logger) (*scene.Scene, error) {
	s, err := scene.Create(config.SceneType, logger)
	if err != nil {
		return nil, err
	}

	if config.Width > 0 {
		s.CameraConfig = renderer.MergeCameraConfig(s.CameraConfig, renderer.CameraConfig{Width: config.Width})
		s.Camera = renderer.NewCamera(s.CameraConfig)
	}
	if config.Samples > 0 {
		s.SamplingConfig.SamplesPerPixel = config.Samples
	}
	if config.Workers > 0 {
		s.SamplingConfig.NumWorkers = config.Workers
	}
	return s, nil
}

// savePNG writes img to filename, creating parent directories
func savePNG(filename string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}
	return nil
}

func run(ctx context.Context, config Config, logger core.Logger) error {
	selectedScene, err := createScene(config, logger)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, selectedScene.SamplingConfig, logger)
	img, _, err := raytracer.Render(ctx)
	if err != nil {
		return err
	}

	timestamp := config.RenderStart.Format("20060102_150405")
	outputDir := filepath.Join(config.OutputDir, selectedScene.Name)
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	if err := savePNG(filename, img); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", filename)

	if config.ThumbSize > 0 {
		thumbName := filepath.Join(outputDir, fmt.Sprintf("thumb_%s.png", timestamp))
		if err := savePNG(thumbName, preview.Thumbnail(img, config.ThumbSize)); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbName)
	}

	if config.Preview {
		if err := preview.Show(ctx, img); err != nil {
			return fmt.Errorf("preview failed: %w", err)
		}
	}
	return nil
}

func main() {
	config, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(2)
	}

	if config.ShowHelp {
		showHelp()
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Println("Starting Sphere Tracer...")
	config.RenderStart = time.Now()

	if err := run(ctx, config, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

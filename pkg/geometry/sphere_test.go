package geometry

import (
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/df07/go-sphere-tracer/pkg/core"
)

var _ core.Shape = (*Sphere)(nil)

// tagMaterial is a comparable material used to check the reference carried by hits
type tagMaterial struct {
	name string
}

func (m *tagMaterial) Shade(rayIn core.Ray, hit core.HitRecord) core.Vec3 {
	return core.Vec3{}
}

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return math.Abs(a.X-b.X) <= tolerance &&
		math.Abs(a.Y-b.Y) <= tolerance &&
		math.Abs(a.Z-b.Z) <= tolerance
}

func TestSphere_Hit_Scenarios(t *testing.T) {
	mat := &tagMaterial{name: "scenario"}
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, mat)

	tests := []struct {
		name           string
		ray            core.Ray
		expectHit      bool
		expectedT      float64
		expectedPoint  core.Vec3
		expectedNormal core.Vec3
		expectedFront  bool
	}{
		{
			name:           "ray toward sphere hits near side",
			ray:            core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      0.5,
			expectedPoint:  core.NewVec3(0, 0, -0.5),
			expectedNormal: core.NewVec3(0, 0, 1),
			expectedFront:  true,
		},
		{
			name:      "parallel offset ray misses",
			ray:       core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
		{
			name:           "origin inside sphere returns far root",
			ray:            core.NewRay(core.NewVec3(0, 0, -1), core.NewVec3(0, 0, -1)),
			expectHit:      true,
			expectedT:      0.5,
			expectedPoint:  core.NewVec3(0, 0, -1.5),
			expectedNormal: core.NewVec3(0, 0, -1),
			expectedFront:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(tt.ray, 0.0, math.Inf(1))

			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.expectHit, isHit, hit.T)
			}
			if !tt.expectHit {
				return
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if !vecNear(hit.Point, tt.expectedPoint, 1e-9) {
				t.Errorf("Expected point %v, got %v", tt.expectedPoint, hit.Point)
			}
			if !vecNear(hit.Normal, tt.expectedNormal, 1e-9) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected front face %t, got %t", tt.expectedFront, hit.FrontFace)
			}
			if hit.Material != mat {
				t.Error("Expected hit to reference the sphere's material")
			}
		})
	}
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	rays := []core.Ray{
		core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0)),
		core.NewRay(core.NewVec3(0, 3, 5), core.NewVec3(0, 0, -1)),
		core.NewRay(core.NewVec3(-4, 1.5, 0), core.NewVec3(1, 0, 0)),
	}
	intervals := []core.Interval{
		core.NewInterval(0.001, 1000.0),
		core.NewInterval(math.Inf(-1), math.Inf(1)),
		core.NewInterval(-10, 0),
	}

	for _, ray := range rays {
		for _, interval := range intervals {
			if hit, isHit := sphere.Hit(ray, interval.Min, interval.Max); isHit {
				t.Errorf("Expected miss for ray %v in %v, got hit at t=%f", ray, interval, hit.T)
			}
		}
	}
}

func TestSphere_Hit_TangentIsMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Grazes the sphere at (1, 0, 0), discriminant is exactly zero
	ray := core.NewRay(core.NewVec3(1, 0, 2), core.NewVec3(0, 0, -1))

	if hit, isHit := sphere.Hit(ray, 0.001, 1000.0); isHit {
		t.Errorf("Expected tangent ray to miss, got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	// Roots at t=1 and t=3
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"both roots beyond tMax", 0.001, 0.5, false, 0},
		{"both roots before tMin", 3.5, 1000.0, false, 0},
		{"near root equal to tMax is rejected", 0.001, 1.0, false, 0},
		{"near root equal to tMin falls through to far root", 1.0, 1000.0, true, 3.0},
		{"far root equal to tMax is rejected", 1.0, 3.0, false, 0},
		{"far root just inside tMax", 1.0, 3.0000001, true, 3.0},
		{"both roots inside returns nearer", 0.001, 1000.0, true, 1.0},
		{"interval between roots keeps far root", 2.0, 4.0, true, 3.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t (t=%f)", tt.expectHit, isHit, hit.T)
			}
			if isHit && math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
		})
	}
}

func TestSphere_Hit_NonUnitDirection(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -2))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.5) > 1e-9 {
		t.Errorf("Expected t=0.5 for doubled direction, got t=%f", hit.T)
	}
	if !vecNear(hit.Point, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected point (0,0,1), got %v", hit.Point)
	}
}

func TestSphere_Hit_SurfacePointAndNormal(t *testing.T) {
	tests := []struct {
		name   string
		center core.Vec3
		radius float64
		dir    core.Vec3 // direction from center to ray origin
	}{
		{"unit sphere along x", core.NewVec3(0, 0, 0), 1.0, core.NewVec3(1, 0, 0)},
		{"offset sphere diagonal", core.NewVec3(3, -2, 5), 2.5, core.NewVec3(1, 1, 1)},
		{"small sphere", core.NewVec3(-0.1, 0.2, -7), 0.01, core.NewVec3(0, -1, 2)},
		{"large sphere", core.NewVec3(0, -100.5, -1), 100, core.NewVec3(0.3, 1, -0.2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sphere := NewSphere(tt.center, tt.radius, nil)
			u := tt.dir.Normalize()
			// Origin on the surface, aimed through the center
			ray := core.NewRay(tt.center.Add(u.Multiply(tt.radius)), u.Negate())

			hit, isHit := sphere.Hit(ray, 0.0, math.Inf(1))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			tolerance := 1e-9 * math.Max(1, tt.radius)
			distance := hit.Point.Subtract(tt.center).Length()
			if math.Abs(distance-tt.radius) > tolerance {
				t.Errorf("Expected |point-center|=%f, got %f", tt.radius, distance)
			}
			if !vecNear(hit.Point, ray.At(hit.T), 1e-12) {
				t.Errorf("Expected point to equal ray.At(t): %v vs %v", hit.Point, ray.At(hit.T))
			}
			if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
				t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
			}
			radial := hit.Point.Subtract(tt.center)
			if radial.Cross(hit.Normal).Length() > tolerance || radial.Dot(hit.Normal) <= 0 {
				t.Errorf("Expected outward normal parallel to %v, got %v", radial, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_Concurrent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -1), 0.5, &tagMaterial{name: "shared"})
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	var wg sync.WaitGroup
	errs := make(chan float64, 64)
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				hit, isHit := sphere.Hit(ray, 0.0, math.Inf(1))
				if !isHit || hit.T != 0.5 {
					errs <- hit.T
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for got := range errs {
		t.Errorf("Expected t=0.5 from every goroutine, got %f", got)
	}
}

func TestSphere_Validate(t *testing.T) {
	tests := []struct {
		name      string
		center    core.Vec3
		radius    float64
		expectErr bool
	}{
		{"valid", core.NewVec3(0, 0, 0), 1.0, false},
		{"zero radius", core.NewVec3(0, 0, 0), 0, true},
		{"negative radius", core.NewVec3(0, 0, 0), -1, true},
		{"NaN radius", core.NewVec3(0, 0, 0), math.NaN(), true},
		{"infinite radius", core.NewVec3(0, 0, 0), math.Inf(1), true},
		{"infinite center", core.NewVec3(math.Inf(1), 0, 0), 1.0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewSphere(tt.center, tt.radius, nil).Validate()
			if tt.expectErr {
				if !errors.Is(err, ErrDegenerateSphere) {
					t.Errorf("Expected ErrDegenerateSphere, got %v", err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

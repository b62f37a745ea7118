package core

import (
	"math/rand"
	"testing"
)

func TestRandomSampler_Range(t *testing.T) {
	sampler := NewRandomSampler(rand.New(rand.NewSource(42)))

	for i := 0; i < 1000; i++ {
		v := sampler.Get1D()
		if v < 0 || v >= 1 {
			t.Fatalf("Get1D out of range: %f", v)
		}
		s := sampler.Get2D()
		if s.X < 0 || s.X >= 1 || s.Y < 0 || s.Y >= 1 {
			t.Fatalf("Get2D out of range: %v", s)
		}
	}
}

func TestRandomSampler_Deterministic(t *testing.T) {
	a := NewRandomSampler(rand.New(rand.NewSource(7)))
	b := NewRandomSampler(rand.New(rand.NewSource(7)))

	for i := 0; i < 10; i++ {
		if a.Get2D() != b.Get2D() {
			t.Fatal("Expected samplers with the same seed to match")
		}
	}
}

func TestCenterSampler(t *testing.T) {
	var sampler Sampler = CenterSampler{}
	if sampler.Get1D() != 0.5 {
		t.Errorf("Expected 0.5, got %f", sampler.Get1D())
	}
	if sampler.Get2D() != NewVec2(0.5, 0.5) {
		t.Errorf("Expected (0.5, 0.5), got %v", sampler.Get2D())
	}
}

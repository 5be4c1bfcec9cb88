package integrator

import (
	"errors"
	"testing"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/geometry"
	"github.com/ChefYeum/go-raytracer/pkg/scene"
)

func testCamera() scene.Camera {
	return scene.Camera{
		Origin:      core.NewVec3(0, 0, 0),
		FieldOfView: 45,
		LookAt:      core.NewVec3(0, 0, -1),
	}
}

func mustScene(t *testing.T, lights []scene.Light, objects []geometry.Sphere) *scene.Scene {
	t.Helper()
	s, err := scene.NewScene(testCamera(), lights, objects, 320, 240)
	if err != nil {
		t.Fatalf("NewScene: %v", err)
	}
	return s
}

func TestWhitted_Trace_DepthCutoff(t *testing.T) {
	// Past the bounce limit the result is black no matter what the ray
	// would otherwise hit.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.NewColor(155, 200, 155), 0.2, 0.7, 0.1)
	s := mustScene(t, []scene.Light{{Point: core.NewVec3(0, 10, 10)}}, []geometry.Sphere{sphere})
	w := NewWhitted()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, depth := range []int{4, 5, 100} {
		color, err := w.Trace(ray, s, depth)
		if err != nil {
			t.Fatalf("Trace at depth %d: %v", depth, err)
		}
		if color != core.Black {
			t.Errorf("Expected black at depth %d, got %v", depth, color)
		}
	}
}

func TestWhitted_Trace_MissIsWhite(t *testing.T) {
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.NewColor(155, 200, 155), 0.2, 0.7, 0.1)
	s := mustScene(t, []scene.Light{{Point: core.NewVec3(0, 10, 10)}}, []geometry.Sphere{sphere})
	w := NewWhitted()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	color, err := w.Trace(ray, s, 0)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	if color != core.White {
		t.Errorf("Expected background white, got %v", color)
	}
}

func TestWhitted_Trace_AmbientOnly(t *testing.T) {
	// With no lights and no specular, a hit resolves to the ambient term.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.NewColor(155, 200, 155), 0, 0.7, 0.5)
	s := mustScene(t, nil, []geometry.Sphere{sphere})
	w := NewWhitted()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	color, err := w.Trace(ray, s, 0)
	if err != nil {
		t.Fatalf("Trace: %v", err)
	}
	expected := sphere.Color.Scale(0.5)
	if color != expected {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestWhitted_Trace_FullySpecularTerminates(t *testing.T) {
	// A mirror sphere with nothing to reflect bottoms out at the depth
	// cutoff instead of recursing forever.
	sphere := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.NewColor(155, 200, 155), 1, 0, 0)
	s := mustScene(t, nil, []geometry.Sphere{sphere})
	w := NewWhitted()

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, err := w.Trace(ray, s, 0); err != nil {
		t.Fatalf("Trace: %v", err)
	}
}

func TestWhitted_LightVisible_NoOccluder(t *testing.T) {
	// A probe that hits nothing leaves the light dark. This polarity is
	// load-bearing for rendered output; do not flip it.
	s := mustScene(t, []scene.Light{{Point: core.NewVec3(0, 10, 0)}}, nil)
	w := NewWhitted()

	visible, err := w.lightVisible(core.NewVec3(0, 0, 0), s, s.Lights[0])
	if err != nil {
		t.Fatalf("lightVisible: %v", err)
	}
	if visible {
		t.Error("Expected light not visible when the probe hits nothing")
	}
}

func TestWhitted_LightVisible_HitBeyondBias(t *testing.T) {
	// A probe whose nearest hit lies at a positive distance counts as lit.
	occluder := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, core.White, 0.2, 0.7, 0.1)
	s := mustScene(t, []scene.Light{{Point: core.NewVec3(0, 10, 0)}}, []geometry.Sphere{occluder})
	w := NewWhitted()

	visible, err := w.lightVisible(core.NewVec3(0, 0, 0), s, s.Lights[0])
	if err != nil {
		t.Fatalf("lightVisible: %v", err)
	}
	if !visible {
		t.Error("Expected light visible when the probe hits beyond the bias")
	}
}

func TestWhitted_LightVisible_CoincidentLight(t *testing.T) {
	s := mustScene(t, []scene.Light{{Point: core.NewVec3(1, 2, 3)}}, nil)
	w := NewWhitted()

	_, err := w.lightVisible(core.NewVec3(1, 2, 3), s, s.Lights[0])
	if !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

func TestWhitted_Shade_LambertClamped(t *testing.T) {
	// Three nearly coincident lights would sum to ~3; the lambert total is
	// clamped to 1 before scaling the diffuse term.
	occluder := geometry.NewSphere(core.NewVec3(0, 5, 0), 1, core.White, 0, 0, 0)
	lights := []scene.Light{
		{Point: core.NewVec3(0, 10, 0)},
		{Point: core.NewVec3(0.1, 10, 0)},
		{Point: core.NewVec3(-0.1, 10, 0)},
	}
	s := mustScene(t, lights, []geometry.Sphere{occluder})
	w := NewWhitted()

	obj := geometry.NewSphere(core.NewVec3(0, -2, 0), 2, core.NewColor(155, 200, 155), 0, 1, 0)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	color, err := w.shade(ray, s, &obj, core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 1)
	if err != nil {
		t.Fatalf("shade: %v", err)
	}
	if color != obj.Color {
		t.Errorf("Expected clamped lambert to yield %v, got %v", obj.Color, color)
	}
}

func TestWhitted_Shade_DegenerateReflection(t *testing.T) {
	obj := geometry.NewSphere(core.NewVec3(0, 0, -5), 1, core.White, 0.2, 0.7, 0.1)
	s := mustScene(t, nil, []geometry.Sphere{obj})
	w := NewWhitted()

	// A zero-direction ray reflects to the zero vector.
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 0))
	_, err := w.shade(ray, s, &obj, core.NewVec3(0, 0, -4), core.NewVec3(0, 0, 1), 1)
	if !errors.Is(err, core.ErrDegenerateVector) {
		t.Errorf("Expected ErrDegenerateVector, got %v", err)
	}
}

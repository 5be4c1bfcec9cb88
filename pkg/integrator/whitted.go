// Package integrator implements the recursive trace/shade engine: each ray
// is resolved into a color by intersecting the scene and blending a mirror
// reflection, Lambertian diffuse with shadow probes, and an ambient base.
package integrator

import (
	"fmt"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/geometry"
	"github.com/ChefYeum/go-raytracer/pkg/scene"
)

const (
	// maxDepth bounds the reflection recursion; rays past it resolve to
	// black. This is the sole termination guard.
	maxDepth = 3

	// shadowBias is the tolerance on shadow-probe hit distances that keeps
	// a surface from occluding itself.
	shadowBias = -0.005
)

// Whitted is a deterministic recursive ray integrator
type Whitted struct{}

// NewWhitted creates a new integrator
func NewWhitted() *Whitted {
	return &Whitted{}
}

// Trace resolves the color seen along a ray. Rays deeper than the bounce
// limit are black; rays that escape the scene are white (the sky), and hits
// are delegated to shade at the next depth.
func (w *Whitted) Trace(ray core.Ray, s *scene.Scene, depth int) (core.Color, error) {
	if depth > maxDepth {
		return core.Black, nil
	}

	dist, obj, hit := s.Intersect(ray)
	if !hit {
		return core.White, nil
	}

	point := ray.At(dist)
	normal := obj.NormalAt(point)
	return w.shade(ray, s, obj, point, normal, depth+1)
}

// shade sums the three contributions at a hit point: the recursively traced
// mirror reflection scaled by the specular coefficient, the shadow-tested
// Lambertian term, and the unconditional ambient term. The sum is never
// renormalized; saturation is handled at the output boundary.
func (w *Whitted) shade(ray core.Ray, s *scene.Scene, obj *geometry.Sphere, point, normal core.Vec3, depth int) (core.Color, error) {
	reflected := ray.Direction.Reflect(normal)
	if reflected.LengthSquared() == 0 {
		return core.Black, fmt.Errorf("%w: reflection at %v", core.ErrDegenerateVector, point)
	}
	reflectedColor, err := w.Trace(core.NewRay(point, reflected.Normalize()), s, depth)
	if err != nil {
		return core.Black, err
	}
	specular := reflectedColor.Scale(obj.Specular)

	lambertAmount := 0.0
	for _, light := range s.Lights {
		visible, err := w.lightVisible(point, s, light)
		if err != nil {
			return core.Black, err
		}
		if !visible {
			continue
		}
		contribution := light.Point.Subtract(point).Normalize().Dot(normal)
		if contribution > 0 {
			lambertAmount += contribution
		}
	}
	if lambertAmount > 1 {
		lambertAmount = 1
	}
	lambert := obj.Color.Scale(obj.Diffuse * lambertAmount)

	ambient := obj.Color.Scale(obj.Ambient)

	return specular.Add3(lambert, ambient), nil
}

// lightVisible probes from a surface point toward a light and reports the
// visibility the renderer has always used: a probe that hits nothing leaves
// the light dark, and a probe whose nearest hit lies beyond the self-shadow
// bias counts as lit. Callers depend on this exact polarity.
func (w *Whitted) lightVisible(point core.Vec3, s *scene.Scene, light scene.Light) (bool, error) {
	toLight := light.Point.Subtract(point)
	if toLight.LengthSquared() == 0 {
		return false, fmt.Errorf("%w: shadow probe at %v", core.ErrDegenerateVector, point)
	}

	dist, _, hit := s.Intersect(core.NewRay(point, toLight.Normalize()))
	if !hit {
		return false, nil
	}
	return dist > shadowBias, nil
}

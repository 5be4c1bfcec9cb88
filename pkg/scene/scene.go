package scene

import (
	"errors"
	"fmt"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/geometry"
)

// ErrInvalidSceneParameter reports a scene that fails eager validation:
// non-positive dimensions, non-positive sphere radius, or a field of view
// outside (0, 180) degrees.
var ErrInvalidSceneParameter = errors.New("invalid scene parameter")

// Camera holds the eye position, the point it looks at, and the horizontal
// field of view in degrees.
type Camera struct {
	Origin      core.Vec3
	FieldOfView float64
	LookAt      core.Vec3
}

// Light is a point light source
type Light struct {
	Point core.Vec3
}

// Scene contains all the elements needed for rendering. A Scene value is
// immutable once built; animation constructs a new Scene per frame rather
// than mutating objects in place.
type Scene struct {
	Camera  Camera
	Lights  []Light
	Objects []geometry.Sphere
	Width   float64
	Height  float64
}

// NewScene builds a scene, validating parameters eagerly so malformed input
// is rejected here rather than failing deep inside the recursion.
func NewScene(camera Camera, lights []Light, objects []geometry.Sphere, width, height float64) (*Scene, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: dimensions %gx%g must be positive", ErrInvalidSceneParameter, width, height)
	}
	if camera.FieldOfView <= 0 || camera.FieldOfView >= 180 {
		return nil, fmt.Errorf("%w: field of view %g must be in (0, 180)", ErrInvalidSceneParameter, camera.FieldOfView)
	}
	for i, obj := range objects {
		if obj.Radius <= 0 {
			return nil, fmt.Errorf("%w: object %d has radius %g, must be positive", ErrInvalidSceneParameter, i, obj.Radius)
		}
	}
	return &Scene{
		Camera:  camera,
		Lights:  lights,
		Objects: objects,
		Width:   width,
		Height:  height,
	}, nil
}

// Intersect finds the nearest hit of the ray against all objects: a linear
// scan keeping the strict minimum distance, so the first object in scene
// order wins ties. Distances are reported as the primitives produce them,
// including hits behind the ray origin.
func (s *Scene) Intersect(ray core.Ray) (float64, *geometry.Sphere, bool) {
	var closest *geometry.Sphere
	closestDist := 0.0
	for i := range s.Objects {
		if dist, hit := s.Objects[i].Intersect(ray); hit {
			if closest == nil || dist < closestDist {
				closest = &s.Objects[i]
				closestDist = dist
			}
		}
	}
	return closestDist, closest, closest != nil
}

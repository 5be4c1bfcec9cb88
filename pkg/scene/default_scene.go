package scene

import (
	"math"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/geometry"
)

// NewDefaultScene creates the reference scene: one large matte sphere and
// two small shiny ones, lit by a single point light off to the lower left.
func NewDefaultScene(width, height float64) (*Scene, error) {
	return NewOrbitScene(width, height, 0)
}

// NewOrbitScene creates the reference scene with the two small spheres
// advanced to orbital phase t (radians) around the large sphere. Animation
// is expressed by rebuilding the scene for each frame, never by mutating
// a previous one.
func NewOrbitScene(width, height, t float64) (*Scene, error) {
	camera := Camera{
		Origin:      core.NewVec3(0, 1.8, 10),
		FieldOfView: 45,
		LookAt:      core.NewVec3(0, 3, 0),
	}
	lights := []Light{
		{Point: core.NewVec3(-30, -10, 20)},
	}

	center := core.NewVec3(0, 3.5, -3)
	objects := []geometry.Sphere{
		geometry.NewSphere(center, 3, core.NewColor(155, 200, 155), 0.2, 0.7, 0.1),
		geometry.NewSphere(orbitPoint(center, 3.5, t), 0.2, core.NewColor(155, 155, 155), 0.1, 0.9, 0.0),
		geometry.NewSphere(orbitPoint(center, 4, -t/2), 0.1, core.NewColor(255, 255, 255), 0.2, 0.7, 0.1),
	}

	return NewScene(camera, lights, objects, width, height)
}

// orbitPoint places a body on a horizontal circular orbit around center
func orbitPoint(center core.Vec3, radius, t float64) core.Vec3 {
	return core.NewVec3(
		center.X+radius*math.Sin(t),
		center.Y,
		center.Z+radius*math.Cos(t),
	)
}

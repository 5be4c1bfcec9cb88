package geometry

import (
	"math"

	"github.com/ChefYeum/go-raytracer/pkg/core"
)

// Sphere represents a sphere with its shading coefficients. Specular scales
// the mirror bounce, Diffuse the Lambertian term, Ambient the unconditional
// base term; each is conceptually in [0,1] but they need not sum to 1.
type Sphere struct {
	Center   core.Vec3
	Color    core.Color
	Specular float64
	Diffuse  float64
	Ambient  float64
	Radius   float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, color core.Color, specular, diffuse, ambient float64) Sphere {
	return Sphere{
		Center:   center,
		Color:    color,
		Specular: specular,
		Diffuse:  diffuse,
		Ambient:  ambient,
		Radius:   radius,
	}
}

// Intersect solves the ray-sphere quadratic via the eye-to-center projection
// and returns the nearer root v - sqrt(discriminant). The distance is not
// filtered for positivity: hits behind the ray origin are reported with a
// negative t, and callers rely on that.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	eyeToCenter := s.Center.Subtract(ray.Origin)
	v := eyeToCenter.Dot(ray.Direction)
	discriminant := s.Radius*s.Radius - eyeToCenter.Dot(eyeToCenter) + v*v
	if discriminant < 0 {
		return 0, false
	}
	return v - math.Sqrt(discriminant), true
}

// NormalAt returns the outward unit normal at a point on the sphere surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

package renderer

import (
	"fmt"
	"math"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/scene"
)

var worldUp = core.NewVec3(0, 1, 0)

// viewport holds the precomputed orthonormal camera basis and view-plane
// scaling for a scene, so per-pixel ray generation is pure arithmetic.
type viewport struct {
	eye         core.Vec3
	right       core.Vec3
	up          core.Vec3
	forward     core.Vec3
	halfWidth   float64
	halfHeight  float64
	pixelWidth  float64
	pixelHeight float64
}

// newViewport derives the camera basis: forward toward the look-at point,
// right perpendicular to forward and world-up, up completing the frame.
// The field of view sets the view-plane half extents via tan(fov/2).
func newViewport(cam scene.Camera, width, height float64) (viewport, error) {
	forward := cam.LookAt.Subtract(cam.Origin)
	if forward.LengthSquared() == 0 {
		return viewport{}, fmt.Errorf("%w: camera looks at its own origin", core.ErrDegenerateVector)
	}
	forward = forward.Normalize()

	right := forward.Cross(worldUp)
	if right.LengthSquared() == 0 {
		return viewport{}, fmt.Errorf("%w: camera looks straight along world up", core.ErrDegenerateVector)
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()

	halfWidth := math.Tan((cam.FieldOfView * math.Pi / 180) / 2)
	halfHeight := (height / width) * halfWidth

	return viewport{
		eye:         cam.Origin,
		right:       right,
		up:          up,
		forward:     forward,
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
		pixelWidth:  (halfWidth * 2) / (width - 1),
		pixelHeight: (halfHeight * 2) / (height - 1),
	}, nil
}

// primaryRay returns the normalized ray from the eye through the view-plane
// position of pixel (x, y)
func (vp viewport) primaryRay(x, y int) core.Ray {
	xComp := vp.right.Multiply(float64(x)*vp.pixelWidth - vp.halfWidth)
	yComp := vp.up.Multiply(float64(y)*vp.pixelHeight - vp.halfHeight)
	direction := vp.forward.Add3(xComp, yComp).Normalize()
	return core.NewRay(vp.eye, direction)
}

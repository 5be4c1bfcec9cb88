// Package renderer drives the shading engine over every pixel of a scene,
// producing a row-major grid of colors ready for display conversion.
package renderer

import (
	"context"
	"image"
	"runtime"
	"sync"
	"time"

	"github.com/ChefYeum/go-raytracer/pkg/core"
	"github.com/ChefYeum/go-raytracer/pkg/integrator"
	"github.com/ChefYeum/go-raytracer/pkg/scene"
)

// OverscanRows is the fixed count of extra rows rendered past the scene
// height. Frames are always (height + OverscanRows) rows by width columns.
const OverscanRows = 20

// Frame is a row-major grid of colors: row 0 is the top of the image, and
// consumers index it as frame[row][column].
type Frame [][]core.Color

// Width returns the number of columns in the frame
func (f Frame) Width() int {
	if len(f) == 0 {
		return 0
	}
	return len(f[0])
}

// Height returns the number of rows in the frame
func (f Frame) Height() int {
	return len(f)
}

// ToImage converts the frame for display. Each color is floored and clamped
// to [0,255] here and nowhere else.
func (f Frame) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.Width(), f.Height()))
	for y, row := range f {
		for x, c := range row {
			img.SetRGBA(x, y, c.RGBA8())
		}
	}
	return img
}

// Renderer renders scenes into frames
type Renderer struct {
	scene      *scene.Scene
	integrator *integrator.Whitted
	numWorkers int
	logger     core.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithWorkers sets the number of parallel row workers. Values below 1 fall
// back to the CPU count.
func WithWorkers(n int) Option {
	return func(r *Renderer) {
		r.numWorkers = n
	}
}

// WithLogger sets a logger for render timing; a nil logger disables logging
func WithLogger(logger core.Logger) Option {
	return func(r *Renderer) {
		r.logger = logger
	}
}

// New creates a renderer for the given scene
func New(s *scene.Scene, opts ...Option) *Renderer {
	r := &Renderer{
		scene:      s,
		integrator: integrator.NewWhitted(),
		numWorkers: runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.numWorkers < 1 {
		r.numWorkers = runtime.NumCPU()
	}
	return r
}

// Render produces the frame for the renderer's scene: one primary ray per
// pixel, traced at depth 0. Rows are distributed over a worker pool; each
// worker writes only its own rows, so the output is identical for any worker
// count. Cancellation is checked at row granularity, and the first error
// aborts the frame.
func (r *Renderer) Render(ctx context.Context) (Frame, error) {
	startTime := time.Now()
	width := int(r.scene.Width)
	rows := int(r.scene.Height) + OverscanRows

	vp, err := newViewport(r.scene.Camera, r.scene.Width, r.scene.Height)
	if err != nil {
		return nil, err
	}

	frame := make(Frame, rows)
	for y := range frame {
		frame[y] = make([]core.Color, width)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	rowCh := make(chan int)
	errCh := make(chan error, r.numWorkers)
	var wg sync.WaitGroup

	for i := 0; i < r.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rowCh {
				if err := ctx.Err(); err != nil {
					errCh <- err
					cancel()
					return
				}
				if err := r.renderRow(frame[y], vp, y); err != nil {
					errCh <- err
					cancel()
					return
				}
			}
		}()
	}

dispatch:
	for y := 0; y < rows; y++ {
		select {
		case rowCh <- y:
		case <-ctx.Done():
			break dispatch
		}
	}
	close(rowCh)
	wg.Wait()

	select {
	case err := <-errCh:
		return nil, err
	default:
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.logger != nil {
		r.logger.Printf("rendered %dx%d frame in %v with %d workers", width, rows, time.Since(startTime), r.numWorkers)
	}
	return frame, nil
}

// renderRow traces every pixel of row y into dst
func (r *Renderer) renderRow(dst []core.Color, vp viewport, y int) error {
	for x := range dst {
		color, err := r.integrator.Trace(vp.primaryRay(x, y), r.scene, 0)
		if err != nil {
			return err
		}
		dst[x] = color
	}
	return nil
}

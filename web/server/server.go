// Package server exposes the renderer over HTTP: a single-shot PNG render
// endpoint and a health check.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"log"
	"net/http"
	"strconv"

	"golang.org/x/image/draw"

	"github.com/ChefYeum/go-raytracer/pkg/renderer"
	"github.com/ChefYeum/go-raytracer/pkg/scene"
)

const maxDimension = 2048

// Server handles web requests for the raytracer
type Server struct {
	port    int
	workers int
}

// NewServer creates a new web server
func NewServer(port, workers int) *Server {
	return &Server{port: port, workers: workers}
}

// Handler returns the server's routing table
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders a scene and responds with a PNG. Query parameters:
// scene (default|orbit), width, height, t (orbital phase in radians), and
// scale (integer pixel upscaling of the response image). The request
// context cancels the render when the client goes away.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	sc, scale, err := s.parseRenderRequest(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	rt := renderer.New(sc, renderer.WithWorkers(s.workers), renderer.WithLogger(log.Default()))
	frame, err := rt.Render(r.Context())
	if err != nil {
		if r.Context().Err() != nil {
			log.Printf("Render cancelled by client: %v", err)
			return
		}
		log.Printf("Render failed: %v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	img := upscale(frame.ToImage(), scale)
	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("Encoding response: %v", err)
	}
}

// parseRenderRequest builds the scene and scale factor from query parameters
func (s *Server) parseRenderRequest(r *http.Request) (*scene.Scene, int, error) {
	q := r.URL.Query()

	width := floatParam(q.Get("width"), 320)
	height := floatParam(q.Get("height"), 240)
	if width > maxDimension || height > maxDimension {
		return nil, 0, fmt.Errorf("dimensions %gx%g exceed the %d pixel limit", width, height, maxDimension)
	}

	scale := intParam(q.Get("scale"), 1)
	if scale < 1 || scale > 8 {
		return nil, 0, errors.New("scale must be between 1 and 8")
	}

	var sc *scene.Scene
	var err error
	switch name := q.Get("scene"); name {
	case "", "default":
		sc, err = scene.NewDefaultScene(width, height)
	case "orbit":
		sc, err = scene.NewOrbitScene(width, height, floatParam(q.Get("t"), 0))
	default:
		return nil, 0, fmt.Errorf("unknown scene %q", name)
	}
	if err != nil {
		return nil, 0, err
	}
	return sc, scale, nil
}

// upscale enlarges the image by an integer factor with nearest-neighbor
// sampling, keeping the blocky per-pixel look
func upscale(img *image.RGBA, scale int) *image.RGBA {
	if scale <= 1 {
		return img
	}
	bounds := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, bounds.Dx()*scale, bounds.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)
	return dst
}

func floatParam(value string, fallback float64) float64 {
	if value == "" {
		return fallback
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return fallback
}

func intParam(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return fallback
}

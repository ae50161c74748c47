package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/df07/go-weekend-raytracer/pkg/log"
	"github.com/df07/go-weekend-raytracer/pkg/output"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

var logger = log.New("server")

// Server handles web requests for the raytracer
type Server struct {
	port     int
	sceneDir string
}

// NewServer creates a new web server. JSON scenes are only served from sceneDir.
func NewServer(port int, sceneDir string) *Server {
	return &Server{port: port, sceneDir: sceneDir}
}

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene           string                `json:"scene"`           // Scene ID from /api/scenes
	Width           int                   `json:"width"`           // 0 = scene default
	Height          int                   `json:"height"`          // 0 = scene default
	SamplesPerPixel int                   `json:"samplesPerPixel"` // 0 = scene default
	MaxDepth        int                   `json:"maxDepth"`        // 0 = scene default
	Seed            int64                 `json:"seed"`            // 0 = scene default
	Camera          renderer.CameraConfig `json:"-"`               // Non-zero fields override the scene camera
	Format          output.Format         `json:"format"`          // Encoded image format
}

// Handler returns the routes served by Start
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/scenes", s.handleScenes)
	mux.HandleFunc("/api/scene-config", s.handleSceneConfig)
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/inspect", s.handleInspect)
	return mux
}

// Start starts the web server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	logger.Noticef("starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleScenes lists the built-in scenes and the JSON scenes in the scene directory
func (s *Server) handleScenes(w http.ResponseWriter, r *http.Request) {
	scenes, err := scene.List(s.sceneDir)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, scenes)
}

// handleSceneConfig returns the default configuration for a scene
func (s *Server) handleSceneConfig(w http.ResponseWriter, r *http.Request) {
	sceneObj, err := s.createScene(r.URL.Query().Get("scene"), 0, 0, 0)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	config := sceneObj.SamplingConfig
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"scene": sceneObj.Name,
		"defaults": map[string]interface{}{
			"width":           sceneObj.Width,
			"height":          sceneObj.Height,
			"samplesPerPixel": config.SamplesPerPixel,
			"maxDepth":        config.MaxDepth,
			"seed":            config.Seed,
		},
		"camera": map[string]interface{}{
			"lookFrom":      vecArray(sceneObj.CameraConfig.Center),
			"lookAt":        vecArray(sceneObj.CameraConfig.LookAt),
			"vfov":          sceneObj.CameraConfig.VFov,
			"aperture":      sceneObj.CameraConfig.Aperture,
			"focusDistance": sceneObj.CameraConfig.FocusDistance,
		},
	})
}

// handleRender renders a full frame and responds with the encoded image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene, req.Width, req.Height, req.Seed, req.Camera)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sampling := renderer.MergeSamplingConfig(sceneObj.SamplingConfig, renderer.SamplingConfig{
		SamplesPerPixel: req.SamplesPerPixel,
		MaxDepth:        req.MaxDepth,
		Seed:            req.Seed,
	})

	logger.Infof("rendering %q at %dx%d, %d spp", sceneObj.Name, sceneObj.Width, sceneObj.Height, sampling.SamplesPerPixel)

	// Use request context to stop rendering when the client disconnects
	start := time.Now()
	pr := renderer.NewParallelRenderer(sceneObj, sceneObj.Width, sceneObj.Height, sampling,
		renderer.DefaultParallelConfig(), log.NewPrintfLogger("server").WithLevel(log.Debug))
	img, stats, err := pr.Render(r.Context())
	if err != nil {
		if errors.Is(err, renderer.ErrInterrupted) {
			logger.Warningf("render of %q abandoned: %v", sceneObj.Name, err)
			return
		}
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Render error: %v", err))
		return
	}

	var buf bytes.Buffer
	if err := output.EncodeImage(&buf, req.Format, img); err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to encode image: %v", err))
		return
	}

	w.Header().Set("Content-Type", contentType(req.Format))
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("X-Render-Samples", strconv.Itoa(stats.TotalSamples))
	w.Header().Set("X-Render-Time-Ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: query.Get("scene")}

	var err error
	if req.Width, err = parseIntParam(query, "width", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.Height, err = parseIntParam(query, "height", 0, 0, 2000); err != nil {
		return nil, err
	}
	if req.SamplesPerPixel, err = parseIntParam(query, "spp", 0, 0, 10000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(query, "maxDepth", 0, 0, 1000); err != nil {
		return nil, err
	}
	seed, err := parseIntParam(query, "seed", 0, 0, 1<<31-1)
	if err != nil {
		return nil, err
	}
	req.Seed = int64(seed)
	if req.Camera, err = parseCameraParams(query); err != nil {
		return nil, err
	}

	req.Format = output.PNG
	if format := query.Get("format"); format != "" {
		if req.Format, err = output.FormatFromPath("frame." + format); err != nil {
			return nil, err
		}
	}

	// Performance warning
	if req.Width*req.Height > 800*600 && req.SamplesPerPixel > 100 {
		logger.Warning("large image with high samples may render slowly")
	}

	return req, nil
}

// parseIntParam parses an integer parameter from URL query with validation
func parseIntParam(values url.Values, key string, defaultValue, min, max int) (int, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if parsed < min || parsed > max {
			return 0, fmt.Errorf("%s must be between %d and %d, got: %d", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseFloatParam parses a float parameter from URL query with validation
func parseFloatParam(values url.Values, key string, defaultValue, min, max float64) (float64, error) {
	if value := values.Get(key); value != "" {
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %s", key, value)
		}
		if !(parsed >= min && parsed <= max) {
			return 0, fmt.Errorf("%s must be between %g and %g, got: %g", key, min, max, parsed)
		}
		return parsed, nil
	}
	return defaultValue, nil
}

// parseCameraParams reads the optional camera overrides; 0 keeps the scene's value
func parseCameraParams(values url.Values) (renderer.CameraConfig, error) {
	var config renderer.CameraConfig
	var err error
	if config.VFov, err = parseFloatParam(values, "vfov", 0, 0, 179); err != nil {
		return config, err
	}
	if config.Aperture, err = parseFloatParam(values, "aperture", 0, 0, 10); err != nil {
		return config, err
	}
	if config.FocusDistance, err = parseFloatParam(values, "focusDistance", 0, 0, 1000); err != nil {
		return config, err
	}
	return config, nil
}

// createScene builds a scene by ID. Only built-in scenes and files listed
// from the scene directory are accepted, so clients cannot load arbitrary paths.
func (s *Server) createScene(sceneID string, width, height int, seed int64, cameraOverrides ...renderer.CameraConfig) (*scene.Scene, error) {
	if sceneID == "" {
		sceneID = "default"
	}

	scenes, err := scene.List(s.sceneDir)
	if err != nil {
		return nil, err
	}
	for _, info := range scenes {
		if info.ID == sceneID {
			return scene.Create(info.ID, width, height, seed, cameraOverrides...)
		}
	}
	return nil, fmt.Errorf("%w: %q", scene.ErrUnknownScene, sceneID)
}

func contentType(format output.Format) string {
	switch format {
	case output.PPM:
		return "image/x-portable-pixmap"
	case output.BMP:
		return "image/bmp"
	case output.TIFF:
		return "image/tiff"
	default:
		return "image/png"
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("failed to write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

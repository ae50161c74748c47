package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/integrator"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/scene"
)

// InspectResponse represents the response from the inspect endpoint
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType,omitempty"`
	GeometryType string                 `json:"geometryType,omitempty"`
	Point        [3]float64             `json:"point,omitempty"`
	Normal       [3]float64             `json:"normal,omitempty"`
	Distance     float64                `json:"distance,omitempty"`
	Properties   map[string]interface{} `json:"properties,omitempty"`
}

// InspectResult describes the first object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape // nil if the hit could not be traced back to a scene shape
}

// inspectPixel casts a ray through the centre of pixel (pixelX, pixelY), with y = 0 at the top
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	s := (float64(pixelX) + 0.5) / float64(sceneObj.Width)
	t := (float64(sceneObj.Height-1-pixelY) + 0.5) / float64(sceneObj.Height)

	// Fixed seed so a lens camera always inspects along the same ray
	ray := sceneObj.Camera.GetRay(s, t, core.NewSeededSampler(0))

	hit, isHit := sceneObj.World().Hit(ray, integrator.ShadowEpsilon, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// ShapeList does not report which shape was hit
	for _, shape := range sceneObj.Shapes {
		if shapeHit, ok := shape.Hit(ray, integrator.ShadowEpsilon, math.Inf(1)); ok && shapeHit.T == hit.T {
			return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
		}
	}
	return InspectResult{Hit: true, HitRecord: hit}
}

// extractMaterialInfo extracts the material type and its parameters
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzziness"] = m.Fuzziness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts the shape type and its parameters
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		if geom.Radius < 0 {
			properties["innerWall"] = true
		}
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	width, err := parseIntParam(query, "width", 0, 0, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	height, err := parseIntParam(query, "height", 0, 0, 2000)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	camera, err := parseCameraParams(query)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pixelX, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(query.Get("scene"), width, height, 0, camera)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if pixelX < 0 || pixelX >= sceneObj.Width || pixelY < 0 || pixelY >= sceneObj.Height {
		writeError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

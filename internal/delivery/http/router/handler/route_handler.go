package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"routehub/internal/delivery/http/middleware"
	"routehub/internal/delivery/http/response"
	"routehub/internal/domain/entity"
	domainerrors "routehub/internal/domain/errors"
	"routehub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// RouteHandlerParams holds dependencies for RouteHandler, injected by Fx.
type RouteHandlerParams struct {
	fx.In

	RouteUC usecase.RouteUsecase
	Logger  *slog.Logger
}

// RouteHandler holds dependencies for route-related handlers
type RouteHandler struct {
	routeUC usecase.RouteUsecase
	logger  *slog.Logger
}

// NewRouteHandler is the constructor for RouteHandler
func NewRouteHandler(params RouteHandlerParams) *RouteHandler {
	return &RouteHandler{
		routeUC: params.RouteUC,
		logger:  params.Logger,
	}
}

// CreateRouteRequest represents the request body for creating a route
type CreateRouteRequest struct {
	Name       string            `json:"name" validate:"required,max=150"`
	DistanceKm *float64          `json:"distance_km,omitempty" validate:"omitempty,min=0"`
	EstTimeMin *int              `json:"est_time_min,omitempty" validate:"omitempty,min=0"`
	AvgRating  *float64          `json:"avg_rating,omitempty" validate:"omitempty,min=0,max=5"`
	Geometry   *geojson.Geometry `json:"geometry,omitempty"`
}

// UpdateRouteRequest represents the request body for a partial route update
type UpdateRouteRequest struct {
	Name       *string           `json:"name,omitempty" validate:"omitempty,max=150"`
	DistanceKm *float64          `json:"distance_km,omitempty" validate:"omitempty,min=0"`
	EstTimeMin *int              `json:"est_time_min,omitempty" validate:"omitempty,min=0"`
	AvgRating  *float64          `json:"avg_rating,omitempty" validate:"omitempty,min=0,max=5"`
	Geometry   *geojson.Geometry `json:"geometry,omitempty"`
}

// CompleteRouteRequest represents the request body for completing a route
type CompleteRouteRequest struct {
	Completed     *bool `json:"completed,omitempty"`
	ActualTimeMin *int  `json:"actual_time_min,omitempty" validate:"omitempty,min=0"`
}

// NearbyRoutesRequest represents the query parameters for proximity search
type NearbyRoutesRequest struct {
	Latitude  float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"min=-180,max=180"`
	RadiusM   float64 `query:"radius_m" validate:"required,gt=0,max=100000"`
}

// DirectionsRequest represents the query parameters for directions lookup
type DirectionsRequest struct {
	Latitude  float64 `query:"lat" validate:"min=-90,max=90"`
	Longitude float64 `query:"lng" validate:"min=-180,max=180"`
}

// RouteResponse represents a route on the API surface. Geometry is GeoJSON.
type RouteResponse struct {
	ID             string            `json:"id"`
	CreatorID      string            `json:"creator_id"`
	Name           string            `json:"name"`
	DistanceKm     *float64          `json:"distance_km,omitempty"`
	EstTimeMin     *int              `json:"est_time_min,omitempty"`
	AvgRating      float64           `json:"avg_rating"`
	CompletedCount int               `json:"completed_count"`
	Score          int               `json:"score"`
	Geometry       *geojson.Geometry `json:"geometry,omitempty"`
	Creator        *entity.Creator   `json:"creator,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateRoute handles creating a new route owned by the authenticated user
func (h *RouteHandler) CreateRoute(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	var req CreateRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	geometry, err := lineStringFromGeoJSON(req.Geometry)
	if err != nil {
		return response.BadRequest(c, "INVALID_GEOMETRY", err.Error())
	}

	input := &usecase.CreateRouteInput{
		Name:       req.Name,
		DistanceKm: req.DistanceKm,
		EstTimeMin: req.EstTimeMin,
		AvgRating:  req.AvgRating,
		Geometry:   geometry,
	}

	route, err := h.routeUC.CreateRoute(c.Request().Context(), input, userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newRouteResponse(route, nil), "Route created successfully")
}

// GetRoutes handles listing all routes, optionally enriched with creators
func (h *RouteHandler) GetRoutes(c echo.Context) error {
	enrich := false
	if raw := c.QueryParam("enrich"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "enrich must be a boolean")
		}
		enrich = parsed
	}

	routes, err := h.routeUC.GetRoutes(c.Request().Context(), enrich)
	if err != nil {
		return h.handleAppError(c, err)
	}

	payload := make([]*RouteResponse, 0, len(routes))
	for _, route := range routes {
		payload = append(payload, newRouteResponse(&route.Route, route.Creator))
	}

	return response.Success(c, http.StatusOK, payload, "Routes retrieved successfully")
}

// GetRouteByID handles retrieving a single route
func (h *RouteHandler) GetRouteByID(c echo.Context) error {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	route, err := h.routeUC.GetRouteByID(c.Request().Context(), routeID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(route, nil), "Route retrieved successfully")
}

// GetRoutesByCreator handles listing every route owned by a creator
func (h *RouteHandler) GetRoutesByCreator(c echo.Context) error {
	creatorID := c.Param("creatorId")
	if creatorID == "" {
		return response.BadRequest(c, "INVALID_ID", "Creator ID is required")
	}

	routes, err := h.routeUC.GetRoutesByCreator(c.Request().Context(), creatorID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponseSlice(routes), "Routes retrieved successfully")
}

// GetRoutesByRating handles listing routes inside a rating band
func (h *RouteHandler) GetRoutesByRating(c echo.Context) error {
	minRating, err := queryFloat(c, "min", 0)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "min must be a number")
	}

	maxRating, err := queryFloat(c, "max", 5)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "max must be a number")
	}

	routes, err := h.routeUC.GetRoutesByRating(c.Request().Context(), minRating, maxRating)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponseSlice(routes), "Routes retrieved successfully")
}

// GetNearbyRoutes handles proximity search around a point
func (h *RouteHandler) GetNearbyRoutes(c echo.Context) error {
	var req NearbyRoutesRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	routes, err := h.routeUC.FindNearbyRoutes(c.Request().Context(), &usecase.FindNearbyInput{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		RadiusM:   req.RadiusM,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponseSlice(routes), "Nearby routes retrieved successfully")
}

// UpdateRoute handles a partial update of a route owned by the caller
func (h *RouteHandler) UpdateRoute(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	var req UpdateRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid route input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateRouteInput{
		Name:       req.Name,
		DistanceKm: req.DistanceKm,
		EstTimeMin: req.EstTimeMin,
		AvgRating:  req.AvgRating,
	}

	if req.Geometry != nil {
		geometry, err := lineStringFromGeoJSON(req.Geometry)
		if err != nil {
			return response.BadRequest(c, "INVALID_GEOMETRY", err.Error())
		}
		input.Geometry = &geometry
	}

	route, err := h.routeUC.UpdateRoute(c.Request().Context(), routeID, input, userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newRouteResponse(route, nil), "Route updated successfully")
}

// DeleteRoute handles removing a route owned by the caller
func (h *RouteHandler) DeleteRoute(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	if err := h.routeUC.DeleteRoute(c.Request().Context(), routeID, userID); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Route deleted successfully"}, "Route deleted successfully")
}

// CompleteRoute handles recording a completion for the authenticated user
func (h *RouteHandler) CompleteRoute(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return err
	}

	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	var req CompleteRouteRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid completion input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	event, err := h.routeUC.CompleteRoute(c.Request().Context(), routeID, userID, &usecase.CompleteRouteInput{
		Completed:     req.Completed,
		ActualTimeMin: req.ActualTimeMin,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, event, "Route completion recorded")
}

// GetDirections handles computing a path from the caller's position to the
// route's starting point
func (h *RouteHandler) GetDirections(c echo.Context) error {
	routeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid route ID")
	}

	var req DirectionsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid position parameters")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	path, err := h.routeUC.GetDirectionsToRouteStart(c.Request().Context(), routeID, req.Latitude, req.Longitude)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"route_id": routeID.String(),
		"path":     geojson.NewGeometry(path),
	}, "Directions retrieved successfully")
}

// getUserID extracts the authenticated user ID from the context
func (h *RouteHandler) getUserID(c echo.Context) (string, error) {
	userIDVal := c.Get(middleware.ContextKeyUserID)
	userID, ok := userIDVal.(string)
	if !ok || userID == "" {
		return "", response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	return userID, nil
}

// handleAppError handles application errors
func (h *RouteHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

func newRouteResponse(route *entity.Route, creator *entity.Creator) *RouteResponse {
	resp := &RouteResponse{
		ID:             route.ID.String(),
		CreatorID:      route.CreatorID,
		Name:           route.Name,
		DistanceKm:     route.DistanceKm,
		EstTimeMin:     route.EstTimeMin,
		AvgRating:      route.AvgRating,
		CompletedCount: route.CompletedCount,
		Score:          route.Score,
		CreatedAt:      route.CreatedAt,
		UpdatedAt:      route.UpdatedAt,
	}

	if len(route.Geometry) > 0 {
		resp.Geometry = geojson.NewGeometry(route.Geometry)
	}
	resp.Creator = creator

	return resp
}

func newRouteResponseSlice(routes []*entity.Route) []*RouteResponse {
	payload := make([]*RouteResponse, 0, len(routes))
	for _, route := range routes {
		payload = append(payload, newRouteResponse(route, nil))
	}

	return payload
}

// lineStringFromGeoJSON converts an API geometry into the domain shape.
// A nil geometry is allowed; anything other than a LineString is rejected.
func lineStringFromGeoJSON(g *geojson.Geometry) (orb.LineString, error) {
	if g == nil {
		return nil, nil
	}

	line, ok := g.Geometry().(orb.LineString)
	if !ok {
		return nil, errors.New("geometry must be a GeoJSON LineString")
	}

	return line, nil
}

func queryFloat(c echo.Context, name string, fallback float64) (float64, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback, nil
	}

	return strconv.ParseFloat(raw, 64)
}

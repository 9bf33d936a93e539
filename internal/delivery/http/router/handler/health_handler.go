package handler

import (
	"net/http"

	"routehub/internal/delivery/http/response"
	"routehub/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	Publisher service.EventPublisher
}

// HealthHandler reports service liveness and broker connectivity.
type HealthHandler struct {
	publisher service.EventPublisher
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{publisher: params.Publisher}
}

// HealthCheck is a simple handler to check if the service is up.
// The broker state is informational; a down broker does not fail the check.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	broker := "down"
	if h.publisher.IsHealthy() {
		broker = "up"
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"status": "ok",
		"broker": broker,
	}, "Service is healthy")
}

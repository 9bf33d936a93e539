package handler

import (
	"log/slog"
	"net/http"

	"routehub/internal/delivery/http/response"
	"routehub/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CreatorHandlerParams holds dependencies for CreatorHandler, injected by Fx.
type CreatorHandlerParams struct {
	fx.In

	EnrichmentUC usecase.EnrichmentUsecase
	Logger       *slog.Logger
}

// CreatorHandler exposes public creator identities.
type CreatorHandler struct {
	enrichmentUC usecase.EnrichmentUsecase
	logger       *slog.Logger
}

// NewCreatorHandler is the constructor for CreatorHandler
func NewCreatorHandler(params CreatorHandlerParams) *CreatorHandler {
	return &CreatorHandler{
		enrichmentUC: params.EnrichmentUC,
		logger:       params.Logger,
	}
}

// GetCreatorSummary returns the public profile of a route creator with a
// masked email. Unknown creators yield 404.
func (h *CreatorHandler) GetCreatorSummary(c echo.Context) error {
	creatorID := c.Param("creatorId")
	if creatorID == "" {
		return response.BadRequest(c, "INVALID_ID", "Creator ID is required")
	}

	summary, err := h.enrichmentUC.GetCreatorSummary(c.Request().Context(), creatorID)
	if err != nil {
		return response.InternalServerError(c, "AUTH_SERVICE_ERROR", "Failed to resolve creator")
	}
	if summary == nil {
		return response.NotFound(c, "CREATOR_NOT_FOUND", "Creator not found")
	}

	return response.Success(c, http.StatusOK, summary, "Creator retrieved successfully")
}

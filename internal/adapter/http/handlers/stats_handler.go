package handlers

import (
	"errors"
	"net/http"

	response "vizinhanca-ativa/internal/adapter/http/dto/response"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/pkg"

	"github.com/gin-gonic/gin"
)

// StatsHandler exposes the role-specific dashboard aggregates.

type StatsHandler struct {
	usecase usecase.IStatsUseCase
}

func NewStatsHandler(uc usecase.IStatsUseCase) *StatsHandler {
	return &StatsHandler{usecase: uc}
}

// GetStats godoc
// @Summary      Dashboard aggregates for the caller's role
// @Tags         stats
// @Produce      json
// @Success      200  {object}  response.StatsResponse
// @Router       /v1/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	stats, err := h.usecase.DemandStats(c.Request.Context(), actor)
	if err != nil {
		appErr := mapStatsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemandStats(stats))
}

func mapStatsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrUnknownRole):
		return pkg.NewDomainErrorSimple("UNKNOWN_ROLE", "Caller role is not recognized", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

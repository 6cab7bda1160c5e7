package handlers

import (
	"errors"
	"net/http"

	request "vizinhanca-ativa/internal/adapter/http/dto/request"
	response "vizinhanca-ativa/internal/adapter/http/dto/response"
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidProfilePayload = pkg.NewDomainErrorSimple("INVALID_PROFILE_INPUT", "Invalid profile payload", http.StatusBadRequest)

// UserHandler exposes the caller's profile and the public provider directory.

type UserHandler struct {
	usecase usecase.IUserUseCase
}

func NewUserHandler(uc usecase.IUserUseCase) *UserHandler {
	return &UserHandler{usecase: uc}
}

// GetProfile godoc
// @Summary      Get the caller's profile
// @Tags         profile
// @Produce      json
// @Success      200  {object}  response.UserResponse
// @Router       /v1/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	usr, err := h.usecase.GetProfile(c.Request.Context(), actor)
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(usr))
}

// UpdateProfile godoc
// @Summary      Update the caller's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile  body      request.UpdateProfileRequest  true  "Profile payload"
// @Success      200      {object}  response.UserResponse
// @Router       /v1/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProfilePayload.HTTPStatus, errInvalidProfilePayload.ToHTTPError())
		return
	}

	usr, err := h.usecase.UpdateProfile(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromUser(usr))
}

// ListProviders godoc
// @Summary      List service providers
// @Tags         providers
// @Produce      json
// @Param        category  query    string  false  "Filter by category"
// @Success      200       {array}  response.ProviderResponse
// @Router       /v1/providers [get]
func (h *UserHandler) ListProviders(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	providers, err := h.usecase.ListProviders(c.Request.Context(), entities.DemandCategory(c.Query("category")))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProviders(providers))
}

// GetProvider godoc
// @Summary      Get a provider's public profile
// @Tags         providers
// @Produce      json
// @Param        provider_id  path      string  true  "Provider id"
// @Success      200          {object}  response.ProviderResponse
// @Router       /v1/providers/{provider_id} [get]
func (h *UserHandler) GetProvider(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	usr, err := h.usecase.GetProvider(c.Request.Context(), c.Param("provider_id"))
	if err != nil {
		appErr := mapUserError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProvider(usr))
}

func mapUserError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidUserName), errors.Is(err, usecase.ErrInvalidDemandCategory):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("PROFILE_NOT_FOUND", "Profile not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProviderNotFound):
		return pkg.NewDomainErrorSimple("PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"net/http"

	request "vizinhanca-ativa/internal/adapter/http/dto/request"
	response "vizinhanca-ativa/internal/adapter/http/dto/response"
	"vizinhanca-ativa/internal/adapter/http/middleware"
	"vizinhanca-ativa/internal/domain/entities"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/internal/usecase/interfaces"
	"vizinhanca-ativa/pkg"

	"github.com/gin-gonic/gin"
)

const idempotencyKeyHeader = "Idempotency-Key"

var (
	errInvalidDemandPayload   = pkg.NewDomainErrorSimple("INVALID_DEMAND_INPUT", "Invalid demand payload", http.StatusBadRequest)
	errInvalidProposalPayload = pkg.NewDomainErrorSimple("INVALID_PROPOSAL_INPUT", "Invalid proposal payload", http.StatusBadRequest)
	errInvalidHirePayload     = pkg.NewDomainErrorSimple("INVALID_HIRE_INPUT", "Invalid hire payload", http.StatusBadRequest)
	errMissingActor           = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid credentials", http.StatusUnauthorized)
)

// DemandHandler exposes the demand lifecycle over HTTP: creation, listing,
// proposal submission and the hire transition.

type DemandHandler struct {
	usecase usecase.IDemandUseCase
}

func NewDemandHandler(uc usecase.IDemandUseCase) *DemandHandler {
	return &DemandHandler{usecase: uc}
}

// requireActor fetches the authenticated caller or writes a 401.
func requireActor(c *gin.Context) (entities.Actor, bool) {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		c.JSON(errMissingActor.HTTPStatus, errMissingActor.ToHTTPError())
		return entities.Actor{}, false
	}
	return actor, true
}

// CreateDemand godoc
// @Summary      Create a demand
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        demand  body      request.CreateDemandRequest  true  "Demand payload"
// @Success      201     {object}  response.CreateDemandResponse
// @Router       /v1/demands [post]
func (h *DemandHandler) CreateDemand(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateDemandRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDemandPayload.HTTPStatus, errInvalidDemandPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.CreateDemand(c.Request.Context(), actor, payload.ToInput(c.GetHeader(idempotencyKeyHeader)))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreateDemandResult(result))
}

// ListDemands godoc
// @Summary      List demands, newest first
// @Tags         demands
// @Produce      json
// @Param        category  query     string  false  "Filter by category"
// @Param        mine      query     bool    false  "Only the caller's demands"
// @Success      200       {array}   response.DemandResponse
// @Router       /v1/demands [get]
func (h *DemandHandler) ListDemands(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	filter := interfaces.DemandFilter{
		Category: entities.DemandCategory(c.Query("category")),
	}
	if c.Query("mine") == "true" {
		filter.OwnerID = actor.ID
	}

	demands, err := h.usecase.ListDemands(c.Request.Context(), filter)
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemands(demands))
}

// GetDemand godoc
// @Summary      Get a demand by id
// @Tags         demands
// @Produce      json
// @Param        demand_id  path      string  true  "Demand id"
// @Success      200        {object}  response.DemandResponse
// @Router       /v1/demands/{demand_id} [get]
func (h *DemandHandler) GetDemand(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	d, err := h.usecase.GetDemand(c.Request.Context(), c.Param("demand_id"))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(d))
}

// SubmitProposal godoc
// @Summary      Submit a proposal against an open demand
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        demand_id  path      string                         true  "Demand id"
// @Param        proposal   body      request.SubmitProposalRequest  true  "Proposal payload"
// @Success      201        {object}  response.ProposalResponse
// @Router       /v1/demands/{demand_id}/proposals [post]
func (h *DemandHandler) SubmitProposal(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.SubmitProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidProposalPayload.HTTPStatus, errInvalidProposalPayload.ToHTTPError())
		return
	}

	p, err := h.usecase.SubmitProposal(c.Request.Context(), c.Param("demand_id"), actor, payload.ToInput(c.GetHeader(idempotencyKeyHeader)))
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromProposal(p))
}

// ListProposals godoc
// @Summary      List proposals of a demand (author only)
// @Tags         demands
// @Produce      json
// @Param        demand_id  path     string  true  "Demand id"
// @Success      200        {array}  response.ProposalResponse
// @Router       /v1/demands/{demand_id}/proposals [get]
func (h *DemandHandler) ListProposals(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	proposals, err := h.usecase.ListProposals(c.Request.Context(), c.Param("demand_id"), actor)
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProposals(proposals))
}

// HireProvider godoc
// @Summary      Hire the provider behind a proposal
// @Tags         demands
// @Accept       json
// @Produce      json
// @Param        demand_id  path      string               true  "Demand id"
// @Param        hire       body      request.HireRequest  true  "Hire payload"
// @Success      200        {object}  response.DemandResponse
// @Router       /v1/demands/{demand_id}/hire [post]
func (h *DemandHandler) HireProvider(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.HireRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHirePayload.HTTPStatus, errInvalidHirePayload.ToHTTPError())
		return
	}

	d, err := h.usecase.HireProvider(c.Request.Context(), c.Param("demand_id"), actor, payload.ProposalID)
	if err != nil {
		appErr := mapDemandError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDemand(d))
}

func mapDemandError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDemandTitle),
		errors.Is(err, usecase.ErrInvalidDemandDescription),
		errors.Is(err, usecase.ErrInvalidDemandCategory),
		errors.Is(err, usecase.ErrInvalidDemandID),
		errors.Is(err, usecase.ErrInvalidProposalMessage),
		errors.Is(err, usecase.ErrInvalidProposalValue),
		errors.Is(err, usecase.ErrInvalidProposalID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDemandNotFound):
		return pkg.NewDomainErrorSimple("DEMAND_NOT_FOUND", "Demand not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProposalNotFound):
		return pkg.NewDomainErrorSimple("PROPOSAL_NOT_FOUND", "Proposal not found for this demand", http.StatusNotFound)
	case errors.Is(err, usecase.ErrDemandHired):
		return pkg.NewDomainErrorSimple("DEMAND_ALREADY_HIRED", "Demand already has a hired provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrDuplicateDemand), errors.Is(err, usecase.ErrDuplicateProposal):
		return pkg.NewDomainErrorSimple("DUPLICATE_REQUEST", "A record with this idempotency key already exists", http.StatusConflict)
	case errors.Is(err, usecase.ErrNotDemandAuthor):
		return pkg.NewDomainErrorSimple("NOT_DEMAND_AUTHOR", "Only the demand author can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotSindico):
		return pkg.NewDomainErrorSimple("SINDICO_ONLY", "Only sindicos can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotPrestador):
		return pkg.NewDomainErrorSimple("PRESTADOR_ONLY", "Only prestadores can do this", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

package handlers

import (
	"errors"
	"io"
	"net/http"

	request "vizinhanca-ativa/internal/adapter/http/dto/request"
	response "vizinhanca-ativa/internal/adapter/http/dto/response"
	"vizinhanca-ativa/internal/usecase"
	"vizinhanca-ativa/internal/usecase/interfaces"
	"vizinhanca-ativa/pkg"

	"github.com/gin-gonic/gin"
)

const maxCampaignImageBytes = 5 << 20

var (
	errInvalidCampaignPayload     = pkg.NewDomainErrorSimple("INVALID_CAMPAIGN_INPUT", "Invalid campaign payload", http.StatusBadRequest)
	errInvalidContributionPayload = pkg.NewDomainErrorSimple("INVALID_CONTRIBUTION_INPUT", "Invalid contribution payload", http.StatusBadRequest)
	errInvalidImageUpload         = pkg.NewDomainErrorSimple("INVALID_IMAGE_UPLOAD", "Expected a multipart form with an image file", http.StatusBadRequest)
	errImageTooLarge              = pkg.NewDomainErrorSimple("IMAGE_TOO_LARGE", "Image exceeds the maximum allowed size", http.StatusRequestEntityTooLarge)
	errImageStorageUnavailable    = pkg.NewDomainErrorSimple("IMAGE_STORAGE_UNAVAILABLE", "Image storage is not configured", http.StatusServiceUnavailable)
)

// CampaignHandler exposes the campaign contribution engine over HTTP.

type CampaignHandler struct {
	usecase usecase.ICampaignUseCase
	images  interfaces.IImageStorage
}

func NewCampaignHandler(uc usecase.ICampaignUseCase, images interfaces.IImageStorage) *CampaignHandler {
	return &CampaignHandler{usecase: uc, images: images}
}

// CreateCampaign godoc
// @Summary      Create a fundraising campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        campaign  body      request.CreateCampaignRequest  true  "Campaign payload"
// @Success      201       {object}  response.CampaignResponse
// @Router       /v1/campaigns [post]
func (h *CampaignHandler) CreateCampaign(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.CreateCampaignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCampaignPayload.HTTPStatus, errInvalidCampaignPayload.ToHTTPError())
		return
	}

	campaign, err := h.usecase.CreateCampaign(c.Request.Context(), actor, payload.ToInput())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCampaign(campaign))
}

// ListCampaigns godoc
// @Summary      List campaigns, newest first
// @Tags         campaigns
// @Produce      json
// @Success      200  {array}  response.CampaignResponse
// @Router       /v1/campaigns [get]
func (h *CampaignHandler) ListCampaigns(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	campaigns, err := h.usecase.ListCampaigns(c.Request.Context())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaigns(campaigns))
}

// GetCampaign godoc
// @Summary      Get a campaign by id
// @Tags         campaigns
// @Produce      json
// @Param        campaign_id  path      string  true  "Campaign id"
// @Success      200          {object}  response.CampaignResponse
// @Router       /v1/campaigns/{campaign_id} [get]
func (h *CampaignHandler) GetCampaign(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	campaign, err := h.usecase.GetCampaign(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaign(campaign))
}

// Contribute godoc
// @Summary      Contribute to a campaign
// @Tags         campaigns
// @Accept       json
// @Produce      json
// @Param        campaign_id   path      string                     true  "Campaign id"
// @Param        contribution  body      request.ContributeRequest  true  "Contribution payload"
// @Success      201           {object}  response.SupporterResponse
// @Router       /v1/campaigns/{campaign_id}/support [post]
func (h *CampaignHandler) Contribute(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	var payload request.ContributeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidContributionPayload.HTTPStatus, errInvalidContributionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.Contribute(c.Request.Context(), c.Param("campaign_id"), actor, payload.ToInput())
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSupporter(s))
}

// GetProgress godoc
// @Summary      Get derived funding progress of a campaign
// @Tags         campaigns
// @Produce      json
// @Param        campaign_id  path      string  true  "Campaign id"
// @Success      200          {object}  response.CampaignProgressResponse
// @Router       /v1/campaigns/{campaign_id}/progress [get]
func (h *CampaignHandler) GetProgress(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	progress, err := h.usecase.GetProgress(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCampaignProgress(progress))
}

// ListSupporters godoc
// @Summary      List supporters of a campaign, largest first
// @Tags         campaigns
// @Produce      json
// @Param        campaign_id  path     string  true  "Campaign id"
// @Success      200          {array}  response.EnrichedSupporterResponse
// @Router       /v1/campaigns/{campaign_id}/supporters [get]
func (h *CampaignHandler) ListSupporters(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}

	supporters, err := h.usecase.ListSupporters(c.Request.Context(), c.Param("campaign_id"))
	if err != nil {
		appErr := mapCampaignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEnrichedSupporters(supporters))
}

// UploadImage godoc
// @Summary      Upload a campaign image
// @Tags         campaigns
// @Accept       multipart/form-data
// @Produce      json
// @Param        image  formData  file  true  "Image file"
// @Success      201    {object}  map[string]string
// @Router       /v1/campaigns/images [post]
func (h *CampaignHandler) UploadImage(c *gin.Context) {
	if _, ok := requireActor(c); !ok {
		return
	}
	if h.images == nil {
		c.JSON(errImageStorageUnavailable.HTTPStatus, errImageStorageUnavailable.ToHTTPError())
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(errInvalidImageUpload.HTTPStatus, errInvalidImageUpload.ToHTTPError())
		return
	}
	if header.Size > maxCampaignImageBytes {
		c.JSON(errImageTooLarge.HTTPStatus, errImageTooLarge.ToHTTPError())
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(errInvalidImageUpload.HTTPStatus, errInvalidImageUpload.ToHTTPError())
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxCampaignImageBytes+1))
	if err != nil || int64(len(data)) > maxCampaignImageBytes {
		c.JSON(errImageTooLarge.HTTPStatus, errImageTooLarge.ToHTTPError())
		return
	}

	url, err := h.images.Store(c.Request.Context(), header.Filename, header.Header.Get("Content-Type"), data)
	if err != nil {
		appErr := pkg.NewDomainError("IMAGE_STORAGE_FAILED", "Could not store the image", err, http.StatusBadGateway)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func mapCampaignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCampaignID),
		errors.Is(err, usecase.ErrInvalidCampaignTitle),
		errors.Is(err, usecase.ErrInvalidCampaignGoal),
		errors.Is(err, usecase.ErrInvalidContributionAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCampaignNotFound):
		return pkg.NewDomainErrorSimple("CAMPAIGN_NOT_FOUND", "Campaign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotSindico):
		return pkg.NewDomainErrorSimple("SINDICO_ONLY", "Only sindicos can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotPrestador):
		return pkg.NewDomainErrorSimple("PRESTADOR_ONLY", "Only prestadores can do this", http.StatusForbidden)
	case errors.Is(err, usecase.ErrContributionPaymentDenied):
		return pkg.NewDomainErrorSimple("PAYMENT_DENIED", "Payment was not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrContributionGatewayFailure):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_FAILURE", "Payment provider unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

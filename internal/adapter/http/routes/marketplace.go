package routes

import (
	"vizinhanca-ativa/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathDemands   = "/demands"
	PathCampaigns = "/campaigns"
	PathProviders = "/providers"
	PathProfile   = "/profile"
	PathStats     = "/stats"
)

func addMarketplaceRoutes(
	rg *gin.RouterGroup,
	demandHandler *handlers.DemandHandler,
	campaignHandler *handlers.CampaignHandler,
	statsHandler *handlers.StatsHandler,
	userHandler *handlers.UserHandler,
) {
	demands := rg.Group(PathDemands)
	{
		demands.POST("", demandHandler.CreateDemand)
		demands.GET("", demandHandler.ListDemands)
		demands.GET("/:demand_id", demandHandler.GetDemand)
		demands.GET("/:demand_id/proposals", demandHandler.ListProposals)
		demands.POST("/:demand_id/proposals", demandHandler.SubmitProposal)
		demands.POST("/:demand_id/hire", demandHandler.HireProvider)
	}

	campaigns := rg.Group(PathCampaigns)
	{
		campaigns.POST("", campaignHandler.CreateCampaign)
		campaigns.GET("", campaignHandler.ListCampaigns)
		campaigns.POST("/images", campaignHandler.UploadImage)
		campaigns.GET("/:campaign_id", campaignHandler.GetCampaign)
		campaigns.GET("/:campaign_id/progress", campaignHandler.GetProgress)
		campaigns.GET("/:campaign_id/supporters", campaignHandler.ListSupporters)
		campaigns.POST("/:campaign_id/support", campaignHandler.Contribute)
	}

	providers := rg.Group(PathProviders)
	{
		providers.GET("", userHandler.ListProviders)
		providers.GET("/:provider_id", userHandler.GetProvider)
	}

	rg.GET(PathProfile, userHandler.GetProfile)
	rg.PUT(PathProfile, userHandler.UpdateProfile)

	rg.GET(PathStats, statsHandler.GetStats)
}

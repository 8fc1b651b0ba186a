package api

import (
	"net/http"

	campaignHandler "dispatch-server/internal/campaigns/handler"
	deviceHandler "dispatch-server/internal/devices/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	deviceHandler   *deviceHandler.Handler
	campaignHandler *campaignHandler.Handler
}

func New(router *gin.RouterGroup, deviceHandler *deviceHandler.Handler, campaignHandler *campaignHandler.Handler) API {
	return API{
		router:          router,
		deviceHandler:   deviceHandler,
		campaignHandler: campaignHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		storeGroup := apiGroup.Group("/stores/:slug")
		storeGroup.POST("/devices/:role/connect", a.deviceHandler.HandleConnect)
		storeGroup.GET("/devices", a.deviceHandler.HandleListDevices)
		storeGroup.GET("/devices/stream", a.deviceHandler.HandleStream)
		storeGroup.POST("/campaigns", a.campaignHandler.HandleCreateCampaign)
		storeGroup.GET("/campaigns", a.campaignHandler.HandleListCampaigns)

		deviceGroup := apiGroup.Group("/devices/:id")
		deviceGroup.GET("/qr.png", a.deviceHandler.HandleGetQR)
		deviceGroup.POST("/disconnect", a.deviceHandler.HandleDisconnect)

		campaignGroup := apiGroup.Group("/campaigns/:id")
		campaignGroup.GET("", a.campaignHandler.HandleGetCampaign)
		campaignGroup.POST("/schedule", a.campaignHandler.HandleScheduleCampaign)
		campaignGroup.POST("/pause", a.campaignHandler.HandlePauseCampaign)
		campaignGroup.POST("/resume", a.campaignHandler.HandleResumeCampaign)
		campaignGroup.POST("/cancel", a.campaignHandler.HandleCancelCampaign)
		campaignGroup.POST("/retry-failed", a.campaignHandler.HandleRetryFailed)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

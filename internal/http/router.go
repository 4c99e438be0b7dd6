package api

import (
	stdhttp "net/http"

	intconfig "travelgateway/internal/config"
	h "travelgateway/internal/http/handlers"
	"travelgateway/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func NewRouter(env intconfig.Env, gw h.Gateway) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		middleware.Recovery(),
		middleware.CORS(env.CORSAllowedOrigins),
		middleware.ErrorHandler(env.HideErrorDetails),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.POST("/get_city_info", gw.GetCityInfo)
	r.POST("/generate_travel_plan", gw.GenerateTravelPlan)
	r.GET("/get_travel_plan", gw.GetTravelPlan)
	r.GET("/get_travel_plan/pdf", gw.GetTravelPlanPDF)
	r.GET("/get_city_image", gw.GetCityImage)

	api := r.Group("/api")
	{
		api.GET("/health", gw.Health)
		api.GET("/routes", h.RouteList(r))
	}

	return r
}

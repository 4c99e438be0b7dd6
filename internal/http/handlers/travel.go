package handlers

import (
	"net/http"

	"travelgateway/internal/domain"
	"travelgateway/internal/generator"
	"travelgateway/internal/http/middleware"
	"travelgateway/internal/imagery"
	"travelgateway/internal/repositories"
	"travelgateway/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Gateway carries the collaborators shared by the travel handlers.
type Gateway struct {
	Generator generator.ContentGenerator
	Plans     repositories.PlanRepository
	Images    imagery.CityImageFinder
}

func (g Gateway) service(c *gin.Context) services.TravelService {
	return services.TravelService{
		Generator: g.Generator,
		Plans:     g.Plans,
		Images:    g.Images,
		RequestID: middleware.GetRequestID(c),
	}
}

// POST /get_city_info
func (g Gateway) GetCityInfo(c *gin.Context) {
	var in services.CityInfoInput
	if err := BindJSONObject(c, &in); err != nil {
		_ = c.Error(err)
		return
	}
	zerolog.Ctx(c.Request.Context()).Debug().Interface("payload", in).Msg("city info request")

	info, err := g.service(c).GetCityInfo(c.Request.Context(), in)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// POST /generate_travel_plan
func (g Gateway) GenerateTravelPlan(c *gin.Context) {
	var in services.GeneratePlanInput
	if err := BindJSONObject(c, &in); err != nil {
		_ = c.Error(err)
		return
	}
	zerolog.Ctx(c.Request.Context()).Debug().Interface("payload", in).Msg("travel plan request")

	if err := g.service(c).GenerateAndStorePlan(c.Request.Context(), in); err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": domain.MsgPlanGeneratedOK})
}

// GET /get_travel_plan
func (g Gateway) GetTravelPlan(c *gin.Context) {
	rec, err := g.service(c).GetStoredPlan()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GET /get_travel_plan/pdf
func (g Gateway) GetTravelPlanPDF(c *gin.Context) {
	docs := services.PlanDocService{Travel: g.service(c), RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := docs.GeneratePlanPDF()
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// GET /get_city_image?city=
func (g Gateway) GetCityImage(c *gin.Context) {
	img, err := g.service(c).GetCityImage(c.Request.Context(), c.Query("city"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, img)
}

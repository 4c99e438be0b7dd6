package services

import (
	"context"
	"fmt"

	"travelgateway/internal/domain"
	"travelgateway/internal/domain/models"
	"travelgateway/internal/generator"
	"travelgateway/internal/imagery"
	"travelgateway/internal/repositories"
	"travelgateway/internal/utils"
)

// TravelService implements the gateway operations on top of a ContentGenerator
// and the latest-plan slot.
type TravelService struct {
	Generator generator.ContentGenerator
	Plans     repositories.PlanRepository
	Images    imagery.CityImageFinder
	RequestID string
}

// CityInfoInput is the decoded /get_city_info body.
type CityInfoInput struct {
	City any `json:"city"`
}

// GeneratePlanInput is the decoded /generate_travel_plan body. Fields stay
// untyped until validated so that truthiness can be checked on the raw value.
type GeneratePlanInput struct {
	City               any `json:"city"`
	StartDate          any `json:"start_date"`
	EndDate            any `json:"end_date"`
	NumTravelers       any `json:"num_travelers"`
	SelectedActivities any `json:"selected_activities"`
}

// CityImage is the body returned by the image lookup.
type CityImage struct {
	ImageURL string `json:"imageUrl"`
	Error    string `json:"error,omitempty"`
	Details  string `json:"details,omitempty"`
}

func (s TravelService) GetCityInfo(ctx context.Context, in CityInfoInput) (models.CityInfo, error) {
	city, ok := in.City.(string)
	if !ok || city == "" {
		return models.CityInfo{}, domain.ValidationError{Field: "city", Msg: domain.MsgCityRequired}
	}
	utils.LogEvent(s.RequestID, "travel", "city_info", "city="+city)

	// both lookups always run; the description error wins if both fail
	description, descErr := s.Generator.DescribeCity(ctx, city)
	activities, actErr := s.Generator.ListActivities(ctx, city)
	if descErr != nil {
		return models.CityInfo{}, descErr
	}
	if actErr != nil {
		return models.CityInfo{}, actErr
	}
	if activities == nil {
		activities = []string{}
	}

	return models.CityInfo{City: city, Description: description, Activities: activities}, nil
}

// GenerateAndStorePlan asks the generator for a plan and, when one comes back,
// replaces the stored plan with it.
func (s TravelService) GenerateAndStorePlan(ctx context.Context, in GeneratePlanInput) error {
	req, err := validatePlanInput(in)
	if err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "travel", "generate_plan",
		fmt.Sprintf("city=%s start=%s end=%s travelers=%v activities=%d",
			req.City, req.StartDate, req.EndDate, req.NumTravelers, len(req.SelectedActivities)))

	plan, err := s.Generator.GeneratePlan(ctx, req)
	if err != nil {
		return err
	}
	if !domain.Truthy(plan) {
		return domain.InternalError{Msg: domain.MsgPlanGenerateFailed, Public: true}
	}

	s.Plans.Save(models.TravelPlanRecord{
		City:               req.City,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		NumTravelers:       req.NumTravelers,
		SelectedActivities: req.SelectedActivities,
		TravelPlan:         plan,
	})
	utils.LogEvent(s.RequestID, "travel", "store_plan", "city="+req.City)
	return nil
}

func (s TravelService) GetStoredPlan() (models.TravelPlanRecord, error) {
	rec, ok := s.Plans.Latest()
	if !ok {
		return models.TravelPlanRecord{}, domain.NotFoundError{Resource: "travel plan", Msg: domain.MsgNoPlanAvailable}
	}
	return rec, nil
}

// GetCityImage never fails once a city is given; upstream trouble yields the
// fallback image and a note in Error.
func (s TravelService) GetCityImage(ctx context.Context, city string) (CityImage, error) {
	if utils.SimplifyLocation(city) == "" {
		return CityImage{}, domain.ValidationError{Field: "city", Msg: domain.MsgNoCityProvided}
	}
	if s.Images == nil {
		return CityImage{ImageURL: imagery.FallbackImage}, nil
	}

	url, err := s.Images.FindCityImage(ctx, city)
	if url == "" {
		url = imagery.FallbackImage
	}
	out := CityImage{ImageURL: url}
	if err != nil {
		utils.LogFailure(s.RequestID, "imagery", "city_image", err)
		out.Error = "Failed to fetch image"
		out.Details = err.Error()
	}
	return out, nil
}

func validatePlanInput(in GeneratePlanInput) (models.PlanRequest, error) {
	missing := domain.ValidationError{Msg: domain.MsgMissingFields}
	for _, v := range []any{in.City, in.StartDate, in.EndDate, in.NumTravelers, in.SelectedActivities} {
		if !domain.Truthy(v) {
			return models.PlanRequest{}, missing
		}
	}

	city, ok1 := in.City.(string)
	start, ok2 := in.StartDate.(string)
	end, ok3 := in.EndDate.(string)
	if !ok1 || !ok2 || !ok3 {
		return models.PlanRequest{}, missing
	}

	raw, ok := in.SelectedActivities.([]any)
	if !ok {
		return models.PlanRequest{}, missing
	}
	activities := make([]string, 0, len(raw))
	for _, a := range raw {
		s, ok := a.(string)
		if !ok {
			return models.PlanRequest{}, missing
		}
		activities = append(activities, s)
	}

	return models.PlanRequest{
		City:               city,
		StartDate:          start,
		EndDate:            end,
		NumTravelers:       in.NumTravelers,
		SelectedActivities: activities,
	}, nil
}

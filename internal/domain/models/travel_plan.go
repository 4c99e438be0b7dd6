package models

// TravelPlanRecord is the last generated plan together with the request that produced it.
// NumTravelers and TravelPlan are opaque JSON values and are echoed back as received.
type TravelPlanRecord struct {
	City               string   `json:"city"`
	StartDate          string   `json:"start_date"`
	EndDate            string   `json:"end_date"`
	NumTravelers       any      `json:"num_travelers"`
	SelectedActivities []string `json:"selected_activities"`
	TravelPlan         any      `json:"travel_plan"`
}

// Clone returns a deep copy so callers can't reach into stored state.
func (r TravelPlanRecord) Clone() TravelPlanRecord {
	out := r
	if r.SelectedActivities != nil {
		out.SelectedActivities = append([]string(nil), r.SelectedActivities...)
	}
	out.NumTravelers = cloneValue(r.NumTravelers)
	out.TravelPlan = cloneValue(r.TravelPlan)
	return out
}

// PlanRequest is what the content generator needs to build a plan.
type PlanRequest struct {
	City               string
	StartDate          string
	EndDate            string
	NumTravelers       any
	SelectedActivities []string
}

// CityInfo is the body returned by the city lookup.
type CityInfo struct {
	City        string   `json:"city"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[k] = cloneValue(val)
		}
		return m
	case []any:
		s := make([]any, len(t))
		for i, val := range t {
			s[i] = cloneValue(val)
		}
		return s
	case []string:
		return append([]string(nil), t...)
	default:
		return v
	}
}

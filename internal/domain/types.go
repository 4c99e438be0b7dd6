package domain

// Fixed client-facing messages.
const (
	MsgRequestMustBeJSON   = "Request must be JSON"
	MsgCityRequired        = "City name is required"
	MsgMissingFields       = "Missing required fields"
	MsgPlanGenerateFailed  = "Failed to generate travel plan"
	MsgNoPlanAvailable     = "No travel plan available"
	MsgPlanGeneratedOK     = "Travel plan generated successfully. Retrieve using /get_travel_plan"
	MsgNoCityProvided      = "No city provided"
	MsgInternalServerError = "internal server error"
)

// Truthy reports whether a decoded JSON value counts as present.
// null, false, 0, "", empty arrays and empty objects do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case []any:
		return len(t) > 0
	case []string:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

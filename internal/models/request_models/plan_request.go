package request_models

// PlanRequest is the engine input. Event is optional. Either endpoint may
// be blank, but not both.
type PlanRequest struct {
	Origin      string `json:"origin"`
	Destination string `json:"destination"`
	Mode        string `json:"mode" binding:"required"`
	Event       string `json:"event,omitempty"`
}

package dto

// StartJourneyRequest represents a start journey request. Consent is checked
// in the service so a refusal gets a descriptive error instead of a bare
// binding failure.
type StartJourneyRequest struct {
	Consent   bool   `json:"consent" example:"true"`
	GuideName string `json:"guide_name" example:"Auri"`
	Device    string `json:"device" example:"mobile-safari"`
}

// RecordInteractionRequest represents a record interaction request
type RecordInteractionRequest struct {
	JourneyID string                 `json:"journey_id" binding:"required" example:"665f1c2e9b3d4a0001a3b901"`
	Type      string                 `json:"type" binding:"required,oneof=metaphor_pick spark_collect maze_complete breath_pace scene_choice" example:"metaphor_pick"`
	Value     map[string]interface{} `json:"value" swaggertype:"object,string" example:"metaphor:clouds"`
}

// AnalyzeRequest represents a recommendation analysis request
type AnalyzeRequest struct {
	JourneyID string `json:"journey_id" binding:"required" example:"665f1c2e9b3d4a0001a3b901"`
}

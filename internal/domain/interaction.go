package domain

import "time"

// InteractionType tags a recorded user action. The set is closed and
// validated at the HTTP boundary before anything reaches the profiler.
type InteractionType string

const (
	InteractionMetaphorPick InteractionType = "metaphor_pick"
	InteractionSparkCollect InteractionType = "spark_collect"
	InteractionMazeComplete InteractionType = "maze_complete"
	InteractionBreathPace   InteractionType = "breath_pace"
	InteractionSceneChoice  InteractionType = "scene_choice"
)

// Interaction is a single recorded user action during a journey.
// Collection: "interaction". Immutable once recorded; the payload shape
// depends on the type and is deliberately left open.
type Interaction struct {
	JourneyID  string                 `bson:"journey_id" json:"journey_id"`
	Type       InteractionType        `bson:"type" json:"type"`
	Value      map[string]interface{} `bson:"value" json:"value"`
	RecordedAt time.Time              `bson:"recorded_at" json:"recorded_at"`
}

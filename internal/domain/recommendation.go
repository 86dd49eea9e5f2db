package domain

import "time"

// Recommendation is the persisted output of one analysis run.
// Collection: "recommendation". A journey may accumulate several over time;
// each is an independent append-only record, never an update.
type Recommendation struct {
	JourneyID string    `bson:"journey_id" json:"journey_id"`
	Profile   Profile   `bson:"profile" json:"profile"`
	Teas      []string  `bson:"teas" json:"teas"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

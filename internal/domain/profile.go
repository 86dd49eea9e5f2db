package domain

// Profile is the four-dimensional emotional needs accumulator computed from a
// journey's interactions. Each field is a non-negative integer that only ever
// grows during profiling. The field declaration order (calm, focus, uplift,
// sleep) is the tie-break when needs are ranked by value.
type Profile struct {
	Calm   int `bson:"calm_need" json:"calm_need"`
	Focus  int `bson:"focus_need" json:"focus_need"`
	Uplift int `bson:"uplift_need" json:"uplift_need"`
	Sleep  int `bson:"sleep_need" json:"sleep_need"`
}

package domain

// Journey is one user's session through the experience.
// Collection: "journey". The consent flag gates whether any interactions may
// subsequently be recorded against it; a journey is only ever created with
// consent given.
type Journey struct {
	Consent   bool   `bson:"consent" json:"consent"`
	GuideName string `bson:"guide_name" json:"guide_name"`
	Device    string `bson:"device,omitempty" json:"device,omitempty"`
}

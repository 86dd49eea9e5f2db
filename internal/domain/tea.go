package domain

// Tea is a catalog item with traditional effects and basic safety notes.
// Collection: "tea". Immutable reference data, keyed uniquely by Key.
// Seq is the insertion sequence assigned at seed time; catalog reads always
// return teas sorted by it, which makes the ranking tie-break reproducible
// across store backends.
type Tea struct {
	Key               string   `bson:"key" json:"key"`
	Name              string   `bson:"name" json:"name"`
	Tags              []string `bson:"tags" json:"tags"`
	Description       string   `bson:"description" json:"description"`
	Benefits          []string `bson:"benefits" json:"benefits"`
	Contraindications []string `bson:"contraindications" json:"contraindications"`
	Interactions      []string `bson:"interactions" json:"interactions"`
	Preparation       string   `bson:"preparation" json:"preparation"`
	Seq               int      `bson:"seq" json:"-"`
}

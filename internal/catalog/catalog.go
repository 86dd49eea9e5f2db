// Package catalog holds the static tea catalog used to seed the store.
package catalog

import "github.com/teeseele/journey-service/internal/domain"

// Default returns the seed catalog in its canonical order. Seq records that
// order so catalog reads stay stable regardless of store backend.
func Default() []domain.Tea {
	return []domain.Tea{
		{
			Key:               "chamomile",
			Name:              "Kamille",
			Tags:              []string{"calming", "sleep"},
			Description:       "Sanfte Blüten, die Ruhe fördern",
			Benefits:          []string{"Beruhigend", "Fördert Schlaf"},
			Contraindications: []string{"Allergie gegen Korbblütler"},
			Interactions:      []string{},
			Preparation:       "2 TL auf 250ml, 8-10 Min. ziehen lassen",
			Seq:               0,
		},
		{
			Key:               "peppermint",
			Name:              "Pfefferminze",
			Tags:              []string{"clarity", "uplift"},
			Description:       "Frische Blätter, die klären und beleben",
			Benefits:          []string{"Erfrischend", "Konzentrationsfördernd"},
			Contraindications: []string{"Gallenwegsstörungen (Rücksprache)"},
			Interactions:      []string{},
			Preparation:       "1-2 TL auf 250ml, 5-7 Min.",
			Seq:               1,
		},
		{
			Key:               "lavender",
			Name:              "Lavendel",
			Tags:              []string{"calming", "sleep"},
			Description:       "Blüten mit sanftem Duft, die entspannen",
			Benefits:          []string{"Entspannend", "Schlaffördernd"},
			Contraindications: []string{"Schwangerschaft: Rücksprache"},
			Interactions:      []string{},
			Preparation:       "1 TL auf 250ml, 5-7 Min.",
			Seq:               2,
		},
		{
			Key:               "lemonbalm",
			Name:              "Zitronenmelisse",
			Tags:              []string{"calming", "uplift"},
			Description:       "Zarte Blätter, die beruhigen und aufhellen",
			Benefits:          []string{"Ausgleichend", "Stimmungsaufhellend"},
			Contraindications: []string{"Schilddrüse: Rücksprache"},
			Interactions:      []string{},
			Preparation:       "1-2 TL auf 250ml, 5-8 Min.",
			Seq:               3,
		},
	}
}

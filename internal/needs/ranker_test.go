package needs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teeseele/journey-service/internal/catalog"
	"github.com/teeseele/journey-service/internal/domain"
)

func tea(key string, tags ...string) domain.Tea {
	return domain.Tea{Key: key, Tags: tags}
}

func TestRankNeeds_AllZeroKeepsFixedOrder(t *testing.T) {
	ranked := RankNeeds(domain.Profile{})

	assert.Equal(t, []Need{NeedCalm, NeedFocus, NeedUplift, NeedSleep}, ranked)
}

func TestRankNeeds_OrdersByValueDescending(t *testing.T) {
	ranked := RankNeeds(domain.Profile{Calm: 1, Focus: 0, Uplift: 4, Sleep: 2})

	assert.Equal(t, []Need{NeedUplift, NeedSleep, NeedCalm, NeedFocus}, ranked)
}

func TestRankNeeds_TiesKeepDeclarationOrder(t *testing.T) {
	ranked := RankNeeds(domain.Profile{Calm: 2, Focus: 2, Uplift: 2, Sleep: 3})

	assert.Equal(t, []Need{NeedSleep, NeedCalm, NeedFocus, NeedUplift}, ranked)
}

func TestRankTeas_EmptyCatalog(t *testing.T) {
	keys := RankTeas(domain.Profile{Calm: 2}, nil)

	assert.Empty(t, keys)
}

func TestRankTeas_FewerThanThreeTeas(t *testing.T) {
	keys := RankTeas(domain.Profile{}, []domain.Tea{
		tea("chamomile", "calming"),
		tea("peppermint", "clarity"),
	})

	assert.Equal(t, []string{"chamomile", "peppermint"}, keys)
}

func TestRankTeas_NeverMoreThanThree(t *testing.T) {
	keys := RankTeas(domain.Profile{Calm: 3}, []domain.Tea{
		tea("a", "calming"),
		tea("b", "calming"),
		tea("c", "calming"),
		tea("d", "calming"),
		tea("e", "calming"),
	})

	assert.Len(t, keys, 3)
	assert.Equal(t, []string{"a", "b", "c"}, keys)
}

func TestRankTeas_PrimaryGroupBonus(t *testing.T) {
	// calm is primary: any tag in {calming, soothing, anxiety} earns +3 once.
	keys := RankTeas(domain.Profile{Calm: 5}, []domain.Tea{
		tea("plain", "mint"),
		tea("double", "calming", "soothing"),
		tea("single", "anxiety"),
	})

	assert.Equal(t, []string{"double", "single", "plain"}, keys)
}

func TestRankTeas_SecondaryBonusesStack(t *testing.T) {
	// Ranked needs: calm(3), sleep(2), focus(1), uplift(0). Secondary needs
	// are sleep and focus; a tea tagged for both gets both +1 bonuses.
	profile := domain.Profile{Calm: 3, Focus: 1, Uplift: 0, Sleep: 2}

	keys := RankTeas(profile, []domain.Tea{
		tea("primary-only", "calming"),
		tea("stacked", "calming", "sleep", "focus"),
	})

	assert.Equal(t, []string{"stacked", "primary-only"}, keys)
}

func TestRankTeas_TieKeepsCatalogOrder(t *testing.T) {
	profile := domain.Profile{Calm: 2, Sleep: 1}

	original := []domain.Tea{
		tea("chamomile", "calming", "sleep"),
		tea("lavender", "calming", "sleep"),
	}
	keys := RankTeas(profile, original)
	assert.Equal(t, []string{"chamomile", "lavender"}, keys)

	// Swapping retrieval order must swap the output order of the tied pair.
	swapped := []domain.Tea{original[1], original[0]}
	keys = RankTeas(profile, swapped)
	assert.Equal(t, []string{"lavender", "chamomile"}, keys)
}

func TestRankTeas_SpecProfileAgainstSeedCatalog(t *testing.T) {
	// clouds + slow breath: calm=2, sleep=1; primary calm, secondaries sleep
	// and focus. chamomile and lavender score 3+1=4 and tie in catalog order,
	// lemonbalm scores 3, peppermint 0.
	profile := domain.Profile{Calm: 2, Focus: 0, Uplift: 0, Sleep: 1}

	keys := RankTeas(profile, catalog.Default())

	assert.Equal(t, []string{"chamomile", "lavender", "lemonbalm"}, keys)
}

func TestRankTeas_AllZeroProfileDefaultsToCalm(t *testing.T) {
	// With no signal, calm is primary and focus/uplift are secondary.
	// lemonbalm (calming+uplift) scores 4, chamomile and lavender 3,
	// peppermint 1 via the uplift secondary.
	keys := RankTeas(domain.Profile{}, catalog.Default())

	assert.Equal(t, []string{"lemonbalm", "chamomile", "lavender"}, keys)
}

func TestRankTeas_ReturnsOnlyCatalogKeys(t *testing.T) {
	teas := catalog.Default()
	known := make(map[string]bool, len(teas))
	for _, tt := range teas {
		known[tt.Key] = true
	}

	keys := RankTeas(domain.Profile{Uplift: 3, Sleep: 1}, teas)

	assert.NotEmpty(t, keys)
	for _, key := range keys {
		assert.True(t, known[key], "key %q not in catalog", key)
	}
}

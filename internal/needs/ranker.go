package needs

import (
	"sort"

	"github.com/teeseele/journey-service/internal/domain"
)

// Need identifies one of the four fixed accumulators.
type Need string

const (
	NeedCalm   Need = "calm"
	NeedFocus  Need = "focus"
	NeedUplift Need = "uplift"
	NeedSleep  Need = "sleep"
)

// maxRecommendations caps how many tea keys a recommendation carries.
const maxRecommendations = 3

// needOrder is the fixed declaration order. It doubles as the tie-break when
// need values are equal, so an all-zero profile still ranks calm first.
var needOrder = [...]Need{NeedCalm, NeedFocus, NeedUplift, NeedSleep}

// primaryTagGroups earn a tea the +3 bonus when its tags intersect the group
// of the primary need.
var primaryTagGroups = map[Need][]string{
	NeedCalm:   {"calming", "soothing", "anxiety"},
	NeedSleep:  {"sleep", "night", "sedative"},
	NeedFocus:  {"focus", "grounding", "clarity"},
	NeedUplift: {"uplift", "mood", "energize"},
}

// secondaryTags earn a tea a +1 bonus per matching secondary need.
var secondaryTags = map[Need]string{
	NeedCalm:   "calming",
	NeedSleep:  "sleep",
	NeedFocus:  "focus",
	NeedUplift: "uplift",
}

func needValue(p domain.Profile, n Need) int {
	switch n {
	case NeedCalm:
		return p.Calm
	case NeedFocus:
		return p.Focus
	case NeedUplift:
		return p.Uplift
	case NeedSleep:
		return p.Sleep
	}
	return 0
}

// RankNeeds orders the four needs by value descending. Equal values keep the
// fixed calm, focus, uplift, sleep order.
func RankNeeds(p domain.Profile) []Need {
	ranked := make([]Need, len(needOrder))
	copy(ranked, needOrder[:])
	sort.SliceStable(ranked, func(i, j int) bool {
		return needValue(p, ranked[i]) > needValue(p, ranked[j])
	})
	return ranked
}

type scoredTea struct {
	key   string
	score int
}

// RankTeas scores the catalog against the profile and returns the keys of the
// top teas, best first, at most three. Equal scores keep catalog retrieval
// order (stable sort); that tie-break is part of the contract, not an
// accident of the store.
func RankTeas(p domain.Profile, teas []domain.Tea) []string {
	ranked := RankNeeds(p)
	primary, secondary := ranked[0], ranked[1:3]

	scored := make([]scoredTea, 0, len(teas))
	for _, tea := range teas {
		scored = append(scored, scoredTea{key: tea.Key, score: scoreTea(tea, primary, secondary)})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	limit := maxRecommendations
	if len(scored) < limit {
		limit = len(scored)
	}

	keys := make([]string, 0, limit)
	for _, st := range scored[:limit] {
		keys = append(keys, st.key)
	}
	return keys
}

func scoreTea(tea domain.Tea, primary Need, secondary []Need) int {
	tags := make(map[string]bool, len(tea.Tags))
	for _, tag := range tea.Tags {
		tags[tag] = true
	}

	score := 0
	for _, tag := range primaryTagGroups[primary] {
		if tags[tag] {
			score += 3
			break
		}
	}
	// Both secondary bonuses can stack on the same tea.
	for _, need := range secondary {
		if tags[secondaryTags[need]] {
			score++
		}
	}
	return score
}

// Package needs computes the emotional needs profile from recorded
// interactions and ranks the tea catalog against it. Both halves are pure
// functions over immutable inputs and are safe for concurrent use.
package needs

import (
	"strconv"

	"github.com/teeseele/journey-service/internal/domain"
)

// BuildProfile reduces a journey's interactions to a needs profile by adding
// a fixed delta per event to one of the four accumulators. Accumulation is
// commutative, so the result does not depend on event order.
//
// Unknown interaction types and unrecognized payload values contribute
// nothing. That silence is deliberate: the boundary already rejects types
// outside the closed set, so anything unrecognized here is treated as
// "no signal" rather than an error.
func BuildProfile(interactions []domain.Interaction) domain.Profile {
	var p domain.Profile

	for _, it := range interactions {
		switch it.Type {
		case domain.InteractionMetaphorPick:
			switch stringValue(it.Value, "metaphor", "") {
			case "clouds":
				p.Calm += 2
			case "sparks":
				p.Uplift += 2
			case "roots":
				p.Focus += 2
			}
		case domain.InteractionSparkCollect:
			// Absent or non-numeric counts default to 1. Negative counts are
			// dropped so the profile never decreases.
			if count := intValue(it.Value, "count", 1); count > 0 {
				p.Uplift += count
			}
		case domain.InteractionMazeComplete:
			p.Focus++
		case domain.InteractionBreathPace:
			if stringValue(it.Value, "pace", "slow") == "slow" {
				p.Sleep++
			} else {
				p.Calm++
			}
		case domain.InteractionSceneChoice:
			switch stringValue(it.Value, "scene", "") {
			case "night":
				p.Sleep++
			case "meadow":
				p.Calm++
			}
		}
	}

	return p
}

func stringValue(value map[string]interface{}, key, fallback string) string {
	if s, ok := value[key].(string); ok {
		return s
	}
	return fallback
}

func intValue(value map[string]interface{}, key string, fallback int) int {
	switch v := value[key].(type) {
	case int:
		return v
	case int32:
		return int(v)
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

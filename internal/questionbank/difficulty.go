package questionbank

// Difficulty represents a question difficulty tier.
type Difficulty string

const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
	Expert       Difficulty = "expert"
)

// Tiers returns all difficulty tiers in ascending order.
// The order matters: the quiz generator scans it for fallback pools and
// the scorer derives its tier bonus from the position in this list.
func Tiers() []Difficulty {
	return []Difficulty{Beginner, Intermediate, Advanced, Expert}
}

// TierIndex returns the 0-based position of d in the tier ordering.
// Unknown values map to 0 (beginner).
func TierIndex(d Difficulty) int {
	switch d {
	case Intermediate:
		return 1
	case Advanced:
		return 2
	case Expert:
		return 3
	default:
		return 0
	}
}

// StepUp returns the next tier above d, saturating at Expert.
func StepUp(d Difficulty) Difficulty {
	tiers := Tiers()
	i := TierIndex(d)
	if i >= len(tiers)-1 {
		return Expert
	}
	return tiers[i+1]
}

// Label returns a human-readable name for a difficulty tier.
func Label(d Difficulty) string {
	switch d {
	case Beginner:
		return "Beginner"
	case Intermediate:
		return "Intermediate"
	case Advanced:
		return "Advanced"
	case Expert:
		return "Expert"
	default:
		return string(d)
	}
}

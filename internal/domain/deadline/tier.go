package deadline

import "time"

// Tier classifies how close a deadline is.
type Tier string

const (
	TierRed    Tier = "red"
	TierOrange Tier = "orange"
	TierYellow Tier = "yellow"
	TierGreen  Tier = "green"
	// TierGray is the neutral tier for projects without a deadline.
	TierGray Tier = "gray"
)

const day = 24 * time.Hour

// Classify maps a deadline to an urgency tier relative to now. Boundaries
// are inclusive on the tighter tier: exactly one day out is still red,
// exactly seven days out is still yellow.
func Classify(deadline, now time.Time) Tier {
	remaining := deadline.Sub(now)
	switch {
	case remaining < 0:
		return TierRed
	case remaining <= day:
		return TierRed
	case remaining <= 3*day:
		return TierOrange
	case remaining <= 7*day:
		return TierYellow
	default:
		return TierGreen
	}
}

// TierFor classifies an optional deadline, returning TierGray when unset.
func TierFor(deadline *time.Time, now time.Time) Tier {
	if deadline == nil {
		return TierGray
	}
	return Classify(*deadline, now)
}

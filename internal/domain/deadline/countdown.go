package deadline

import "time"

// Countdown breaks the time remaining to a deadline into civil units.
// Hours, Minutes and Seconds stay below their natural modulus; Days is
// unbounded.
type Countdown struct {
	Days    int  `json:"days"`
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
}

// Remaining computes the countdown from now to deadline. A deadline at or
// before now yields an expired countdown with all numeric fields zero.
// Fractional seconds are discarded.
func Remaining(deadline, now time.Time) Countdown {
	diff := deadline.Sub(now)
	if diff <= 0 {
		return Countdown{Expired: true}
	}

	return Countdown{
		Days:    int(diff / day),
		Hours:   int(diff % day / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}

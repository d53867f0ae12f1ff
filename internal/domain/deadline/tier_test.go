package deadline_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/symbiosecorp/dashboard001/internal/domain/deadline"
)

func TestClassify(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		remaining time.Duration
		want      deadline.Tier
	}{
		{"one hour overdue", -time.Hour, deadline.TierRed},
		{"due right now", 0, deadline.TierRed},
		{"thirty minutes out", 30 * time.Minute, deadline.TierRed},
		{"exactly one day", 24 * time.Hour, deadline.TierRed},
		{"just past one day", 24*time.Hour + time.Second, deadline.TierOrange},
		{"two days", 48 * time.Hour, deadline.TierOrange},
		{"exactly three days", 72 * time.Hour, deadline.TierOrange},
		{"just past three days", 72*time.Hour + time.Second, deadline.TierYellow},
		{"exactly seven days", 7 * 24 * time.Hour, deadline.TierYellow},
		{"just past seven days", 7*24*time.Hour + time.Second, deadline.TierGreen},
		{"ten days", 10 * 24 * time.Hour, deadline.TierGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, deadline.Classify(now.Add(tt.remaining), now))
		})
	}
}

func TestClassify_PastDeadlinesAreRed(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	for days := 1; days <= 30; days++ {
		past := now.AddDate(0, 0, -days)
		require.Equal(t, deadline.TierRed, deadline.Classify(past, now))
	}
}

func TestTierFor(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	require.Equal(t, deadline.TierGray, deadline.TierFor(nil, now))

	due := now.AddDate(0, 0, 10)
	require.Equal(t, deadline.TierGreen, deadline.TierFor(&due, now))
}

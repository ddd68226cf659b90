package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name   string
		aStart string
		aEnd   string
		bStart string
		bEnd   string
		want   bool
	}{
		{
			name:   "back to back windows do not overlap",
			aStart: "2026-06-01T10:00:00Z", aEnd: "2026-06-01T11:00:00Z",
			bStart: "2026-06-01T11:00:00Z", bEnd: "2026-06-01T12:00:00Z",
			want: false,
		},
		{
			name:   "one minute past the boundary overlaps",
			aStart: "2026-06-01T10:00:00Z", aEnd: "2026-06-01T11:01:00Z",
			bStart: "2026-06-01T11:00:00Z", bEnd: "2026-06-01T12:00:00Z",
			want: true,
		},
		{
			name:   "contained window overlaps",
			aStart: "2026-06-01T10:30:00Z", aEnd: "2026-06-01T10:45:00Z",
			bStart: "2026-06-01T10:00:00Z", bEnd: "2026-06-01T11:00:00Z",
			want: true,
		},
		{
			name:   "identical windows overlap",
			aStart: "2026-06-01T10:00:00Z", aEnd: "2026-06-01T11:00:00Z",
			bStart: "2026-06-01T10:00:00Z", bEnd: "2026-06-01T11:00:00Z",
			want: true,
		},
		{
			name:   "disjoint windows do not overlap",
			aStart: "2026-06-01T08:00:00Z", aEnd: "2026-06-01T09:00:00Z",
			bStart: "2026-06-01T11:00:00Z", bEnd: "2026-06-01T12:00:00Z",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(
				mustTime(t, tt.aStart), mustTime(t, tt.aEnd),
				mustTime(t, tt.bStart), mustTime(t, tt.bEnd),
			)
			assert.Equal(t, tt.want, got)

			// Пересечение симметрично
			reversed := Overlaps(
				mustTime(t, tt.bStart), mustTime(t, tt.bEnd),
				mustTime(t, tt.aStart), mustTime(t, tt.aEnd),
			)
			assert.Equal(t, tt.want, reversed)
		})
	}
}

func TestValidateWindow(t *testing.T) {
	policy := DefaultBookingPolicy()
	now := mustTime(t, "2026-06-01T09:00:00Z")

	tests := []struct {
		name    string
		start   string
		end     string
		wantErr bool
	}{
		{"valid one hour window", "2026-06-01T14:00:00Z", "2026-06-01T15:00:00Z", false},
		{"exactly max duration is allowed", "2026-06-01T14:00:00Z", "2026-06-01T16:00:00Z", false},
		{"one minute over max duration", "2026-06-01T14:00:00Z", "2026-06-01T16:01:00Z", true},
		{"start equals end", "2026-06-01T14:00:00Z", "2026-06-01T14:00:00Z", true},
		{"start after end", "2026-06-01T15:00:00Z", "2026-06-01T14:00:00Z", true},
		{"start in the past", "2026-06-01T08:30:00Z", "2026-06-01T09:30:00Z", true},
		{"start equals now is allowed", "2026-06-01T09:00:00Z", "2026-06-01T10:00:00Z", false},
		{"before opening hour", "2026-06-02T07:00:00Z", "2026-06-02T08:30:00Z", true},
		{"opens exactly at open hour", "2026-06-02T08:00:00Z", "2026-06-02T09:00:00Z", false},
		{"ends exactly at close hour", "2026-06-01T21:00:00Z", "2026-06-01T22:00:00Z", false},
		{"ends past close hour", "2026-06-01T21:00:00Z", "2026-06-01T22:30:00Z", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := policy.ValidateWindow(mustTime(t, tt.start), mustTime(t, tt.end), now)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidWindow)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateWindowNormalizesToUTC(t *testing.T) {
	policy := DefaultBookingPolicy()
	now := mustTime(t, "2026-06-01T09:00:00Z")

	moscow := time.FixedZone("MSK", 3*60*60)
	// 17:00 MSK == 14:00 UTC, внутри рабочих часов
	start := time.Date(2026, 6, 1, 17, 0, 0, 0, moscow)
	end := time.Date(2026, 6, 1, 18, 0, 0, 0, moscow)

	assert.NoError(t, policy.ValidateWindow(start, end, now))
}

func TestPickupOpensAt(t *testing.T) {
	policy := DefaultBookingPolicy()
	start := mustTime(t, "2026-06-01T14:00:00Z")

	assert.Equal(t, mustTime(t, "2026-06-01T13:50:00Z"), policy.PickupOpensAt(start))
}

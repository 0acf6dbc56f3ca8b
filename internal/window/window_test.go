package window

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Week of Monday 2025-03-03 .. Sunday 2025-03-09.
func civil(day, hour, min int) time.Time {
	return time.Date(2025, 3, day, hour, min, 0, 0, time.UTC)
}

func TestPlacement(t *testing.T) {
	w := Placement(civil(5, 14, 0)) // Wednesday afternoon

	assert.Equal(t, civil(8, 9, 0), w.From) // Saturday 09:00
	assert.Equal(t, civil(9, 23, 0), w.To)  // Sunday 23:00
	assert.True(t, w.Contains(civil(8, 9, 0)))
	assert.True(t, w.Contains(civil(9, 12, 30)))
	assert.False(t, w.Contains(civil(8, 8, 59)))
	assert.False(t, w.Contains(civil(9, 23, 1)))
}

func TestReservationEdit(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		from time.Time
	}{
		{
			name: "midweek anchors to the upcoming sunday",
			now:  civil(5, 14, 0),
			from: civil(9, 23, 0),
		},
		{
			name: "sunday night is inside its own window",
			now:  civil(9, 23, 30),
			from: civil(9, 23, 0),
		},
		{
			name: "early monday anchors to the sunday just passed",
			now:  civil(10, 8, 0),
			from: civil(9, 23, 0),
		},
		{
			name: "monday after 09 anchors to the next sunday",
			now:  civil(10, 10, 0),
			from: civil(16, 23, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ReservationEdit(tt.now)
			assert.Equal(t, tt.from, w.From)
			assert.Equal(t, tt.from.Add(10*time.Hour), w.To)
		})
	}
}

func TestReservationEditSpansMondayMorning(t *testing.T) {
	// Monday 08:00 must be accepted, Monday 10:00 must not.
	assert.True(t, ReservationEdit(civil(10, 8, 0)).Contains(civil(10, 8, 0)))
	assert.False(t, ReservationEdit(civil(10, 10, 0)).Contains(civil(10, 10, 0)))
}

func TestAvailabilityEdit(t *testing.T) {
	w := AvailabilityEdit(civil(6, 10, 0)) // Thursday

	assert.Equal(t, civil(3, 18, 0), w.From) // Monday 18:00
	assert.Equal(t, civil(8, 9, 0), w.To)    // Saturday 09:00
	assert.True(t, w.Contains(civil(6, 10, 0)))
	assert.False(t, w.Contains(civil(3, 17, 59)))
	assert.False(t, w.Contains(civil(8, 9, 1)))
}

func TestDelivery(t *testing.T) {
	w := Delivery(civil(5, 14, 0))

	assert.Equal(t, civil(12, 8, 0), w.From) // next Wednesday 08:00
	assert.Equal(t, civil(14, 18, 0), w.To)  // next Friday 18:00
	assert.True(t, w.Contains(civil(13, 12, 0)))
	// A Saturday delivery is always out of range.
	assert.False(t, w.Contains(civil(15, 11, 0)))
	assert.False(t, w.Contains(civil(8, 11, 0)))
}

// The three gated windows tile the week without overlapping: interior
// points never belong to more than one of them.
func TestWindowsDisjoint(t *testing.T) {
	start := civil(3, 0, 30) // Monday 00:30
	for i := 0; i < 7*24; i++ {
		at := start.Add(time.Duration(i) * time.Hour)

		hits := 0
		if Placement(at).Contains(at) {
			hits++
		}
		if ReservationEdit(at).Contains(at) {
			hits++
		}
		if AvailabilityEdit(at).Contains(at) {
			hits++
		}
		assert.LessOrEqualf(t, hits, 1, "instant %s is inside %d windows", at, hits)
	}
}

// Window computation is a pure function of the anchor: re-deriving from an
// identical instant always yields the same interval.
func TestDeterministic(t *testing.T) {
	now := civil(7, 3, 15)
	assert.Equal(t, Placement(now), Placement(now))
	assert.Equal(t, ReservationEdit(now), ReservationEdit(now))
	assert.Equal(t, AvailabilityEdit(now), AvailabilityEdit(now))
	assert.Equal(t, Delivery(now), Delivery(now))
}

func TestNextRollover(t *testing.T) {
	// Mid-week maps to this week's Sunday 23:00.
	assert.Equal(t, civil(9, 23, 0), NextRollover(civil(5, 14, 0)))
	// Just before the boundary still belongs to this cycle.
	assert.Equal(t, civil(9, 23, 0), NextRollover(civil(9, 22, 59)))
	// Exactly on the boundary schedules a full week out.
	assert.Equal(t, civil(16, 23, 0), NextRollover(civil(9, 23, 0)))
	assert.Equal(t, civil(16, 23, 0), NextRollover(civil(9, 23, 30)))
}

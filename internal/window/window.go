package window

import "time"

// Window is a computed civil-time interval. Bounds are inclusive:
// Contains reports from <= t <= to, matching the validation behavior of
// every caller. Windows are never persisted, they are recomputed from the
// anchor instant on each query.
type Window struct {
	From time.Time
	To   time.Time
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// startOfWeek returns Monday 00:00 of the ISO week containing t.
func startOfWeek(t time.Time) time.Time {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7
	}
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	return midnight.AddDate(0, 0, -(wd - 1))
}

// at places a point inside a week: weekday is ISO (1 = Monday .. 7 = Sunday).
func at(weekStart time.Time, weekday, hour int) time.Time {
	day := weekStart.AddDate(0, 0, weekday-1)
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, day.Location())
}

// Placement is the interval during which customers may submit orders:
// Saturday 09:00 of the current week plus 38 hours, ending Sunday 23:00
// when the weekly rollover fires.
func Placement(now time.Time) Window {
	from := at(startOfWeek(now), 6, 9)
	return Window{From: from, To: from.Add(38 * time.Hour)}
}

// ReservationEdit is the interval during which farmers may declare
// reservation counts: Sunday 23:00 plus 10 hours. The window spans the
// Sunday-night boundary, so early on Monday (hour <= 9) the anchor is the
// Sunday that has just passed, not the upcoming one.
func ReservationEdit(now time.Time) Window {
	from := at(startOfWeek(now), 7, 23)
	if now.Weekday() == time.Monday && now.Hour() <= 9 {
		from = from.AddDate(0, 0, -7)
	}
	return Window{From: from, To: from.Add(10 * time.Hour)}
}

// AvailabilityEdit is the interval during which farmers may declare
// available counts: Monday 18:00 through Saturday 09:00 of the current week.
func AvailabilityEdit(now time.Time) Window {
	week := startOfWeek(now)
	return Window{From: at(week, 1, 18), To: at(week, 6, 9)}
}

// NextRollover returns the next Sunday 23:00 strictly after now. An
// instant exactly on the boundary belongs to the cycle that just closed,
// so it maps a full week ahead.
func NextRollover(now time.Time) time.Time {
	fire := at(startOfWeek(now), 7, 23)
	if !fire.After(now) {
		fire = fire.AddDate(0, 0, 7)
	}
	return fire
}

// Delivery is the interval an order's requested delivery date must fall
// into: Wednesday 08:00 through Friday 18:00 of the following week.
func Delivery(now time.Time) Window {
	next := startOfWeek(now).AddDate(0, 0, 7)
	return Window{From: at(next, 3, 8), To: at(next, 5, 18)}
}

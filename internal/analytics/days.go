package analytics

import "time"

// civilDay maps t to midnight UTC of its calendar date in loc. The result is
// only used as an ordered day key: stepping it with AddDate never crosses a
// daylight-saving transition.
func civilDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// localMidnight converts a civil day key back to midnight in loc.
func localMidnight(day time.Time, loc *time.Location) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, loc)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// dayRange is an inclusive span of civil days.
type dayRange struct {
	first time.Time
	last  time.Time
}

// window returns the windowDays-long range ending on now's calendar date.
func window(now time.Time, windowDays int) dayRange {
	last := civilDay(now, now.Location())
	return dayRange{
		first: last.AddDate(0, 0, -(windowDays - 1)),
		last:  last,
	}
}

// previous returns the range of equal length that ends the day before r starts.
func (r dayRange) previous() dayRange {
	length := r.days()
	last := r.first.AddDate(0, 0, -1)
	return dayRange{
		first: last.AddDate(0, 0, -(length - 1)),
		last:  last,
	}
}

// days counts the civil days in r. Keys are UTC midnights, so every day is
// exactly 24 hours long.
func (r dayRange) days() int {
	return int(r.last.Sub(r.first)/(24*time.Hour)) + 1
}

func (r dayRange) contains(day time.Time) bool {
	return !day.Before(r.first) && !day.After(r.last)
}

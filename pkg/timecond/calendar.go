package timecond

import "time"

type monthDay struct {
	month time.Month
	day   int
}

// Solar-calendar public holidays only. Lunar new year (Tết) and the Hung Kings
// commemoration move every year and are not computed.
var holidays = map[monthDay]struct{}{
	{month: time.January, day: 1}:   {},
	{month: time.April, day: 30}:    {},
	{month: time.May, day: 1}:       {},
	{month: time.September, day: 2}: {},
}

// IsWeekend ...
func IsWeekend(d time.Time) bool {
	switch d.Weekday() {
	case time.Friday, time.Saturday, time.Sunday:
		return true
	default:
		return false
	}
}

// IsWeekday is Monday to Thursday, Friday belongs to the weekend
func IsWeekday(d time.Time) bool {
	switch d.Weekday() {
	case time.Monday, time.Tuesday, time.Wednesday, time.Thursday:
		return true
	default:
		return false
	}
}

// IsSummer ...
func IsSummer(d time.Time) bool {
	m := d.Month()
	return m >= time.June && m <= time.August
}

// IsAutumn ...
func IsAutumn(d time.Time) bool {
	m := d.Month()
	return m >= time.September && m <= time.November
}

// IsHoliday ...
func IsHoliday(d time.Time) bool {
	_, ok := holidays[monthDay{month: d.Month(), day: d.Day()}]
	return ok
}

// Matches ...
func (f Flag) Matches(d time.Time) bool {
	switch f {
	case FlagWeekend:
		return IsWeekend(d)
	case FlagWeekday:
		return IsWeekday(d)
	case FlagTuesday:
		return d.Weekday() == time.Tuesday
	case FlagSummer:
		return IsSummer(d)
	case FlagAutumn:
		return IsAutumn(d)
	case FlagHoliday:
		return IsHoliday(d)
	default:
		return false
	}
}

// Unmet returns the flags of the condition not satisfied by d, in reporting order.
// Calendar fields are read in the location of d.
func (c Condition) Unmet(d time.Time) []Flag {
	var result []Flag
	for _, f := range c.Flags() {
		if !f.Matches(d) {
			result = append(result, f)
		}
	}
	return result
}

package timezone

import (
	"strings"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
	// e.g. "24 Oct, 2024"
	DisplayDateLayout = "02 Jan, 2006"
)

var IST *time.Location // UTC+5:30 - India Standard Time

func init() {
	IST = time.FixedZone("IST", 5*60*60+30*60)
}

// ParseCalendarDate parses a YYYY-MM-DD search date as midnight IST.
func ParseCalendarDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	t, err := time.ParseInLocation(DateLayout, s, IST)
	if err != nil {
		return time.Time{}, &time.ParseError{
			Layout:  DateLayout,
			Value:   s,
			Message: ": unable to parse calendar date",
		}
	}
	return t, nil
}

// AtClock returns the instant hour:minute IST on the given date. Hours past
// 23 roll over into the following days.
func AtClock(date time.Time, hour, minute int) time.Time {
	d := date.In(IST)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, IST).
		Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func FormatClock(t time.Time) string {
	return t.In(IST).Format(ClockLayout)
}

func FormatDisplayDate(t time.Time) string {
	return t.In(IST).Format(DisplayDateLayout)
}

// ParseClock parses an HH:MM time of day into minutes past midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse(ClockLayout, strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

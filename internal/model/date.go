package model

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of a calendar day.
const DateLayout = "2006-01-02"

// Date is a calendar day.  Time-of-day and zone are discarded when a Date
// is built, so two Dates compare equal whenever they name the same day.
type Date struct {
	t time.Time
}

// NewDate returns the calendar day of t, in t's own location.
func NewDate(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate accepts either a bare day (2006-01-02) or an RFC 3339
// timestamp.  For timestamps the day printed in the string is kept, so
// "2025-07-04T23:30:00+02:00" is July 4th.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Date{}, &ValidationError{Field: "date", Message: "is required"}
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, &ValidationError{Field: "date", Message: "must be YYYY-MM-DD or an RFC 3339 timestamp"}
	}
	return NewDate(t), nil
}

// MustParseDate is ParseDate for literals known to be valid.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (d Date) IsZero() bool { return d.t.IsZero() }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool { return d.t.Equal(o.t) }
func (d Date) Time() time.Time { return d.t }
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }
func (d Date) String() string { return d.t.Format(DateLayout) }
func (d Date) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return &ValidationError{Field: "date", Message: "must be a string"}
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// DateRange is a closed interval of days: both Start and End are booked.
type DateRange struct {
	Start Date `json:"start_date"`
	End   Date `json:"end_date"`
}

// NewDateRange validates start <= end.
func NewDateRange(start, end Date) (DateRange, error) {
	if start.IsZero() {
		return DateRange{}, &ValidationError{Field: "start_date", Message: "is required"}
	}
	if end.IsZero() {
		return DateRange{}, &ValidationError{Field: "end_date", Message: "is required"}
	}
	if end.Before(start) {
		return DateRange{}, &ValidationError{Field: "end_date", Message: "must not be before start_date"}
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two closed ranges share at least one day.  A
// range ending on day X and another starting on day X overlap.
func (r DateRange) Overlaps(o DateRange) bool {
	return !(r.End.Before(o.Start) || r.Start.After(o.End))
}

// Days is the number of calendar days covered, boundaries included.
func (r DateRange) Days() int {
	return int(r.End.t.Sub(r.Start.t).Hours()/24) + 1
}

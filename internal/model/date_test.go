package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDateAcceptsDayAndTimestamp(t *testing.T) {
	cases := map[string]string{
		"2025-07-04":                "2025-07-04",
		" 2025-07-04 ":              "2025-07-04",
		"2025-07-04T23:30:00+02:00": "2025-07-04",
		"2025-07-04T00:15:00Z":      "2025-07-04",
		"2025-07-04T10:00:00.123Z":  "2025-07-04",
	}
	for in, want := range cases {
		d, err := ParseDate(in)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", in, err)
		}
		if d.String() != want {
			t.Fatalf("ParseDate(%q) = %s, want %s", in, d, want)
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "04/07/2025", "tomorrow", "2025-13-01"} {
		if _, err := ParseDate(in); !IsValidation(err) {
			t.Fatalf("ParseDate(%q) err = %v, want ValidationError", in, err)
		}
	}
}

func TestDateJSONRoundTripIsDayOnly(t *testing.T) {
	d := NewDate(time.Date(2025, 8, 1, 17, 45, 0, 0, time.UTC))
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2025-08-01"` {
		t.Fatalf("marshal = %s", b)
	}
	var back Date
	if err := json.Unmarshal([]byte(`"2025-08-01T09:00:00Z"`), &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Fatalf("unmarshal = %s, want %s", back, d)
	}
}

func mustRange(t *testing.T, start, end string) DateRange {
	t.Helper()
	r, err := NewDateRange(MustParseDate(start), MustParseDate(end))
	if err != nil {
		t.Fatalf("range %s..%s: %v", start, end, err)
	}
	return r
}

func TestNewDateRangeRejectsInvertedBounds(t *testing.T) {
	_, err := NewDateRange(MustParseDate("2025-06-10"), MustParseDate("2025-06-09"))
	if !IsValidation(err) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, err := NewDateRange(MustParseDate("2025-06-10"), MustParseDate("2025-06-10")); err != nil {
		t.Fatalf("single day range: %v", err)
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	cases := []struct {
		a, b [2]string
		want bool
	}{
		{[2]string{"2025-06-01", "2025-06-05"}, [2]string{"2025-06-06", "2025-06-10"}, false},
		{[2]string{"2025-06-01", "2025-06-05"}, [2]string{"2025-06-05", "2025-06-10"}, true},
		{[2]string{"2025-06-01", "2025-06-30"}, [2]string{"2025-06-10", "2025-06-12"}, true},
		{[2]string{"2025-06-10", "2025-06-10"}, [2]string{"2025-06-10", "2025-06-10"}, true},
		{[2]string{"2025-05-01", "2025-05-31"}, [2]string{"2025-06-01", "2025-06-02"}, false},
	}
	for _, tc := range cases {
		a := mustRange(t, tc.a[0], tc.a[1])
		b := mustRange(t, tc.b[0], tc.b[1])
		if got := a.Overlaps(b); got != tc.want {
			t.Fatalf("%v overlaps %v = %v, want %v", tc.a, tc.b, got, tc.want)
		}
		if a.Overlaps(b) != b.Overlaps(a) {
			t.Fatalf("overlap not symmetric for %v and %v", tc.a, tc.b)
		}
		if !a.Overlaps(a) {
			t.Fatalf("%v does not overlap itself", tc.a)
		}
	}
}

func TestDateRangeDays(t *testing.T) {
	if n := mustRange(t, "2025-06-01", "2025-06-07").Days(); n != 7 {
		t.Fatalf("days = %d, want 7", n)
	}
}

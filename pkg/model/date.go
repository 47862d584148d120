package model

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day component. A pair of Dates
// describes the half-open interval [start, end): the start night is
// occupied, the end date is checkout day and may equal the next booking's
// check-in without conflict.
type Date struct {
	t time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected format %s", s, dateLayout)
	}
	return Date{t: t.UTC()}, nil
}

func (d Date) Before(other Date) bool { return d.t.Before(other.t) }

func (d Date) After(other Date) bool { return d.t.After(other.t) }

func (d Date) Equal(other Date) bool { return d.t.Equal(other.t) }

func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays returns the date n calendar days later.
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.t.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("invalid date literal %s", s)
	}
	parsed, err := ParseDate(s[1 : len(s)-1])
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Overlaps reports whether the half-open intervals [s1, e1) and [s2, e2)
// share at least one night: s1 < e2 && s2 < e1. Touching endpoints never
// overlap, and zero-length intervals overlap nothing.
func Overlaps(s1, e1, s2, e2 Date) bool {
	return s1.Before(e2) && s2.Before(e1)
}

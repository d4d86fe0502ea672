package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// VotingDayLayout is the wire and storage format of a voting day.
const VotingDayLayout = "2006-01-02"

// VotingDay is a calendar date with no time of day and no zone.
// The zero value means "unset". Values are comparable with ==.
type VotingDay struct {
	t time.Time // midnight UTC
}

// NewVotingDay builds a day from its calendar parts. Out of range parts are
// normalized the same way time.Date does.
func NewVotingDay(year int, month time.Month, day int) VotingDay {
	return VotingDay{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// VotingDayOf returns the calendar day that t falls on in loc.
func VotingDayOf(t time.Time, loc *time.Location) VotingDay {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := t.In(loc).Date()
	return NewVotingDay(y, m, d)
}

// VotingDayFromDate converts a DATE column value, which drivers hand back as
// midnight UTC, into a VotingDay.
func VotingDayFromDate(t time.Time) VotingDay {
	y, m, d := t.UTC().Date()
	return NewVotingDay(y, m, d)
}

// ParseVotingDay parses a YYYY-MM-DD string.
func ParseVotingDay(s string) (VotingDay, error) {
	t, err := time.Parse(VotingDayLayout, s)
	if err != nil {
		return VotingDay{}, fmt.Errorf("%w: voting day must be YYYY-MM-DD, got %q", ErrInvalidInput, s)
	}
	return VotingDay{t: t}, nil
}

func (d VotingDay) IsZero() bool { return d.t.IsZero() }

// Time returns midnight UTC of the day, suitable for a DATE column.
func (d VotingDay) Time() time.Time { return d.t }

func (d VotingDay) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(VotingDayLayout)
}

func (d VotingDay) AddDays(n int) VotingDay { return VotingDay{t: d.t.AddDate(0, 0, n)} }

func (d VotingDay) Before(o VotingDay) bool { return d.t.Before(o.t) }

func (d VotingDay) After(o VotingDay) bool { return d.t.After(o.t) }

// Bounds returns the half-open interval [start, end) covering the day in loc.
func (d VotingDay) Bounds(loc *time.Location) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, day := d.t.Date()
	start := time.Date(y, m, day, 0, 0, 0, 0, loc)
	end := time.Date(y, m, day+1, 0, 0, 0, 0, loc)
	return start, end
}

// LockKey is a stable integer identifying the day: the number of days since
// the Unix epoch. Used to key per-day database locks.
func (d VotingDay) LockKey() int64 {
	return d.t.Unix() / int64(24*time.Hour/time.Second)
}

func (d VotingDay) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *VotingDay) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = VotingDay{}
		return nil
	}
	parsed, err := ParseVotingDay(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d VotingDay) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *VotingDay) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*d = VotingDay{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: voting day must be a string", ErrInvalidInput)
	}
	return d.UnmarshalText([]byte(s))
}

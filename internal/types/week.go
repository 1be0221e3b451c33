// Package types implements special types for wishweek.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Week is an ISO 8601 calendar week. It is backed by the time instant
// of the week's Monday at midnight UTC.
type Week time.Time

// NewWeek returns the Week for an ISO year and week number.
func NewWeek(year, week int) Week {
	// January 4 is always in week 1
	t := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	t = mondayOf(t)

	return Week(t.AddDate(0, 0, (week-1)*7))
}

// WeekOf returns the Week in which a time occurs.
func WeekOf(t time.Time) Week {
	return Week(mondayOf(t.In(time.UTC)))
}

// mondayOf rolls a time back to the Monday of its week at midnight.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -offset)
}

// String returns the week formatted as YYYY-Www, e.g. "2022-W07".
func (w Week) String() string {
	year, week := time.Time(w).ISOWeek()
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// ParseWeek parses a "YYYY-Www" string and returns the Week value it represents.
func ParseWeek(s string) (Week, error) {
	year, week, ok := parseWeekString(s)
	if !ok {
		return Week{}, fmt.Errorf("parsing %q as week: format must be YYYY-Www", s)
	}

	if week < 1 || week > 53 {
		return Week{}, fmt.Errorf("parsing %q as week: week number must be between 1 and 53", s)
	}

	w := NewWeek(year, week)

	// Weeks 1-52 always exist, week 53 only in long years
	if w.String() != s {
		return Week{}, fmt.Errorf("parsing %q as week: year %d has no week %d", s, year, week)
	}

	return w, nil
}

// parseWeekString splits a "YYYY-Www" string into its year and week number.
func parseWeekString(s string) (year, week int, ok bool) {
	parts := strings.Split(s, "-W")
	if len(parts) != 2 || len(parts[0]) != 4 || len(parts[1]) != 2 {
		return 0, 0, false
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}

	week, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}

	return year, week, true
}

// MarshalJSON implements the json.Marshaler interface.
func (w Week) MarshalJSON() ([]byte, error) {
	return []byte(`"` + w.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The week is expected to be a string in "YYYY-Www" format.
func (w *Week) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	week, err := ParseWeek(value)
	if err != nil {
		return err
	}

	*w = week
	return nil
}

// UnmarshalParam parses a week from a query or URI parameter.
func (w *Week) UnmarshalParam(param string) error {
	if param == "" {
		*w = Week{}
		return nil
	}

	week, err := ParseWeek(param)
	if err != nil {
		return err
	}

	*w = week
	return nil
}

// Scan reads the value from the database.
func (w *Week) Scan(value interface{}) (err error) {
	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	*w = Week(nullTime.Time.In(time.UTC))
	return err
}

// Value returns the value for the SQL driver to write to the database.
func (w Week) Value() (driver.Value, error) {
	return time.Time(w), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Week) GormDataType() string {
	return "date"
}

// IsZero reports if the week is the zero value.
func (w Week) IsZero() bool {
	return time.Time(w).IsZero()
}

// Monday returns the first instant of the week.
func (w Week) Monday() time.Time {
	return time.Time(w)
}

// Next returns the week after w.
func (w Week) Next() Week {
	return Week(time.Time(w).AddDate(0, 0, 7))
}

// Previous returns the week before w.
func (w Week) Previous() Week {
	return Week(time.Time(w).AddDate(0, 0, -7))
}

// Before reports whether the week instant w is before v.
func (w Week) Before(v Week) bool {
	return time.Time(w).Before(time.Time(v))
}

// After reports whether the week instant w is after v.
func (w Week) After(v Week) bool {
	return time.Time(w).After(time.Time(v))
}

// Equal reports whether w and v represent the same week.
func (w Week) Equal(v Week) bool {
	return time.Time(w).Equal(time.Time(v))
}

// Contains reports whether the time instant is in the week.
func (w Week) Contains(t time.Time) bool {
	return WeekOf(t).Equal(w)
}

package calendar

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDay is returned by ParseDay for names outside the week.
var ErrUnknownDay = errors.New("unknown day")

// Day is a day of the week.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var dayNames = [...]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Days lists the week in ordinal order.
func Days() []Day {
	return []Day{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Day) String() string {
	if d < Monday || d > Sunday {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayNames[d]
}

// ParseDay resolves a day name, ignoring case and surrounding spaces.
func ParseDay(name string) (Day, error) {
	for i, n := range dayNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, name)
}

// DayType is the weekday/weekend classification of a day.
type DayType int

const (
	Weekday DayType = iota
	Weekend
)

func (t DayType) String() string {
	if t == Weekend {
		return "Weekend"
	}
	return "Weekday"
}

// MarshalText renders the type as its literal name.
func (t DayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// GetDayType returns Weekend for Saturday and Sunday, Weekday otherwise.
func GetDayType(day Day) DayType {
	switch day {
	case Saturday, Sunday:
		return Weekend
	default:
		return Weekday
	}
}

// Package timetool converts wall-clock times between IANA time zones.
package timetool

import (
	"context"
	"errors"
	"fmt"
	"time"
	_ "time/tzdata"
)

const (
	Name        = "convert_time"
	Description = "A tool to convert the time from one time zone to another. " +
		"Input should include the source time zone, target time zone, and the time to convert."

	// Layout is the only accepted input format, and the output format.
	Layout = "2006-01-02 15:04:05"
)

var errUnknownZone = errors.New("unknown time zone")

type Tool struct{}

// Run converts dateTime, read as a wall-clock time in from, to the zone to.
// Failures are reported in the returned message.
func (t *Tool) Run(from, to, dateTime string) (result string) {
	defer func() {
		if p := recover(); p != nil {
			result = fmt.Sprintf("An error occurred: %v", p)
		}
	}()

	converted, err := Convert(from, to, dateTime)
	switch {
	case err == nil:
		return fmt.Sprintf("Converting time from %s to %s is %s.", from, to, converted.Format(Layout))
	case errors.Is(err, errUnknownZone):
		return fmt.Sprintf("Error: Time zone given ('%s' or '%s') is not recognized.", from, to)
	case isParseError(err):
		return fmt.Sprintf("Error: The time provided ('%s') is not in the correct format. Please use 'YYYY-MM-DD HH:MM:SS'.", dateTime)
	default:
		return fmt.Sprintf("An error occurred: %s", err)
	}
}

// RunAsync is not supported; use Run.
func (t *Tool) RunAsync(ctx context.Context, from, to, dateTime string) (string, error) {
	return "", errors.ErrUnsupported
}

// Convert parses dateTime before looking up either zone, so a malformed time
// is reported ahead of an unknown zone.
func Convert(from, to, dateTime string) (time.Time, error) {
	wall, err := time.Parse(Layout, dateTime)
	if err != nil {
		return time.Time{}, err
	}

	src, err := loadZone(from)
	if err != nil {
		return time.Time{}, err
	}

	dst, err := loadZone(to)
	if err != nil {
		return time.Time{}, err
	}

	local := time.Date(wall.Year(), wall.Month(), wall.Day(),
		wall.Hour(), wall.Minute(), wall.Second(), 0, src)

	return local.In(dst), nil
}

func loadZone(name string) (*time.Location, error) {
	// LoadLocation maps "" to UTC and "Local" to the host zone; neither is an IANA name.
	if name == "" || name == "Local" {
		return nil, fmt.Errorf("%w: %q", errUnknownZone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errUnknownZone, err)
	}

	return loc, nil
}

func isParseError(err error) bool {
	var pe *time.ParseError
	return errors.As(err, &pe)
}

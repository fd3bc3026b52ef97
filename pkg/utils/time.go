package utils

import (
	"fmt"
	"sync/atomic"
	"time"
)

var displayLocation atomic.Pointer[time.Location]

func init() {
	displayLocation.Store(time.UTC)
}

// SetDisplayLocation sets the zone event dates are shown in. On error the zone is unchanged.
func SetDisplayLocation(name string) error {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	displayLocation.Store(loc)
	return nil
}

func DisplayLocation() *time.Location {
	return displayLocation.Load()
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(DisplayLocation()).Format("02 Jan 2006")
}

func FormatEventTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(DisplayLocation()).Format("02 Jan 2006 15:04")
}

package engine

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-worldclock/internal/config"
)

// Projection is the full decomposition of a projected instant: calendar
// components, the day/night classification and one rendering angle per clock
// hand. It is a plain value; callers recompute it on every tick.
type Projection struct {
	// Instant is the projected instant, expressed in the fixed zero-offset
	// calendar the components below were derived from.
	Instant time.Time

	Hour24    int     // [0,23]
	Minute    int     // [0,59]
	Second    int     // [0,59]
	Subsecond float64 // [0,1)

	// Hour12 is Hour24 mod 12. It is the base for the hour hand angle, not
	// a display value (0 stays 0, it is never rendered as "12").
	Hour12 int

	// IsDaytime is a fixed classification used only to pick the face tint.
	// It is not DST-aware and not latitude-aware.
	IsDaytime bool

	// Hand angles in degrees, clockwise from the 12 o'clock position.
	HourAngle   float64
	MinuteAngle float64
	SecondAngle float64

	// Digital is the compact HH:MM display string, 24-hour, zero-padded.
	// Seconds are deliberately truncated even though the analog second hand
	// is continuous.
	Digital string
}

// Project shifts referenceInstant by offsetHours fractional hours and
// decomposes the result. The offset is applied arithmetically, so the
// decomposition calendar is fixed to UTC and applies no further zone shift.
//
// The function is pure and cannot fail. offsetHours is not range-checked;
// out-of-range values simply wrap into an unusual calendar decomposition.
func Project(referenceInstant time.Time, offsetHours float64) Projection {
	projected := referenceInstant.Add(time.Duration(offsetHours * float64(time.Hour))).UTC()

	hour24, minute, second := projected.Clock()
	subsecond := float64(projected.Nanosecond()) / float64(time.Second)

	hour12 := hour24 % config.HoursOnDial

	fractionalSeconds := float64(second) + subsecond
	fractionalMinutes := float64(minute) + fractionalSeconds/config.SecondsPerMinute

	return Projection{
		Instant:     projected,
		Hour24:      hour24,
		Minute:      minute,
		Second:      second,
		Subsecond:   subsecond,
		Hour12:      hour12,
		IsDaytime:   hour24 >= config.DaytimeStartHour && hour24 < config.DaytimeEndHour,
		HourAngle:   (float64(hour12) + fractionalMinutes/config.MinutesPerHour) * config.DegreesPerHour,
		MinuteAngle: fractionalMinutes * config.DegreesPerTick,
		SecondAngle: fractionalSeconds * config.DegreesPerTick,
		Digital:     fmt.Sprintf(config.FormatDigitalTime, hour24, minute),
	}
}

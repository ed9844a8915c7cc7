package engine

import (
	"fmt"

	"github.com/tartampluch/go-worldclock/internal/config"
)

// FormatOffset renders a fractional-hour UTC offset as a sign-prefixed H:MM
// string, e.g. "+5:30" or "-8:00". A zero offset formats as "+0:00".
//
// The minute part is classified as exactly 0 or exactly 30: only a fraction
// of precisely 0.5 maps to ":30", every other fraction (including .25 and
// .75) maps to ":00". Do not generalize this policy silently.
func FormatOffset(offsetHours float64) string {
	sign := config.OffsetSignPlus
	magnitude := offsetHours
	if offsetHours < 0 {
		sign = config.OffsetSignMinus
		magnitude = -offsetHours
	}

	hours := int(magnitude)
	minutes := config.OffsetMinutesNone
	if magnitude-float64(hours) == config.OffsetHalfHour {
		minutes = config.OffsetMinutesHalf
	}

	return fmt.Sprintf(config.FormatOffsetString, sign, hours, minutes)
}

// Package caldate normalizes calendar dates that arrive as plain
// "YYYY-MM-DD" text with no time or timezone component.
//
// Feeding such text to a generic ISO parser silently interprets it as UTC
// midnight, which shifts the displayed calendar day by one on servers west
// of Greenwich. Parse therefore decomposes the literal into year/month/day
// integers and builds midnight in the server's local calendar instead.
package caldate

import (
	"strconv"
	"strings"
	"time"

	"github.com/rbiomeds/newsdesk/internal/apperr"
)

// DisplayLayout renders "Month DD, YYYY", e.g. "March 05, 2024".
const DisplayLayout = "January 02, 2006"

// Parse converts a "YYYY-MM-DD" string into midnight local time of that
// calendar day. An empty input yields the current instant. Calendar
// correctness is not checked here; time.Date normalizes out-of-range
// components the way the store would otherwise see them.
func Parse(text string) (time.Time, error) {
	if text == "" {
		return time.Now(), nil
	}

	parts := strings.Split(text, "-")
	if len(parts) != 3 {
		return time.Time{}, apperr.NewValidation("date must be formatted as YYYY-MM-DD")
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, apperr.NewValidationWrap("invalid year in date", err)
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, apperr.NewValidationWrap("invalid month in date", err)
	}
	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, apperr.NewValidationWrap("invalid day in date", err)
	}

	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), nil
}

// Display renders the stored instant as "Month DD, YYYY" in the server's
// local calendar, matching the interpretation Parse used to build it.
func Display(t time.Time) string {
	return t.In(time.Local).Format(DisplayLayout)
}

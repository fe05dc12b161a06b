package registry

import (
	"time"

	"github.com/alwitt/timelock/models"
)

const (
	// MinCalendarYear earliest year DateToTimestamp accepts
	MinCalendarYear = 2024
	// MaxCalendarYear latest year DateToTimestamp accepts
	MaxCalendarYear = 2034

	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// epochYear calendar accumulation starts at the Unix epoch
const epochYear = 1970

// daysPerMonth non-leap-year month lengths, January first
var daysPerMonth = [12]uint64{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// isLeapYear proleptic Gregorian leap year rule
func isLeapYear(year uint) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

/*
DateToTimestamp convert calendar components to an absolute UTC timestamp

Deterministic and stateless. Whole-year durations are accumulated from 1970
up to the target year using the Gregorian leap rule, then whole months within
the target year with that year's February length, then day, hour, and minute
offsets.

The day component is bounded only by [1, 31]; it is deliberately not checked
against the specific month's length. A day past the end of the month (e.g.
February 30) is accepted and rolls forward into the following month.

	@param year uint - calendar year, 2024 through 2034
	@param month uint - calendar month, 1 through 12
	@param day uint - day of month, 1 through 31
	@param hour uint - hour of day, 0 through 23
	@param minute uint - minute of hour, 0 through 59
	@returns UTC timestamp of the described instant
*/
func DateToTimestamp(year, month, day, hour, minute uint) (time.Time, error) {
	if year < MinCalendarYear || year > MaxCalendarYear {
		return time.Time{}, models.NewFailure(
			models.FailureKindInvalidArgument,
			"year %d outside [%d, %d]", year, MinCalendarYear, MaxCalendarYear,
		)
	}
	if month < 1 || month > 12 {
		return time.Time{}, models.NewFailure(
			models.FailureKindInvalidArgument, "month %d outside [1, 12]", month,
		)
	}
	if day < 1 || day > 31 {
		return time.Time{}, models.NewFailure(
			models.FailureKindInvalidArgument, "day %d outside [1, 31]", day,
		)
	}
	if hour > 23 {
		return time.Time{}, models.NewFailure(
			models.FailureKindInvalidArgument, "hour %d outside [0, 23]", hour,
		)
	}
	if minute > 59 {
		return time.Time{}, models.NewFailure(
			models.FailureKindInvalidArgument, "minute %d outside [0, 59]", minute,
		)
	}

	var totalDays uint64
	for y := uint(epochYear); y < year; y++ {
		if isLeapYear(y) {
			totalDays += 366
		} else {
			totalDays += 365
		}
	}

	for m := uint(1); m < month; m++ {
		monthLength := daysPerMonth[m-1]
		if m == 2 && isLeapYear(year) {
			monthLength = 29
		}
		totalDays += monthLength
	}

	totalDays += uint64(day) - 1

	totalSeconds := totalDays*secondsPerDay +
		uint64(hour)*secondsPerHour +
		uint64(minute)*secondsPerMinute

	return time.Unix(int64(totalSeconds), 0).UTC(), nil
}

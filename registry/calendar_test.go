package registry_test

import (
	"testing"
	"time"

	"github.com/alwitt/timelock/models"
	"github.com/alwitt/timelock/registry"
	"github.com/stretchr/testify/assert"
)

// TestDateToTimestampKnownDates checks the conversion against the standard
// library calendar for known instants.
func TestDateToTimestampKnownDates(t *testing.T) {
	assert := assert.New(t)

	type testCase struct {
		year, month, day, hour, minute uint
	}
	cases := []testCase{
		{2024, 1, 1, 0, 0},
		{2024, 2, 29, 0, 0},  // leap day
		{2024, 3, 1, 0, 0},   // first day after a leap February
		{2024, 12, 31, 23, 59},
		{2025, 6, 15, 8, 30},
		{2028, 2, 29, 12, 0}, // later leap year
		{2030, 7, 4, 17, 45},
		{2034, 12, 31, 23, 59},
	}

	for _, tc := range cases {
		converted, err := registry.DateToTimestamp(tc.year, tc.month, tc.day, tc.hour, tc.minute)
		assert.Nilf(err, "case %v", tc)

		expected := time.Date(
			int(tc.year), time.Month(tc.month), int(tc.day),
			int(tc.hour), int(tc.minute), 0, 0, time.UTC,
		)
		assert.Equalf(expected.Unix(), converted.Unix(), "case %v", tc)
	}
}

// TestDateToTimestampPermissiveDays checks that a day past the end of the
// month is accepted and rolls forward, matching the established contract.
func TestDateToTimestampPermissiveDays(t *testing.T) {
	assert := assert.New(t)

	// February 30 in a non-leap year lands on March 2
	converted, err := registry.DateToTimestamp(2025, 2, 30, 0, 0)
	assert.Nil(err)
	assert.Equal(
		time.Date(2025, 3, 2, 0, 0, 0, 0, time.UTC).Unix(), converted.Unix(),
	)

	// February 29 in a non-leap year lands on March 1
	converted, err = registry.DateToTimestamp(2026, 2, 29, 0, 0)
	assert.Nil(err)
	assert.Equal(
		time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC).Unix(), converted.Unix(),
	)

	// April 31 lands on May 1
	converted, err = registry.DateToTimestamp(2027, 4, 31, 0, 0)
	assert.Nil(err)
	assert.Equal(
		time.Date(2027, 5, 1, 0, 0, 0, 0, time.UTC).Unix(), converted.Unix(),
	)
}

// TestDateToTimestampValidation checks every component bound.
func TestDateToTimestampValidation(t *testing.T) {
	assert := assert.New(t)

	type testCase struct {
		year, month, day, hour, minute uint
	}
	invalid := []testCase{
		{2023, 1, 1, 0, 0},   // year below range
		{2035, 1, 1, 0, 0},   // year above range
		{2025, 0, 1, 0, 0},   // month below range
		{2025, 13, 1, 0, 0},  // month above range
		{2025, 1, 0, 0, 0},   // day below range
		{2025, 1, 32, 0, 0},  // day above range
		{2025, 1, 1, 24, 0},  // hour above range
		{2025, 1, 1, 0, 60},  // minute above range
	}

	for _, tc := range invalid {
		_, err := registry.DateToTimestamp(tc.year, tc.month, tc.day, tc.hour, tc.minute)
		assert.Errorf(err, "case %v", tc)
		assert.Equalf(
			models.FailureKindInvalidArgument, models.FailureKindOf(err), "case %v", tc,
		)
	}

	// Boundary values are accepted
	_, err := registry.DateToTimestamp(2024, 1, 1, 0, 0)
	assert.Nil(err)
	_, err = registry.DateToTimestamp(2034, 12, 31, 23, 59)
	assert.Nil(err)
}

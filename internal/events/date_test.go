// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		value    string
		expected time.Time
	}{
		{"2024-01-01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"20240101", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-02-29", time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01T10", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01T10:30", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-01-01T1030", time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-01-01 10:30:15", time.Date(2024, 1, 1, 10, 30, 15, 0, time.UTC)},
		{"2024-01-01t103015", time.Date(2024, 1, 1, 10, 30, 15, 0, time.UTC)},
		{"2024-01-01T10:30:15Z", time.Date(2024, 1, 1, 10, 30, 15, 0, time.UTC)},
		{"2024-01-01T10:30:15.5", time.Date(2024, 1, 1, 10, 30, 15, 500000000, time.UTC)},
		{"2024-01-01T10:30:15,25", time.Date(2024, 1, 1, 10, 30, 15, 250000000, time.UTC)},
		{"2024-01-01T10:30:15.1234567", time.Date(2024, 1, 1, 10, 30, 15, 123456000, time.UTC)},
		{"2024-01-01T10:30:15.123456+05:30", time.Date(2024, 1, 1, 5, 0, 15, 123456000, time.UTC)},
		{"2024-01-01T10:30-0800", time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)},
		{"2024-01-01T10:30+02", time.Date(2024, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"2024-W01", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-W01-3", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"2024W013", time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"2020-W53-7", time.Date(2021, 1, 3, 0, 0, 0, 0, time.UTC)},
		{"2025-W01-1T09:00Z", time.Date(2024, 12, 30, 9, 0, 0, 0, time.UTC)},
		{"2024-06-01Z", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-01-01x10:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01é10:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-01-01/10:00:00", time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)},
		{"2024-06-01T10:00:00+05:00:00", time.Date(2024, 6, 1, 5, 0, 0, 0, time.UTC)},
		{"2024-06-01T10:00:00+05:00:00.5", time.Date(2024, 6, 1, 4, 59, 59, 500000000, time.UTC)},
		{"2024-06-01T10:00:00-05:00:00.25", time.Date(2024, 6, 1, 15, 0, 0, 250000000, time.UTC)},
	}

	for _, c := range cases {
		t.Run(c.value, func(t *testing.T) {
			actual, err := ParseDate(c.value, time.UTC)
			require.NoError(t, err)
			assert.True(t, c.expected.Equal(actual), "expected %s, got %s", c.expected, actual)
		})
	}
}

func TestParseDateInvalid(t *testing.T) {
	cases := []string{
		"",
		"tomorrow",
		"01/02/2024",
		"2024",
		"2024-01",
		"2024-1-1",
		"2024-0101",
		"0000-01-01",
		"2024-13-01",
		"2023-02-29",
		"2024-04-31",
		"2024-01-01T",
		"2024-01-01\xff10:00",
		"2024-01-01xx10:00",
		"2024-01-01T25:00",
		"2024-01-01T10:60",
		"2024-01-01T10:30:61",
		"2024-01-01T10:30:00.",
		"2024-01-01T10:3000",
		"2024-01-01T10:30:00+25:00",
		"2024-01-01T10:30:00 +01:00",
		"2024-01-01T10:30:00ZZ",
		"2024-01-01zZ",
		"2024-01-01T10:00:00+24:00",
		"2024-W54",
		"2024-W00",
		"2024-W01-8",
	}

	for _, value := range cases {
		t.Run(value, func(t *testing.T) {
			_, err := ParseDate(value, time.UTC)
			require.Error(t, err)
			assert.ErrorIs(t, err, errDateFormat)
		})
	}
}

func TestParseDateUsesLocationWithoutOffset(t *testing.T) {
	loc := time.FixedZone("CET", 3600)

	naive, err := ParseDate("2024-06-01T12:00", loc)
	require.NoError(t, err)
	assert.Equal(t, loc, naive.Location())

	withOffset, err := ParseDate("2024-06-01T12:00Z", loc)
	require.NoError(t, err)
	_, offset := withOffset.Zone()
	assert.Equal(t, 0, offset)
}

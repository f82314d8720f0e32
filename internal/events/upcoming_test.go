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

func TestUpcoming(t *testing.T) {
	doc := []byte(`[
		{"title": "Evening talk", "date": "2024-03-10T18:00:00Z", "location": "Hall", "link": "https://example.com/talk"},
		{"title": "Tomorrow workshop", "date": "2024-03-11T09:00:00Z", "location": "Lab", "link": "https://example.com/lab"},
		{"title": "Breakfast", "date": "2024-03-10T08:00", "location": "Cafe", "link": "https://example.com/cafe"},
		{"title": "Next week", "date": "2024-03-17T10:00:00Z", "location": "Hall", "link": "https://example.com/next"},
		{"title": "Yesterday", "date": "2024-03-09", "location": "Hall", "link": "https://example.com/past"},
		{"title": "Broken", "date": "soon", "location": "Hall", "link": "https://example.com/broken"},
		{"title": 5, "date": "2024-03-10"},
		"not an event"
	]`)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	upcoming, err := Upcoming(doc, now)
	require.NoError(t, err)
	require.Len(t, upcoming, 3)

	assert.Equal(t, "Breakfast", upcoming[0].Title)
	assert.Equal(t, 2, upcoming[0].Index)
	assert.Equal(t, "Cafe", upcoming[0].Location)
	assert.Equal(t, "Evening talk", upcoming[1].Title)
	assert.Equal(t, "Tomorrow workshop", upcoming[2].Title)
	assert.Equal(t, "https://example.com/lab", upcoming[2].Link)
}

func TestUpcomingUsesLocalCalendarDay(t *testing.T) {
	// 23:30 UTC on the 11th is already the 12th in UTC+2.
	loc := time.FixedZone("UTC+2", 2*3600)
	doc := []byte(`[{"title": "Late", "date": "2024-03-11T23:30:00Z", "location": "L", "link": "http://l"}]`)

	upcoming, err := Upcoming(doc, time.Date(2024, 3, 12, 8, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	upcoming, err = Upcoming(doc, time.Date(2024, 3, 10, 8, 0, 0, 0, loc))
	require.NoError(t, err)
	assert.Empty(t, upcoming)
}

func TestUpcomingBareDatesAreUTC(t *testing.T) {
	// UTC midnight of the 12th is the evening of the 11th in UTC-5.
	loc := time.FixedZone("UTC-5", -5*3600)
	doc := []byte(`[
		{"title": "Bare", "date": "2024-03-12", "location": "L", "link": "http://l"},
		{"title": "Naive", "date": "2024-03-12T00:00", "location": "L", "link": "http://l"}
	]`)

	upcoming, err := Upcoming(doc, time.Date(2024, 3, 10, 12, 0, 0, 0, loc))
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "Bare", upcoming[0].Title)
	assert.True(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC).Equal(upcoming[0].Date))
}

func TestUpcomingInvalidDocument(t *testing.T) {
	_, err := Upcoming([]byte(`{"title": "T"}`), time.Now())
	assert.ErrorContains(t, err, "root element should be an array, got object")

	_, err = Upcoming([]byte(`[`), time.Now())
	assert.ErrorContains(t, err, "invalid JSON syntax")
}

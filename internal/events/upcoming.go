// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	"fmt"
	"sort"
	"time"
)

// Event is a record with a usable title and date.
type Event struct {
	Index    int
	Title    string
	Date     time.Time
	Location string
	Link     string
}

// Upcoming returns the events taking place on the calendar day of now or the
// day after, sorted by date. Records without a string title or a parseable
// date are left out. Bare dates are read as UTC midnight, like the events page
// does; date-times without an offset are read in the location of now.
func Upcoming(raw []byte, now time.Time) ([]Event, error) {
	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON syntax: %w", err)
	}
	records, ok := doc.([]any)
	if !ok {
		return nil, fmt.Errorf("root element should be an array, got %s", kindOf(doc))
	}

	loc := now.Location()
	today := startOfDay(now)
	tomorrow := today.AddDate(0, 0, 1)

	var upcoming []Event
	for i, record := range records {
		event, ok := asEvent(i, record, loc)
		if !ok {
			continue
		}
		day := startOfDay(event.Date.In(loc))
		if day.Equal(today) || day.Equal(tomorrow) {
			upcoming = append(upcoming, event)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Date.Before(upcoming[j].Date)
	})
	return upcoming, nil
}

func asEvent(index int, record any, loc *time.Location) (Event, bool) {
	fields, ok := record.(map[string]any)
	if !ok {
		return Event{}, false
	}
	title, ok := fields[FieldTitle].(string)
	if !ok {
		return Event{}, false
	}
	date, ok := fields[FieldDate].(string)
	if !ok {
		return Event{}, false
	}
	if isDateOnly(date) {
		loc = time.UTC
	}
	t, err := ParseDate(date, loc)
	if err != nil {
		return Event{}, false
	}
	location, _ := fields[FieldLocation].(string)
	link, _ := fields[FieldLink].(string)
	return Event{
		Index:    index,
		Title:    title,
		Date:     t,
		Location: location,
		Link:     link,
	}, true
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

var errDateFormat = errors.New("not an ISO 8601 date")

// ParseDate parses an ISO 8601 calendar or week date, optionally followed by a
// single separator character, a time of day and a UTC offset. A trailing "Z"
// stands for "+00:00", so "2024-06-01Z" reads as midnight with "+" as the
// separator. Values without an offset are interpreted in loc.
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}

	p := isoParser{s: value}
	year, month, day, err := p.date()
	if err != nil {
		return time.Time{}, err
	}
	if p.done() {
		return time.Date(year, time.Month(month), day, 0, 0, 0, 0, loc), nil
	}

	sep, size := utf8.DecodeRuneInString(p.s[p.pos:])
	if sep == utf8.RuneError && size <= 1 {
		return time.Time{}, fmt.Errorf("%w: invalid separator after date", errDateFormat)
	}
	p.pos += size

	hour, minute, sec, nsec, err := p.clock()
	if err != nil {
		return time.Time{}, err
	}
	var offsetNsec time.Duration
	if !p.done() {
		offset, fraction, err := p.offset()
		if err != nil {
			return time.Time{}, err
		}
		loc = time.FixedZone("", offset)
		offsetNsec = fraction
	}
	if !p.done() {
		return time.Time{}, fmt.Errorf("%w: trailing characters %q", errDateFormat, p.s[p.pos:])
	}
	return time.Date(year, time.Month(month), day, hour, minute, sec, nsec, loc).Add(-offsetNsec), nil
}

// isDateOnly reports whether value is a bare date without a time of day.
func isDateOnly(value string) bool {
	p := isoParser{s: value}
	_, _, _, err := p.date()
	return err == nil && p.done()
}

type isoParser struct {
	s   string
	pos int
}

func (p *isoParser) done() bool {
	return p.pos >= len(p.s)
}

func (p *isoParser) peek() byte {
	if p.done() {
		return 0
	}
	return p.s[p.pos]
}

func (p *isoParser) accept(c byte) bool {
	if p.peek() == c && !p.done() {
		p.pos++
		return true
	}
	return false
}

// digits reads exactly n ASCII digits.
func (p *isoParser) digits(n int) (int, error) {
	if p.pos+n > len(p.s) {
		return 0, fmt.Errorf("%w: incomplete value", errDateFormat)
	}
	v := 0
	for _, c := range []byte(p.s[p.pos : p.pos+n]) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: unexpected %q", errDateFormat, c)
		}
		v = v*10 + int(c-'0')
	}
	p.pos += n
	return v, nil
}

func (p *isoParser) date() (year, month, day int, err error) {
	year, err = p.digits(4)
	if err != nil {
		return 0, 0, 0, err
	}
	if year < 1 {
		return 0, 0, 0, fmt.Errorf("%w: year out of range", errDateFormat)
	}
	extended := p.accept('-')

	if p.accept('W') {
		return p.weekDate(year, extended)
	}

	if month, err = p.digits(2); err != nil {
		return 0, 0, 0, err
	}
	if extended && !p.accept('-') {
		return 0, 0, 0, fmt.Errorf("%w: inconsistent date separators", errDateFormat)
	}
	if day, err = p.digits(2); err != nil {
		return 0, 0, 0, err
	}
	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("%w: month out of range", errDateFormat)
	}
	if day < 1 || day > daysIn(year, month) {
		return 0, 0, 0, fmt.Errorf("%w: day is out of range for month", errDateFormat)
	}
	return year, month, day, nil
}

func (p *isoParser) weekDate(year int, extended bool) (int, int, int, error) {
	week, err := p.digits(2)
	if err != nil {
		return 0, 0, 0, err
	}
	weekday := 1
	if extended && p.accept('-') || !extended && isDigit(p.peek()) {
		if weekday, err = p.digits(1); err != nil {
			return 0, 0, 0, err
		}
	}
	if weekday < 1 || weekday > 7 {
		return 0, 0, 0, fmt.Errorf("%w: invalid weekday", errDateFormat)
	}
	if week < 1 || week > weeksIn(year) {
		return 0, 0, 0, fmt.Errorf("%w: invalid week", errDateFormat)
	}

	// Week 1 is the week holding January 4th.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	isoWeekday := (int(jan4.Weekday())+6)%7 + 1
	monday := jan4.AddDate(0, 0, 1-isoWeekday)
	t := monday.AddDate(0, 0, (week-1)*7+weekday-1)
	return t.Year(), int(t.Month()), t.Day(), nil
}

func (p *isoParser) clock() (hour, minute, sec, nsec int, err error) {
	if hour, err = p.digits(2); err != nil {
		return
	}
	extended := p.peek() == ':'
	for i, field := range []*int{&minute, &sec} {
		if p.done() || p.peek() == '+' || p.peek() == '-' || p.peek() == '.' || p.peek() == ',' {
			break
		}
		if extended && !p.accept(':') {
			err = fmt.Errorf("%w: invalid time separator", errDateFormat)
			return
		}
		if *field, err = p.digits(2); err != nil {
			return
		}
		if i == 1 {
			break
		}
	}
	if p.peek() == '.' || p.peek() == ',' {
		p.pos++
		if nsec, err = p.fraction(); err != nil {
			return
		}
	}
	if hour > 23 || minute > 59 || sec > 59 {
		err = fmt.Errorf("%w: time out of range", errDateFormat)
	}
	return
}

// fraction reads the decimal digits of a fractional second with microsecond
// precision; extra digits are accepted and dropped.
func (p *isoParser) fraction() (int, error) {
	start := p.pos
	for isDigit(p.peek()) {
		p.pos++
	}
	frac := p.s[start:p.pos]
	if frac == "" {
		return 0, fmt.Errorf("%w: empty fraction", errDateFormat)
	}
	if len(frac) > 6 {
		frac = frac[:6]
	}
	frac += strings.Repeat("0", 6-len(frac))
	micro := 0
	for _, c := range []byte(frac) {
		micro = micro*10 + int(c-'0')
	}
	return micro * int(time.Microsecond), nil
}

// offset reads a UTC offset. The whole seconds and the sub-second remainder
// are returned separately, both carrying the sign of the offset.
func (p *isoParser) offset() (int, time.Duration, error) {
	sign := 1
	switch {
	case p.accept('+'):
	case p.accept('-'):
		sign = -1
	default:
		return 0, 0, fmt.Errorf("%w: unexpected %q in time", errDateFormat, p.peek())
	}
	hour, minute, sec, nsec, err := p.clock()
	if err != nil {
		return 0, 0, err
	}
	return sign * (hour*3600 + minute*60 + sec), time.Duration(sign * nsec), nil
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func daysIn(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func weeksIn(year int) int {
	_, week := time.Date(year, time.December, 28, 0, 0, 0, 0, time.UTC).ISOWeek()
	return week
}

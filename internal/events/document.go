// Copyright Elasticsearch B.V. and/or licensed to Elasticsearch B.V. under one
// or more contributor license agreements. Licensed under the Elastic License;
// you may not use this file except in compliance with the Elastic License.

package events

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// valueKind names the JSON type of a decoded value.
type valueKind string

const (
	kindNull    valueKind = "null"
	kindBoolean valueKind = "boolean"
	kindNumber  valueKind = "number"
	kindString  valueKind = "string"
	kindArray   valueKind = "array"
	kindObject  valueKind = "object"
)

func kindOf(v any) valueKind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBoolean
	case json.Number, float64:
		return kindNumber
	case string:
		return kindString
	case []any:
		return kindArray
	case map[string]any:
		return kindObject
	default:
		panic(fmt.Sprintf("unexpected decoded value of type %T", v))
	}
}

// SyntaxError describes a document that is not valid JSON.
type SyntaxError struct {
	Msg    string
	Offset int64
	Line   int
	Column int
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s: line %d column %d (char %d)", e.Msg, e.Line, e.Column, e.Offset)
}

// decodeDocument decodes a single JSON value keeping numbers as json.Number,
// so large integers survive without float64 truncation.
func decodeDocument(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	err := dec.Decode(&v)
	if errors.Is(err, io.EOF) {
		return nil, &SyntaxError{Msg: "unexpected end of JSON input"}
	}
	if err != nil {
		return nil, syntaxError(data, err)
	}

	// Anything after the top-level value is rejected, as json.Unmarshal does.
	offset := dec.InputOffset()
	rest := bytes.TrimLeft(data[offset:], " \t\r\n")
	if len(rest) > 0 {
		offset = int64(len(data) - len(rest))
		return nil, positioned(data, fmt.Sprintf("invalid character %s after top-level value", quoteChar(rest[0])), offset)
	}
	return v, nil
}

func syntaxError(data []byte, err error) error {
	var serr *json.SyntaxError
	if errors.As(err, &serr) {
		// Offset points right after the offending byte.
		return positioned(data, serr.Error(), serr.Offset-1)
	}
	if errors.Is(err, io.ErrUnexpectedEOF) {
		return positioned(data, "unexpected end of JSON input", int64(len(data)))
	}
	return &SyntaxError{Msg: err.Error()}
}

func positioned(data []byte, msg string, offset int64) *SyntaxError {
	if offset < 0 {
		offset = 0
	}
	if offset > int64(len(data)) {
		offset = int64(len(data))
	}
	line, column := 1, 1
	for _, b := range data[:offset] {
		if b == '\n' {
			line++
			column = 1
			continue
		}
		column++
	}
	return &SyntaxError{Msg: msg, Offset: offset, Line: line, Column: column}
}

func quoteChar(c byte) string {
	if c == '\'' {
		return `'\''`
	}
	if c == '"' {
		return `'"'`
	}
	s := strconv.Quote(string(c))
	return "'" + s[1:len(s)-1] + "'"
}

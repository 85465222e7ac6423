// Package gid validates and classifies resource identifiers.
//
// A GID is either a numeric "Long" string (the upstream Asana format) or a
// canonical hyphenated UUID (the format minted internally). Numeric GIDs are
// always accepted; UUIDs are accepted unless the caller requires strict
// numeric compatibility.
package gid

import (
	"fmt"
	"net/http"

	"taskdeck/internal/core/apperror"
)

// HelpURL is the fixed help link rendered with identifier format errors.
const HelpURL = "For more information on API status codes and how to handle them, read the docs on errors: https://developers.asana.com/docs/errors"

// Classification is the outcome of classifying an identifier string.
type Classification int

const (
	Invalid Classification = iota
	NumericLong
	UUID
)

func (c Classification) String() string {
	switch c {
	case NumericLong:
		return "numeric_long"
	case UUID:
		return "uuid"
	default:
		return "invalid"
	}
}

// Classify determines which identifier family a string belongs to.
// A string of ASCII digits is a NumericLong; the canonical 8-4-4-4-12
// hyphenated hex pattern (case-insensitive) is a UUID; everything else,
// including the empty string, is Invalid.
func Classify(id string) Classification {
	if isNumeric(id) {
		return NumericLong
	}
	if isCanonicalUUID(id) {
		return UUID
	}
	return Invalid
}

// Validate checks an identifier for a request path or filter value.
// resourceName appears in the error message, matching the upstream format
// "{resourceName}: Not a Long: {id}". With strictNumeric set, only numeric
// Longs pass.
func Validate(id, resourceName string, strictNumeric bool) error {
	if id == "" {
		return &apperror.AppError{
			Code:       apperror.CodeEmptyGID,
			Message:    fmt.Sprintf("%s: GID cannot be empty", resourceName),
			Help:       "Please provide a valid GID",
			HTTPStatus: http.StatusBadRequest,
		}
	}

	switch Classify(id) {
	case NumericLong:
		return nil
	case UUID:
		if !strictNumeric {
			return nil
		}
	}

	return &apperror.AppError{
		Code:       apperror.CodeInvalidGID,
		Message:    fmt.Sprintf("%s: Not a Long: %s", resourceName, id),
		Help:       HelpURL,
		HTTPStatus: http.StatusBadRequest,
	}
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// uuidGroups holds the canonical 8-4-4-4-12 group lengths.
var uuidGroups = [5]int{8, 4, 4, 4, 12}

func isCanonicalUUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	pos := 0
	for g, size := range uuidGroups {
		if g > 0 {
			if s[pos] != '-' {
				return false
			}
			pos++
		}
		for i := 0; i < size; i++ {
			if !isHex(s[pos]) {
				return false
			}
			pos++
		}
	}
	return true
}

func isHex(c byte) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c >= 'a' && c <= 'f':
		return true
	case c >= 'A' && c <= 'F':
		return true
	}
	return false
}

// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"taskdeck/internal/core/apperror"
	"taskdeck/internal/domain/page"
)

// DataEnvelope wraps single-object responses: {"data": {...}}.
type DataEnvelope struct {
	Data any `json:"data"`
}

// ListEnvelope wraps collection responses. NextPage is null on the last
// page so clients can detect the end of the result set.
type ListEnvelope struct {
	Data     any            `json:"data"`
	NextPage *page.NextPage `json:"next_page"`
}

// Wrap puts a single object into the data envelope.
func Wrap(v any) DataEnvelope {
	return DataEnvelope{Data: v}
}

// WrapPage puts one page of items into the list envelope. basePath is the
// request path used to build the continuation offset URI.
func WrapPage[T any](p page.Page[T], basePath string) ListEnvelope {
	return ListEnvelope{Data: p.Items, NextPage: p.Next(basePath)}
}

// dateLayouts accepted in request bodies, tried in order.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// ParseDate parses an optional date string from a request body. Returns
// nil for nil or empty input and a validation error for unparseable values.
func ParseDate(field string, val *string) (*time.Time, error) {
	if val == nil || *val == "" {
		return nil, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, *val); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, apperror.NewValidation(field + ": Not a valid date: " + *val)
}

// Package dto provides Data Transfer Objects for API requests/responses.
package dto

import (
	"time"

	"supplypro/internal/core/apperror"
	"supplypro/internal/core/id"
)

// DateFormat is the wire format for report date parameters.
const DateFormat = "2006-01-02"

// ParseDate parses a yyyy-mm-dd query value; empty input yields the zero time.
func ParseDate(param, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(DateFormat, value)
	if err != nil {
		return time.Time{}, apperror.NewValidation("invalid " + param + " format, expected yyyy-mm-dd")
	}
	return t, nil
}

// --- List Response ---

// ListResponse wraps list results with pagination.
type ListResponse struct {
	Items      any   `json:"items"`
	TotalCount int64 `json:"totalCount"`
	Limit      int   `json:"limit"`
	Offset     int   `json:"offset"`
}

// --- ID Response ---

// IDResponse for create operations.
type IDResponse struct {
	ID string `json:"id"`
}

// NewIDResponse creates ID response.
func NewIDResponse(i id.ID) IDResponse {
	return IDResponse{ID: i.String()}
}

// --- Success Response ---

// SuccessResponse for operations without data.
type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// --- Error Response ---

// ErrorResponse for error details.
type ErrorResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

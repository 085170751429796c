package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrJobNotFound          = errors.New("job not found")
	ErrApplicationNotFound  = errors.New("job application not found")
	ErrDuplicateApplication = errors.New("you have already applied for this job")
	// ErrUpstreamUnavailable means the listing service could not answer,
	// which is different from answering that the job does not exist.
	ErrUpstreamUnavailable = errors.New("job listing service unavailable")
	// ErrOperationFailed hides storage faults from callers; the cause is logged.
	ErrOperationFailed = errors.New("operation failed")
)

// ValidationError carries one message per offending field.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

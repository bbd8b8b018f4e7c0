package employee

import (
	"errors"
	"strings"
)

var (
	ErrUnknownField   = errors.New("unknown form field")
	ErrDuplicateID    = errors.New("record id already exists")
	ErrRecordNotFound = errors.New("record not found")
)

type FieldIssue struct {
	Field  string `json:"field"`
	Label  string `json:"label"`
	Reason string `json:"reason"`
}

// ValidationError blocks a submit. The draft is left as it was.
type ValidationError struct {
	Issues []FieldIssue
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Issues) == 0 {
		return "draft validation failed"
	}
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Label+" "+issue.Reason)
	}
	return "draft validation failed: " + strings.Join(parts, "; ")
}

// Fields returns the names of the fields that failed.
func (e *ValidationError) Fields() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		out = append(out, issue.Field)
	}
	return out
}

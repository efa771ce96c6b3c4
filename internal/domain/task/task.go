// Package task defines the Task entity and its merge-patch update type.
package task

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/task-service/internal/domain"
)

// MaxTitleLength is the column width of tasks.title.
const MaxTitleLength = 255

// Task is a single to-do item. ID is assigned by the store on insert.
type Task struct {
	ID    int64
	Title string
	Done  bool
}

// Validate checks business rules for the Task entity.
// Returns a *domain.ValidationError (wrapping domain.ErrValidation) with per-field details,
// or nil if all rules pass.
func (t *Task) Validate() error {
	fields := make(map[string]string)

	if msg := validateTitle(t.Title, domain.MsgRequired); msg != "" {
		fields["title"] = msg
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Patch is a merge-patch over a Task. A nil field leaves the stored value
// untouched.
type Patch struct {
	Title *string
	Done  *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p Patch) IsEmpty() bool {
	return p.Title == nil && p.Done == nil
}

// Validate checks that any provided fields have valid values.
func (p Patch) Validate() error {
	fields := make(map[string]string)

	if p.Title != nil {
		if msg := validateTitle(*p.Title, domain.MsgMustNotEmpty); msg != "" {
			fields["title"] = msg
		}
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

// Apply overwrites the fields of t that are present in the patch.
func (p Patch) Apply(t *Task) {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Done != nil {
		t.Done = *p.Done
	}
}

// validateTitle returns a failure message for title, or "" when it is valid.
// emptyMsg is used when the title is blank.
func validateTitle(title, emptyMsg string) string {
	if strings.TrimSpace(title) == "" {
		return emptyMsg
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return fmt.Sprintf("must be at most %d characters, got %d", MaxTitleLength, n)
	}
	return ""
}

package task

import (
	"errors"
	"strings"
	"testing"

	"github.com/jsamuelsen11/task-service/internal/domain"
)

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// requireValidationField is a test helper that asserts err wraps domain.ErrValidation
// and the resulting ValidationError contains the expected field key.
func requireValidationField(t *testing.T, err error, field string) {
	t.Helper()

	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("errors.Is(err, ErrValidation) = false, got %v", err)
	}

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}

func TestTask_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{name: "valid title", task: Task{Title: "Buy milk"}},
		{name: "valid done task", task: Task{Title: "Buy milk", Done: true}},
		{name: "title at max length", task: Task{Title: strings.Repeat("a", MaxTitleLength)}},
		{name: "multibyte title at max length", task: Task{Title: strings.Repeat("é", MaxTitleLength)}},
		{name: "empty title", task: Task{Title: ""}, wantErr: true},
		{name: "whitespace title", task: Task{Title: "   "}, wantErr: true},
		{name: "title too long", task: Task{Title: strings.Repeat("a", MaxTitleLength+1)}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.task.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "title")
		})
	}
}

func TestTask_Validate_EmptyTitleMessage(t *testing.T) {
	t.Parallel()

	err := (&Task{}).Validate()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("errors.As(err, *ValidationError) = false, got %T", err)
	}
	if verr.Fields["title"] != domain.MsgRequired {
		t.Errorf("Fields[\"title\"] = %q, want %q", verr.Fields["title"], domain.MsgRequired)
	}
}

func TestPatch_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		patch   Patch
		wantErr bool
	}{
		{name: "empty patch", patch: Patch{}},
		{name: "done only", patch: Patch{Done: boolPtr(true)}},
		{name: "title only", patch: Patch{Title: strPtr("New title")}},
		{name: "both fields", patch: Patch{Title: strPtr("New title"), Done: boolPtr(false)}},
		{name: "blank title", patch: Patch{Title: strPtr(" ")}, wantErr: true},
		{name: "title too long", patch: Patch{Title: strPtr(strings.Repeat("x", MaxTitleLength+1))}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.patch.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			requireValidationField(t, err, "title")
		})
	}
}

func TestPatch_Apply(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		patch Patch
		want  Task
	}{
		{
			name:  "empty patch leaves task untouched",
			patch: Patch{},
			want:  Task{ID: 1, Title: "A", Done: false},
		},
		{
			name:  "done only keeps title",
			patch: Patch{Done: boolPtr(true)},
			want:  Task{ID: 1, Title: "A", Done: true},
		},
		{
			name:  "title only keeps done",
			patch: Patch{Title: strPtr("B")},
			want:  Task{ID: 1, Title: "B", Done: false},
		},
		{
			name:  "both fields",
			patch: Patch{Title: strPtr("B"), Done: boolPtr(true)},
			want:  Task{ID: 1, Title: "B", Done: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Task{ID: 1, Title: "A", Done: false}
			tt.patch.Apply(&got)

			if got != tt.want {
				t.Errorf("Apply() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPatch_IsEmpty(t *testing.T) {
	t.Parallel()

	if !(Patch{}).IsEmpty() {
		t.Error("Patch{}.IsEmpty() = false, want true")
	}
	if (Patch{Done: boolPtr(false)}).IsEmpty() {
		t.Error("Patch{Done: false}.IsEmpty() = true, want false")
	}
}

func TestValidationError_MessageIsSorted(t *testing.T) {
	t.Parallel()

	err := &domain.ValidationError{Fields: map[string]string{
		"title": domain.MsgRequired,
		"done":  "must be a boolean",
	}}

	want := "validation error: done: must be a boolean; title: is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

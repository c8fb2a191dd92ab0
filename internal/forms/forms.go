// Package forms holds the submitted form types and their validation rules.
package forms

import (
	"net/http"
	"strings"
)

// TaskForm backs both the add-task and edit-task pages. Name is the only
// field and the only rule is that it must be present.
type TaskForm struct {
	Name   string
	Errors map[string]string
}

// ParseTaskForm builds a TaskForm from a submitted request.
func ParseTaskForm(r *http.Request) *TaskForm {
	return &TaskForm{Name: r.PostFormValue("task_name")}
}

// Validate checks the required fields, recording field errors for the
// template to echo inline. Returns true when the form is acceptable.
func (f *TaskForm) Validate() bool {
	f.Errors = make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		f.Errors["name"] = "This field is required."
	}
	return len(f.Errors) == 0
}

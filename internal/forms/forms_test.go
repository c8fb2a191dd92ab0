package forms

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func postForm(values url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/add", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestTaskFormValid(t *testing.T) {
	form := ParseTaskForm(postForm(url.Values{"task_name": {"Buy milk"}}))

	assert.True(t, form.Validate())
	assert.Equal(t, "Buy milk", form.Name)
	assert.Empty(t, form.Errors)
}

func TestTaskFormMissingName(t *testing.T) {
	form := ParseTaskForm(postForm(url.Values{}))

	assert.False(t, form.Validate())
	assert.Equal(t, "This field is required.", form.Errors["name"])
}

func TestTaskFormWhitespaceOnly(t *testing.T) {
	form := ParseTaskForm(postForm(url.Values{"task_name": {"   "}}))

	assert.False(t, form.Validate())
	assert.Contains(t, form.Errors, "name")
}

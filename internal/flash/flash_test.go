package flash

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndPop(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, "warning", "That email does not exist, please signup.")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookies[0])
	rec2 := httptest.NewRecorder()

	notice, ok := Pop(rec2, req)
	require.True(t, ok)
	assert.Equal(t, "warning", notice.Category)
	assert.Equal(t, "That email does not exist, please signup.", notice.Message)

	// Pop must clear the cookie so the notice shows only once.
	cleared := rec2.Result().Cookies()
	require.Len(t, cleared, 1)
	assert.Empty(t, cleared[0].Value)
	assert.Negative(t, cleared[0].MaxAge)
}

func TestPopWithoutNotice(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	_, ok := Pop(rec, req)
	assert.False(t, ok)
	assert.Empty(t, rec.Result().Cookies())
}

func TestMessageWithSeparator(t *testing.T) {
	rec := httptest.NewRecorder()
	Set(rec, "success", "Done | with pipes")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	notice, ok := Pop(httptest.NewRecorder(), req)
	require.True(t, ok)
	assert.Equal(t, "Done | with pipes", notice.Message)
}

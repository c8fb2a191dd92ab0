// Package flash implements one-shot notices carried across a redirect in a
// short-lived cookie and shown exactly once on the next rendered page.
package flash

import (
	"encoding/base64"
	"net/http"
	"strings"
)

const cookieName = "flash"

// Notice is a single user-facing message with a Bootstrap alert category.
type Notice struct {
	Category string // success, warning, danger, error
	Message  string
}

// Set stores a notice for the next rendered page.
func Set(w http.ResponseWriter, category, message string) {
	value := base64.RawURLEncoding.EncodeToString([]byte(category + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// Pop retrieves the pending notice, if any, and clears it so it is not
// shown again.
func Pop(w http.ResponseWriter, r *http.Request) (Notice, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return Notice{}, false
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})

	decoded, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Notice{}, false
	}
	category, message, found := strings.Cut(string(decoded), "|")
	if !found {
		return Notice{}, false
	}
	return Notice{Category: category, Message: message}, true
}

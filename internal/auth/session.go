package auth

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"taskdeck/internal/models"
)

const cookieName = "session"

// Claims defines the session token claims.
type Claims struct {
	UserID int64  `json:"userId"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type contextKey string

const userClaimsKey = contextKey("userClaims")

// Session signs and validates the session cookie. It carries the signing
// secret so no key material lives in package-level state.
type Session struct {
	secret        []byte
	secureCookies bool
	validity      time.Duration
}

// NewSession creates a session manager. secureCookies should be true in
// production so the cookie is only sent over TLS.
func NewSession(secret []byte, secureCookies bool) *Session {
	return &Session{
		secret:        secret,
		secureCookies: secureCookies,
		validity:      24 * time.Hour,
	}
}

// Issue signs a token for the user and sets it as the session cookie.
func (s *Session) Issue(w http.ResponseWriter, user models.User) error {
	expires := time.Now().Add(s.validity)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    token,
		Expires:  expires,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Clear expires the session cookie. Safe to call when no session exists.
func (s *Session) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secureCookies,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
}

// validate parses and validates a session token string.
func (s *Session) validate(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireLogin protects a route. Anonymous or invalid sessions are sent to
// the login page rather than getting a 401, since callers are browsers.
func (s *Session) RequireLogin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(cookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		claims, err := s.validate(cookie.Value)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), userClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Peek reads the session from a request without requiring one. Used by
// public pages whose rendering switches on authentication state.
func (s *Session) Peek(r *http.Request) (*Claims, bool) {
	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}
	claims, err := s.validate(cookie.Value)
	if err != nil {
		return nil, false
	}
	return claims, true
}

// CurrentUser returns the claims placed on the context by RequireLogin.
func CurrentUser(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(userClaimsKey).(*Claims)
	return claims, ok
}

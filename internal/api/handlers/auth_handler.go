package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"taskdeck/internal/auth"
	"taskdeck/internal/flash"
	"taskdeck/internal/services"
	"taskdeck/internal/web"
)

// AuthHandler handles registration, login, and logout.
type AuthHandler struct {
	users   services.UserServiceProvider
	session *auth.Session
	render  *web.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, session *auth.Session, render *web.Renderer) *AuthHandler {
	return &AuthHandler{users: users, session: session, render: render}
}

// LoginPage renders the login form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	_, authed := h.session.Peek(r)
	h.render.Render(w, r, http.StatusOK, "login", web.Page{Title: "Log In", Authenticated: authed})
}

// Login checks credentials and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	pass := r.PostFormValue("password")

	user, err := h.users.AuthenticateUser(r.Context(), email, pass)
	switch {
	case errors.Is(err, services.ErrNotFound):
		flash.Set(w, "warning", "That email does not exist, please signup.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case errors.Is(err, services.ErrBadCredentials):
		flash.Set(w, "danger", "Password incorrect, please try again.")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		log.Error().Err(err).Str("email", email).Msg("Failed to authenticate user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.session.Issue(w, user); err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	flash.Set(w, "success", "Logged in successfully.")
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// RegisterPage renders the registration form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	_, authed := h.session.Peek(r)
	h.render.Render(w, r, http.StatusOK, "register", web.Page{Title: "Register", Authenticated: authed})
}

// Register creates an account and logs the new user straight in.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	pass := r.PostFormValue("password")

	user, err := h.users.CreateUser(r.Context(), email, pass)
	switch {
	case errors.Is(err, services.ErrEmailTaken):
		flash.Set(w, "error", "You've already signed up with that email, log in instead!")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	case err != nil:
		log.Error().Err(err).Str("email", email).Msg("Failed to register user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.session.Issue(w, user); err != nil {
		log.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to issue session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	flash.Set(w, "success", "Registration successful! You are now logged in.")
	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// Logout clears the session. Safe to call when not logged in.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.session.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}

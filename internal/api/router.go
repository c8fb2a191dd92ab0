package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"taskdeck/internal/api/handlers"
	"taskdeck/internal/auth"
	"taskdeck/internal/services"
	"taskdeck/internal/web"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(session *auth.Session, render *web.Renderer, userService services.UserServiceProvider, taskService services.TaskServiceProvider) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, session, render)
	taskHandler := handlers.NewTaskHandler(taskService, session, render)

	// Public pages
	r.Get("/", taskHandler.Home)
	r.Get("/login", authHandler.LoginPage)
	r.Post("/login", authHandler.Login)
	r.Get("/register", authHandler.RegisterPage)
	r.Post("/register", authHandler.Register)
	r.Get("/logout", authHandler.Logout)

	// Pages that need an authenticated session
	r.Group(func(r chi.Router) {
		r.Use(session.RequireLogin)
		r.Get("/tasks", taskHandler.List)
		r.Get("/add", taskHandler.AddPage)
		r.Post("/add", taskHandler.Add)
		r.Get("/edit/{id}", taskHandler.EditPage)
		r.Post("/edit/{id}", taskHandler.Edit)
		r.Get("/delete/{id}", taskHandler.Delete)
	})

	return r
}

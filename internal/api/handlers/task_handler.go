package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"taskdeck/internal/auth"
	"taskdeck/internal/forms"
	"taskdeck/internal/services"
	"taskdeck/internal/web"
)

// Display layout for the task creation date, e.g. "January 05, 2025".
const dateLayout = "January 02, 2006"

// TaskHandler handles the landing page and the task CRUD pages.
type TaskHandler struct {
	tasks   services.TaskServiceProvider
	session *auth.Session
	render  *web.Renderer
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(tasks services.TaskServiceProvider, session *auth.Session, render *web.Renderer) *TaskHandler {
	return &TaskHandler{tasks: tasks, session: session, render: render}
}

// Home renders the landing page. Accessible without authentication.
func (h *TaskHandler) Home(w http.ResponseWriter, r *http.Request) {
	_, authed := h.session.Peek(r)
	h.render.Render(w, r, http.StatusOK, "index", web.Page{Authenticated: authed})
}

// List shows the current user's tasks.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	tasks, err := h.tasks.ListTasksByUser(r.Context(), claims.UserID)
	if err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to list tasks")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, http.StatusOK, "tasks", web.Page{
		Title:         "My Tasks",
		Authenticated: true,
		Email:         claims.Email,
		Tasks:         tasks,
	})
}

// AddPage renders the empty add-task form.
func (h *TaskHandler) AddPage(w http.ResponseWriter, r *http.Request) {
	h.render.Render(w, r, http.StatusOK, "add", web.Page{
		Title:         "Add Task",
		Authenticated: true,
		Form:          &forms.TaskForm{},
	})
}

// Add creates a task from a submitted form. The creation date is captured
// here and never rewritten on later edits.
func (h *TaskHandler) Add(w http.ResponseWriter, r *http.Request) {
	claims, ok := auth.CurrentUser(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	form := forms.ParseTaskForm(r)
	if !form.Validate() {
		h.render.Render(w, r, http.StatusOK, "add", web.Page{
			Title:         "Add Task",
			Authenticated: true,
			Form:          form,
		})
		return
	}

	date := time.Now().Format(dateLayout)
	if _, err := h.tasks.CreateTask(r.Context(), form.Name, date, claims.UserID); err != nil {
		log.Error().Err(err).Int64("user_id", claims.UserID).Msg("Failed to create task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// EditPage renders the edit form pre-filled with the task's current name.
func (h *TaskHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	// Lookup is by ID only; ownership is deliberately not checked here,
	// matching the system being replaced.
	task, err := h.tasks.GetTask(r.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Int64("task_id", id).Msg("Failed to load task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.render.Render(w, r, http.StatusOK, "edit", web.Page{
		Title:         "Edit Task",
		Authenticated: true,
		Form:          &forms.TaskForm{Name: task.Name},
		TaskID:        task.ID,
	})
}

// Edit renames a task. Only the name changes; date and owner stay as they
// were at creation.
func (h *TaskHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if _, err := h.tasks.GetTask(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Int64("task_id", id).Msg("Failed to load task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	form := forms.ParseTaskForm(r)
	if !form.Validate() {
		h.render.Render(w, r, http.StatusOK, "edit", web.Page{
			Title:         "Edit Task",
			Authenticated: true,
			Form:          form,
			TaskID:        id,
		})
		return
	}

	if err := h.tasks.RenameTask(r.Context(), id, form.Name); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Int64("task_id", id).Msg("Failed to rename task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusSeeOther)
}

// Delete removes a task and returns to the list. No confirmation step.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := taskID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}

	if err := h.tasks.DeleteTask(r.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		log.Error().Err(err).Int64("task_id", id).Msg("Failed to delete task")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/tasks", http.StatusFound)
}

// taskID parses the {id} route parameter. A non-numeric ID is treated the
// same as a missing task.
func taskID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

package api

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"

	"github.com/phrazzld/agenda-api/internal/api/shared"
	"github.com/phrazzld/agenda-api/internal/platform/logger"
	"github.com/phrazzld/agenda-api/internal/service"
)

const taskHandlerComponent = "task_handler"

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler
func NewTaskHandler(taskService service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// CreateTask handles POST /api/tasks requests.
// The title comes from the "title" query parameter, otherwise from the body:
// a form field for form content types, a JSON object for application/json or
// when no Content-Type is given. An empty body creates an untitled task.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	title, err := taskTitle(w, r)
	if err != nil {
		logger.ForComponent(r.Context(), h.logger, taskHandlerComponent).Debug("invalid task request",
			slog.String("content_type", r.Header.Get("Content-Type")),
			slog.String("error", err.Error()))

		switch {
		case errors.Is(err, errUnsupportedMediaType):
			shared.RespondWithError(w, r, http.StatusUnsupportedMediaType, "Unsupported content type")
		case errors.Is(err, errFormWithoutTitle):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Form body must include a title field")
		default:
			respondDecodeError(w, r, err)
		}
		return
	}

	task, err := h.taskService.Create(r.Context(), title)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, taskToResponse(task))
}

// ListTasks handles GET /api/tasks requests
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tasksToResponse(tasks))
}

// CompleteTask handles PUT /api/tasks/{id}/complete requests
func (h *TaskHandler) CompleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	task, err := h.taskService.Complete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to complete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, taskToResponse(task))
}

// DeleteTask handles DELETE /api/tasks/{id} requests
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

var (
	errUnsupportedMediaType = errors.New("unsupported media type")
	errFormWithoutTitle     = errors.New("form body has no title field")
)

func taskTitle(w http.ResponseWriter, r *http.Request) (string, error) {
	if r.URL.Query().Has("title") {
		return r.URL.Query().Get("title"), nil
	}

	contentType := r.Header.Get("Content-Type")
	if contentType == "" {
		return jsonTitle(w, r)
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return "", errUnsupportedMediaType
	}

	switch mediaType {
	case "application/json":
		return jsonTitle(w, r)
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return formTitle(w, r, mediaType)
	default:
		return "", errUnsupportedMediaType
	}
}

func jsonTitle(w http.ResponseWriter, r *http.Request) (string, error) {
	var req TaskRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil && !errors.Is(err, shared.ErrEmptyBody) {
		return "", err
	}
	return req.Title, nil
}

// formTitle reads the title field of a form body. A non-empty form without
// that field is rejected, which catches JSON posted with a form content type.
func formTitle(w http.ResponseWriter, r *http.Request, mediaType string) (string, error) {
	if r.Body != nil {
		r.Body = http.MaxBytesReader(w, r.Body, shared.MaxBodyBytes)
	}

	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(shared.MaxBodyBytes)
	} else {
		err = r.ParseForm()
	}
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return "", shared.ErrBodyTooLarge
		}
		return "", err
	}

	if r.PostForm.Has("title") {
		return r.PostForm.Get("title"), nil
	}
	if len(r.PostForm) > 0 {
		return "", errFormWithoutTitle
	}
	return "", nil
}

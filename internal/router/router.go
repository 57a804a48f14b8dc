package router

import (
	"github.com/fasthttp/router"

	apiHandler "github.com/fastygo/tasks/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New wires the task routes. Anything else, including a known path with
// the wrong method, falls through to the JSON not-found handler.
func New(handlers Handlers) *router.Router {
	r := router.New()
	r.RedirectTrailingSlash = false
	r.RedirectFixedPath = false
	r.HandleMethodNotAllowed = false
	r.HandleOPTIONS = false
	r.NotFound = apiHandler.NotFound

	if handlers.Health != nil {
		r.GET("/health", handlers.Health.Check)
	}

	r.POST("/tasks/", handlers.Task.CreateTask)
	r.GET("/tasks/", handlers.Task.GetTasks)
	r.PUT("/tasks/{id}", handlers.Task.ToggleTask)
	r.DELETE("/tasks/{id}", handlers.Task.DeleteTask)

	return r
}

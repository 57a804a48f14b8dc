package transport

// CreateTaskRequest is the body of POST /tasks/. Name is a pointer so a
// missing field can be told apart from an empty string.
type CreateTaskRequest struct {
	Name *string `json:"name"`
}

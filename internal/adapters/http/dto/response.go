// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import "github.com/jsamuelsen11/task-service/internal/domain/task"

// Confirmation messages returned by mutating task endpoints.
const (
	MsgTaskCreated = "Task created successfully"
	MsgTaskUpdated = "Task updated successfully"
	MsgTaskDeleted = "Task deleted successfully"
	MsgAPIUp       = "API is up"
)

// TaskResponse represents a single task in HTTP responses.
type TaskResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// ToTaskResponse converts a domain Task entity to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	return TaskResponse{
		ID:    t.ID,
		Title: t.Title,
		Done:  t.Done,
	}
}

// ToTaskListResponse converts a slice of domain Task entities to the bare
// JSON array returned by the list endpoint. The result is never nil, so an
// empty store encodes as [].
func ToTaskListResponse(tasks []task.Task) []TaskResponse {
	items := make([]TaskResponse, len(tasks))
	for i := range tasks {
		items[i] = ToTaskResponse(&tasks[i])
	}
	return items
}

// MessageResponse is the confirmation body of update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the confirmation body of create.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

// StatusResponse is the body of GET /api/health.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

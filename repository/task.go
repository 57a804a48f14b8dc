package repository

import (
	"context"

	"github.com/fastygo/tasks/domain"
)

// TaskRepository runs exactly one statement per call. Operations that
// target a single row return domain.ErrTaskNotFound when no row matched.
type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	Create(ctx context.Context, name string) (*domain.Task, error)
	ToggleCompleted(ctx context.Context, id int64) (*domain.Task, error)
	Delete(ctx context.Context, id int64) (*domain.Task, error)
}

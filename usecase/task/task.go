package task

import (
	"context"

	"go.uber.org/zap"

	"github.com/fastygo/tasks/domain"
	"github.com/fastygo/tasks/pkg/logger"
	"github.com/fastygo/tasks/repository"
)

type UseCase struct {
	tasks  repository.TaskRepository
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		logger: logger,
	}
}

func (uc *UseCase) ListTasks(ctx context.Context) ([]domain.Task, error) {
	tasks, err := uc.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}
	return tasks, nil
}

func (uc *UseCase) CreateTask(ctx context.Context, name string) (*domain.Task, error) {
	created, err := uc.tasks.Create(ctx, name)
	if err != nil {
		return nil, err
	}
	logger.WithRequestID(ctx, uc.logger).Debug("task created", zap.Int64("task_id", created.ID))
	return created, nil
}

// ToggleTask flips the completion flag of the task and returns its new state.
func (uc *UseCase) ToggleTask(ctx context.Context, id int64) (*domain.Task, error) {
	updated, err := uc.tasks.ToggleCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.WithRequestID(ctx, uc.logger).Debug("task toggled",
		zap.Int64("task_id", updated.ID),
		zap.Bool("completed", updated.IsCompleted()),
	)
	return updated, nil
}

// DeleteTask removes the task and returns the values it held before removal.
func (uc *UseCase) DeleteTask(ctx context.Context, id int64) (*domain.Task, error) {
	deleted, err := uc.tasks.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.WithRequestID(ctx, uc.logger).Debug("task deleted", zap.Int64("task_id", deleted.ID))
	return deleted, nil
}

package task_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fastygo/tasks/domain"
	"github.com/fastygo/tasks/usecase/task"
)

type stubRepository struct {
	tasks []domain.Task
	err   error

	toggledID int64
	deletedID int64
}

func (s *stubRepository) List(ctx context.Context) ([]domain.Task, error) {
	return s.tasks, s.err
}

func (s *stubRepository) Create(ctx context.Context, name string) (*domain.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: 1, Name: name}, nil
}

func (s *stubRepository) ToggleCompleted(ctx context.Context, id int64) (*domain.Task, error) {
	s.toggledID = id
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: id, Completed: true}, nil
}

func (s *stubRepository) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	s.deletedID = id
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Task{ID: id}, nil
}

func TestListTasks_NilBecomesEmpty(t *testing.T) {
	uc := task.New(&stubRepository{}, nil)

	tasks, err := uc.ListTasks(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestCreateTask(t *testing.T) {
	uc := task.New(&stubRepository{}, nil)

	created, err := uc.CreateTask(context.Background(), "buy milk")

	require.NoError(t, err)
	assert.Equal(t, "buy milk", created.Name)
	assert.False(t, created.Completed)
}

func TestToggleAndDeletePassIdentifier(t *testing.T) {
	repo := &stubRepository{}
	uc := task.New(repo, nil)

	toggled, err := uc.ToggleTask(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), repo.toggledID)
	assert.True(t, toggled.Completed)

	deleted, err := uc.DeleteTask(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(9), repo.deletedID)
	assert.Equal(t, int64(9), deleted.ID)
}

func TestErrorsPropagateUnchanged(t *testing.T) {
	backend := domain.WrapError(domain.ErrCodeInternal, "list tasks", errors.New("connection refused"))

	tests := []struct {
		name string
		err  error
		call func(uc *task.UseCase) error
	}{
		{
			name: "list backend failure",
			err:  backend,
			call: func(uc *task.UseCase) error { _, err := uc.ListTasks(context.Background()); return err },
		},
		{
			name: "create backend failure",
			err:  backend,
			call: func(uc *task.UseCase) error { _, err := uc.CreateTask(context.Background(), "x"); return err },
		},
		{
			name: "toggle not found",
			err:  domain.ErrTaskNotFound,
			call: func(uc *task.UseCase) error { _, err := uc.ToggleTask(context.Background(), 1); return err },
		},
		{
			name: "delete not found",
			err:  domain.ErrTaskNotFound,
			call: func(uc *task.UseCase) error { _, err := uc.DeleteTask(context.Background(), 1); return err },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := task.New(&stubRepository{err: tt.err}, nil)
			assert.ErrorIs(t, tt.call(uc), tt.err)
		})
	}
}

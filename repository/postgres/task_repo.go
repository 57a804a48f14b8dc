package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fastygo/tasks/domain"
	"github.com/fastygo/tasks/repository"
)

const taskColumns = `id, name, completed, created_at, updated_at`

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

func (r *taskRepository) List(ctx context.Context) ([]domain.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError("list tasks", err)
	}
	defer rows.Close()

	tasks := make([]domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, mapError("scan task", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list tasks", err)
	}
	return tasks, nil
}

func (r *taskRepository) Create(ctx context.Context, name string) (*domain.Task, error) {
	const query = `
	INSERT INTO tasks (name)
	VALUES ($1)
	RETURNING ` + taskColumns

	task, err := scanTask(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		return nil, mapError("create task", err)
	}
	return task, nil
}

func (r *taskRepository) ToggleCompleted(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `
	UPDATE tasks
	SET completed = NOT completed,
		updated_at = NOW()
	WHERE id = $1
	RETURNING ` + taskColumns

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError("toggle task", err)
	}
	return task, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (*domain.Task, error) {
	const query = `DELETE FROM tasks WHERE id = $1 RETURNING ` + taskColumns

	task, err := scanTask(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapError("delete task", err)
	}
	return task, nil
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var task domain.Task
	if err := row.Scan(
		&task.ID,
		&task.Name,
		&task.Completed,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &task, nil
}

package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id BIGSERIAL PRIMARY KEY,
		title TEXT,
		describe TEXT,
		completed BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE INDEX IF NOT EXISTS ix_tasks_title ON tasks (title)`,
	`CREATE INDEX IF NOT EXISTS ix_tasks_describe ON tasks (describe)`,
}

type PostgresStore struct { // Хранилище поверх пула pgx
	pool *pgxpool.Pool
}

func OpenPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	for _, stmt := range postgresSchema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			pool.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return NewPostgresStore(pool), nil
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore { // Конструктор
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) OpenSession(ctx context.Context) (Session, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire postgres connection: %w", err)
	}
	return &postgresSession{conn: conn}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

type postgresSession struct {
	conn *pgxpool.Conn
}

func (s *postgresSession) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	var t model.Task
	err := s.conn.QueryRow(ctx, `
		INSERT INTO tasks (title, describe, completed)
		VALUES ($1, $2, $3)
		RETURNING id, title, describe, completed
	`, in.Title, in.Describe, in.Completed).Scan(&t.ID, &t.Title, &t.Describe, &t.Completed)
	return t, err
}

func (s *postgresSession) Get(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := s.conn.QueryRow(ctx, `
		SELECT id, title, describe, completed FROM tasks WHERE id = $1
	`, id).Scan(&t.ID, &t.Title, &t.Describe, &t.Completed)
	return t, mapError(err)
}

func (s *postgresSession) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.conn.Query(ctx, `
		SELECT id, title, describe, completed FROM tasks ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]model.Task, 0)
	for rows.Next() {
		var t model.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.Describe, &t.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (s *postgresSession) Update(ctx context.Context, t model.Task) (model.Task, error) {
	err := s.conn.QueryRow(ctx, `
		UPDATE tasks
		SET title = $2, describe = $3, completed = $4
		WHERE id = $1
		RETURNING id, title, describe, completed
	`, t.ID, t.Title, t.Describe, t.Completed).Scan(&t.ID, &t.Title, &t.Describe, &t.Completed)
	return t, mapError(err)
}

func (s *postgresSession) Delete(ctx context.Context, id int64) error {
	cmd, err := s.conn.Exec(ctx, "DELETE FROM tasks WHERE id = $1", id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrorNotFound
	}
	return nil
}

func (s *postgresSession) DeleteAll(ctx context.Context) (int64, error) {
	cmd, err := s.conn.Exec(ctx, "DELETE FROM tasks")
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

func (s *postgresSession) Close() error {
	s.conn.Release()
	return nil
}

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrorNotFound
	}
	return err
}

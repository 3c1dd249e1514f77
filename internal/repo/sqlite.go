package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT,
		describe TEXT,
		completed BOOLEAN NOT NULL DEFAULT 0
	)`,
	`CREATE INDEX IF NOT EXISTS ix_tasks_title ON tasks (title)`,
	`CREATE INDEX IF NOT EXISTS ix_tasks_describe ON tasks (describe)`,
}

type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite открывает (и при необходимости создает) файл БД и таблицу tasks
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", "file:"+path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// Один писатель: запросы ждут соединение, а не получают SQLITE_BUSY
	db.SetMaxOpenConns(1)

	for _, stmt := range sqliteSchema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create schema: %w", err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) OpenSession(ctx context.Context) (Session, error) {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquire sqlite connection: %w", err)
	}
	return &sqliteSession{conn: conn}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

type sqliteSession struct {
	conn *sql.Conn
}

func (s *sqliteSession) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO tasks (title, describe, completed) VALUES (?, ?, ?)
	`, in.Title, in.Describe, in.Completed)
	if err != nil {
		return model.Task{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Task{}, err
	}
	return s.Get(ctx, id)
}

func (s *sqliteSession) Get(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := s.conn.QueryRowContext(ctx, `
		SELECT id, title, describe, completed FROM tasks WHERE id = ?
	`, id).Scan(&t.ID, &t.Title, &t.Describe, &t.Completed)

	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrorNotFound
	}
	return t, err
}

func (s *sqliteSession) List(ctx context.Context) ([]model.Task, error) {
	rows, err := s.conn.QueryContext(ctx, `
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

func (s *sqliteSession) Update(ctx context.Context, t model.Task) (model.Task, error) {
	res, err := s.conn.ExecContext(ctx, `
		UPDATE tasks SET title = ?, describe = ?, completed = ? WHERE id = ?
	`, t.Title, t.Describe, t.Completed, t.ID)
	if err != nil {
		return t, err
	}
	if err := affected(res); err != nil {
		return t, err
	}
	return s.Get(ctx, t.ID)
}

func (s *sqliteSession) Delete(ctx context.Context, id int64) error {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return affected(res)
}

func (s *sqliteSession) DeleteAll(ctx context.Context) (int64, error) {
	res, err := s.conn.ExecContext(ctx, "DELETE FROM tasks")
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *sqliteSession) Close() error {
	return s.conn.Close()
}

// affected превращает "ноль затронутых строк" в ErrorNotFound
func affected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrorNotFound
	}
	return nil
}

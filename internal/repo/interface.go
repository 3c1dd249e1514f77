package repo

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

// Store владеет соединением с БД и выдает по одной сессии на запрос
type Store interface {
	OpenSession(ctx context.Context) (Session, error)
	Close() error
}

// Session - короткоживущий доступ к БД на время одного запроса.
// Вызывающий обязан закрыть сессию на любом пути выхода.
type Session interface {
	Create(ctx context.Context, in model.TaskInput) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
	Close() error
}

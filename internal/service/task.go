package service

import (
	"context"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
)

type TaskService struct {
	store repo.Store
}

func NewTaskService(store repo.Store) *TaskService {
	return &TaskService{store: store}
}

func (s *TaskService) Create(ctx context.Context, in model.TaskInput) (model.Task, error) {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer sess.Close() // Сессия закрывается на любом пути выхода

	return sess.Create(ctx, in)
}

func (s *TaskService) List(ctx context.Context) ([]model.Task, error) {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return nil, err
	}
	defer sess.Close()

	return sess.List(ctx)
}

func (s *TaskService) Get(ctx context.Context, id int64) (model.Task, error) {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer sess.Close()

	return sess.Get(ctx, id)
}

// Update сначала ищет задачу (404, если нет), затем записывает новое значение
// под тем же id и возвращает состояние из БД.
func (s *TaskService) Update(ctx context.Context, id int64, in model.TaskInput) (model.Task, error) {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return model.Task{}, err
	}
	defer sess.Close()

	existing, err := sess.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	return sess.Update(ctx, existing.WithInput(in))
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	if _, err := sess.Get(ctx, id); err != nil {
		return err
	}
	return sess.Delete(ctx, id)
}

func (s *TaskService) DeleteAll(ctx context.Context) error {
	sess, err := s.store.OpenSession(ctx)
	if err != nil {
		return err
	}
	defer sess.Close()

	_, err = sess.DeleteAll(ctx)
	return err
}

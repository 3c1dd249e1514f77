package service

import (
	"errors"
	"fmt"

	"github.com/BuzzLyutic/todo-api/internal/model"
)

var ErrValidation = errors.New("validation error")

// ParseCreate проверяет тело запроса на создание.
// completed необязателен и по умолчанию false.
func ParseCreate(p model.TaskPayload) (model.TaskInput, error) {
	if err := requireText(p); err != nil {
		return model.TaskInput{}, err
	}

	in := model.TaskInput{Title: *p.Title, Describe: *p.Describe}
	if p.Completed != nil {
		in.Completed = *p.Completed
	}
	return in, nil
}

// ParseUpdate проверяет тело запроса на обновление: частичных обновлений нет,
// все три поля обязательны.
func ParseUpdate(p model.TaskPayload) (model.TaskInput, error) {
	if err := requireText(p); err != nil {
		return model.TaskInput{}, err
	}
	if p.Completed == nil {
		return model.TaskInput{}, missing("completed")
	}

	return model.TaskInput{Title: *p.Title, Describe: *p.Describe, Completed: *p.Completed}, nil
}

func requireText(p model.TaskPayload) error {
	if p.Title == nil {
		return missing("title")
	}
	if p.Describe == nil {
		return missing("describe")
	}
	return nil
}

func missing(field string) error {
	return fmt.Errorf("%w: field %q is required", ErrValidation, field)
}

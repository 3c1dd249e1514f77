package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/BuzzLyutic/todo-api/internal/model"
	"github.com/BuzzLyutic/todo-api/internal/repo"
	"github.com/BuzzLyutic/todo-api/internal/service"
	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

const (
	MsgNotFound   = "Tarefa não encontrada"
	MsgDeleted    = "Tarefa excluída com sucesso"
	MsgAllDeleted = "Todas as tarefas foram excluídas com sucesso."
)

// errBadRequest - тело или путь запроса не удалось разобрать
var errBadRequest = errors.New("bad request")

type TaskHandler struct {
	service *service.TaskService
	logger  *zap.Logger
}

func NewTaskHandler(srv *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: srv,
		logger:  logger,
	}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodePayload(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	in, err := service.ParseCreate(payload)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.service.List(r.Context())
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, tasks)
}

func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	payload, err := decodePayload(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	in, err := service.ParseUpdate(payload)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	task, err := h.service.Update(r.Context(), id, in)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := taskID(r)
	if err != nil {
		h.handleErrors(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Message(w, r, http.StatusOK, MsgDeleted)
}

func (h *TaskHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		h.handleErrors(w, r, err)
		return
	}
	respond.Message(w, r, http.StatusOK, MsgAllDeleted)
}

func (h *TaskHandler) handleErrors(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, repo.ErrorNotFound):
		respond.Error(w, r, http.StatusNotFound, MsgNotFound)
	case errors.Is(err, service.ErrValidation), errors.Is(err, errBadRequest):
		respond.Error(w, r, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("internal error", zap.Error(err), zap.String("path", r.URL.Path))
		respond.Error(w, r, http.StatusInternalServerError, "internal error")
	}
}

func decodePayload(r *http.Request) (model.TaskPayload, error) {
	var p model.TaskPayload
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return p, fmt.Errorf("%w: empty request body", errBadRequest)
		}
		return p, fmt.Errorf("%w: invalid json: %v", errBadRequest, err)
	}
	return p, nil
}

func taskID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid task id %q", errBadRequest, raw)
	}
	return id, nil
}

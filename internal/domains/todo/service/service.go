package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"daily/infras/otel"
	"daily/internal/domains/todo/model/dto"
	"daily/internal/domains/todo/repository"
	"daily/shared"
	"daily/shared/constant"
	"daily/shared/envelope"
	"daily/shared/result"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	msgTodoAdded         = "todo added"
	msgTodoDeleted       = "todo deleted"
	msgTodoEdited        = "todo edited"
	msgTodoIncomplete    = "todo information is incomplete"
	msgTodoNotFound      = "todo not found"
	msgTodoStatusUpdated = "todo status updated"
	msgTodoStatistics    = "todo statistics fetched"
	msgTodoQueryFailed   = "query failed"

	msgTodoListAll       = "fetched all todos"
	msgTodoListActive    = "fetched active todos"
	msgTodoListCompleted = "fetched completed todos"
)

// queryMessages maps a condition query branch to its message. %s is the search text.
var queryMessages = map[result.Code]string{
	repository.QueryAll:               msgTodoListAll,
	repository.QueryAllMatching:       "fetched todos whose title or content contains %s",
	repository.QueryActive:            "fetched all active todos",
	repository.QueryActiveMatching:    "fetched active todos whose title or content contains %s",
	repository.QueryCompleted:         "fetched all completed todos",
	repository.QueryCompletedMatching: "fetched completed todos whose title or content contains %s",
}

type Todo interface {
	Add(ctx context.Context, req dto.AddToDoRequest) envelope.Envelope
	Delete(ctx context.Context, id int) envelope.Envelope
	Edit(ctx context.Context, req dto.EditToDoRequest) envelope.Envelope
	GetAll(ctx context.Context) envelope.Envelope
	GetActive(ctx context.Context) envelope.Envelope
	GetCompleted(ctx context.Context) envelope.Envelope
	ConditionQuery(ctx context.Context, status int, searchText string) envelope.Envelope
	Statistics(ctx context.Context) envelope.Envelope
	UpdateStatus(ctx context.Context, id int) envelope.Envelope
}

type serviceImpl struct {
	repo repository.Todo
	otel otel.Otel
}

func New(repo repository.Todo, otel otel.Otel) Todo {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.AddToDoRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Add")
	defer scope.End()

	todo := req.ToModel()

	res, err := s.repo.Add(ctx, &todo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add todo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.AddOK:
		return envelope.New(envelope.Success, msgTodoAdded, res.Code)
	case res.Code == repository.AddIncomplete:
		return envelope.New(envelope.DtoNotComplete, msgTodoIncomplete, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) Delete(ctx context.Context, id int) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Delete")
	defer scope.End()

	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", id).Msg("failed to delete todo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.DeleteOK:
		return envelope.New(envelope.Success, msgTodoDeleted, res.Code)
	case res.Code == repository.DeleteInvalidID:
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, res.Code)
	case res.Code == repository.DeleteNotFound:
		return envelope.New(envelope.NotFound, msgTodoNotFound, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) Edit(ctx context.Context, req dto.EditToDoRequest) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Edit")
	defer scope.End()

	if shared.IsBlank(req.Title, req.Content) {
		return envelope.New(envelope.DtoNotComplete, msgTodoIncomplete, nil)
	}

	todo := req.ToModel()

	res, err := s.repo.Update(ctx, &todo)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", req.ToDoID).Msg("failed to edit todo")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.UpdateOK:
		return envelope.New(envelope.Success, msgTodoEdited, res.Code)
	case res.Code == repository.UpdateInvalidID:
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, res.Code)
	case res.Code == repository.UpdateNotFound:
		return envelope.New(envelope.NotFound, msgTodoNotFound, res.Code)
	}

	return unmapped(res)
}

func (s *serviceImpl) GetAll(ctx context.Context) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetAll")
	defer scope.End()

	return s.list(ctx, scope, repository.FilterAll, repository.QueryAll, msgTodoListAll)
}

func (s *serviceImpl) GetActive(ctx context.Context) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetActive")
	defer scope.End()

	return s.list(ctx, scope, repository.FilterActive, repository.QueryActive, msgTodoListActive)
}

func (s *serviceImpl) GetCompleted(ctx context.Context) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.GetCompleted")
	defer scope.End()

	return s.list(ctx, scope, repository.FilterCompleted, repository.QueryCompleted, msgTodoListCompleted)
}

// list runs an unfiltered-text condition query and succeeds only on the expected branch.
func (s *serviceImpl) list(ctx context.Context, scope otel.Scope, status int, want result.Code, msg string) envelope.Envelope {
	todos, res, err := s.repo.ConditionQuery(ctx, status, constant.Empty)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("status", status).Msg("failed to list todos")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	if res.Success && res.Code == want {
		return envelope.New(envelope.Success, msg, dto.FromModels(todos))
	}

	return unmapped(res)
}

func (s *serviceImpl) ConditionQuery(ctx context.Context, status int, searchText string) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.ConditionQuery")
	defer scope.End()

	todos, res, err := s.repo.ConditionQuery(ctx, status, searchText)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("status", status).Str("searchText", searchText).Msg("failed to query todos")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	if !res.Success {
		if res.Code == repository.QueryInvalidStatus {
			return envelope.New(envelope.Error, msgTodoQueryFailed, nil)
		}

		return unmapped(res)
	}

	format, ok := queryMessages[res.Code]
	if !ok {
		return unmapped(res)
	}

	msg := format
	if strings.Contains(format, "%s") {
		msg = fmt.Sprintf(format, searchText)
	}

	return envelope.New(envelope.Success, msg, dto.FromModels(todos))
}

func (s *serviceImpl) Statistics(ctx context.Context) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.Statistics")
	defer scope.End()

	total, completed, res, err := s.repo.Statistics(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to compute todo statistics")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	if res.Success && res.Code == repository.StatisticsOK {
		return envelope.New(envelope.Success, msgTodoStatistics, dto.NewStatistics(total, completed))
	}

	return unmapped(res)
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, id int) envelope.Envelope {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".todo.UpdateStatus")
	defer scope.End()

	res, err := s.repo.ToggleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Int("id", id).Msg("failed to toggle todo status")

		return envelope.ServerBusy()
	}

	scope.SetResult(res)

	switch {
	case res.Success && res.Code == repository.ToggleOK:
		return envelope.New(envelope.Success, msgTodoStatusUpdated, res.Code)
	case res.Code == repository.ToggleInvalidID:
		return envelope.New(envelope.DtoError, envelope.MsgServerBusy, res.Code)
	case res.Code == repository.ToggleNotFound:
		return envelope.New(envelope.NotFound, msgTodoNotFound, res.Code)
	}

	return unmapped(res)
}

func unmapped(res result.Result) envelope.Envelope {
	log.Warn().Bool("success", res.Success).Int("code", int(res.Code)).Msg("unmapped todo repository result")

	return envelope.ServerBusy()
}

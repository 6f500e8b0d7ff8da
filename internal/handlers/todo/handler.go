package todo

import (
	"daily/infras/otel"
	"daily/internal/domains/todo/model/dto"
	"daily/internal/domains/todo/service"
	"daily/shared/constant"
	"daily/shared/failure"
	"daily/shared/validator"
	"daily/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/ToDo", func(routerGroup chi.Router) {
		routerGroup.Get("/StatisticsToDo", handler.StatisticsToDo)
		routerGroup.Get("/GetAllToDoList", handler.GetAllToDoList)
		routerGroup.Get("/GetActiveToDoList", handler.GetActiveToDoList)
		routerGroup.Get("/GetCompletedToDoList", handler.GetCompletedToDoList)
		routerGroup.Get("/GetConditionQueryToDoList", handler.GetConditionQueryToDoList)
		routerGroup.Post("/AddToDo", handler.AddToDo)
		routerGroup.Post("/EditToDo", handler.EditToDo)
		routerGroup.Get("/DeleteToDo", handler.DeleteToDo)
		routerGroup.Get("/UpdateToDoStatus", handler.UpdateToDoStatus)
	})
}

// StatisticsToDo reports total and completed counts.
func (handler *Handler) StatisticsToDo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StatisticsToDo")
	defer scope.End()

	response.WithEnvelope(w, handler.service.Statistics(ctx))
}

func (handler *Handler) GetAllToDoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllToDoList")
	defer scope.End()

	response.WithEnvelope(w, handler.service.GetAll(ctx))
}

func (handler *Handler) GetActiveToDoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveToDoList")
	defer scope.End()

	response.WithEnvelope(w, handler.service.GetActive(ctx))
}

func (handler *Handler) GetCompletedToDoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompletedToDoList")
	defer scope.End()

	response.WithEnvelope(w, handler.service.GetCompleted(ctx))
}

// GetConditionQueryToDoList filters by status (0 all, 1 active, 2 completed) and searchText.
func (handler *Handler) GetConditionQueryToDoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConditionQueryToDoList")
	defer scope.End()

	status, err := validator.QueryInt(r, constant.RequestParamStatus, failure.InvalidStatusParam)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	searchText := r.URL.Query().Get(constant.RequestParamSearchText)

	response.WithEnvelope(w, handler.service.ConditionQuery(ctx, status, searchText))
}

// AddToDo creates a todo from the request body.
func (handler *Handler) AddToDo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddToDo")
	defer scope.End()

	req := dto.AddToDoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate add todo request")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Add(ctx, req))
}

// EditToDo sets title, content and status of an existing todo.
func (handler *Handler) EditToDo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditToDo")
	defer scope.End()

	req := dto.EditToDoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate edit todo request")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Edit(ctx, req))
}

func (handler *Handler) DeleteToDo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteToDo")
	defer scope.End()

	id, err := validator.QueryInt(r, constant.RequestParamID, failure.InvalidIDParam)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Delete(ctx, id))
}

// UpdateToDoStatus flips a todo between active and completed.
func (handler *Handler) UpdateToDoStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateToDoStatus")
	defer scope.End()

	id, err := validator.QueryInt(r, constant.RequestParamID, failure.InvalidIDParam)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.UpdateStatus(ctx, id))
}

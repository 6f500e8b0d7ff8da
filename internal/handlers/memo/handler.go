package memo

import (
	"daily/infras/otel"
	"daily/internal/domains/memo/model/dto"
	"daily/internal/domains/memo/service"
	"daily/shared/constant"
	"daily/shared/failure"
	"daily/shared/validator"
	"daily/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Memo
	otel    otel.Otel
}

func New(service service.Memo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/Memo", func(routerGroup chi.Router) {
		routerGroup.Get("/GetAllMemoList", handler.GetAllMemoList)
		routerGroup.Get("/GetConditionQueryMemoList", handler.GetConditionQueryMemoList)
		routerGroup.Post("/AddMemo", handler.AddMemo)
		routerGroup.Post("/EditMemo", handler.EditMemo)
		routerGroup.Get("/DeleteMemo", handler.DeleteMemo)
		routerGroup.Delete("/DeleteMemo", handler.DeleteMemo)
	})
}

// GetAllMemoList returns every memo.
func (handler *Handler) GetAllMemoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllMemoList")
	defer scope.End()

	response.WithEnvelope(w, handler.service.GetAll(ctx))
}

// GetConditionQueryMemoList returns memos whose title or content contains searchText.
func (handler *Handler) GetConditionQueryMemoList(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetConditionQueryMemoList")
	defer scope.End()

	searchText := r.URL.Query().Get(constant.RequestParamSearchText)

	response.WithEnvelope(w, handler.service.ConditionQuery(ctx, searchText))
}

// AddMemo creates a memo from the request body.
func (handler *Handler) AddMemo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddMemo")
	defer scope.End()

	req := dto.AddMemoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate add memo request")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Add(ctx, req))
}

// EditMemo replaces title, content and status of an existing memo.
func (handler *Handler) EditMemo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".EditMemo")
	defer scope.End()

	req := dto.EditMemoRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate edit memo request")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Edit(ctx, req))
}

// DeleteMemo removes the memo named by the id query parameter.
func (handler *Handler) DeleteMemo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMemo")
	defer scope.End()

	id, err := validator.QueryInt(r, constant.RequestParamID, failure.InvalidIDParam)
	if err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Delete(ctx, id))
}

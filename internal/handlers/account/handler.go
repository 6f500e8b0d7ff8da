package account

import (
	"daily/infras/otel"
	"daily/internal/domains/account/model/dto"
	"daily/internal/domains/account/service"
	"daily/shared/constant"
	"daily/shared/validator"
	"daily/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Account
	otel    otel.Otel
}

func New(service service.Account, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/Account", func(routerGroup chi.Router) {
		routerGroup.Get("/Login", handler.Login)
		routerGroup.Post("/Register", handler.Register)
	})
}

// Login checks logAccount and logPassword. Blank values reach the service,
// which answers them inside the envelope.
func (handler *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Login")
	defer scope.End()

	query := r.URL.Query()
	req := dto.LoginRequest{
		Account:  query.Get(constant.RequestParamLogAccount),
		Password: query.Get(constant.RequestParamLogPwd),
	}

	response.WithEnvelope(w, handler.service.Login(ctx, req))
}

// Register creates an account from the request body.
func (handler *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to validate register request")

		response.WithError(w, err)

		return
	}

	response.WithEnvelope(w, handler.service.Register(ctx, req))
}

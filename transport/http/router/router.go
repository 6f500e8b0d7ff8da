package router

import (
	"daily/internal/handlers/account"
	"daily/internal/handlers/memo"
	"daily/internal/handlers/todo"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Account account.Handler
	Memo    memo.Handler
	ToDo    todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

// SetupRoutes mounts every controller under /api/{Controller}/{Action}.
func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		r.DomainHandlers.Account.Router(routerGroup)
		r.DomainHandlers.Memo.Router(routerGroup)
		r.DomainHandlers.ToDo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

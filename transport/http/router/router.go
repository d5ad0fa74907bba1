package router

import (
	"basera/internal/handlers/bed"
	"basera/internal/handlers/booking"
	"basera/internal/handlers/invoice"
	"basera/internal/handlers/mess"
	"basera/internal/handlers/pricing"
	"basera/internal/handlers/property"
	"basera/internal/handlers/room"
	"basera/internal/handlers/transaction"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Property    property.Handler
	Room        room.Handler
	Bed         bed.Handler
	Pricing     pricing.Handler
	Booking     booking.Handler
	Mess        mess.Handler
	Invoice     invoice.Handler
	Transaction transaction.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Property.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Bed.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Mess.Router(routerGroup)
		r.DomainHandlers.Invoice.Router(routerGroup)
		r.DomainHandlers.Transaction.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}

package service

import (
	"context"
	"errors"
	"log"
	"sync"

	"restaurant-storefront/internal/domain"
)

// Dispatcher fans order events out to in-process handlers and to external
// publishers. Handler errors are returned to the emitter; publisher errors
// are only logged.
type Dispatcher struct {
	mu         sync.RWMutex
	handlers   []OrderEventHandler
	publishers []OrderEventPublisher
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

func (d *Dispatcher) Subscribe(handler OrderEventHandler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers = append(d.handlers, handler)
}

func (d *Dispatcher) AddPublisher(publisher OrderEventPublisher) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.publishers = append(d.publishers, publisher)
}

func (d *Dispatcher) HandleOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	d.mu.RLock()
	handlers := append([]OrderEventHandler{}, d.handlers...)
	publishers := append([]OrderEventPublisher{}, d.publishers...)
	d.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h.HandleOrderEvent(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	for _, p := range publishers {
		if err := p.PublishOrderEvent(ctx, event); err != nil {
			log.Printf("WARNING: failed to publish %s for order %s: %v", event.Type, event.OrderID, err)
		}
	}
	return errors.Join(errs...)
}

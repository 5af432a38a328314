package service

import (
	"context"
	"encoding/json"
	"log"

	storefront "restaurant-storefront/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads order events until ctx is done. Bad messages are logged and
// skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Analytics Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Analytics Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event storefront.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if err := c.ProcessEvent(ctx, event); err != nil {
			log.Printf("Error processing %s for order %s: %v", event.Type, event.OrderID, err)
		}
	}
}

func (c *Consumer) ProcessEvent(ctx context.Context, event storefront.OrderEvent) error {
	switch event.Type {
	case storefront.EventOrderCreated:
		if err := c.Store.RecordOrder(ctx, event); err != nil {
			return err
		}
		if event.Status == storefront.StatusCancelled {
			return c.Store.RecordCancellation(ctx, event)
		}
	case storefront.EventOrderStatusChanged:
		wasCancelled := event.PreviousStatus == storefront.StatusCancelled
		isCancelled := event.Status == storefront.StatusCancelled
		switch {
		case isCancelled && !wasCancelled:
			return c.Store.RecordCancellation(ctx, event)
		case wasCancelled && !isCancelled:
			return c.Store.RevertCancellation(ctx, event)
		}
	}
	return nil
}

package events

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Contact struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

type Item struct {
	ID          uuid.UUID       `json:"id" validate:"required"`
	ProductID   uuid.UUID       `json:"product_id" validate:"required"`
	ProductName string          `json:"product_name,omitempty"`
	StoreID     uuid.UUID       `json:"store_id"`
	StoreName   string          `json:"store_name,omitempty"`
	Quantity    int             `json:"quantity" validate:"gt=0"`
	Price       decimal.Decimal `json:"price"`
	Status      string          `json:"status" validate:"required"`
	Seller      Contact         `json:"seller"`
}

type Order struct {
	ID            uuid.UUID       `json:"id" validate:"required"`
	Buyer         Contact         `json:"buyer"`
	Address       string          `json:"address"`
	Phone         string          `json:"phone"`
	Payment       string          `json:"payment"`
	Total         decimal.Decimal `json:"total"`
	OverallStatus string          `json:"overall_status"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Items         []Item          `json:"items" validate:"required,min=1,dive"`
}

type Event struct {
	ID         uuid.UUID   `json:"id" validate:"required"`
	Kind       string      `json:"kind" validate:"required,oneof=order_placed cancellation_requested status_changed"`
	ActorID    uuid.UUID   `json:"actor_id"`
	ItemIDs    []uuid.UUID `json:"item_ids,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
	Order      Order       `json:"order" validate:"required"`
}

var validate = validator.New()

func EventToJSON(e entities.OrderEvent) Event {
	o := e.Order
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			ID:          it.ID,
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			StoreID:     it.StoreID,
			StoreName:   it.StoreName,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Status:      string(it.Status),
			Seller:      Contact{ID: it.SellerID, Name: it.Seller.Name, Email: it.Seller.Email},
		})
	}

	return Event{
		ID:         e.ID,
		Kind:       string(e.Kind),
		ActorID:    e.ActorID,
		ItemIDs:    e.ItemIDs,
		OccurredAt: e.OccurredAt,
		Order: Order{
			ID:            o.ID,
			Buyer:         Contact{ID: o.BuyerID, Name: o.Buyer.Name, Email: o.Buyer.Email},
			Address:       o.Address,
			Phone:         o.Phone,
			Payment:       string(o.Payment),
			Total:         o.Total,
			OverallStatus: string(o.OverallStatus),
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
			Items:         items,
		},
	}
}

func EventFromJSON(e Event) entities.OrderEvent {
	o := e.Order
	items := make([]entities.Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, entities.Item{
			ID:          it.ID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			Price:       it.Price,
			SellerID:    it.Seller.ID,
			StoreID:     it.StoreID,
			Status:      entities.ItemStatus(it.Status),
			ProductName: it.ProductName,
			StoreName:   it.StoreName,
			Seller:      entities.Contact{ID: it.Seller.ID, Name: it.Seller.Name, Email: it.Seller.Email},
		})
	}

	return entities.OrderEvent{
		ID:         e.ID,
		Kind:       entities.EventKind(e.Kind),
		ActorID:    e.ActorID,
		ItemIDs:    e.ItemIDs,
		OccurredAt: e.OccurredAt,
		Order: entities.Order{
			ID:            o.ID,
			BuyerID:       o.Buyer.ID,
			Address:       o.Address,
			Phone:         o.Phone,
			Total:         o.Total,
			Payment:       entities.PaymentMethod(o.Payment),
			OverallStatus: entities.OverallStatus(o.OverallStatus),
			CreatedAt:     o.CreatedAt,
			UpdatedAt:     o.UpdatedAt,
			Buyer:         entities.Contact{ID: o.Buyer.ID, Name: o.Buyer.Name, Email: o.Buyer.Email},
			Items:         items,
		},
	}
}

// Decode parses and validates a message value from the event topic.
func Decode(data []byte) (entities.OrderEvent, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}
	if err := validate.Struct(e); err != nil {
		return entities.OrderEvent{}, fmt.Errorf("invalid event data: %w", err)
	}
	return EventFromJSON(e), nil
}

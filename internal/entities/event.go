package entities

import (
	"time"

	"github.com/google/uuid"
)

type EventKind string

const (
	EventOrderPlaced           EventKind = "order_placed"
	EventCancellationRequested EventKind = "cancellation_requested"
	EventStatusChanged         EventKind = "status_changed"
)

// OrderEvent carries a snapshot of the order right after the transition that
// produced it. ItemIDs holds the affected items (empty for OrderPlaced).
type OrderEvent struct {
	ID         uuid.UUID
	Kind       EventKind
	Order      Order
	ItemIDs    []uuid.UUID
	ActorID    uuid.UUID
	OccurredAt time.Time
}

func NewOrderEvent(kind EventKind, order Order, actor uuid.UUID, itemIDs ...uuid.UUID) OrderEvent {
	return OrderEvent{
		ID:         uuid.New(),
		Kind:       kind,
		Order:      order,
		ItemIDs:    itemIDs,
		ActorID:    actor,
		OccurredAt: time.Now().UTC(),
	}
}

// AffectedItems resolves ItemIDs against the order snapshot.
func (e OrderEvent) AffectedItems() []Item {
	if len(e.ItemIDs) == 0 {
		return e.Order.Items
	}
	wanted := make(map[uuid.UUID]struct{}, len(e.ItemIDs))
	for _, id := range e.ItemIDs {
		wanted[id] = struct{}{}
	}
	items := make([]Item, 0, len(e.ItemIDs))
	for _, it := range e.Order.Items {
		if _, ok := wanted[it.ID]; ok {
			items = append(items, it)
		}
	}
	return items
}

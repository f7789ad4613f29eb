package entities

import "fmt"

type ItemStatus string

const (
	StatusPending               ItemStatus = "pending"
	StatusConfirmed             ItemStatus = "confirmed"
	StatusShipped               ItemStatus = "shipped"
	StatusOutForDelivery        ItemStatus = "out_for_delivery"
	StatusDelivered             ItemStatus = "delivered"
	StatusCancellationRequested ItemStatus = "cancellation_requested"
	StatusCancelled             ItemStatus = "cancelled"
)

var sellerTargets = map[ItemStatus]struct{}{
	StatusConfirmed:      {},
	StatusShipped:        {},
	StatusOutForDelivery: {},
	StatusDelivered:      {},
	StatusCancelled:      {},
}

func (s ItemStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipped, StatusOutForDelivery,
		StatusDelivered, StatusCancellationRequested, StatusCancelled:
		return true
	}
	return false
}

// SellerSettable reports whether a seller may request s as a target status.
func (s ItemStatus) SellerSettable() bool {
	_, ok := sellerTargets[s]
	return ok
}

func (s ItemStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CancellationEligible reports whether a buyer may still ask to cancel the item.
func (s ItemStatus) CancellationEligible() bool {
	return s == StatusPending || s == StatusConfirmed
}

// Dispatched reports whether the item has left the seller.
func (s ItemStatus) Dispatched() bool {
	return s == StatusShipped || s == StatusOutForDelivery || s == StatusDelivered
}

// Label is the human form used in notifications.
func (s ItemStatus) Label() string {
	switch s {
	case StatusOutForDelivery:
		return "out for delivery"
	case StatusCancellationRequested:
		return "cancellation requested"
	}
	return string(s)
}

// CheckTransition validates a seller moving an item from s to next.
// Non-terminal statuses may be reordered freely; only the terminal guards and
// the "no cancel after dispatch" rule are enforced.
func (s ItemStatus) CheckTransition(next ItemStatus) error {
	if !next.SellerSettable() {
		return fmt.Errorf("%w: unsupported status %q", ErrValidation, next)
	}
	if s.Terminal() {
		return fmt.Errorf("%w: item is already %s", ErrInvalidTransition, s)
	}
	if next == StatusCancelled && s.Dispatched() {
		return fmt.Errorf("%w: cannot cancel an item that is %s", ErrInvalidTransition, s.Label())
	}
	return nil
}

type OverallStatus string

const (
	OverallPending          OverallStatus = "pending"
	OverallPartiallyShipped OverallStatus = "partially_shipped"
	OverallShipped          OverallStatus = "shipped"
	OverallDelivered        OverallStatus = "delivered"
	OverallCancelled        OverallStatus = "cancelled"
)

// DeriveOverallStatus summarises item statuses for display. It is advisory,
// item statuses stay authoritative.
func DeriveOverallStatus(items []Item) OverallStatus {
	if len(items) == 0 {
		return OverallPending
	}

	allDelivered, allCancelled, anyDispatched := true, true, false
	for _, it := range items {
		if it.Status != StatusDelivered {
			allDelivered = false
		}
		if it.Status != StatusCancelled {
			allCancelled = false
		}
		if it.Status.Dispatched() {
			anyDispatched = true
		}
	}

	switch {
	case allDelivered:
		return OverallDelivered
	case allCancelled:
		return OverallCancelled
	case anyDispatched:
		return OverallPartiallyShipped
	default:
		return OverallPending
	}
}

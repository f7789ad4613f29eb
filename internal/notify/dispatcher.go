package notify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	noStore   = "-"
	sendLimit = 4
)

type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Pusher delivers a realtime payload to a user if they are connected.
type Pusher interface {
	Push(ctx context.Context, userID uuid.UUID, payload []byte) (bool, error)
}

type Dispatcher struct {
	logger *slog.Logger
	mailer Mailer
	pusher Pusher
}

// NewDispatcher turns order events into emails and realtime pushes. pusher may be nil.
func NewDispatcher(logger *slog.Logger, mailer Mailer, pusher Pusher) *Dispatcher {
	return &Dispatcher{
		logger: logger.With(slog.String("component", "notify")),
		mailer: mailer,
		pusher: pusher,
	}
}

type envelope struct {
	userID uuid.UUID
	msg    Message
}

// Deliver sends every email and push the event calls for. All of them are
// attempted; the first failure is returned after the rest finish.
func (d *Dispatcher) Deliver(ctx context.Context, event entities.OrderEvent) error {
	envelopes, err := d.compose(event)
	if err != nil {
		return fmt.Errorf("failed to compose %s: %w", event.Kind, err)
	}

	var g errgroup.Group
	g.SetLimit(sendLimit)

	for _, env := range envelopes {
		if env.msg.To == "" {
			d.logger.Debug("recipient has no email, skipping",
				slog.String("user_id", env.userID.String()),
				slog.String("event", string(event.Kind)),
			)
			continue
		}
		g.Go(func() error {
			if err := d.mailer.Send(ctx, env.msg); err != nil {
				notificationsFailed.WithLabelValues("email").Inc()
				d.logger.Error("failed to send email",
					slog.String("to", env.msg.To),
					slog.String("subject", env.msg.Subject),
					slog.Any("error", err),
				)
				return err
			}
			notificationsSent.WithLabelValues("email", string(event.Kind)).Inc()
			return nil
		})
	}

	for _, userID := range recipients(envelopes) {
		g.Go(func() error {
			return d.push(ctx, userID, event)
		})
	}

	return g.Wait()
}

func (d *Dispatcher) push(ctx context.Context, userID uuid.UUID, event entities.OrderEvent) error {
	if d.pusher == nil {
		return nil
	}

	payload, err := json.Marshal(newPushPayload(event))
	if err != nil {
		return err
	}

	delivered, err := d.pusher.Push(ctx, userID, payload)
	if err != nil {
		notificationsFailed.WithLabelValues("realtime").Inc()
		d.logger.Warn("failed to push notification", slog.String("user_id", userID.String()), slog.Any("error", err))
		return err
	}
	if delivered {
		notificationsSent.WithLabelValues("realtime", string(event.Kind)).Inc()
	}
	return nil
}

func recipients(envelopes []envelope) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(envelopes))
	res := make([]uuid.UUID, 0, len(envelopes))
	for _, env := range envelopes {
		if env.userID == uuid.Nil {
			continue
		}
		if _, ok := seen[env.userID]; ok {
			continue
		}
		seen[env.userID] = struct{}{}
		res = append(res, env.userID)
	}
	return res
}

var errUnknownEvent = errors.New("unknown event kind")

func (d *Dispatcher) compose(event entities.OrderEvent) ([]envelope, error) {
	switch event.Kind {
	case entities.EventOrderPlaced:
		return composePlaced(event)
	case entities.EventCancellationRequested:
		return composeCancellation(event)
	case entities.EventStatusChanged:
		return composeStatusChanged(event)
	}
	return nil, fmt.Errorf("%w: %q", errUnknownEvent, event.Kind)
}

func composePlaced(event entities.OrderEvent) ([]envelope, error) {
	order := event.Order
	id := order.ID.String()

	res := make([]envelope, 0, 4)
	env, err := build(order.Buyer, fmt.Sprintf("Order placed: %s", id), letter{
		Greeting: greeting(order.Buyer),
		Intro:    fmt.Sprintf("Your order %s was placed. We will let you know as the sellers ship it.", id),
		OrderID:  id,
		Lines:    lines(order.Items),
		Total:    order.Total.StringFixed(2),
		Outro:    fmt.Sprintf("Delivery to %s, payment by %s.", order.Address, order.Payment),
	})
	if err != nil {
		return nil, err
	}
	res = append(res, env)

	sellers, bySeller := entities.ItemsBySeller(order.Items)
	for _, sellerID := range sellers {
		items := bySeller[sellerID]
		seller := items[0].Seller
		seller.ID = sellerID
		env, err := build(seller, fmt.Sprintf("New order assigned: %s", id), letter{
			Greeting: greeting(seller),
			Intro:    fmt.Sprintf("You have new items to fulfil for order %s.", id),
			OrderID:  id,
			Lines:    lines(items),
			Total:    entities.SumItems(items).StringFixed(2),
			Outro:    fmt.Sprintf("Ship to %s, phone %s.", order.Address, order.Phone),
		})
		if err != nil {
			return nil, err
		}
		res = append(res, env)
	}
	return res, nil
}

func composeCancellation(event entities.OrderEvent) ([]envelope, error) {
	order := event.Order
	id := order.ID.String()
	affected := event.AffectedItems()

	res := make([]envelope, 0, 3)
	env, err := build(order.Buyer, fmt.Sprintf("Cancellation requested: %s", id), letter{
		Greeting: greeting(order.Buyer),
		Intro:    fmt.Sprintf("Your cancellation request for order %s was sent to the sellers.", id),
		OrderID:  id,
		Lines:    lines(affected),
		Outro:    "You will get another email once a seller approves it.",
	})
	if err != nil {
		return nil, err
	}
	res = append(res, env)

	sellers, bySeller := entities.ItemsBySeller(affected)
	for _, sellerID := range sellers {
		items := bySeller[sellerID]
		seller := items[0].Seller
		seller.ID = sellerID
		env, err := build(seller, fmt.Sprintf("Cancellation request received: %s", id), letter{
			Greeting: greeting(seller),
			Intro:    fmt.Sprintf("The buyer asked to cancel these items of order %s.", id),
			OrderID:  id,
			Lines:    lines(items),
			Outro:    "Set the items to cancelled to approve, or move them on to keep the order.",
		})
		if err != nil {
			return nil, err
		}
		res = append(res, env)
	}
	return res, nil
}

func composeStatusChanged(event entities.OrderEvent) ([]envelope, error) {
	order := event.Order
	id := order.ID.String()
	affected := event.AffectedItems()
	if len(affected) == 0 {
		return nil, fmt.Errorf("status change of order %s names no item", id)
	}
	item := affected[0]

	res := make([]envelope, 0, 2)
	env, err := build(order.Buyer, fmt.Sprintf("Order update: %s", id), letter{
		Greeting: greeting(order.Buyer),
		Intro:    fmt.Sprintf("%s from order %s is now %s.", item.DisplayName(), id, item.Status.Label()),
		OrderID:  id,
		Lines:    lines(affected),
		Outro:    "Thank you for shopping with us.",
	})
	if err != nil {
		return nil, err
	}
	res = append(res, env)

	seller := item.Seller
	seller.ID = item.SellerID
	env, err = build(seller, fmt.Sprintf("Status updated: %s", id), letter{
		Greeting: greeting(seller),
		Intro:    fmt.Sprintf("You set %s in order %s to %s.", item.DisplayName(), id, item.Status.Label()),
		OrderID:  id,
		Lines:    lines(affected),
		Outro:    "The buyer has been notified.",
	})
	if err != nil {
		return nil, err
	}
	return append(res, env), nil
}

func build(to entities.Contact, subject string, l letter) (envelope, error) {
	text, html, err := render(l)
	if err != nil {
		return envelope{}, err
	}
	return envelope{
		userID: to.ID,
		msg: Message{
			To:      to.Email,
			Subject: subject,
			Text:    text,
			HTML:    html,
		},
	}, nil
}

func greeting(c entities.Contact) string {
	if c.Name == "" {
		return "Hello,"
	}
	return fmt.Sprintf("Hello %s,", c.Name)
}

func lines(items []entities.Item) []letterLine {
	res := make([]letterLine, 0, len(items))
	for _, it := range items {
		store := it.StoreName
		if store == "" {
			store = noStore
		}
		res = append(res, letterLine{
			Product:  it.DisplayName(),
			Store:    store,
			Quantity: it.Quantity,
			Price:    it.Price.StringFixed(2),
			Subtotal: it.Subtotal().StringFixed(2),
			Status:   it.Status.Label(),
		})
	}
	return res
}

type pushPayload struct {
	Type    string      `json:"type"`
	OrderID uuid.UUID   `json:"orderId"`
	ItemIDs []uuid.UUID `json:"itemIds,omitempty"`
	Status  string      `json:"status,omitempty"`
	At      string      `json:"at"`
}

func newPushPayload(event entities.OrderEvent) pushPayload {
	p := pushPayload{
		Type:    string(event.Kind),
		OrderID: event.Order.ID,
		ItemIDs: event.ItemIDs,
		At:      event.OccurredAt.Format(time.RFC3339),
	}
	if event.Kind == entities.EventStatusChanged {
		if items := event.AffectedItems(); len(items) > 0 {
			p.Status = string(items[0].Status)
		}
	}
	return p
}

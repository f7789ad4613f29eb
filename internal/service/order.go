package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/policy"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/trm"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/utils"
	"github.com/google/uuid"
)

type OrderRepo interface {
	CreateOrder(ctx context.Context, o entities.Order) error
	GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	// LockOrder must be called inside a transaction.
	LockOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error)
	ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
	SetItemStatus(ctx context.Context, orderID uuid.UUID, status entities.ItemStatus, itemIDs ...uuid.UUID) error
	SetOverallStatus(ctx context.Context, orderID uuid.UUID, status entities.OverallStatus) error
	ProductBuyers(ctx context.Context, productID uuid.UUID) ([]entities.ProductBuyer, error)
}

// Inventory is the only writer of product stock.
type Inventory interface {
	Reserve(ctx context.Context, productID uuid.UUID, qty int) (entities.Reservation, error)
	Release(ctx context.Context, productID uuid.UUID, qty int) (bool, error)
}

type Notifier interface {
	Notify(ctx context.Context, event entities.OrderEvent) error
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	inventory Inventory
	notifier  Notifier
	cache     Cache
	retry     utils.RetryConfig

	// cacheGen grows on every invalidation; a read that started before one
	// does not write its result back.
	cacheMu  sync.Mutex
	cacheGen uint64
}

// NewOrderService builds the order state machine. retry.ShouldRetry decides
// which transaction errors are transient; without it nothing is retried.
func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	inventory Inventory,
	notifier Notifier,
	cache Cache,
	retry utils.RetryConfig,
) *orderService {
	if retry.ShouldRetry == nil {
		retry.MaxAttempts = 1
	}
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		inventory: inventory,
		notifier:  notifier,
		cache:     cache,
		retry:     retry,
	}
}

func (s *orderService) PlaceOrder(ctx context.Context, p entities.Principal, checkout entities.Checkout) (entities.Order, error) {
	if err := policy.Authorize(p, policy.PlaceOrder); err != nil {
		return entities.Order{}, err
	}
	if err := checkout.Validate(); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.inTx(ctx, func(ctx context.Context) error {
		now := time.Now().UTC()
		draft := entities.Order{
			ID:            uuid.New(),
			BuyerID:       p.ID,
			Address:       checkout.Address,
			Phone:         checkout.Phone,
			Payment:       checkout.Payment,
			OverallStatus: entities.OverallPending,
			CreatedAt:     now,
			UpdatedAt:     now,
			Items:         make([]entities.Item, 0, len(checkout.Lines)),
		}

		for i, line := range checkout.Lines {
			res, err := s.inventory.Reserve(ctx, line.ProductID, line.Quantity)
			if err != nil {
				return fmt.Errorf("items[%d]: %w", i, err)
			}
			draft.Items = append(draft.Items, entities.Item{
				ID:          uuid.New(),
				ProductID:   res.ProductID,
				Quantity:    line.Quantity,
				Price:       res.Price,
				SellerID:    res.SellerID,
				StoreID:     res.StoreID,
				Status:      entities.StatusPending,
				ProductName: res.Name,
			})
		}
		draft.Total = entities.SumItems(draft.Items)

		if err := s.repo.CreateOrder(ctx, draft); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		var err error
		order, err = s.repo.GetOrder(ctx, draft.ID)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}

	ordersPlaced.Inc()
	s.logger.Info("order placed",
		slog.String("order_id", order.ID.String()),
		slog.Int("items", len(order.Items)),
		slog.String("total", order.Total.StringFixed(2)),
	)
	s.notify(ctx, entities.NewOrderEvent(entities.EventOrderPlaced, order, p.ID))
	return order, nil
}

// RequestCancellation asks the sellers to cancel itemID, or every eligible
// item of the order when itemID is nil. Ineligible items are skipped.
func (s *orderService) RequestCancellation(ctx context.Context, p entities.Principal, orderID uuid.UUID, itemID *uuid.UUID) (entities.Order, error) {
	if err := policy.Authorize(p, policy.RequestCancellation); err != nil {
		return entities.Order{}, err
	}

	var (
		order    entities.Order
		affected []uuid.UUID
	)
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if order.BuyerID != p.ID {
			return fmt.Errorf("%w: order belongs to another buyer", entities.ErrForbidden)
		}

		affected = affected[:0]
		if itemID != nil {
			item, ok := order.Item(*itemID)
			if !ok {
				return entities.ErrItemNotFound
			}
			if item.Status.CancellationEligible() {
				affected = append(affected, item.ID)
			}
		} else {
			for _, it := range order.Items {
				if it.Status.CancellationEligible() {
					affected = append(affected, it.ID)
				}
			}
		}
		if len(affected) == 0 {
			return entities.ErrNoEligibleItems
		}

		if err := s.repo.SetItemStatus(ctx, orderID, entities.StatusCancellationRequested, affected...); err != nil {
			return err
		}
		for _, id := range affected {
			item, _ := order.Item(id)
			item.Status = entities.StatusCancellationRequested
		}

		return s.syncOverallStatus(ctx, &order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.invalidate(orderID.String())
	itemTransitions.WithLabelValues(string(entities.StatusCancellationRequested)).Add(float64(len(affected)))
	s.logger.Info("cancellation requested",
		slog.String("order_id", orderID.String()),
		slog.Int("items", len(affected)),
	)
	s.notify(ctx, entities.NewOrderEvent(entities.EventCancellationRequested, order, p.ID, affected...))
	return order, nil
}

// SetItemStatus applies a seller's status change to one of their items.
// Cancelling puts the reserved quantity back in stock in the same transaction.
func (s *orderService) SetItemStatus(ctx context.Context, p entities.Principal, orderID, itemID uuid.UUID, next entities.ItemStatus) (entities.Order, error) {
	if err := policy.Authorize(p, policy.SetItemStatus); err != nil {
		return entities.Order{}, err
	}
	if !next.SellerSettable() {
		return entities.Order{}, fmt.Errorf("%w: unsupported status %q", entities.ErrValidation, next)
	}

	var order entities.Order
	err := s.inTx(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.repo.LockOrder(ctx, orderID)
		if err != nil {
			return err
		}

		item, ok := order.Item(itemID)
		if !ok {
			return entities.ErrItemNotFound
		}
		if item.SellerID != p.ID {
			return fmt.Errorf("%w: item belongs to another seller", entities.ErrForbidden)
		}
		if err := item.Status.CheckTransition(next); err != nil {
			return err
		}

		if next == entities.StatusCancelled {
			released, err := s.inventory.Release(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return err
			}
			if !released {
				restocksSkipped.Inc()
				s.logger.Warn("product is gone, restock skipped",
					slog.String("order_id", orderID.String()),
					slog.String("item_id", itemID.String()),
					slog.String("product_id", item.ProductID.String()),
				)
			}
		}

		if err := s.repo.SetItemStatus(ctx, orderID, next, itemID); err != nil {
			return err
		}
		item.Status = next

		return s.syncOverallStatus(ctx, &order)
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.invalidate(orderID.String())
	itemTransitions.WithLabelValues(string(next)).Inc()
	s.logger.Info("item status changed",
		slog.String("order_id", orderID.String()),
		slog.String("item_id", itemID.String()),
		slog.String("status", string(next)),
	)
	s.notify(ctx, entities.NewOrderEvent(entities.EventStatusChanged, order, p.ID, itemID))
	return order.SellerView(p.ID), nil
}

func (s *orderService) GetBuyerOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error) {
	if err := policy.Authorize(p, policy.ListOwnOrders); err != nil {
		return nil, err
	}
	return s.repo.ListOrders(ctx, entities.OrderFilter{BuyerID: p.ID})
}

// GetSellerOrders returns the orders that contain the seller's items, each
// cut down to those items.
func (s *orderService) GetSellerOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error) {
	if err := policy.Authorize(p, policy.ListSellerOrders); err != nil {
		return nil, err
	}

	orders, err := s.repo.ListOrders(ctx, entities.OrderFilter{SellerID: p.ID})
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i] = orders[i].SellerView(p.ID)
	}
	return orders, nil
}

func (s *orderService) GetAllOrders(ctx context.Context, p entities.Principal) ([]entities.Order, error) {
	if err := policy.Authorize(p, policy.ListAllOrders); err != nil {
		return nil, err
	}
	return s.repo.ListOrders(ctx, entities.OrderFilter{})
}

// GetOrder returns the order as the principal is allowed to see it. Orders the
// caller has no part in are reported as not found.
func (s *orderService) GetOrder(ctx context.Context, p entities.Principal, orderID uuid.UUID) (entities.Order, error) {
	if err := policy.Authorize(p, policy.ViewOrder); err != nil {
		return entities.Order{}, err
	}

	order, err := s.loadOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	switch {
	case p.Role == entities.RoleAdmin:
		return order, nil
	case p.Role == entities.RoleBuyer && order.BuyerID == p.ID:
		return order, nil
	case p.Role == entities.RoleSeller && order.HasSeller(p.ID):
		return order.SellerView(p.ID), nil
	}
	return entities.Order{}, entities.ErrOrderNotFound
}

func (s *orderService) GetProductBuyers(ctx context.Context, p entities.Principal, productID uuid.UUID) ([]entities.ProductBuyer, error) {
	if err := policy.Authorize(p, policy.ViewProductBuyers); err != nil {
		return nil, err
	}
	return s.repo.ProductBuyers(ctx, productID)
}

func (s *orderService) loadOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	key := orderID.String()
	if data, ok := s.cache.Get(key); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			cacheLookups.WithLabelValues("hit").Inc()
			return order, nil
		}
		s.logger.Warn("dropping broken cache entry", slog.String("order_id", key))
		s.cache.Delete(key)
	}
	cacheLookups.WithLabelValues("miss").Inc()

	s.cacheMu.Lock()
	gen := s.cacheGen
	s.cacheMu.Unlock()

	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}

	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", slog.String("order_id", key), slog.Any("error", err))
		return order, nil
	}

	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	if s.cacheGen != gen {
		staleFills.Inc()
		return order, nil
	}
	s.cache.Set(key, data)
	return order, nil
}

func (s *orderService) invalidate(key string) {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	s.cacheGen++
	s.cache.Delete(key)
}

func (s *orderService) syncOverallStatus(ctx context.Context, order *entities.Order) error {
	overall := entities.DeriveOverallStatus(order.Items)
	if err := s.repo.SetOverallStatus(ctx, order.ID, overall); err != nil {
		return err
	}
	order.OverallStatus = overall
	order.UpdatedAt = time.Now().UTC()
	return nil
}

// inTx runs fn in a transaction and reruns it when the database aborted the
// transaction for a transient reason.
func (s *orderService) inTx(ctx context.Context, fn func(ctx context.Context) error) error {
	attempt := 0
	return utils.Retry(ctx, s.retry, func() error {
		attempt++
		err := s.txManager.Do(ctx, fn)
		if err != nil && attempt < s.retry.MaxAttempts && s.retry.ShouldRetry != nil && s.retry.ShouldRetry(err) {
			txRetries.Inc()
			s.logger.Debug("retrying aborted transaction", slog.Int("attempt", attempt), slog.Any("error", err))
		}
		return err
	})
}

// notify never fails the operation that produced the event.
func (s *orderService) notify(ctx context.Context, event entities.OrderEvent) {
	if err := s.notifier.Notify(ctx, event); err != nil {
		s.logger.Error("failed to hand off notification",
			slog.String("event", string(event.Kind)),
			slog.String("order_id", event.Order.ID.String()),
			slog.Any("error", err),
		)
	}
}

package service_test

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type product struct {
	ID       uuid.UUID
	Name     string
	Price    decimal.Decimal
	SellerID uuid.UUID
	StoreID  uuid.UUID
	Stock    int
}

// memStore plays both the order repository and the stock ledger. Together
// with memTx it gives all-or-nothing transactions that run one at a time.
type memStore struct {
	mu       sync.Mutex
	products map[uuid.UUID]product
	orders   map[uuid.UUID]entities.Order
	created  []uuid.UUID
}

func newMemStore(products ...product) *memStore {
	s := &memStore{
		products: make(map[uuid.UUID]product),
		orders:   make(map[uuid.UUID]entities.Order),
	}
	for _, p := range products {
		s.products[p.ID] = p
	}
	return s
}

type snapshot struct {
	products map[uuid.UUID]product
	orders   map[uuid.UUID]entities.Order
	created  []uuid.UUID
}

func (s *memStore) snapshot() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := snapshot{
		products: make(map[uuid.UUID]product, len(s.products)),
		orders:   make(map[uuid.UUID]entities.Order, len(s.orders)),
		created:  append([]uuid.UUID(nil), s.created...),
	}
	for id, p := range s.products {
		snap.products[id] = p
	}
	for id, o := range s.orders {
		snap.orders[id] = copyOrder(o)
	}
	return snap
}

func (s *memStore) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = snap.products
	s.orders = snap.orders
	s.created = snap.created
}

func (s *memStore) stock(id uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *memStore) setPrice(id uuid.UUID, price decimal.Decimal) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.products[id]
	p.Price = price
	s.products[id] = p
}

func (s *memStore) deleteProduct(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.products, id)
}

func (s *memStore) orderCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.orders)
}

func copyOrder(o entities.Order) entities.Order {
	o.Items = append([]entities.Item(nil), o.Items...)
	return o
}

func (s *memStore) CreateOrder(_ context.Context, o entities.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("duplicate order %s", o.ID)
	}
	s.orders[o.ID] = copyOrder(o)
	s.created = append(s.created, o.ID)
	return nil
}

func (s *memStore) GetOrder(_ context.Context, orderID uuid.UUID) (entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(orderID)
}

func (s *memStore) LockOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	return s.GetOrder(ctx, orderID)
}

// read joins product names the way the SQL repository does.
func (s *memStore) read(orderID uuid.UUID) (entities.Order, error) {
	o, ok := s.orders[orderID]
	if !ok {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	o = copyOrder(o)
	for i := range o.Items {
		o.Items[i].ProductName = s.products[o.Items[i].ProductID].Name
	}
	return o, nil
}

func (s *memStore) ListOrders(_ context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []entities.Order{}
	for i := len(s.created) - 1; i >= 0; i-- {
		o, _ := s.read(s.created[i])
		if filter.BuyerID != uuid.Nil && o.BuyerID != filter.BuyerID {
			continue
		}
		if filter.SellerID != uuid.Nil && !o.HasSeller(filter.SellerID) {
			continue
		}
		res = append(res, o)
	}
	return res, nil
}

func (s *memStore) SetItemStatus(_ context.Context, orderID uuid.UUID, status entities.ItemStatus, itemIDs ...uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	for _, id := range itemIDs {
		item, ok := o.Item(id)
		if !ok {
			return entities.ErrItemNotFound
		}
		item.Status = status
	}
	s.orders[orderID] = o
	return nil
}

func (s *memStore) SetOverallStatus(_ context.Context, orderID uuid.UUID, status entities.OverallStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return entities.ErrOrderNotFound
	}
	o.OverallStatus = status
	s.orders[orderID] = o
	return nil
}

func (s *memStore) ProductBuyers(_ context.Context, productID uuid.UUID) ([]entities.ProductBuyer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := []entities.ProductBuyer{}
	for _, o := range s.orders {
		for _, it := range o.Items {
			if it.ProductID == productID {
				res = append(res, entities.ProductBuyer{
					OrderID:   o.ID,
					BuyerID:   o.BuyerID,
					Quantity:  it.Quantity,
					OrderedAt: o.CreatedAt,
				})
			}
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].OrderedAt.After(res[j].OrderedAt) })
	return res, nil
}

func (s *memStore) Reserve(_ context.Context, productID uuid.UUID, qty int) (entities.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return entities.Reservation{}, entities.ErrProductNotFound
	}
	if p.Stock < qty {
		return entities.Reservation{}, entities.ErrInsufficientStock
	}
	p.Stock -= qty
	s.products[productID] = p

	return entities.Reservation{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		SellerID:  p.SellerID,
		StoreID:   p.StoreID,
		Remaining: p.Stock,
	}, nil
}

func (s *memStore) Release(_ context.Context, productID uuid.UUID, qty int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[productID]
	if !ok {
		return false, nil
	}
	p.Stock += qty
	s.products[productID] = p
	return true, nil
}

// memTx runs transactions one at a time and rolls the store back on error.
type memTx struct {
	mu    sync.Mutex
	store *memStore
}

func (m *memTx) BeginTx(ctx context.Context) (context.Context, trm.Transaction, error) {
	return ctx, nil, errors.New("not supported")
}

func (m *memTx) Do(ctx context.Context, cb func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.store.snapshot()
	if err := cb(ctx); err != nil {
		m.store.restore(snap)
		return err
	}
	return nil
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []entities.OrderEvent
	err    error
}

func (n *recordingNotifier) Notify(_ context.Context, event entities.OrderEvent) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
	return n.err
}

func (n *recordingNotifier) kinds() []entities.EventKind {
	n.mu.Lock()
	defer n.mu.Unlock()
	res := make([]entities.EventKind, 0, len(n.events))
	for _, e := range n.events {
		res = append(res, e.Kind)
	}
	return res
}

func (n *recordingNotifier) last() entities.OrderEvent {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.events[len(n.events)-1]
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/trm"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type postgresRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewPostgresRepo(db *sqlx.DB) *postgresRepo {
	return &postgresRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *postgresRepo) selectOrders() sq.SelectBuilder {
	return r.qb.Select(
		"o.id", "o.buyer_id", "o.address", "o.phone", "o.total", "o.payment",
		"o.overall_status", "o.created_at", "o.updated_at",
		"u.name AS buyer_name", "u.email AS buyer_email",
	).
		From("orders o").
		LeftJoin("users u ON u.id = o.buyer_id")
}

// Product, store and seller are joined at read time, so a deleted product
// shows up with an empty name instead of breaking the order.
func (r *postgresRepo) selectItems() sq.SelectBuilder {
	return r.qb.Select(
		"oi.id", "oi.order_id", "oi.position", "oi.product_id", "oi.quantity",
		"oi.price", "oi.seller_id", "oi.store_id", "oi.status",
		"p.name AS product_name", "s.name AS store_name",
		"u.name AS seller_name", "u.email AS seller_email",
	).
		From("order_items oi").
		LeftJoin("products p ON p.id = oi.product_id").
		LeftJoin("stores s ON s.id = oi.store_id").
		LeftJoin("users u ON u.id = oi.seller_id")
}

func (r *postgresRepo) ListOrders(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error) {
	q := r.selectOrders().OrderBy("o.created_at DESC", "o.id")
	if filter.BuyerID != uuid.Nil {
		q = q.Where(sq.Eq{"o.buyer_id": filter.BuyerID.String()})
	}
	if filter.SellerID != uuid.Nil {
		q = q.Where(sq.Expr(
			"EXISTS (SELECT 1 FROM order_items f WHERE f.order_id = o.id AND f.seller_id = ?)",
			filter.SellerID.String(),
		))
	}

	query, args := q.MustSql()

	var orders []Order
	if err := r.selectContext(ctx, &orders, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select orders: %w", err)
	}

	if len(orders) == 0 {
		return []entities.Order{}, nil
	}

	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID.String()
	}

	query, args = r.selectItems().
		Where(sq.Eq{"oi.order_id": ids}).
		OrderBy("oi.order_id", "oi.position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select items: %w", err)
	}

	itemsMap := make(map[uuid.UUID][]Item, len(orders))
	for _, it := range items {
		itemsMap[it.OrderID] = append(itemsMap[it.OrderID], it)
	}

	result := make([]entities.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, OrderToEntity(o, itemsMap[o.ID]))
	}
	return result, nil
}

func (r *postgresRepo) GetOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.selectOrders().
		Where(sq.Eq{"o.id": orderID.String()}).
		MustSql()

	var order Order
	err := r.getContext(ctx, &order, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to get order: %w", err)
	}

	query, args = r.selectItems().
		Where(sq.Eq{"oi.order_id": orderID.String()}).
		OrderBy("oi.position").
		MustSql()

	var items []Item
	if err := r.selectContext(ctx, &items, query, args...); err != nil {
		return entities.Order{}, fmt.Errorf("failed to get items: %w", err)
	}

	return OrderToEntity(order, items), nil
}

// LockOrder takes a row lock on the order for the rest of the transaction and
// returns its current state. The lock is taken on orders alone because
// FOR UPDATE is not allowed on the nullable side of an outer join.
func (r *postgresRepo) LockOrder(ctx context.Context, orderID uuid.UUID) (entities.Order, error) {
	query, args := r.qb.Select("id").
		From("orders").
		Where(sq.Eq{"id": orderID.String()}).
		Suffix("FOR UPDATE").
		MustSql()

	var id uuid.UUID
	err := r.getContext(ctx, &id, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Order{}, entities.ErrOrderNotFound
	}
	if err != nil {
		return entities.Order{}, fmt.Errorf("failed to lock order: %w", err)
	}

	return r.GetOrder(ctx, orderID)
}

// CreateOrder inserts the order header and its items. Item positions follow
// the slice order.
func (r *postgresRepo) CreateOrder(ctx context.Context, o entities.Order) error {
	query, args := r.qb.Insert("orders").
		Columns("id", "buyer_id", "address", "phone", "total", "payment",
			"overall_status", "created_at", "updated_at").
		Values(o.ID.String(), o.BuyerID.String(), o.Address, o.Phone, o.Total,
			string(o.Payment), string(o.OverallStatus), o.CreatedAt, o.UpdatedAt).
		MustSql()

	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save order: %w", err)
	}

	if len(o.Items) == 0 {
		return nil
	}

	q := r.qb.Insert("order_items").
		Columns("id", "order_id", "position", "product_id", "quantity",
			"price", "seller_id", "store_id", "status", "updated_at")

	for i, it := range o.Items {
		q = q.Values(
			it.ID.String(),
			o.ID.String(),
			i,
			it.ProductID.String(),
			it.Quantity,
			it.Price,
			it.SellerID.String(),
			nullUUID(it.StoreID),
			string(it.Status),
			o.UpdatedAt,
		)
	}

	query, args = q.MustSql()
	if _, err := r.execContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save items: %w", err)
	}
	return nil
}

// SetItemStatus moves the given items of one order to status.
func (r *postgresRepo) SetItemStatus(ctx context.Context, orderID uuid.UUID, status entities.ItemStatus, itemIDs ...uuid.UUID) error {
	if len(itemIDs) == 0 {
		return nil
	}

	ids := make([]string, len(itemIDs))
	for i, id := range itemIDs {
		ids[i] = id.String()
	}

	query, args := r.qb.Update("order_items").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"order_id": orderID.String(), "id": ids}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update item status: %w", err)
	}
	if int(n) != len(itemIDs) {
		return entities.ErrItemNotFound
	}
	return nil
}

func (r *postgresRepo) SetOverallStatus(ctx context.Context, orderID uuid.UUID, status entities.OverallStatus) error {
	query, args := r.qb.Update("orders").
		Set("overall_status", string(status)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderID.String()}).
		MustSql()

	res, err := r.execContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	if n == 0 {
		return entities.ErrOrderNotFound
	}
	return nil
}

func (r *postgresRepo) ProductBuyers(ctx context.Context, productID uuid.UUID) ([]entities.ProductBuyer, error) {
	query, args := r.qb.Select(
		"o.id AS order_id", "o.buyer_id", "u.name", "u.email",
		"oi.quantity", "o.created_at AS ordered_at",
	).
		From("order_items oi").
		Join("orders o ON o.id = oi.order_id").
		LeftJoin("users u ON u.id = o.buyer_id").
		Where(sq.Eq{"oi.product_id": productID.String()}).
		OrderBy("o.created_at DESC").
		MustSql()

	var rows []ProductBuyer
	if err := r.selectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select product buyers: %w", err)
	}

	result := make([]entities.ProductBuyer, 0, len(rows))
	for _, b := range rows {
		result = append(result, ProductBuyerToEntity(b))
	}
	return result, nil
}

func (r *postgresRepo) execContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	return trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
}

func (r *postgresRepo) getContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).GetContext(ctx, dest, query, args...)
}

func (r *postgresRepo) selectContext(ctx context.Context, dest any, query string, args ...any) error {
	return trm.QuerierFrom(ctx, r.db).SelectContext(ctx, dest, query, args...)
}

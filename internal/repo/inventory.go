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

// inventoryRepo is the stock ledger. The check and the decrement are one
// conditional UPDATE, so two concurrent reservations can never both pass the
// check against the same units.
type inventoryRepo struct {
	db *sqlx.DB
	qb sq.StatementBuilderType
}

func NewInventoryRepo(db *sqlx.DB) *inventoryRepo {
	return &inventoryRepo{
		db: db,
		qb: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

const reserveQuery = `UPDATE products
SET stock = stock - $1, updated_at = NOW()
WHERE id = $2 AND stock >= $1
RETURNING id, name, price, seller_id, store_id, stock`

func (r *inventoryRepo) Reserve(ctx context.Context, productID uuid.UUID, qty int) (entities.Reservation, error) {
	if qty <= 0 {
		return entities.Reservation{}, fmt.Errorf("%w: quantity must be positive", entities.ErrValidation)
	}

	q := trm.QuerierFrom(ctx, r.db)

	var res Reservation
	err := q.GetContext(ctx, &res, reserveQuery, qty, productID.String())
	if err == nil {
		if !res.SellerID.Valid {
			return entities.Reservation{}, fmt.Errorf("%w: product %s has no seller", entities.ErrValidation, productID)
		}
		return ReservationToEntity(res), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return entities.Reservation{}, fmt.Errorf("failed to reserve stock: %w", err)
	}

	// nothing updated: either the product is gone or there is not enough of it
	query, args := r.qb.Select("1").
		Prefix("SELECT EXISTS (").
		From("products").
		Where(sq.Eq{"id": productID.String()}).
		Suffix(")").
		MustSql()

	var exists bool
	if err := q.GetContext(ctx, &exists, query, args...); err != nil {
		return entities.Reservation{}, fmt.Errorf("failed to check product: %w", err)
	}
	if !exists {
		return entities.Reservation{}, entities.ErrProductNotFound
	}
	return entities.Reservation{}, fmt.Errorf("%w: product %s", entities.ErrInsufficientStock, productID)
}

// Release puts qty units back. It reports false when the product no longer
// exists, which is not an error.
func (r *inventoryRepo) Release(ctx context.Context, productID uuid.UUID, qty int) (bool, error) {
	if qty <= 0 {
		return false, fmt.Errorf("%w: quantity must be positive", entities.ErrValidation)
	}

	query, args := r.qb.Update("products").
		Set("stock", sq.Expr("stock + ?", qty)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": productID.String()}).
		MustSql()

	res, err := trm.QuerierFrom(ctx, r.db).ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to release stock: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to release stock: %w", err)
	}
	return n > 0, nil
}

package repo

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/pkg/trm"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "postgres"), mock
}

var (
	orderColumns = []string{
		"id", "buyer_id", "address", "phone", "total", "payment",
		"overall_status", "created_at", "updated_at", "buyer_name", "buyer_email",
	}
	itemColumns = []string{
		"id", "order_id", "position", "product_id", "quantity", "price", "seller_id",
		"store_id", "status", "product_name", "store_name", "seller_name", "seller_email",
	}
)

func TestPostgresRepo_GetOrder(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	orderID, buyerID, sellerID := uuid.New(), uuid.New(), uuid.New()
	itemA, itemB := uuid.New(), uuid.New()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders o LEFT JOIN users u ON u.id = o.buyer_id WHERE o.id = $1")).
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows(orderColumns).AddRow(
			orderID.String(), buyerID.String(), "221B Baker Street", "+44123", "450.00", "cash",
			"pending", now, now, "Sherlock", "sherlock@example.com",
		))

	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items oi LEFT JOIN products p")).
		WithArgs(orderID.String()).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(itemA.String(), orderID.String(), 0, uuid.NewString(), 2, "150.00", sellerID.String(),
				nil, "pending", "Aviator", nil, "Optica", "optica@example.com").
			AddRow(itemB.String(), orderID.String(), 1, uuid.NewString(), 1, "150.00", sellerID.String(),
				nil, "shipped", nil, nil, "Optica", "optica@example.com"))

	order, err := r.GetOrder(context.Background(), orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, order.ID)
	assert.Equal(t, "Sherlock", order.Buyer.Name)
	assert.True(t, decimal.RequireFromString("450").Equal(order.Total))
	require.Len(t, order.Items, 2)
	assert.Equal(t, itemA, order.Items[0].ID)
	assert.Equal(t, "Aviator", order.Items[0].DisplayName())
	assert.Equal(t, entities.DeletedProductName, order.Items[1].DisplayName())
	assert.Equal(t, entities.StatusShipped, order.Items[1].Status)
	assert.Equal(t, uuid.Nil, order.Items[1].StoreID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_GetOrder_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	mock.ExpectQuery("FROM orders o").WillReturnRows(sqlmock.NewRows(orderColumns))

	_, err := r.GetOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
	assert.ErrorIs(t, err, entities.ErrNotFound)
}

func TestPostgresRepo_ListOrders_BySeller(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	sellerID := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("EXISTS (SELECT 1 FROM order_items f WHERE f.order_id = o.id AND f.seller_id = $1)")).
		WithArgs(sellerID.String()).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := r.ListOrders(context.Background(), entities.OrderFilter{SellerID: sellerID})
	require.NoError(t, err)
	assert.Empty(t, orders)
	assert.NotNil(t, orders)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_CreateOrder(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	now := time.Now()
	order := entities.Order{
		ID:            uuid.New(),
		BuyerID:       uuid.New(),
		Address:       "Somewhere 1",
		Phone:         "+100",
		Total:         decimal.NewFromInt(300),
		Payment:       entities.PaymentUPI,
		OverallStatus: entities.OverallPending,
		CreatedAt:     now,
		UpdatedAt:     now,
		Items: []entities.Item{
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 1, Price: decimal.NewFromInt(100), SellerID: uuid.New(), Status: entities.StatusPending},
			{ID: uuid.New(), ProductID: uuid.New(), Quantity: 2, Price: decimal.NewFromInt(100), SellerID: uuid.New(), StoreID: uuid.New(), Status: entities.StatusPending},
		},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO orders").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items")).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := trm.NewManager(db).Do(context.Background(), func(ctx context.Context) error {
		return r.CreateOrder(ctx, order)
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresRepo_SetItemStatus(t *testing.T) {
	orderID, itemID := uuid.New(), uuid.New()

	testCases := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "item not in order", affected: 0, wantErr: entities.ErrItemNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			r := NewPostgresRepo(db)

			mock.ExpectExec(regexp.QuoteMeta("UPDATE order_items SET status = $1, updated_at = NOW()")).
				WithArgs("confirmed", itemID.String(), orderID.String()).
				WillReturnResult(sqlmock.NewResult(0, tc.affected))

			err := r.SetItemStatus(context.Background(), orderID, entities.StatusConfirmed, itemID)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPostgresRepo_LockOrder_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id FROM orders WHERE id = $1 FOR UPDATE")).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := r.LockOrder(context.Background(), uuid.New())
	assert.ErrorIs(t, err, entities.ErrOrderNotFound)
}

func TestPostgresRepo_ProductBuyers(t *testing.T) {
	db, mock := newMockDB(t)
	r := NewPostgresRepo(db)

	productID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("WHERE oi.product_id = $1")).
		WithArgs(productID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"order_id", "buyer_id", "name", "email", "quantity", "ordered_at"}).
			AddRow(uuid.NewString(), uuid.NewString(), "Watson", "watson@example.com", 3, time.Now()).
			AddRow(uuid.NewString(), uuid.NewString(), nil, nil, 1, time.Now()))

	buyers, err := r.ProductBuyers(context.Background(), productID)
	require.NoError(t, err)
	require.Len(t, buyers, 2)
	assert.Equal(t, "Watson", buyers[0].Name)
	assert.Equal(t, 3, buyers[0].Quantity)
	assert.Empty(t, buyers[1].Email)
}

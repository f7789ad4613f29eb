package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID            uuid.UUID       `db:"id"`
	BuyerID       uuid.UUID       `db:"buyer_id"`
	Address       string          `db:"address"`
	Phone         string          `db:"phone"`
	Total         decimal.Decimal `db:"total"`
	Payment       string          `db:"payment"`
	OverallStatus string          `db:"overall_status"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at"`

	BuyerName  sql.NullString `db:"buyer_name"`
	BuyerEmail sql.NullString `db:"buyer_email"`
}

type Item struct {
	ID        uuid.UUID       `db:"id"`
	OrderID   uuid.UUID       `db:"order_id"`
	Position  int             `db:"position"`
	ProductID uuid.UUID       `db:"product_id"`
	Quantity  int             `db:"quantity"`
	Price     decimal.Decimal `db:"price"`
	SellerID  uuid.UUID       `db:"seller_id"`
	StoreID   uuid.NullUUID   `db:"store_id"`
	Status    string          `db:"status"`

	ProductName sql.NullString `db:"product_name"`
	StoreName   sql.NullString `db:"store_name"`
	SellerName  sql.NullString `db:"seller_name"`
	SellerEmail sql.NullString `db:"seller_email"`
}

type Reservation struct {
	ID       uuid.UUID       `db:"id"`
	Name     string          `db:"name"`
	Price    decimal.Decimal `db:"price"`
	SellerID uuid.NullUUID   `db:"seller_id"`
	StoreID  uuid.NullUUID   `db:"store_id"`
	Stock    int             `db:"stock"`
}

type ProductBuyer struct {
	OrderID   uuid.UUID      `db:"order_id"`
	BuyerID   uuid.UUID      `db:"buyer_id"`
	Name      sql.NullString `db:"name"`
	Email     sql.NullString `db:"email"`
	Quantity  int            `db:"quantity"`
	OrderedAt time.Time      `db:"ordered_at"`
}

func ItemToEntity(i Item) entities.Item {
	return entities.Item{
		ID:          i.ID,
		ProductID:   i.ProductID,
		Quantity:    i.Quantity,
		Price:       i.Price,
		SellerID:    i.SellerID,
		StoreID:     nullUUIDToUUID(i.StoreID),
		Status:      entities.ItemStatus(i.Status),
		ProductName: nullStringToString(i.ProductName),
		StoreName:   nullStringToString(i.StoreName),
		Seller: entities.Contact{
			ID:    i.SellerID,
			Name:  nullStringToString(i.SellerName),
			Email: nullStringToString(i.SellerEmail),
		},
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		BuyerID:       o.BuyerID,
		Address:       o.Address,
		Phone:         o.Phone,
		Total:         o.Total,
		Payment:       entities.PaymentMethod(o.Payment),
		OverallStatus: entities.OverallStatus(o.OverallStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Buyer: entities.Contact{
			ID:    o.BuyerID,
			Name:  nullStringToString(o.BuyerName),
			Email: nullStringToString(o.BuyerEmail),
		},
	}

	if len(items) > 0 {
		order.Items = make([]entities.Item, 0, len(items))
		for _, it := range items {
			order.Items = append(order.Items, ItemToEntity(it))
		}
	}

	return order
}

func ReservationToEntity(r Reservation) entities.Reservation {
	return entities.Reservation{
		ProductID: r.ID,
		Name:      r.Name,
		Price:     r.Price,
		SellerID:  nullUUIDToUUID(r.SellerID),
		StoreID:   nullUUIDToUUID(r.StoreID),
		Remaining: r.Stock,
	}
}

func ProductBuyerToEntity(b ProductBuyer) entities.ProductBuyer {
	return entities.ProductBuyer{
		OrderID:   b.OrderID,
		BuyerID:   b.BuyerID,
		Name:      nullStringToString(b.Name),
		Email:     nullStringToString(b.Email),
		Quantity:  b.Quantity,
		OrderedAt: b.OrderedAt,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullUUIDToUUID(nu uuid.NullUUID) uuid.UUID {
	if nu.Valid {
		return nu.UUID
	}
	return uuid.Nil
}

func nullUUID(id uuid.UUID) uuid.NullUUID {
	if id == uuid.Nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: id, Valid: true}
}

package handler

import (
	"time"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/google/uuid"
)

// OrderLine позиция корзины
type OrderLine struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderRequest оформление заказа
type PlaceOrderRequest struct {
	Items   []OrderLine `json:"items" validate:"required,min=1,dive"`
	Address string      `json:"address" validate:"required"`
	Phone   string      `json:"phone" validate:"required"`
	Payment string      `json:"payment" validate:"required,oneof=cash upi"`
}

// CancellationRequest запрос отмены; без item_id отменяются все подходящие позиции
type CancellationRequest struct {
	ItemID string `json:"item_id,omitempty" validate:"omitempty,uuid"`
}

// ItemStatusRequest новый статус позиции
type ItemStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Seller продавец позиции
type Seller struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Item позиция заказа
type Item struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	StoreID     string `json:"store_id,omitempty"`
	StoreName   string `json:"store_name,omitempty"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Subtotal    string `json:"subtotal"`
	Status      string `json:"status"`
	Seller      Seller `json:"seller"`
}

// Buyer покупатель
type Buyer struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Order заказ
type Order struct {
	ID            string    `json:"id"`
	Buyer         Buyer     `json:"buyer"`
	Address       string    `json:"address"`
	Phone         string    `json:"phone"`
	Payment       string    `json:"payment"`
	Total         string    `json:"total"`
	OverallStatus string    `json:"overall_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Items         []Item    `json:"items"`
}

// ProductBuyer покупка товара
type ProductBuyer struct {
	OrderID   string    `json:"order_id"`
	BuyerID   string    `json:"buyer_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Quantity  int       `json:"quantity"`
	OrderedAt time.Time `json:"ordered_at"`
}

func (r PlaceOrderRequest) ToEntity() entities.Checkout {
	lines := make([]entities.OrderLine, 0, len(r.Items))
	for _, l := range r.Items {
		// формат уже проверен валидатором
		id, _ := uuid.Parse(l.ProductID)
		lines = append(lines, entities.OrderLine{ProductID: id, Quantity: l.Quantity})
	}
	return entities.Checkout{
		Lines:   lines,
		Address: r.Address,
		Phone:   r.Phone,
		Payment: entities.PaymentMethod(r.Payment),
	}
}

func ItemEntityToJSON(i entities.Item) Item {
	item := Item{
		ID:          i.ID.String(),
		ProductID:   i.ProductID.String(),
		ProductName: i.DisplayName(),
		StoreName:   i.StoreName,
		Quantity:    i.Quantity,
		Price:       i.Price.StringFixed(2),
		Subtotal:    i.Subtotal().StringFixed(2),
		Status:      string(i.Status),
		Seller: Seller{
			ID:    i.SellerID.String(),
			Name:  i.Seller.Name,
			Email: i.Seller.Email,
		},
	}
	if i.StoreID != uuid.Nil {
		item.StoreID = i.StoreID.String()
	}
	return item
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID: o.ID.String(),
		Buyer: Buyer{
			ID:    o.BuyerID.String(),
			Name:  o.Buyer.Name,
			Email: o.Buyer.Email,
		},
		Address:       o.Address,
		Phone:         o.Phone,
		Payment:       string(o.Payment),
		Total:         o.Total.StringFixed(2),
		OverallStatus: string(o.OverallStatus),
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
		Items:         items,
	}
}

func OrdersEntityToJSON(orders []entities.Order) []Order {
	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	return res
}

func ProductBuyersEntityToJSON(buyers []entities.ProductBuyer) []ProductBuyer {
	res := make([]ProductBuyer, 0, len(buyers))
	for _, b := range buyers {
		res = append(res, ProductBuyer{
			OrderID:   b.OrderID.String(),
			BuyerID:   b.BuyerID.String(),
			Name:      b.Name,
			Email:     b.Email,
			Quantity:  b.Quantity,
			OrderedAt: b.OrderedAt,
		})
	}
	return res
}

package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeletedProductName is shown instead of the product name once the product is gone.
const DeletedProductName = "Deleted product"

// Contact is a display snapshot of a user joined at read time.
type Contact struct {
	ID    uuid.UUID
	Name  string
	Email string
}

type Item struct {
	ID        uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Price     decimal.Decimal
	SellerID  uuid.UUID
	StoreID   uuid.UUID
	Status    ItemStatus

	// заполняются при чтении, в таблице order_items их нет
	ProductName string
	StoreName   string
	Seller      Contact
}

// DisplayName returns the product name or the deleted-product fallback.
func (i Item) DisplayName() string {
	if i.ProductName == "" {
		return DeletedProductName
	}
	return i.ProductName
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type Order struct {
	ID            uuid.UUID
	BuyerID       uuid.UUID
	Address       string
	Phone         string
	Total         decimal.Decimal
	Payment       PaymentMethod
	OverallStatus OverallStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Buyer Contact
	Items []Item
}

// Item returns a pointer into o.Items so callers can mutate the status in place.
func (o *Order) Item(itemID uuid.UUID) (*Item, bool) {
	for i := range o.Items {
		if o.Items[i].ID == itemID {
			return &o.Items[i], true
		}
	}
	return nil, false
}

func (o Order) HasSeller(sellerID uuid.UUID) bool {
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			return true
		}
	}
	return false
}

// SellerView keeps only the seller's own items and replaces the total with
// their subtotal, so prices of other sellers never leak.
func (o Order) SellerView(sellerID uuid.UUID) Order {
	view := o
	view.Items = make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		if it.SellerID == sellerID {
			view.Items = append(view.Items, it)
		}
	}
	view.Total = SumItems(view.Items)
	return view
}

func SumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// ItemsBySeller groups items by seller preserving checkout order.
func ItemsBySeller(items []Item) ([]uuid.UUID, map[uuid.UUID][]Item) {
	var order []uuid.UUID
	grouped := make(map[uuid.UUID][]Item)
	for _, it := range items {
		if it.SellerID == uuid.Nil {
			continue
		}
		if _, ok := grouped[it.SellerID]; !ok {
			order = append(order, it.SellerID)
		}
		grouped[it.SellerID] = append(grouped[it.SellerID], it)
	}
	return order, grouped
}

// OrderFilter narrows order listings. Zero values mean "any".
type OrderFilter struct {
	BuyerID  uuid.UUID
	SellerID uuid.UUID
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}

func init() {
	gob.Register(Order{})
	gob.Register(Item{})
	gob.Register(Contact{})
}

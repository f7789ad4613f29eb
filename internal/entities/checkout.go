package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderLine struct {
	ProductID uuid.UUID
	Quantity  int
}

type Checkout struct {
	Lines   []OrderLine
	Address string
	Phone   string
	Payment PaymentMethod
}

func (c Checkout) Validate() error {
	if len(c.Lines) == 0 {
		return fmt.Errorf("%w: order has no items", ErrValidation)
	}
	for i, l := range c.Lines {
		if l.ProductID == uuid.Nil {
			return fmt.Errorf("%w: items[%d]: product is required", ErrValidation, i)
		}
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: items[%d]: quantity must be positive", ErrValidation, i)
		}
	}
	if strings.TrimSpace(c.Address) == "" {
		return fmt.Errorf("%w: address is required", ErrValidation)
	}
	if strings.TrimSpace(c.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrValidation)
	}
	if !c.Payment.Valid() {
		return fmt.Errorf("%w: unsupported payment %q", ErrValidation, c.Payment)
	}
	return nil
}

// Reservation is what the inventory ledger hands back after a successful reserve:
// the product snapshot the line item is priced from.
type Reservation struct {
	ProductID uuid.UUID
	Name      string
	Price     decimal.Decimal
	SellerID  uuid.UUID
	StoreID   uuid.UUID
	Remaining int
}

// ProductBuyer is one purchase of a product, for the admin product view.
type ProductBuyer struct {
	OrderID   uuid.UUID
	BuyerID   uuid.UUID
	Name      string
	Email     string
	Quantity  int
	OrderedAt time.Time
}

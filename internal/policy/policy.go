// Package policy holds the single role/action table every order operation is
// checked against. Ownership (buyer owns the order, seller owns the item) is
// checked by the caller after the role is allowed.
package policy

import (
	"fmt"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
)

type Action string

const (
	PlaceOrder          Action = "place_order"
	ListOwnOrders       Action = "list_own_orders"
	RequestCancellation Action = "request_cancellation"
	ListSellerOrders    Action = "list_seller_orders"
	SetItemStatus       Action = "set_item_status"
	ListAllOrders       Action = "list_all_orders"
	ViewOrder           Action = "view_order"
	ViewProductBuyers   Action = "view_product_buyers"
	HeartbeatPresence   Action = "heartbeat_presence"
)

var rules = map[Action][]entities.Role{
	PlaceOrder:          {entities.RoleBuyer},
	ListOwnOrders:       {entities.RoleBuyer},
	RequestCancellation: {entities.RoleBuyer},
	ListSellerOrders:    {entities.RoleSeller},
	SetItemStatus:       {entities.RoleSeller},
	ListAllOrders:       {entities.RoleAdmin},
	ViewOrder:           {entities.RoleBuyer, entities.RoleSeller, entities.RoleAdmin},
	ViewProductBuyers:   {entities.RoleAdmin},
	HeartbeatPresence:   {entities.RoleBuyer, entities.RoleSeller, entities.RoleAdmin},
}

// Allowed reports whether role may perform action. Unknown actions are denied.
func Allowed(role entities.Role, action Action) bool {
	for _, r := range rules[action] {
		if r == role {
			return true
		}
	}
	return false
}

// Authorize returns entities.ErrForbidden when the principal's role may not perform action.
func Authorize(p entities.Principal, action Action) error {
	if !Allowed(p.Role, action) {
		return fmt.Errorf("%w: role %q cannot %s", entities.ErrForbidden, p.Role, action)
	}
	return nil
}

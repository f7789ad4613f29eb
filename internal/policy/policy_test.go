package policy_test

import (
	"testing"

	"github.com/SergeyBogomolovv/lens-order-service/internal/entities"
	"github.com/SergeyBogomolovv/lens-order-service/internal/policy"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAllowed(t *testing.T) {
	testCases := []struct {
		role   entities.Role
		action policy.Action
		want   bool
	}{
		{entities.RoleBuyer, policy.PlaceOrder, true},
		{entities.RoleSeller, policy.PlaceOrder, false},
		{entities.RoleAdmin, policy.PlaceOrder, false},
		{entities.RoleBuyer, policy.RequestCancellation, true},
		{entities.RoleSeller, policy.RequestCancellation, false},
		{entities.RoleSeller, policy.SetItemStatus, true},
		{entities.RoleBuyer, policy.SetItemStatus, false},
		{entities.RoleAdmin, policy.SetItemStatus, false},
		{entities.RoleSeller, policy.ListSellerOrders, true},
		{entities.RoleBuyer, policy.ListSellerOrders, false},
		{entities.RoleAdmin, policy.ListAllOrders, true},
		{entities.RoleSeller, policy.ListAllOrders, false},
		{entities.RoleBuyer, policy.ViewOrder, true},
		{entities.RoleSeller, policy.ViewOrder, true},
		{entities.RoleAdmin, policy.ViewProductBuyers, true},
		{entities.RoleBuyer, policy.ViewProductBuyers, false},
		{"guest", policy.ViewOrder, false},
		{entities.RoleAdmin, "delete_everything", false},
	}

	for _, tc := range testCases {
		t.Run(string(tc.role)+"/"+string(tc.action), func(t *testing.T) {
			assert.Equal(t, tc.want, policy.Allowed(tc.role, tc.action))
		})
	}
}

func TestAuthorize(t *testing.T) {
	buyer := entities.Principal{ID: uuid.New(), Role: entities.RoleBuyer}

	assert.NoError(t, policy.Authorize(buyer, policy.PlaceOrder))
	assert.ErrorIs(t, policy.Authorize(buyer, policy.ListAllOrders), entities.ErrForbidden)
}

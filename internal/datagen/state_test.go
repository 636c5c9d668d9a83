package datagen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResetShopKeepsRegistryScope(t *testing.T) {
	s := NewIDState()
	s.Shops = []string{"shop-1"}
	s.Users = []string{"user-1", "user-2"}
	s.Roles = []string{"role-1"}
	s.Brands = []string{"brand-1"}
	s.Products = []string{"product-1"}
	s.Orders = []string{"order-1"}
	s.OrderItems = []string{"item-1"}
	s.Payments = []string{"payment-1"}

	s.ResetShop()

	assert.Equal(t, []string{"shop-1"}, s.Shops)
	assert.Len(t, s.Users, 2)
	assert.Len(t, s.Roles, 1)

	assert.Empty(t, s.Brands)
	assert.Empty(t, s.Products)
	assert.Empty(t, s.Orders)
	assert.Empty(t, s.OrderItems)
	assert.Empty(t, s.Payments)
}

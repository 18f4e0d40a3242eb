package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func productItem(t *testing.T, productID int64, price string, qty int) CartItem {
	t.Helper()
	item, err := NewCartItem(productID, 0, "Toalha de banho", d(price), qty, false)
	require.NoError(t, err)
	return *item
}

func TestAddItemMergesSameProduct(t *testing.T) {
	cart := NewCart()

	cart.AddItem(productItem(t, 10, "25.00", 1))
	cart.AddItem(productItem(t, 10, "25.00", 2))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, cart.Subtotal().Equal(d("75.00")))
}

func TestAddItemKeepsDistinctEmbroideries(t *testing.T) {
	cart := NewCart()

	first, err := NewCartItem(0, 7, "Bordado toalha", d("40.00"), 1, true)
	require.NoError(t, err)
	second, err := NewCartItem(0, 8, "Bordado fralda", d("35.00"), 1, true)
	require.NoError(t, err)

	cart.AddItem(*first)
	cart.AddItem(*second)

	assert.Len(t, cart.Items(), 2)
}

func TestNewCartItemValidation(t *testing.T) {
	_, err := NewCartItem(10, 0, "", d("25.00"), 1, false)
	assert.ErrorIs(t, err, ErrDescriptionRequired)

	_, err = NewCartItem(10, 0, "Toalha", d("-1.00"), 1, false)
	assert.ErrorIs(t, err, ErrInvalidUnitPrice)

	_, err = NewCartItem(10, 0, "Toalha", d("25.00"), 0, false)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewCartItem(0, 0, "Toalha", d("25.00"), 1, false)
	assert.ErrorIs(t, err, ErrItemReference)
}

func TestUpdateQuantityFloorsAtOne(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "25.00", 2))

	require.NoError(t, cart.UpdateQuantity(0, -5))

	assert.Equal(t, 1, cart.Items()[0].Quantity)
}

func TestUpdateQuantityUnknownIndex(t *testing.T) {
	cart := NewCart()

	err := cart.UpdateQuantity(3, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "25.00", 1))
	cart.AddItem(productItem(t, 11, "30.00", 1))

	require.NoError(t, cart.RemoveItem(0))

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(11), items[0].ProductID)
}

func TestFixedDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "100.00", 1))

	require.NoError(t, cart.SetDiscount(DiscountFixed, d("30.00")))

	assert.True(t, cart.DiscountAmount().Equal(d("30.00")))
	assert.True(t, cart.Total().Equal(d("70.00")))
}

func TestPercentageDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "200.00", 1))

	require.NoError(t, cart.SetDiscount(DiscountPercentage, d("10")))

	assert.True(t, cart.DiscountAmount().Equal(d("20")))
	assert.True(t, cart.Total().Equal(d("180")))
}

func TestDiscountNeverMakesTotalNegative(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "50.00", 1))

	require.NoError(t, cart.SetDiscount(DiscountFixed, d("80.00")))

	assert.True(t, cart.Total().IsZero())
}

func TestSetDiscountValidation(t *testing.T) {
	cart := NewCart()

	err := cart.SetDiscount(DiscountFixed, d("-1"))
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	err = cart.SetDiscount("COUPON", d("10"))
	assert.ErrorIs(t, err, ErrInvalidDiscountType)
}

func TestClearResetsItemsAndDiscount(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "50.00", 1))
	require.NoError(t, cart.SetDiscount(DiscountFixed, d("5.00")))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.DiscountAmount().IsZero())
	assert.True(t, cart.Total().IsZero())
}

func TestReplaceLoadsSaleContent(t *testing.T) {
	cart := NewCart()
	cart.AddItem(productItem(t, 10, "50.00", 1))

	replacement := []CartItem{
		productItem(t, 20, "15.00", 2),
		productItem(t, 21, "10.00", 1),
	}
	cart.Replace(replacement, DiscountFixed, d("5.00"))

	assert.Len(t, cart.Items(), 2)
	assert.True(t, cart.Subtotal().Equal(d("40.00")))
	assert.True(t, cart.Total().Equal(d("35.00")))
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartTotal(t *testing.T) {
	items := []CartItem{
		{ProductPrize: "$10", Quantity: 2},
		{ProductPrize: "$4.50", Quantity: 1},
		{ProductPrize: "priceless", Quantity: 3}, // skipped
	}
	assert.Equal(t, "$24.50", CartTotal(items))
	assert.Equal(t, "$0.00", CartTotal(nil))
}

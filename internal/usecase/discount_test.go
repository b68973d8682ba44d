package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestApplyDiscount(t *testing.T) {
	res := ApplyDiscount(dec("100"), dec("10"))

	assert.True(t, res.DiscountAmount.Equal(dec("10")))
	assert.True(t, res.FinalPrice.Equal(dec("90")))
}

func TestApplyDiscount_ZeroPercentIsNoOp(t *testing.T) {
	res := ApplyDiscount(dec("100"), decimal.Zero)

	assert.True(t, res.DiscountAmount.IsZero())
	assert.True(t, res.FinalPrice.Equal(dec("100")))
}

func TestApplyDiscount_NegativePercentIsNoOp(t *testing.T) {
	res := ApplyDiscount(dec("100"), dec("-5"))

	assert.True(t, res.DiscountAmount.IsZero())
	assert.True(t, res.FinalPrice.Equal(dec("100")))
}

func TestApplyDiscount_NoIntermediateRounding(t *testing.T) {
	// 33.33% от 9.99: промежуточный результат не округляется,
	// округление происходит только при форматировании.
	res := ApplyDiscount(dec("9.99"), dec("33.33"))

	expected := dec("9.99").Mul(dec("33.33")).Div(dec("100"))
	assert.True(t, res.DiscountAmount.Equal(expected))
}

func TestRecomputeDiscount(t *testing.T) {
	percent, amount := RecomputeDiscount(dec("80"), dec("72"))

	assert.True(t, percent.Equal(dec("10")))
	assert.True(t, amount.Equal(dec("8")))
}

func TestRecomputeDiscount_ZeroBase(t *testing.T) {
	percent, amount := RecomputeDiscount(decimal.Zero, dec("5"))

	assert.True(t, percent.IsZero())
	assert.True(t, amount.Equal(dec("-5")))
}

package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCents(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{318.28, 31828},
		{-318.28, -31828},
		{1000.00, 100000},
		{-0.005, -1},
		{0, 0},
		{0.1 + 0.2, 30}, // float noise must not shift the cent value
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Cents(tt.amount), "Cents(%v)", tt.amount)
	}
}

func TestCategoryRoles(t *testing.T) {
	assert.True(t, CategoryInternalXfer.IsInternal())
	assert.True(t, CategoryRentOffset.IsInternal())
	assert.True(t, CategorySavingsXfer.IsInternal())
	assert.True(t, CategoryDeposits.IsInternal())

	assert.True(t, CategoryCrypto.IsInvestment())
	assert.True(t, CategoryConfirmedDCA.IsInvestment())
	assert.True(t, CategoryCryptoSavings.IsInvestment())

	// Micro-DCA counts as a regular expense, not an allocation.
	assert.False(t, CategoryMicroDCA.IsInvestment())

	assert.Equal(t, RoleInternal, CategoryRentOffset.Role(-1000))
	assert.Equal(t, RoleInvestment, CategoryCrypto.Role(-50))
	assert.Equal(t, RoleIncome, CategoryIncome.Role(2400))
	assert.Equal(t, RoleExpense, CategoryFoodDining.Role(-12))
}

func TestTransactionType_IsCryptoBuy(t *testing.T) {
	assert.True(t, TypeCryptoBuy.IsCryptoBuy())
	assert.True(t, TypeCryptoRecurring.IsCryptoBuy())
	assert.False(t, TypeSavingsTransfer.IsCryptoBuy())
}

func TestTransaction_DisplayText(t *testing.T) {
	assert.Equal(t, "NOTES", (&Transaction{Notes: "NOTES", Description: "DESC"}).DisplayText())
	assert.Equal(t, "DESC", (&Transaction{Description: "DESC"}).DisplayText())
	assert.Equal(t, "Transaction", (&Transaction{}).DisplayText())
}

func TestTransaction_GenerateHash(t *testing.T) {
	a := Transaction{
		Date:      time.Date(2024, 3, 5, 14, 32, 11, 0, time.UTC),
		NetAmount: -120.50,
		Type:      TypePointOfSale,
		Notes:     "STARBUCKS #123",
	}
	b := a
	assert.Equal(t, a.GenerateHash(), b.GenerateHash())

	b.NetAmount = -120.51
	assert.NotEqual(t, a.GenerateHash(), b.GenerateHash())
}

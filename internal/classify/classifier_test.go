package classify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lookback/internal/model"
)

func testConfig() Config {
	return Config{
		IncomeMarkers:       []string{"THE ENERGY AUTHO DIRECT DEP"},
		DCAAmounts:          []float64{318.28},
		OffsetAmount:        1000.0,
		CryptoMinInvestment: 10.0,
	}
}

func classifyOne(t *testing.T, txn model.Transaction) model.Category {
	t.Helper()
	c := New(testConfig(), nil)
	txns := []model.Transaction{txn}
	c.Classify(txns)
	return txns[0].Category
}

func TestClassifier_Cascade(t *testing.T) {
	tests := []struct {
		name string
		txn  model.Transaction
		want model.Category
	}{
		{
			name: "payroll marker in notes is income",
			txn: model.Transaction{
				Notes:     "THE ENERGY AUTHO DIRECT DEP 12345",
				NetAmount: 2400.00,
			},
			want: model.CategoryIncome,
		},
		{
			name: "payroll marker matches case-insensitively",
			txn: model.Transaction{
				Notes:     "the energy autho direct dep",
				NetAmount: 2400.00,
			},
			want: model.CategoryIncome,
		},
		{
			name: "crypto buy at threshold is investment",
			txn: model.Transaction{
				Type:      model.TypeCryptoBuy,
				NetAmount: -10.00,
			},
			want: model.CategoryCrypto,
		},
		{
			name: "crypto buy below threshold is micro DCA",
			txn: model.Transaction{
				Type:      model.TypeCryptoBuy,
				NetAmount: -5.00,
			},
			want: model.CategoryMicroDCA,
		},
		{
			name: "recurring crypto buy above threshold is investment",
			txn: model.Transaction{
				Type:      model.TypeCryptoRecurring,
				NetAmount: -25.00,
			},
			want: model.CategoryCrypto,
		},
		{
			name: "savings transfer with BTC note is crypto savings",
			txn: model.Transaction{
				Type:      model.TypeSavingsTransfer,
				Notes:     "Automatic purchase of BTC",
				NetAmount: -50.00,
			},
			want: model.CategoryCryptoSavings,
		},
		{
			name: "plain savings transfer stays cash neutral",
			txn: model.Transaction{
				Type:      model.TypeSavingsTransfer,
				NetAmount: -75.00,
			},
			want: model.CategorySavingsXfer,
		},
		{
			name: "deposit is internal transfer",
			txn: model.Transaction{
				Type:      model.TypeDeposit,
				NetAmount: 500.00,
			},
			want: model.CategoryInternalXfer,
		},
		{
			name: "allow-listed savings amount is confirmed DCA",
			txn: model.Transaction{
				Type:      model.TypeSavingsTransfer,
				NetAmount: -318.28,
			},
			want: model.CategoryConfirmedDCA,
		},
		{
			name: "allow-listed amount as inflow is not DCA",
			txn: model.Transaction{
				Type:      model.TypeSavingsTransfer,
				NetAmount: 318.28,
			},
			want: model.CategorySavingsXfer,
		},
		{
			name: "allow-listed amount on wrong type is not DCA",
			txn: model.Transaction{
				Type:      model.TypeStandardTransfer,
				NetAmount: -318.28,
			},
			want: model.CategoryOther,
		},
		{
			name: "offset outflow is rent offset",
			txn: model.Transaction{
				Type:      model.TypeStandardTransfer,
				NetAmount: -1000.00,
			},
			want: model.CategoryRentOffset,
		},
		{
			name: "offset inflow is rent offset",
			txn: model.Transaction{
				Type:      model.TypeStandardTransfer,
				NetAmount: 1000.00,
			},
			want: model.CategoryRentOffset,
		},
		{
			name: "offset-sized crypto buy stays investment",
			txn: model.Transaction{
				Type:      model.TypeCryptoBuy,
				NetAmount: -1000.00,
			},
			want: model.CategoryCrypto,
		},
		{
			name: "offset-sized BTC savings transfer stays crypto savings",
			txn: model.Transaction{
				Type:      model.TypeSavingsTransfer,
				Notes:     "purchase of BTC",
				NetAmount: -1000.00,
			},
			want: model.CategoryCryptoSavings,
		},
		{
			name: "p2p transfer",
			txn: model.Transaction{
				Type:      model.TypePeerToPeer,
				NetAmount: -40.00,
			},
			want: model.CategoryP2P,
		},
		{
			name: "cash card delegates to merchant table",
			txn: model.Transaction{
				Type:      model.TypePointOfSale,
				Notes:     "STARBUCKS #123",
				NetAmount: -6.45,
			},
			want: model.CategoryFoodDining,
		},
		{
			name: "cash card with unknown merchant",
			txn: model.Transaction{
				Type:      model.TypePointOfSale,
				Notes:     "SOME LOCAL SHOP",
				NetAmount: -12.00,
			},
			want: model.CategoryOtherExpenses,
		},
		{
			name: "withdrawal",
			txn: model.Transaction{
				Type:      model.TypeWithdrawal,
				NetAmount: -60.00,
			},
			want: model.CategoryWithdrawal,
		},
		{
			name: "interest payment",
			txn: model.Transaction{
				Type:      model.TypeInterestPayment,
				NetAmount: 1.27,
			},
			want: model.CategoryInterest,
		},
		{
			name: "unrecognized type defaults to Other",
			txn: model.Transaction{
				Type:      "Mystery Type",
				NetAmount: -15.00,
			},
			want: model.CategoryOther,
		},
		{
			name: "empty notes never panic",
			txn: model.Transaction{
				Type:      model.TypePointOfSale,
				NetAmount: -3.00,
			},
			want: model.CategoryOtherExpenses,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyOne(t, tt.txn))
		})
	}
}

func TestClassifier_OffsetOverwritesConfirmedDCA(t *testing.T) {
	// A savings transfer matching both the allow-list and the fixed offset
	// takes the offset label: the offset rule runs later in the cascade.
	cfg := testConfig()
	cfg.DCAAmounts = []float64{1000.00}
	c := New(cfg, nil)

	txns := []model.Transaction{{
		Type:      model.TypeSavingsTransfer,
		NetAmount: -1000.00,
	}}
	c.Classify(txns)
	assert.Equal(t, model.CategoryRentOffset, txns[0].Category)
}

func TestClassifier_DepositOverwritesIncomeMarker(t *testing.T) {
	// The deposit rule runs after the income rule; a Deposits-typed record
	// is cash-neutral even when its notes carry the payroll marker.
	got := classifyOne(t, model.Transaction{
		Type:      model.TypeDeposit,
		Notes:     "THE ENERGY AUTHO DIRECT DEP",
		NetAmount: 2400.00,
	})
	assert.Equal(t, model.CategoryInternalXfer, got)
}

func TestClassifier_Idempotent(t *testing.T) {
	c := New(testConfig(), nil)
	txns := []model.Transaction{
		{Type: model.TypeCryptoBuy, NetAmount: -50.00},
		{Type: model.TypeSavingsTransfer, NetAmount: -318.28},
		{Type: model.TypePointOfSale, Notes: "CHIPOTLE 1234", NetAmount: -11.50},
		{Type: model.TypePeerToPeer, NetAmount: 20.00},
		{Notes: "THE ENERGY AUTHO DIRECT DEP", NetAmount: 2400.00},
	}

	c.Classify(txns)
	first := make([]model.Category, len(txns))
	for i := range txns {
		first[i] = txns[i].Category
	}

	c.Classify(txns)
	for i := range txns {
		assert.Equal(t, first[i], txns[i].Category, "classification changed on second pass")
	}
}

func TestClassifier_TotalCoverage(t *testing.T) {
	c := New(testConfig(), nil)
	txns := []model.Transaction{
		{},
		{Type: "Unknown", NetAmount: 1},
		{Type: model.TypeStandardTransfer, NetAmount: -2, Date: time.Now()},
		{Type: model.TypePointOfSale, NetAmount: -3},
	}
	c.Classify(txns)
	for i := range txns {
		require.NotEmpty(t, txns[i].Category, "record %d has no category", i)
	}
}

func TestClassifier_DefaultsAppliedForZeroConfig(t *testing.T) {
	c := New(Config{}, nil)

	txns := []model.Transaction{
		{Type: model.TypeCryptoBuy, NetAmount: -9.99},
		{Type: model.TypeStandardTransfer, NetAmount: -1000.00},
	}
	c.Classify(txns)
	assert.Equal(t, model.CategoryMicroDCA, txns[0].Category)
	assert.Equal(t, model.CategoryRentOffset, txns[1].Category)
}

package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"lookback/internal/model"
)

func TestMerchantClassifier_Classify(t *testing.T) {
	mc := NewMerchantClassifier(nil)

	tests := []struct {
		name     string
		merchant string
		want     model.Category
	}{
		{"coffee shop", "STARBUCKS #123 JACKSONVILLE", model.CategoryFoodDining},
		{"lower case input", "starbucks #123", model.CategoryFoodDining},
		{"streaming", "NETFLIX.COM", model.CategoryEntertainment},
		{"gas station", "7-ELEVEN 32250", model.CategoryGasTravel},
		{"gym", "CRUNCH FITNESS", model.CategoryHealthcare},
		{"golf course", "BLUE SKY GOLF CLUB", model.CategoryGolf},
		{"app store", "APPLE.COM/BILL", model.CategorySubscriptions},
		{"online retail", "AMAZON MKTPL*AB12C", model.CategoryShopping},
		{"toll", "CDOT PAY BY CELL", model.CategoryTransportation},
		{"insurer", "STATE FARM INSURANCE", model.CategoryInsurance},
		{"rent", "YSI*PROGRESS RESIDENTIAL", model.CategoryHousing},
		{"vacation rental", "AIRBNB HMXYZ", model.CategoryTourism},
		{"unknown merchant", "BOB'S BAIT AND TACKLE", model.CategoryOtherExpenses},
		{"empty text", "", model.CategoryOtherExpenses},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mc.Classify(tt.merchant))
		})
	}
}

func TestMerchantClassifier_FirstMatchWins(t *testing.T) {
	mc := NewMerchantClassifier(nil)

	// Matches both Food & Dining ("RESTAURANT") and Golf & Recreation
	// ("GOLF"); the food category is evaluated first.
	assert.Equal(t, model.CategoryFoodDining, mc.Classify("GOLF CLUB RESTAURANT"))
}

func TestKeywordTable_Merge(t *testing.T) {
	table := DefaultKeywordTable()
	table.Merge(map[model.Category][]string{
		model.CategoryFoodDining: {"TACO STAND"},
		"Pets":                   {"petco"},
	})
	mc := NewMerchantClassifier(table)

	assert.Equal(t, model.CategoryFoodDining, mc.Classify("THE TACO STAND #9"))
	// Unknown categories append to the end of the evaluation order and
	// keywords normalize to upper case.
	assert.Equal(t, model.Category("Pets"), mc.Classify("PETCO 1042"))
}

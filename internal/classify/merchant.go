package classify

import (
	"strings"

	"lookback/internal/model"
)

// KeywordTable maps an expense category to the merchant substrings that
// identify it. The table is configuration, not logic: its accuracy depends
// on the user's own merchant vocabulary, so config-file entries merge over
// the built-in defaults (see internal/config).
type KeywordTable struct {
	keywords map[model.Category][]string
	order    []model.Category
}

// NewKeywordTable builds a table evaluated in the given category order.
// Keywords are normalized to upper case once, at construction.
func NewKeywordTable(order []model.Category, keywords map[model.Category][]string) *KeywordTable {
	normalized := make(map[model.Category][]string, len(keywords))
	for category, words := range keywords {
		upper := make([]string, 0, len(words))
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				upper = append(upper, strings.ToUpper(w))
			}
		}
		normalized[category] = upper
	}
	return &KeywordTable{order: order, keywords: normalized}
}

// Merge overlays user-supplied keywords onto the table. Categories already
// present gain the extra keywords; unknown categories are appended to the
// end of the evaluation order.
func (kt *KeywordTable) Merge(extra map[model.Category][]string) {
	for category, words := range extra {
		if _, known := kt.keywords[category]; !known {
			kt.order = append(kt.order, category)
		}
		for _, w := range words {
			if w = strings.TrimSpace(w); w != "" {
				kt.keywords[category] = append(kt.keywords[category], strings.ToUpper(w))
			}
		}
	}
}

// MerchantClassifier resolves point-of-sale merchant text to an expense
// category by substring containment. Unlike the outer cascade this is
// first-match dispatch: categories are checked in table order and the first
// containing keyword wins.
type MerchantClassifier struct {
	table *KeywordTable
}

// NewMerchantClassifier creates a merchant classifier over a keyword table.
func NewMerchantClassifier(table *KeywordTable) *MerchantClassifier {
	if table == nil {
		table = DefaultKeywordTable()
	}
	return &MerchantClassifier{table: table}
}

// Classify returns the expense category for free-text merchant notes, or
// CategoryOtherExpenses when nothing matches.
func (mc *MerchantClassifier) Classify(merchantText string) model.Category {
	merchant := strings.ToUpper(merchantText)
	for _, category := range mc.table.order {
		for _, keyword := range mc.table.keywords[category] {
			if strings.Contains(merchant, keyword) {
				return category
			}
		}
	}
	return model.CategoryOtherExpenses
}

// Categories returns the evaluation order, for display.
func (mc *MerchantClassifier) Categories() []model.Category {
	return mc.table.order
}

// Keywords returns the keyword list for one category.
func (mc *MerchantClassifier) Keywords(category model.Category) []string {
	return mc.table.keywords[category]
}

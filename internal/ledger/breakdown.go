package ledger

import (
	"sort"

	"lookback/internal/model"
)

// ExpenseBreakdown returns per-category totals over the expense partition
// only, as magnitudes, sorted descending. Internal and investment categories
// never appear here.
func (a *Aggregates) ExpenseBreakdown() []CategoryTotal {
	return a.breakdown(func(t *model.Transaction) bool {
		return t.NetAmount < 0 && !t.Category.IsInternal() && !t.Category.IsInvestment()
	}, true)
}

// InvestmentBreakdown returns per-category totals over the investment
// partition, as magnitudes, sorted descending.
func (a *Aggregates) InvestmentBreakdown() []CategoryTotal {
	return a.breakdown(func(t *model.Transaction) bool {
		return t.NetAmount < 0 && t.Category.IsInvestment()
	}, true)
}

// InternalBreakdown returns per-category totals over internal-transfer
// categories, signed, sorted descending by signed total. Reported for
// transparency even though these are excluded from income/expense math.
func (a *Aggregates) InternalBreakdown() []CategoryTotal {
	totals := a.breakdown(func(t *model.Transaction) bool {
		return t.Category.IsInternal()
	}, false)
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

func (a *Aggregates) breakdown(include func(*model.Transaction) bool, magnitude bool) []CategoryTotal {
	byCategory := make(map[model.Category]*CategoryTotal)
	for i := range a.Filtered {
		txn := &a.Filtered[i]
		if !include(txn) {
			continue
		}
		ct := byCategory[txn.Category]
		if ct == nil {
			ct = &CategoryTotal{Category: txn.Category}
			byCategory[txn.Category] = ct
		}
		if magnitude {
			ct.Total += abs(txn.NetAmount)
		} else {
			ct.Total += txn.NetAmount
		}
		ct.Count++
	}

	totals := make([]CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].Total != totals[j].Total {
			return totals[i].Total > totals[j].Total
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

package ledger

import (
	"sort"

	"lookback/internal/model"
)

// Rate is a percentage metric that may be undefined (income == 0). Undefined
// rates render as N/A; NaN or Inf never leak into reports.
type Rate struct {
	Value float64
	Valid bool
}

// Summary holds the derived report metrics. It is a pure function of the
// aggregates; building it performs no I/O.
type Summary struct {
	LargestIncome  *model.Transaction
	LargestExpense *model.Transaction
	// MostFrequent is the category with the highest record count.
	MostFrequent      model.Category
	MostFrequentCount int
	// TopTransactions are the top-N records by absolute amount across the
	// income, expense, and investment partitions, stable order on ties.
	TopTransactions []model.Transaction
	// LargePayments are records at or above the large-payment floor.
	LargePayments []model.Transaction

	Partition Partition
	// CashSavingsRate is (income + expenses) / income; excludes investments.
	CashSavingsRate Rate
	// InvestmentRate is investments / income.
	InvestmentRate Rate
	// TotalSavingsRate is the sum of the two: cash plus investments.
	TotalSavingsRate Rate

	TransactionCount int
	// TopN is the requested top-transaction count, which TopTransactions
	// may undershoot on small sets.
	TopN int
}

// LargePaymentFloor is the threshold for the large-payments report section.
const LargePaymentFloor = 10000.0

// DefaultTopN is how many top transactions the report shows.
const DefaultTopN = 5

// Summarize computes report metrics from aggregates. topN <= 0 uses
// DefaultTopN.
func Summarize(agg *Aggregates, topN int) *Summary {
	if topN <= 0 {
		topN = DefaultTopN
	}

	s := &Summary{
		Partition:        agg.Partition,
		TransactionCount: len(agg.Filtered),
		TopN:             topN,
	}

	// Partition membership per record. Disjoint by construction: internal
	// labels match no bucket, investment labels only the investment bucket.
	var flows []model.Transaction
	for i := range agg.Filtered {
		txn := agg.Filtered[i]
		switch {
		case txn.Category.IsInternal():
			continue
		case txn.Category.IsInvestment():
			if txn.NetAmount < 0 {
				flows = append(flows, txn)
			}
		case txn.NetAmount > 0:
			if s.LargestIncome == nil || txn.NetAmount > s.LargestIncome.NetAmount {
				clone := txn
				s.LargestIncome = &clone
			}
			flows = append(flows, txn)
		case txn.NetAmount < 0:
			if s.LargestExpense == nil || txn.NetAmount < s.LargestExpense.NetAmount {
				clone := txn
				s.LargestExpense = &clone
			}
			flows = append(flows, txn)
		}
	}

	for _, txn := range agg.Filtered {
		if txn.NetAmount >= LargePaymentFloor {
			s.LargePayments = append(s.LargePayments, txn)
		}
	}

	// Stable sort keeps original record order on ties.
	sort.SliceStable(flows, func(i, j int) bool {
		return abs(flows[i].NetAmount) > abs(flows[j].NetAmount)
	})
	if len(flows) > topN {
		flows = flows[:topN]
	}
	s.TopTransactions = flows

	counts := make(map[model.Category]int)
	for i := range agg.Filtered {
		counts[agg.Filtered[i].Category]++
	}
	s.MostFrequent = topCategory(counts)
	s.MostFrequentCount = counts[s.MostFrequent]

	if agg.Partition.Income > 0 {
		cash := agg.Partition.NetExcludingInvestments() / agg.Partition.Income * 100
		invest := agg.Partition.Investments / agg.Partition.Income * 100
		s.CashSavingsRate = Rate{Value: cash, Valid: true}
		s.InvestmentRate = Rate{Value: invest, Valid: true}
		s.TotalSavingsRate = Rate{Value: cash + invest, Valid: true}
	}

	return s
}

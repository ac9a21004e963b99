// Package ledger derives period and category aggregates and cash-flow
// summaries from a categorized transaction set. Aggregates are recomputed on
// every invocation and never persisted; any change to filtering or
// categorization simply regenerates them.
package ledger

import (
	"sort"
	"time"

	"lookback/internal/model"
)

// Period is a calendar-month aggregation bucket, formatted as "2006-01".
type Period string

// PeriodOf derives the period for a date.
func PeriodOf(date time.Time) Period {
	return Period(date.Format("2006-01"))
}

// MonthlyTotal is the per-period roll-up of the filtered set.
type MonthlyTotal struct {
	Period      Period
	TopCategory model.Category // Most frequent category within the month
	Total       float64
	Count       int
}

// Partition is the role split of the filtered set. Income and Expenses
// exclude internal-transfer and investment categories; Expenses stays
// negative by convention. Investments is the magnitude of negative amounts
// in investment categories.
type Partition struct {
	Income      float64
	Expenses    float64
	Investments float64
}

// NetExcludingInvestments is cash flow before investment allocations:
// the liquidity question.
func (p Partition) NetExcludingInvestments() float64 {
	return p.Income + p.Expenses
}

// NetIncludingInvestments is cash flow after investment allocations:
// the total-allocation question. The two must never be collapsed.
func (p Partition) NetIncludingInvestments() float64 {
	return p.Income + p.Expenses - p.Investments
}

// CategoryTotal is one category's roll-up over the filtered set.
type CategoryTotal struct {
	Category model.Category
	Total    float64
	Count    int
}

// Aggregates is everything derived from one filtered, categorized set.
type Aggregates struct {
	categoryTotals map[model.Category]*CategoryTotal
	Monthly        []MonthlyTotal
	Partition      Partition
	// Filtered is the filtered record set the aggregates were computed
	// from, in original order, for the summary builder.
	Filtered []model.Transaction
	// SkippedDates counts records excluded from period aggregation because
	// their date failed to parse. They still contribute to category totals.
	SkippedDates int
	// Start and End bound the records actually present.
	Start time.Time
	End   time.Time
}

// Filter bounds a record set by date, inclusive on both ends. Zero times
// leave that end unbounded.
type Filter struct {
	Start time.Time
	End   time.Time
}

func (f Filter) includes(t *model.Transaction) bool {
	if !f.Start.IsZero() && t.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && t.Date.After(f.End) {
		return false
	}
	return true
}

// Aggregate computes all aggregates for a categorized record set under an
// optional date filter. An empty filtered set yields zero totals, not an
// error. Records without a parseable date are kept for category totals and
// partitions but excluded from monthly totals and counted in SkippedDates;
// under a date filter they are excluded entirely, since inclusion cannot be
// decided.
func Aggregate(transactions []model.Transaction, filter Filter) *Aggregates {
	agg := &Aggregates{
		categoryTotals: make(map[model.Category]*CategoryTotal),
	}
	bounded := !filter.Start.IsZero() || !filter.End.IsZero()

	type monthAccum struct {
		counts map[model.Category]int
		total  float64
		count  int
	}
	months := make(map[Period]*monthAccum)

	for i := range transactions {
		txn := &transactions[i]
		if !txn.HasDate() {
			if bounded {
				continue
			}
			agg.SkippedDates++
		} else {
			if !filter.includes(txn) {
				continue
			}
			if agg.Start.IsZero() || txn.Date.Before(agg.Start) {
				agg.Start = txn.Date
			}
			if txn.Date.After(agg.End) {
				agg.End = txn.Date
			}
			period := PeriodOf(txn.Date)
			m := months[period]
			if m == nil {
				m = &monthAccum{counts: make(map[model.Category]int)}
				months[period] = m
			}
			m.total += txn.NetAmount
			m.count++
			m.counts[txn.Category]++
		}

		agg.Filtered = append(agg.Filtered, *txn)

		ct := agg.categoryTotals[txn.Category]
		if ct == nil {
			ct = &CategoryTotal{Category: txn.Category}
			agg.categoryTotals[txn.Category] = ct
		}
		ct.Total += txn.NetAmount
		ct.Count++

		switch {
		case txn.Category.IsInternal():
			// Cash-neutral; contributes to no partition.
		case txn.Category.IsInvestment():
			if txn.NetAmount < 0 {
				agg.Partition.Investments += -txn.NetAmount
			}
		case txn.NetAmount > 0:
			agg.Partition.Income += txn.NetAmount
		case txn.NetAmount < 0:
			agg.Partition.Expenses += txn.NetAmount
		}
	}

	agg.Monthly = make([]MonthlyTotal, 0, len(months))
	for period, m := range months {
		agg.Monthly = append(agg.Monthly, MonthlyTotal{
			Period:      period,
			Total:       m.total,
			Count:       m.count,
			TopCategory: topCategory(m.counts),
		})
	}
	sort.Slice(agg.Monthly, func(i, j int) bool {
		return agg.Monthly[i].Period < agg.Monthly[j].Period
	})

	return agg
}

// CategoryTotals returns per-category totals sorted by descending absolute
// amount, ties by label for determinism.
func (a *Aggregates) CategoryTotals() []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(a.categoryTotals))
	for _, ct := range a.categoryTotals {
		totals = append(totals, *ct)
	}
	sort.Slice(totals, func(i, j int) bool {
		ai, aj := abs(totals[i].Total), abs(totals[j].Total)
		if ai != aj {
			return ai > aj
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// CategoryTotal returns one category's roll-up, zero-valued when absent.
func (a *Aggregates) CategoryTotal(category model.Category) CategoryTotal {
	if ct := a.categoryTotals[category]; ct != nil {
		return *ct
	}
	return CategoryTotal{Category: category}
}

// MonthlyFlows returns the per-month income/expense/investment split used by
// the flow view. Months are sorted ascending.
func (a *Aggregates) MonthlyFlows() []MonthlyFlow {
	flows := make(map[Period]*MonthlyFlow)
	for i := range a.Filtered {
		txn := &a.Filtered[i]
		if !txn.HasDate() {
			continue
		}
		period := PeriodOf(txn.Date)
		f := flows[period]
		if f == nil {
			f = &MonthlyFlow{Period: period}
			flows[period] = f
		}
		switch {
		case txn.Category.IsInternal():
		case txn.Category.IsInvestment():
			if txn.NetAmount < 0 {
				f.Investments += -txn.NetAmount
			}
		case txn.NetAmount > 0:
			f.Income += txn.NetAmount
		case txn.NetAmount < 0:
			f.Expenses += -txn.NetAmount
		}
	}

	out := make([]MonthlyFlow, 0, len(flows))
	for _, f := range flows {
		f.NetFlow = f.Income - f.Expenses - f.Investments
		out = append(out, *f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Period < out[j].Period })
	return out
}

// MonthlyFlow is one month's cash-flow split. Expenses and Investments are
// magnitudes here, matching how the flow view displays them.
type MonthlyFlow struct {
	Period      Period
	Income      float64
	Expenses    float64
	Investments float64
	NetFlow     float64
}

func topCategory(counts map[model.Category]int) model.Category {
	var top model.Category
	best := -1
	for category, n := range counts {
		if n > best || (n == best && category < top) {
			top, best = category, n
		}
	}
	return top
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

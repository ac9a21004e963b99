package model

// CategoryRole classifies a category's cash-flow effect, independent of its
// display label. Internal transfers are cash-neutral and excluded from
// income/expense math.
type CategoryRole string

const (
	// RoleIncome marks money entering the account from outside.
	RoleIncome CategoryRole = "income"
	// RoleExpense marks money leaving the account for goods or services.
	RoleExpense CategoryRole = "expense"
	// RoleInvestment marks deliberate investment allocations.
	RoleInvestment CategoryRole = "investment"
	// RoleInternal marks cash-neutral movement between the user's own accounts.
	RoleInternal CategoryRole = "internal"
)

// Category is a semantic label assigned to exactly one per transaction.
// Labels are stable display strings; downstream reports print them directly.
type Category string

const (
	// CategoryOther is the default for records no rule matched.
	CategoryOther Category = "Other"

	CategoryIncome         Category = "Income"
	CategoryInterest       Category = "Interest"
	CategoryCrypto         Category = "Investment (Bitcoin)"
	CategoryMicroDCA       Category = "Micro-DCA (Bitcoin)"
	CategoryCryptoSavings  Category = "Investment (Bitcoin Savings)"
	CategoryConfirmedDCA   Category = "Investment (DCA Savings)"
	CategorySavingsXfer    Category = "Savings Transfer"
	CategoryInternalXfer   Category = "Internal Transfer"
	CategoryRentOffset     Category = "Rent Offset (Internal)"
	CategoryDeposits       Category = "Deposits"
	CategoryP2P            Category = "P2P Transfer"
	CategoryWithdrawal     Category = "Withdrawal"
	CategoryOtherExpenses  Category = "Other Expenses"
	CategoryFoodDining     Category = "Food & Dining"
	CategoryEntertainment  Category = "Entertainment & Media"
	CategoryGasTravel      Category = "Gas & Travel"
	CategoryHealthcare     Category = "Healthcare & Fitness"
	CategoryGolf           Category = "Golf & Recreation"
	CategorySubscriptions  Category = "Subscriptions & Services"
	CategoryShopping       Category = "Shopping"
	CategoryTransportation Category = "Transportation"
	CategoryInsurance      Category = "Insurance & Financial"
	CategoryHousing        Category = "Housing & Rent"
	CategoryTourism        Category = "Travel & Tourism"
)

// internalCategories are excluded from income/expense totals. The ledger
// partition math depends on these exact labels.
var internalCategories = map[Category]bool{
	CategoryInternalXfer: true,
	CategoryRentOffset:   true,
	CategorySavingsXfer:  true,
	CategoryDeposits:     true,
}

// investmentCategories are tracked separately from regular expenses.
// Micro-DCA is deliberately absent: sub-threshold recurring buys count as
// regular expenses, not allocations.
var investmentCategories = map[Category]bool{
	CategoryCrypto:        true,
	CategoryConfirmedDCA:  true,
	CategoryCryptoSavings: true,
}

// String returns the display label.
func (c Category) String() string {
	return string(c)
}

// IsInternal reports whether the category is a cash-neutral internal transfer.
func (c Category) IsInternal() bool {
	return internalCategories[c]
}

// IsInvestment reports whether the category is an investment allocation.
func (c Category) IsInvestment() bool {
	return investmentCategories[c]
}

// Role derives the cash-flow role from the label and the record's sign.
func (c Category) Role(netAmount float64) CategoryRole {
	switch {
	case c.IsInternal():
		return RoleInternal
	case c.IsInvestment():
		return RoleInvestment
	case netAmount > 0:
		return RoleIncome
	default:
		return RoleExpense
	}
}

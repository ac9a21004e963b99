// Package classify assigns a semantic category to every transaction through
// an ordered rule cascade, with a keyword-table sub-classifier for
// point-of-sale merchant text.
package classify

import (
	"log/slog"
	"strings"

	"lookback/internal/model"
)

// Config carries the user-specific tuning the cascade depends on. All of it
// is account-specific data, not business logic, and loads from the config
// file (see internal/config).
type Config struct {
	// IncomeMarkers are payroll-source substrings matched case-insensitively
	// against notes.
	IncomeMarkers []string
	// DCAAmounts is the allow-list of exact dollar amounts confirmed by the
	// user as recurring investment transfers.
	DCAAmounts []float64
	// OffsetAmount is the fixed internal-offset transfer size.
	OffsetAmount float64
	// CryptoMinInvestment is the smallest crypto buy counted as an
	// investment; anything below is micro-DCA noise.
	CryptoMinInvestment float64
}

// DefaultConfig returns the cascade tuning used when the config file sets
// nothing.
func DefaultConfig() Config {
	return Config{
		OffsetAmount:        1000.0,
		CryptoMinInvestment: 10.0,
	}
}

// rule is one step of the cascade. Apply returns the category to assign and
// whether the rule matched; a match overwrites whatever an earlier rule set.
type rule struct {
	apply func(*model.Transaction, model.Category) (model.Category, bool)
	name  string
}

// Classifier applies the ordered rule cascade. Later rules overwrite earlier
// assignments, so the rule order is load-bearing.
type Classifier struct {
	merchant *MerchantClassifier
	rules    []rule
	cfg      Config
}

// New builds a classifier from config and a merchant sub-classifier. A nil
// merchant classifier falls back to the built-in keyword table.
func New(cfg Config, merchant *MerchantClassifier) *Classifier {
	if merchant == nil {
		merchant = NewMerchantClassifier(DefaultKeywordTable())
	}
	if cfg.OffsetAmount == 0 {
		cfg.OffsetAmount = 1000.0
	}
	if cfg.CryptoMinInvestment == 0 {
		cfg.CryptoMinInvestment = 10.0
	}

	c := &Classifier{cfg: cfg, merchant: merchant}
	c.rules = []rule{
		{name: "income", apply: c.incomeRule},
		{name: "crypto_buy", apply: c.cryptoBuyRule},
		{name: "savings_transfer", apply: c.savingsTransferRule},
		{name: "deposit", apply: c.depositRule},
		{name: "confirmed_dca", apply: c.confirmedDCARule},
		{name: "fixed_offset", apply: c.fixedOffsetRule},
		{name: "p2p", apply: c.p2pRule},
		{name: "point_of_sale", apply: c.pointOfSaleRule},
		{name: "withdrawal", apply: c.withdrawalRule},
		{name: "interest", apply: c.interestRule},
	}
	return c
}

// Classify assigns a category to every record in place. Every record ends up
// with a non-empty category; records no rule matches keep CategoryOther.
// Classification is idempotent: rules read only immutable record fields plus
// the category written earlier in the same pass.
func (c *Classifier) Classify(transactions []model.Transaction) {
	counts := make(map[model.Category]int)

	for i := range transactions {
		txn := &transactions[i]
		category := model.CategoryOther
		for _, r := range c.rules {
			if next, ok := r.apply(txn, category); ok {
				category = next
			}
		}
		txn.Category = category
		counts[category]++
	}

	slog.Debug("classification complete",
		"transactions", len(transactions),
		"categories", len(counts))
}

// incomeRule matches configured payroll-source markers in notes.
func (c *Classifier) incomeRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	for _, marker := range c.cfg.IncomeMarkers {
		if marker != "" && containsFold(txn.Notes, marker) {
			return model.CategoryIncome, true
		}
	}
	return "", false
}

// cryptoBuyRule splits crypto purchases at the investment threshold. Buys at
// or above the threshold are investments; smaller ones are micro-DCA and
// count as regular expenses.
func (c *Classifier) cryptoBuyRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if !txn.Type.IsCryptoBuy() {
		return "", false
	}
	if abs(txn.NetAmount) >= c.cfg.CryptoMinInvestment {
		return model.CategoryCrypto, true
	}
	return model.CategoryMicroDCA, true
}

// savingsTransferRule splits internal savings transfers on the BTC purchase
// marker. Plain savings transfers stay cash-neutral unless the confirmed-DCA
// rule later claims them.
func (c *Classifier) savingsTransferRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypeSavingsTransfer {
		return "", false
	}
	if containsFold(txn.Notes, "purchase of BTC") {
		return model.CategoryCryptoSavings, true
	}
	return model.CategorySavingsXfer, true
}

func (c *Classifier) depositRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypeDeposit {
		return "", false
	}
	return model.CategoryInternalXfer, true
}

// confirmedDCARule promotes savings transfers matching an allow-listed exact
// amount to investments. Only outflows qualify, and records already labelled
// as crypto by an earlier rule keep that label. Amounts are compared in
// whole cents.
func (c *Classifier) confirmedDCARule(txn *model.Transaction, current model.Category) (model.Category, bool) {
	if txn.Type != model.TypeSavingsTransfer {
		return "", false
	}
	if current == model.CategoryCrypto || current == model.CategoryMicroDCA || current == model.CategoryCryptoSavings {
		return "", false
	}
	cents := txn.Cents()
	for _, amount := range c.cfg.DCAAmounts {
		if cents == -model.Cents(amount) {
			return model.CategoryConfirmedDCA, true
		}
	}
	return "", false
}

// fixedOffsetRule marks the fixed offset transfer (either direction) as
// cash-neutral. Crypto buy types and records already carrying a crypto label
// are excluded so a coincidental purchase of the same size is not
// mislabelled. It runs after the DCA rule and overwrites a confirmed-DCA
// label when both match.
func (c *Classifier) fixedOffsetRule(txn *model.Transaction, current model.Category) (model.Category, bool) {
	if txn.Type.IsCryptoBuy() {
		return "", false
	}
	if current == model.CategoryCrypto || current == model.CategoryMicroDCA || current == model.CategoryCryptoSavings {
		return "", false
	}
	cents := txn.Cents()
	offset := model.Cents(c.cfg.OffsetAmount)
	if cents == offset || cents == -offset {
		return model.CategoryRentOffset, true
	}
	return "", false
}

func (c *Classifier) p2pRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypePeerToPeer {
		return "", false
	}
	return model.CategoryP2P, true
}

// pointOfSaleRule delegates cash card purchases to the merchant keyword
// table using the record notes as merchant text.
func (c *Classifier) pointOfSaleRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypePointOfSale {
		return "", false
	}
	return c.merchant.Classify(txn.Notes), true
}

func (c *Classifier) withdrawalRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypeWithdrawal {
		return "", false
	}
	return model.CategoryWithdrawal, true
}

func (c *Classifier) interestRule(txn *model.Transaction, _ model.Category) (model.Category, bool) {
	if txn.Type != model.TypeInterestPayment {
		return "", false
	}
	return model.CategoryInterest, true
}

// containsFold reports case-insensitive substring containment.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToUpper(s), strings.ToUpper(substr))
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

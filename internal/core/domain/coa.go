package domain

// COACategory defines the fundamental accounting category of a chart-of-accounts entry.
type COACategory string

const (
	Asset     COACategory = "ASSET"
	Liability COACategory = "LIABILITY"
	Equity    COACategory = "EQUITY"
	Revenue   COACategory = "REVENUE"
	Expense   COACategory = "EXPENSE"
	COGS      COACategory = "COGS"
)

// IsValid reports whether the category is one of the known accounting categories.
func (c COACategory) IsValid() bool {
	switch c {
	case Asset, Liability, Equity, Revenue, Expense, COGS:
		return true
	}
	return false
}

// IsCreditNormal reports whether balances for this category accumulate as
// sum(credit) - sum(debit). Debit-normal categories accumulate the other way.
func (c COACategory) IsCreditNormal() bool {
	switch c {
	case Liability, Equity, Revenue:
		return true
	}
	return false
}

// COA represents a single chart-of-accounts entry scoped to one gas station.
// Balances are never stored on the COA itself: they are derived from the
// journal entries of APPROVED transactions that reference it.
type COA struct {
	COAID        string      `json:"coaID"`        // Primary key (UUID)
	GasStationID string      `json:"gasStationID"` // FK -> gas_stations.gas_station_id
	Name         string      `json:"name"`
	Category     COACategory `json:"category"` // Immutable once journal entries reference the COA
	Description  string      `json:"description"`
	IsActive     bool        `json:"isActive"`
	AuditFields
}

// BalanceFromSums applies the category's accumulation rule to raw debit and
// credit sums. Amounts are integer minor currency units.
func (c COA) BalanceFromSums(debitSum, creditSum int64) int64 {
	if c.Category.IsCreditNormal() {
		return creditSum - debitSum
	}
	return debitSum - creditSum
}

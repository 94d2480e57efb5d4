package domain

// COAPeriodActivity is the raw debit/credit activity of one COA over a
// period, counting only entries of APPROVED transactions. Used by the
// closing engine and reports.
type COAPeriodActivity struct {
	COA       COA
	DebitSum  int64
	CreditSum int64
}

// PeriodBalance applies the COA's accumulation rule to the period sums.
func (a COAPeriodActivity) PeriodBalance() int64 {
	return a.COA.BalanceFromSums(a.DebitSum, a.CreditSum)
}

// SystemUserID is the synthetic actor recorded on system-generated
// transactions such as monthly closings.
const SystemUserID = "system"

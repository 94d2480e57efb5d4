package dto

import (
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ReportPeriodParams bounds a report to a date range. Dates are ISO date
// strings normalized to UTC day boundaries.
type ReportPeriodParams struct {
	From time.Time `form:"from" time_format:"2006-01-02" binding:"required"`
	To   time.Time `form:"to" time_format:"2006-01-02" binding:"required"`
}

// ProfitLossSummary is a station's P&L over a period. Amounts are minor
// currency units; ProfitMargin is net profit over revenue.
type ProfitLossSummary struct {
	GasStationID string          `json:"gasStationID"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Revenue      int64           `json:"revenue"`
	Expense      int64           `json:"expense"`
	COGS         int64           `json:"cogs"`
	NetProfit    int64           `json:"netProfit"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	IsProfit     bool            `json:"isProfit"`
}

// TrialBalanceRow is one COA with its derived balance for the report.
type TrialBalanceRow struct {
	COAID     string             `json:"coaID"`
	Name      string             `json:"name"`
	Category  domain.COACategory `json:"category"`
	DebitSum  int64              `json:"debitSum"`
	CreditSum int64              `json:"creditSum"`
	Balance   int64              `json:"balance"`
}

// TrialBalanceReport lists all COA balances of a station over a period.
type TrialBalanceReport struct {
	GasStationID string            `json:"gasStationID"`
	From         time.Time         `json:"from"`
	To           time.Time         `json:"to"`
	Rows         []TrialBalanceRow `json:"rows"`
	TotalDebit   int64             `json:"totalDebit"`
	TotalCredit  int64             `json:"totalCredit"`
}

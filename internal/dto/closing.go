package dto

import "time"

// CreateClosingRequest triggers a monthly closing for one station. The
// closed period is the calendar month preceding ClosingDate.
type CreateClosingRequest struct {
	ClosingDate time.Time `json:"closingDate" binding:"required"`
}

// ClosingResponse reports a successful closing. Balance is the net P&L of
// the closed period in minor currency units.
type ClosingResponse struct {
	GasStationID string `json:"gasStationID"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	MonthName    string `json:"monthName"`
	Balance      int64  `json:"balance"`
	IsProfit     bool   `json:"isProfit"`
}

// AutoCloseResult is the per-station outcome of a batch closing run.
type AutoCloseResult struct {
	GasStationID string `json:"gasStationId"`
	Success      bool   `json:"success"`
	Message      string `json:"message"`
}

// AutoCloseSummary aggregates a batch closing run.
type AutoCloseSummary struct {
	Results      []AutoCloseResult `json:"results"`
	SuccessCount int               `json:"successCount"`
	FailCount    int               `json:"failCount"`
}

package dto

import (
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// JournalEntryInput is one debit-or-credit line in a transaction creation
// request. Either COAID references an existing account or NewCOA describes
// one to create atomically with the entries.
type JournalEntryInput struct {
	COAID       *string     `json:"coaID"`
	NewCOA      *NewCOASpec `json:"newCOA"`
	Debit       int64       `json:"debit" binding:"gte=0"`
	Credit      int64       `json:"credit" binding:"gte=0"`
	Description string      `json:"description"`
}

// CreateTransactionRequest is the payload for creating a typed transaction
// with its journal entries. Amounts are integer minor currency units.
type CreateTransactionRequest struct {
	TransactionType domain.TransactionType `json:"transactionType" binding:"required"`
	Date            time.Time              `json:"date" binding:"required"`
	Description     string                 `json:"description" binding:"required"`
	ReferenceNumber string                 `json:"referenceNumber"`
	Entries         []JournalEntryInput    `json:"entries" binding:"required,min=2,dive"`

	// PURCHASE_BBM only.
	PurchaseVolume *int64  `json:"purchaseVolume" binding:"omitempty,gt=0"`
	ProductID      *string `json:"productID"`
}

// RejectTransactionRequest carries the rejection notes.
type RejectTransactionRequest struct {
	Notes string `json:"notes" binding:"required"`
}

// ListTransactionsParams filters a station's transaction list.
type ListTransactionsParams struct {
	TransactionType *domain.TransactionType `form:"transactionType"`
	ApprovalStatus  *domain.ApprovalStatus  `form:"approvalStatus"`
	From            *time.Time              `form:"from" time_format:"2006-01-02"`
	To              *time.Time              `form:"to" time_format:"2006-01-02"`
	Limit           int                     `form:"limit"`
	Offset          int                     `form:"offset"`
}

// JournalEntryResponse is one persisted journal entry line.
type JournalEntryResponse struct {
	EntryID     string `json:"entryID"`
	COAID       string `json:"coaID"`
	Debit       int64  `json:"debit"`
	Credit      int64  `json:"credit"`
	Description string `json:"description"`
}

// TransactionResponse is a transaction as returned to clients.
type TransactionResponse struct {
	TransactionID   string                 `json:"transactionID"`
	GasStationID    string                 `json:"gasStationID"`
	TransactionDate time.Time              `json:"transactionDate"`
	TransactionType domain.TransactionType `json:"transactionType"`
	Description     string                 `json:"description"`
	ReferenceNumber string                 `json:"referenceNumber,omitempty"`
	ApprovalStatus  domain.ApprovalStatus  `json:"approvalStatus"`
	CreatedBy       string                 `json:"createdBy"`
	ApproverID      *string                `json:"approverID,omitempty"`
	ApprovedAt      *time.Time             `json:"approvedAt,omitempty"`
	PurchaseVolume  *int64                 `json:"purchaseVolume,omitempty"`
	DeliveredVolume *int64                 `json:"deliveredVolume,omitempty"`
	RemainingVolume *int64                 `json:"remainingVolume,omitempty"`
	ProductID       *string                `json:"productID,omitempty"`
	Entries         []JournalEntryResponse `json:"entries,omitempty"`
	CreatedAt       time.Time              `json:"createdAt"`
}

// ToJournalEntryResponses converts persisted entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	out := make([]JournalEntryResponse, len(entries))
	for i, e := range entries {
		out[i] = JournalEntryResponse{
			EntryID:     e.EntryID,
			COAID:       e.COAID,
			Debit:       e.Debit,
			Credit:      e.Credit,
			Description: e.Description,
		}
	}
	return out
}

// ToTransactionResponse converts a domain transaction. Remaining volume is
// clamped at zero by the domain helper.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	resp := TransactionResponse{
		TransactionID:   t.TransactionID,
		GasStationID:    t.GasStationID,
		TransactionDate: t.TransactionDate,
		TransactionType: t.TransactionType,
		Description:     t.Description,
		ReferenceNumber: t.ReferenceNumber,
		ApprovalStatus:  t.ApprovalStatus,
		CreatedBy:       t.CreatedBy,
		ApproverID:      t.ApproverID,
		ApprovedAt:      t.ApprovedAt,
		PurchaseVolume:  t.PurchaseVolume,
		DeliveredVolume: t.DeliveredVolume,
		ProductID:       t.ProductID,
		CreatedAt:       t.CreatedAt,
	}
	if t.TransactionType == domain.PurchaseBBM {
		remaining, _ := t.RemainingVolume()
		resp.RemainingVolume = &remaining
	}
	if len(t.Entries) > 0 {
		resp.Entries = ToJournalEntryResponses(t.Entries)
	}
	return resp
}

// ToTransactionResponses converts a slice of transactions.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(txns))
	for i := range txns {
		out[i] = ToTransactionResponse(&txns[i])
	}
	return out
}

package domain

import "time"

// TransactionType classifies a financial transaction.
type TransactionType string

const (
	PurchaseBBM TransactionType = "PURCHASE_BBM"
	Cash        TransactionType = "CASH"
	Adjustment  TransactionType = "ADJUSTMENT"
	Closing     TransactionType = "CLOSING"
)

// IsValid reports whether the type is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case PurchaseBBM, Cash, Adjustment, Closing:
		return true
	}
	return false
}

// ApprovalStatus indicates the lifecycle state of a transaction or unload.
// PENDING is the only non-terminal state.
type ApprovalStatus string

const (
	Pending  ApprovalStatus = "PENDING"
	Approved ApprovalStatus = "APPROVED"
	Rejected ApprovalStatus = "REJECTED"
)

// IsTerminal reports whether the status can no longer change.
func (s ApprovalStatus) IsTerminal() bool {
	return s == Approved || s == Rejected
}

// Transaction represents a single financial event at a gas station. It owns
// its journal entries; those entries only count toward COA balances once the
// transaction is APPROVED.
type Transaction struct {
	TransactionID   string          `json:"transactionID"` // Primary key (UUID)
	GasStationID    string          `json:"gasStationID"`  // FK -> gas_stations.gas_station_id
	TransactionDate time.Time       `json:"transactionDate"`
	TransactionType TransactionType `json:"transactionType"`
	Description     string          `json:"description"`
	ReferenceNumber string          `json:"referenceNumber"` // External document number, nullable
	ApprovalStatus  ApprovalStatus  `json:"approvalStatus"`
	CreatedByRole   Role            `json:"createdByRole"` // Role recorded for audit
	ApproverID      *string         `json:"approverID"`    // Set when finalized
	ApprovedAt      *time.Time      `json:"approvedAt"`
	ApprovalNotes   string          `json:"approvalNotes"`

	// PURCHASE_BBM only: ordered and delivered fuel volumes in liters.
	PurchaseVolume  *int64  `json:"purchaseVolume"`
	DeliveredVolume *int64  `json:"deliveredVolume"`
	ProductID       *string `json:"productID"`

	// CLOSING only: the accounting period this transaction closes.
	ClosingYear  *int `json:"closingYear"`
	ClosingMonth *int `json:"closingMonth"`

	Entries []JournalEntry `json:"entries,omitempty"`
	AuditFields
}

// RemainingVolume returns purchaseVolume - deliveredVolume for a purchase
// transaction, clamped at zero. The second return value reports whether the
// raw computation went negative, which indicates an upstream bug.
func (t Transaction) RemainingVolume() (int64, bool) {
	if t.PurchaseVolume == nil {
		return 0, false
	}
	var delivered int64
	if t.DeliveredVolume != nil {
		delivered = *t.DeliveredVolume
	}
	remaining := *t.PurchaseVolume - delivered
	if remaining < 0 {
		return 0, true
	}
	return remaining, false
}

// JournalEntry is one debit-or-credit line against a COA, part of a balanced
// set belonging to exactly one transaction. Debit and credit are non-negative
// integer minor currency units; exactly one of them is positive.
type JournalEntry struct {
	EntryID       string `json:"entryID"`       // Primary key (UUID)
	TransactionID string `json:"transactionID"` // FK -> transactions.transaction_id, owner
	COAID         string `json:"coaID"`         // FK -> coas.coa_id, reference only
	Debit         int64  `json:"debit"`
	Credit        int64  `json:"credit"`
	Description   string `json:"description"`
	AuditFields
}

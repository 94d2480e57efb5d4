package domain

// Unload records the physical delivery of fuel into a tank against an
// approved PURCHASE_BBM transaction. The sum of deliveredVolume across
// APPROVED unloads for one purchase must never exceed its purchaseVolume.
type Unload struct {
	UnloadID              string         `json:"unloadID"` // Primary key (UUID)
	TankID                string         `json:"tankID"`   // FK -> tanks.tank_id
	UnloaderID            string         `json:"unloaderID"`
	ManagerID             *string        `json:"managerID"`             // Set when finalized
	PurchaseTransactionID string         `json:"purchaseTransactionID"` // Weak reference, lookup only
	InitialOrderVolume    int64          `json:"initialOrderVolume"`    // Purchase volume at request time, liters
	DeliveredVolume       int64          `json:"deliveredVolume"`       // Liters
	Status                ApprovalStatus `json:"status"`
	Notes                 string         `json:"notes"`
	AuditFields
}

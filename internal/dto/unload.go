package dto

import (
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// RequestUnloadRequest is the payload for recording a fuel delivery against
// an approved purchase transaction. Volume is liters.
type RequestUnloadRequest struct {
	PurchaseTransactionID string `json:"purchaseTransactionID" binding:"required"`
	TankID                string `json:"tankID" binding:"required"`
	Volume                int64  `json:"volume" binding:"required,gt=0"`
	Notes                 string `json:"notes"`
}

// UnloadResponse is an unload record as returned to clients.
type UnloadResponse struct {
	UnloadID              string                `json:"unloadID"`
	TankID                string                `json:"tankID"`
	UnloaderID            string                `json:"unloaderID"`
	ManagerID             *string               `json:"managerID,omitempty"`
	PurchaseTransactionID string                `json:"purchaseTransactionID"`
	InitialOrderVolume    int64                 `json:"initialOrderVolume"`
	DeliveredVolume       int64                 `json:"deliveredVolume"`
	Status                domain.ApprovalStatus `json:"status"`
	Notes                 string                `json:"notes,omitempty"`
	CreatedAt             time.Time             `json:"createdAt"`
}

// ToUnloadResponse converts a domain unload.
func ToUnloadResponse(u *domain.Unload) UnloadResponse {
	return UnloadResponse{
		UnloadID:              u.UnloadID,
		TankID:                u.TankID,
		UnloaderID:            u.UnloaderID,
		ManagerID:             u.ManagerID,
		PurchaseTransactionID: u.PurchaseTransactionID,
		InitialOrderVolume:    u.InitialOrderVolume,
		DeliveredVolume:       u.DeliveredVolume,
		Status:                u.Status,
		Notes:                 u.Notes,
		CreatedAt:             u.CreatedAt,
	}
}

// ToUnloadResponses converts a slice of unloads.
func ToUnloadResponses(unloads []domain.Unload) []UnloadResponse {
	out := make([]UnloadResponse, len(unloads))
	for i := range unloads {
		out[i] = ToUnloadResponse(&unloads[i])
	}
	return out
}

// RepairResponse reports the outcome of an idempotent repair run.
type RepairResponse struct {
	RepairedCount int `json:"repairedCount"`
}

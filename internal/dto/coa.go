package dto

import (
	"time"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

// NewCOASpec describes a COA to be created inline while posting journal
// entries. Name and category are mandatory.
type NewCOASpec struct {
	Name        string             `json:"name" binding:"required"`
	Category    domain.COACategory `json:"category" binding:"required,coacategory"`
	Description string             `json:"description"`
}

// CreateCOARequest is the payload for creating a COA directly.
type CreateCOARequest struct {
	Name        string             `json:"name" binding:"required"`
	Category    domain.COACategory `json:"category" binding:"required,coacategory"`
	Description string             `json:"description"`
}

// UpdateCOARequest updates mutable COA fields. Category changes are refused
// once journal entries reference the COA.
type UpdateCOARequest struct {
	Name        *string             `json:"name"`
	Category    *domain.COACategory `json:"category" binding:"omitempty,coacategory"`
	Description *string             `json:"description"`
}

// COAResponse is the COA as returned to clients, with its derived balance.
type COAResponse struct {
	COAID        string             `json:"coaID"`
	GasStationID string             `json:"gasStationID"`
	Name         string             `json:"name"`
	Category     domain.COACategory `json:"category"`
	Description  string             `json:"description"`
	IsActive     bool               `json:"isActive"`
	Balance      int64              `json:"balance"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ToCOAResponse converts a domain COA plus its derived balance.
func ToCOAResponse(coa *domain.COA, balance int64) COAResponse {
	return COAResponse{
		COAID:        coa.COAID,
		GasStationID: coa.GasStationID,
		Name:         coa.Name,
		Category:     coa.Category,
		Description:  coa.Description,
		IsActive:     coa.IsActive,
		Balance:      balance,
		CreatedAt:    coa.CreatedAt,
	}
}

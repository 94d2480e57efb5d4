package services

import (
	"context"

	"github.com/PettaPuang/nozzle.website-sub005/internal/dto"
)

// AuthSvcFacade is the thin authentication interface the core consumes.
// Session management beyond token issuance lives outside this system.
type AuthSvcFacade interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}

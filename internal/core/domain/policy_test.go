package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

func TestCanCreateTransaction(t *testing.T) {
	assert.True(t, domain.CanCreateTransaction(domain.PurchaseBBM, domain.RoleOwner))
	assert.True(t, domain.CanCreateTransaction(domain.PurchaseBBM, domain.RoleAdministrator))
	assert.False(t, domain.CanCreateTransaction(domain.PurchaseBBM, domain.RoleManager))
	assert.False(t, domain.CanCreateTransaction(domain.PurchaseBBM, domain.RoleFinance))

	assert.True(t, domain.CanCreateTransaction(domain.Cash, domain.RoleFinance))
	assert.False(t, domain.CanCreateTransaction(domain.Cash, domain.RoleOwner))
	assert.False(t, domain.CanCreateTransaction(domain.Cash, domain.RoleOperator))

	assert.True(t, domain.CanCreateTransaction(domain.Adjustment, domain.RoleManager))
	assert.True(t, domain.CanCreateTransaction(domain.Adjustment, domain.RoleFinance))
	assert.False(t, domain.CanCreateTransaction(domain.Adjustment, domain.RoleOwner))

	// CLOSING is system-generated, no role may create it through the API.
	assert.False(t, domain.CanCreateTransaction(domain.Closing, domain.RoleAdministrator))
}

func TestCanApproveTransaction(t *testing.T) {
	for _, txType := range []domain.TransactionType{domain.PurchaseBBM, domain.Cash, domain.Adjustment} {
		assert.True(t, domain.CanApproveTransaction(txType, domain.RoleManager), string(txType))
		assert.True(t, domain.CanApproveTransaction(txType, domain.RoleAdministrator), string(txType))
		assert.False(t, domain.CanApproveTransaction(txType, domain.RoleOperator), string(txType))
		assert.False(t, domain.CanApproveTransaction(txType, domain.RoleOwner), string(txType))
		assert.False(t, domain.CanApproveTransaction(txType, domain.RoleFinance), string(txType))
	}

	assert.False(t, domain.CanApproveTransaction(domain.Closing, domain.RoleAdministrator))
}

func TestIsAutoApproved(t *testing.T) {
	assert.True(t, domain.IsAutoApproved(domain.Adjustment, domain.RoleAdministrator))
	assert.False(t, domain.IsAutoApproved(domain.Adjustment, domain.RoleManager))
	assert.False(t, domain.IsAutoApproved(domain.Cash, domain.RoleAdministrator))
	assert.False(t, domain.IsAutoApproved(domain.PurchaseBBM, domain.RoleAdministrator))
}

func TestPolicyForUnknownType(t *testing.T) {
	_, ok := domain.PolicyFor(domain.TransactionType("BOGUS"))
	assert.False(t, ok)
	assert.False(t, domain.CanCreateTransaction("BOGUS", domain.RoleAdministrator))
	assert.False(t, domain.CanApproveTransaction("BOGUS", domain.RoleAdministrator))
}

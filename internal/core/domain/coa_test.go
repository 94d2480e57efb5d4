package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PettaPuang/nozzle.website-sub005/internal/core/domain"
)

func TestCOACategoryIsCreditNormal(t *testing.T) {
	assert.True(t, domain.Liability.IsCreditNormal())
	assert.True(t, domain.Equity.IsCreditNormal())
	assert.True(t, domain.Revenue.IsCreditNormal())
	assert.False(t, domain.Asset.IsCreditNormal())
	assert.False(t, domain.Expense.IsCreditNormal())
	assert.False(t, domain.COGS.IsCreditNormal())
}

func TestCOACategoryIsValid(t *testing.T) {
	assert.True(t, domain.Asset.IsValid())
	assert.True(t, domain.COGS.IsValid())
	assert.False(t, domain.COACategory("BOGUS").IsValid())
	assert.False(t, domain.COACategory("").IsValid())
}

func TestBalanceFromSums(t *testing.T) {
	asset := domain.COA{Category: domain.Asset}
	assert.Equal(t, int64(700), asset.BalanceFromSums(1000, 300))

	revenue := domain.COA{Category: domain.Revenue}
	assert.Equal(t, int64(700), revenue.BalanceFromSums(300, 1000))

	// Balances can go negative; nothing clamps them.
	assert.Equal(t, int64(-700), asset.BalanceFromSums(300, 1000))
}

func TestRemainingVolume(t *testing.T) {
	purchase := int64(10_000)
	delivered := int64(6000)
	txn := domain.Transaction{PurchaseVolume: &purchase, DeliveredVolume: &delivered}

	remaining, violated := txn.RemainingVolume()
	assert.Equal(t, int64(4000), remaining)
	assert.False(t, violated)
}

func TestRemainingVolumeClampsAtZero(t *testing.T) {
	purchase := int64(10_000)
	delivered := int64(12_000)
	txn := domain.Transaction{PurchaseVolume: &purchase, DeliveredVolume: &delivered}

	remaining, violated := txn.RemainingVolume()
	assert.Equal(t, int64(0), remaining)
	assert.True(t, violated)
}

func TestRemainingVolumeWithoutPurchaseVolume(t *testing.T) {
	remaining, violated := domain.Transaction{}.RemainingVolume()
	assert.Equal(t, int64(0), remaining)
	assert.False(t, violated)
}

func TestApprovalStatusIsTerminal(t *testing.T) {
	assert.False(t, domain.Pending.IsTerminal())
	assert.True(t, domain.Approved.IsTerminal())
	assert.True(t, domain.Rejected.IsTerminal())
}

func TestTankClampStock(t *testing.T) {
	tank := domain.Tank{Capacity: 20_000}

	stock, clamped := tank.ClampStock(15_000)
	assert.Equal(t, int64(15_000), stock)
	assert.False(t, clamped)

	stock, clamped = tank.ClampStock(-500)
	assert.Equal(t, int64(0), stock)
	assert.True(t, clamped)

	stock, clamped = tank.ClampStock(25_000)
	assert.Equal(t, int64(20_000), stock)
	assert.True(t, clamped)
}

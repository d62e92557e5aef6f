package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockbox/stockbox-cli/internal/domain/entity"
)

// La máquina de estados: PENDING → {APPROVED, COMPLETED, REJECTED};
// APPROVED → COMPLETED; los terminales no admiten salida.
func TestTransferStatus_Transiciones(t *testing.T) {
	casos := []struct {
		from, to entity.TransferStatus
		legal    bool
	}{
		{entity.TransferPending, entity.TransferApproved, true},
		{entity.TransferPending, entity.TransferCompleted, true},
		{entity.TransferPending, entity.TransferRejected, true},
		{entity.TransferApproved, entity.TransferCompleted, true},
		{entity.TransferApproved, entity.TransferRejected, false},
		{entity.TransferCompleted, entity.TransferPending, false},
		{entity.TransferCompleted, entity.TransferApproved, false},
		{entity.TransferRejected, entity.TransferPending, false},
		{entity.TransferPending, entity.TransferPending, false},
	}
	for _, c := range casos {
		assert.Equal(t, c.legal, c.from.CanTransitionTo(c.to), "%s → %s", c.from, c.to)
	}
}

func TestTransferStatus_Terminal(t *testing.T) {
	assert.False(t, entity.TransferPending.Terminal())
	assert.False(t, entity.TransferApproved.Terminal())
	assert.True(t, entity.TransferCompleted.Terminal())
	assert.True(t, entity.TransferRejected.Terminal())
}

func TestTransferStatus_Valid(t *testing.T) {
	assert.True(t, entity.TransferPending.Valid())
	assert.False(t, entity.TransferStatus("").Valid())
	assert.False(t, entity.TransferStatus("SHIPPED").Valid())
}

package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangkita/gudang-api/internal/application/ledger"
	"github.com/gudangkita/gudang-api/internal/domain"
	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/location"
)

func transferInput(dests ...ledger.TransferDestination) ledger.TransferInput {
	return ledger.TransferInput{
		CompanyID: testCompany, UserID: testUser, ProductID: testProduct,
		Source: location.Central(), Note: "restock cabang",
		Destinations: dests,
	}
}

func TestExecuteTransfer_SplitsAcrossDestinations(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(20, location.Central()))
	require.NoError(t, err)

	tr, err := uc.ExecuteTransfer(ctx, transferInput(
		ledger.TransferDestination{OutletID: testOutlet, Qty: 6},
		ledger.TransferDestination{OutletID: "out-2", Qty: 4},
	))
	require.NoError(t, err)

	assert.EqualValues(t, 10, tr.TotalQty, "totalQty = sum of destination quantities")
	require.Len(t, tr.Destinations, 2)
	assert.Equal(t, testOutlet, tr.Destinations[0].OutletID, "destination order preserved")

	// Source decrease equals the sum of destination increases.
	assert.EqualValues(t, 10, s.balances[balKey(testCompany, "central", testProduct)])
	assert.EqualValues(t, 6, s.balances[balKey(testCompany, "outlet:out-1", testProduct)])
	assert.EqualValues(t, 4, s.balances[balKey(testCompany, "outlet:out-2", testProduct)])

	// One outbound leg plus one inbound leg per destination, same transfer id.
	var outLegs, inLegs int
	for _, m := range s.movements[1:] {
		require.Equal(t, tr.ID, m.TransferID)
		switch m.Type {
		case entity.MovementTypeOut:
			outLegs++
			assert.EqualValues(t, -10, m.Delta)
		case entity.MovementTypeIn:
			inLegs++
		}
	}
	assert.Equal(t, 1, outLegs)
	assert.Equal(t, 2, inLegs)
}

func TestExecuteTransfer_FromOutletToOutlet(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(8, location.Outlet(testOutlet)))
	require.NoError(t, err)

	in := transferInput(ledger.TransferDestination{OutletID: "out-2", Qty: 8})
	in.Source = location.Outlet(testOutlet)
	tr, err := uc.ExecuteTransfer(ctx, in)
	require.NoError(t, err)

	assert.EqualValues(t, 8, tr.TotalQty)
	assert.False(t, s.hasBalanceRow(testCompany, "outlet:out-1", testProduct),
		"drained source row is pruned")
	assert.EqualValues(t, 8, s.balances[balKey(testCompany, "outlet:out-2", testProduct)])
}

func TestExecuteTransfer_InsufficientIsAllOrNothing(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(5, location.Central()))
	require.NoError(t, err)

	_, err = uc.ExecuteTransfer(ctx, transferInput(
		ledger.TransferDestination{OutletID: testOutlet, Qty: 3},
		ledger.TransferDestination{OutletID: "out-2", Qty: 3},
	))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 5, s.balances[balKey(testCompany, "central", testProduct)])
	assert.False(t, s.hasBalanceRow(testCompany, "outlet:out-1", testProduct))
	assert.False(t, s.hasBalanceRow(testCompany, "outlet:out-2", testProduct))
	assert.Len(t, s.movements, 1, "only the seeding movement remains")
	assert.Empty(t, s.transfers, "no transfer record on failure")
}

func TestExecuteTransfer_Validation(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	_, err := uc.ExecuteTransfer(ctx, transferInput())
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "empty destination list")

	_, err = uc.ExecuteTransfer(ctx, transferInput(ledger.TransferDestination{OutletID: testOutlet, Qty: 0}))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.ExecuteTransfer(ctx, transferInput(ledger.TransferDestination{OutletID: testOutlet, Qty: -1}))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	// Destination equal to the source location.
	in := transferInput(ledger.TransferDestination{OutletID: testOutlet, Qty: 1})
	in.Source = location.Outlet(testOutlet)
	_, err = uc.ExecuteTransfer(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.ExecuteTransfer(ctx, transferInput(ledger.TransferDestination{OutletID: "ghost", Qty: 1}))
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestExecuteTransfer_TransferRecordPersisted(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(10, location.Central()))
	require.NoError(t, err)

	tr, err := uc.ExecuteTransfer(ctx, transferInput(
		ledger.TransferDestination{OutletID: testOutlet, Qty: 10},
	))
	require.NoError(t, err)

	require.Len(t, s.transfers, 1)
	assert.Equal(t, tr.ID, s.transfers[0].ID)
	assert.Equal(t, "restock cabang", s.transfers[0].Note)
	assert.Equal(t, location.Central(), s.transfers[0].Source)
}

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

const (
	testCompany = "co-1"
	testUser    = "user-1"
	testProduct = "prod-1"
	testOutlet  = "out-1"
)

func newFixture() (*ledger.UseCase, *fakeStore) {
	s := newFakeStore()
	s.products[testProduct] = &entity.Product{ID: testProduct, CompanyID: testCompany, SKU: "KOP-SUS", Name: "Kopi Susu", MinStock: 5}
	s.outlets[testOutlet] = &entity.Outlet{ID: testOutlet, CompanyID: testCompany, Code: "CAB-UTA", Name: "Cabang Utama"}
	s.outlets["out-2"] = &entity.Outlet{ID: "out-2", CompanyID: testCompany, Code: "CAB-DUA", Name: "Cabang Dua"}
	uc := ledger.NewUseCase(fakeTxRunner{s}, fakeProducts{s}, fakeOutlets{s}, fakeMovements{s}, fakeTransfers{s}, fakeBalances{s})
	return uc, s
}

func inMovement(qty int64, loc location.Location) ledger.MovementInput {
	return ledger.MovementInput{
		CompanyID: testCompany, UserID: testUser, ProductID: testProduct,
		Location: loc, Type: entity.MovementTypeIn, Qty: qty,
	}
}

func outMovement(qty int64, loc location.Location) ledger.MovementInput {
	in := inMovement(qty, loc)
	in.Type = entity.MovementTypeOut
	return in
}

func opname(counted int64, loc location.Location) ledger.MovementInput {
	in := inMovement(0, loc)
	in.Type = entity.MovementTypeOpname
	in.CountedStock = &counted
	return in
}

func TestRecordMovement_InOutSequence(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	loc := location.Central()

	steps := []struct {
		input        ledger.MovementInput
		wantDelta    int64
		wantBalAfter int64
	}{
		{inMovement(10, loc), 10, 10},
		{outMovement(3, loc), -3, 7},
		{inMovement(5, loc), 5, 12},
		{outMovement(12, loc), -12, 0},
	}
	var sum int64
	for _, st := range steps {
		mov, err := uc.RecordMovement(ctx, st.input)
		require.NoError(t, err)
		assert.Equal(t, st.wantDelta, mov.Delta)
		assert.Equal(t, st.wantBalAfter, mov.BalanceAfter)
		assert.GreaterOrEqual(t, mov.BalanceAfter, int64(0))
		sum += mov.Delta
	}
	assert.EqualValues(t, sum, s.balances[balKey(testCompany, "central", testProduct)],
		"final balance equals the sum of all deltas")
	// Balance reached zero: the row must be pruned, not stored as 0.
	assert.False(t, s.hasBalanceRow(testCompany, "central", testProduct))
}

func TestRecordMovement_OutBelowZeroRejected(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(4, location.Outlet(testOutlet)))
	require.NoError(t, err)

	_, err = uc.RecordMovement(ctx, outMovement(5, location.Outlet(testOutlet)))
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	assert.EqualValues(t, 4, s.balances[balKey(testCompany, "outlet:out-1", testProduct)],
		"failed out must leave the balance unchanged")
	assert.Len(t, s.movements, 1, "no ledger entry for the rejected movement")
}

func TestRecordMovement_OpnameReconcilesToCount(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()
	loc := location.Central()

	_, err := uc.RecordMovement(ctx, inMovement(10, loc))
	require.NoError(t, err)

	mov, err := uc.RecordMovement(ctx, opname(6, loc))
	require.NoError(t, err)
	assert.EqualValues(t, -4, mov.Delta, "delta = counted - prior balance")
	assert.EqualValues(t, 6, mov.BalanceAfter)
	require.NotNil(t, mov.CountedStock)
	assert.EqualValues(t, 6, *mov.CountedStock)
	assert.EqualValues(t, 6, s.balances[balKey(testCompany, "central", testProduct)])

	// Opname above the current balance is accepted too.
	mov, err = uc.RecordMovement(ctx, opname(20, loc))
	require.NoError(t, err)
	assert.EqualValues(t, 14, mov.Delta)
	assert.EqualValues(t, 20, mov.BalanceAfter)
}

func TestRecordMovement_OpnameOnEmptyBalance(t *testing.T) {
	uc, _ := newFixture()

	mov, err := uc.RecordMovement(context.Background(), opname(15, location.Outlet(testOutlet)))
	require.NoError(t, err)
	assert.EqualValues(t, 15, mov.Delta)
	assert.EqualValues(t, 15, mov.BalanceAfter)
}

func TestRecordMovement_OpnameToZeroPrunesRow(t *testing.T) {
	uc, s := newFixture()
	ctx := context.Background()

	_, err := uc.RecordMovement(ctx, inMovement(9, location.Central()))
	require.NoError(t, err)
	_, err = uc.RecordMovement(ctx, opname(0, location.Central()))
	require.NoError(t, err)

	assert.False(t, s.hasBalanceRow(testCompany, "central", testProduct))
}

func TestRecordMovement_Validation(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()
	loc := location.Central()

	_, err := uc.RecordMovement(ctx, inMovement(0, loc))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = uc.RecordMovement(ctx, outMovement(-2, loc))
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	negative := int64(-1)
	bad := opname(0, loc)
	bad.CountedStock = &negative
	_, err = uc.RecordMovement(ctx, bad)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	missing := opname(0, loc)
	missing.CountedStock = nil
	_, err = uc.RecordMovement(ctx, missing)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	weird := inMovement(1, loc)
	weird.Type = "adjust"
	_, err = uc.RecordMovement(ctx, weird)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRecordMovement_UnknownReferences(t *testing.T) {
	uc, _ := newFixture()
	ctx := context.Background()

	ghost := inMovement(1, location.Central())
	ghost.ProductID = "missing"
	_, err := uc.RecordMovement(ctx, ghost)
	assert.ErrorIs(t, err, domain.ErrUnknownReference)

	_, err = uc.RecordMovement(ctx, inMovement(1, location.Outlet("missing")))
	assert.ErrorIs(t, err, domain.ErrUnknownReference)

	_, err = uc.RecordMovement(ctx, inMovement(1, location.Outlet("")))
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

func TestRecordMovement_OtherTenantProductRejected(t *testing.T) {
	uc, s := newFixture()
	s.products["foreign"] = &entity.Product{ID: "foreign", CompanyID: "other-co", SKU: "X", Name: "X"}

	in := inMovement(1, location.Central())
	in.ProductID = "foreign"
	_, err := uc.RecordMovement(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrUnknownReference)
}

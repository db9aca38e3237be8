package stockset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/stockset"
)

func records() []entity.StockRecord {
	return []entity.StockRecord{
		{LocationKey: "central", ProductID: "p1", Qty: 10},
		{LocationKey: "outlet:o1", ProductID: "p1", Qty: 4},
		{LocationKey: "outlet:o1", ProductID: "p2", Qty: 7},
	}
}

func TestGet(t *testing.T) {
	rs := records()
	assert.EqualValues(t, 10, stockset.Get(rs, "central", "p1"))
	assert.EqualValues(t, 4, stockset.Get(rs, "outlet:o1", "p1"))
	assert.EqualValues(t, 0, stockset.Get(rs, "outlet:o2", "p1"), "absent record means zero")
}

func TestUpsert_ReplacesInPlace(t *testing.T) {
	rs := records()
	out := stockset.Upsert(rs, "outlet:o1", "p1", 9)

	require.Len(t, out, 3)
	// Position-stable: the updated record stays at index 1.
	assert.Equal(t, "p1", out[1].ProductID)
	assert.EqualValues(t, 9, out[1].Qty)
}

func TestUpsert_AppendsNewRecord(t *testing.T) {
	rs := records()
	out := stockset.Upsert(rs, "outlet:o2", "p3", 5)

	require.Len(t, out, 4)
	assert.Equal(t, "outlet:o2", out[3].LocationKey)
	assert.EqualValues(t, 5, out[3].Qty)
}

func TestUpsert_ZeroRemovesRecord(t *testing.T) {
	rs := records()
	out := stockset.Upsert(rs, "outlet:o1", "p1", 0)

	require.Len(t, out, 2)
	assert.EqualValues(t, 0, stockset.Get(out, "outlet:o1", "p1"))
	assert.EqualValues(t, 7, stockset.Get(out, "outlet:o1", "p2"), "other records survive")
}

func TestUpsert_ZeroOnMissingRecordIsNoop(t *testing.T) {
	rs := records()
	out := stockset.Upsert(rs, "outlet:o9", "p9", -3)
	assert.Equal(t, rs, out)
}

func TestUpsert_DoesNotMutateInput(t *testing.T) {
	rs := records()
	_ = stockset.Upsert(rs, "outlet:o1", "p1", 99)
	_ = stockset.Upsert(rs, "central", "p1", 0)

	assert.Equal(t, records(), rs, "input collection must stay untouched")
}

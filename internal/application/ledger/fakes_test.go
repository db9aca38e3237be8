package ledger_test

import (
	"context"
	"sort"
	"time"

	"github.com/gudangkita/gudang-api/internal/domain/entity"
	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// fakeStore is an in-memory stand-in for every persistence port the ledger
// touches. balances is keyed company|locationKey|productID; zero quantities
// are pruned like the real repository.
type fakeStore struct {
	products  map[string]*entity.Product
	outlets   map[string]*entity.Outlet
	balances  map[string]int64
	movements []*entity.Movement
	transfers []*entity.Transfer
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[string]*entity.Product{},
		outlets:  map[string]*entity.Outlet{},
		balances: map[string]int64{},
	}
}

func balKey(companyID, locationKey, productID string) string {
	return companyID + "|" + locationKey + "|" + productID
}

func (s *fakeStore) hasBalanceRow(companyID, locationKey, productID string) bool {
	_, ok := s.balances[balKey(companyID, locationKey, productID)]
	return ok
}

// ── ProductRepository ────────────────────────────────────────────────────────

type fakeProducts struct{ s *fakeStore }

func (f fakeProducts) Create(p *entity.Product) error { f.s.products[p.ID] = p; return nil }

func (f fakeProducts) GetByID(id string) (*entity.Product, error) {
	p, ok := f.s.products[id]
	if !ok || p.DeletedAt != nil {
		return nil, nil
	}
	return p, nil
}

func (f fakeProducts) ListByCompany(companyID string, limit, offset int) ([]*entity.Product, error) {
	return f.ListActive(companyID)
}

func (f fakeProducts) ListActive(companyID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.s.products {
		if p.CompanyID == companyID && p.DeletedAt == nil {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeProducts) ListSKUs(companyID string) ([]string, error) {
	var out []string
	for _, p := range f.s.products {
		if p.CompanyID == companyID && p.DeletedAt == nil {
			out = append(out, p.SKU)
		}
	}
	return out, nil
}

func (f fakeProducts) Update(p *entity.Product) error { f.s.products[p.ID] = p; return nil }

func (f fakeProducts) SoftDelete(id string, at time.Time) error {
	if p, ok := f.s.products[id]; ok {
		p.DeletedAt = &at
	}
	return nil
}

// ── OutletRepository ─────────────────────────────────────────────────────────

type fakeOutlets struct{ s *fakeStore }

func (f fakeOutlets) Create(o *entity.Outlet) error { f.s.outlets[o.ID] = o; return nil }

func (f fakeOutlets) GetByID(id string) (*entity.Outlet, error) {
	o, ok := f.s.outlets[id]
	if !ok || o.DeletedAt != nil {
		return nil, nil
	}
	return o, nil
}

func (f fakeOutlets) ListByCompany(companyID string, limit, offset int) ([]*entity.Outlet, error) {
	return f.ListActive(companyID)
}

func (f fakeOutlets) ListActive(companyID string) ([]*entity.Outlet, error) {
	var out []*entity.Outlet
	for _, o := range f.s.outlets {
		if o.CompanyID == companyID && o.DeletedAt == nil {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f fakeOutlets) ListCodes(companyID string) ([]string, error) {
	var out []string
	for _, o := range f.s.outlets {
		if o.CompanyID == companyID && o.DeletedAt == nil {
			out = append(out, o.Code)
		}
	}
	return out, nil
}

func (f fakeOutlets) Update(o *entity.Outlet) error { f.s.outlets[o.ID] = o; return nil }

func (f fakeOutlets) SoftDelete(id string, at time.Time) error {
	if o, ok := f.s.outlets[id]; ok {
		o.DeletedAt = &at
	}
	return nil
}

// ── MovementRepository ───────────────────────────────────────────────────────

type fakeMovements struct{ s *fakeStore }

func (f fakeMovements) Create(m *entity.Movement) error {
	f.s.movements = append(f.s.movements, m)
	return nil
}

func (f fakeMovements) List(companyID string, q repository.MovementQuery) ([]*entity.Movement, error) {
	var out []*entity.Movement
	for _, m := range f.s.movements {
		if m.CompanyID != companyID || !m.Location.MatchesFilter(q.LocationFilter) {
			continue
		}
		if q.ProductID != "" && m.ProductID != q.ProductID {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f fakeMovements) CountByProduct(companyID, locationKey string) (map[string]int64, error) {
	out := map[string]int64{}
	for _, m := range f.s.movements {
		if m.CompanyID == companyID && m.Location.Key() == locationKey {
			out[m.ProductID]++
		}
	}
	return out, nil
}

// ── BalanceRepository ────────────────────────────────────────────────────────

type fakeBalances struct{ s *fakeStore }

func (f fakeBalances) Get(companyID, locationKey, productID string) (int64, error) {
	return f.s.balances[balKey(companyID, locationKey, productID)], nil
}

func (f fakeBalances) GetForUpdate(companyID, locationKey, productID string) (int64, error) {
	return f.Get(companyID, locationKey, productID)
}

func (f fakeBalances) Upsert(rec *entity.StockRecord) error {
	key := balKey(rec.CompanyID, rec.LocationKey, rec.ProductID)
	if rec.Qty <= 0 {
		delete(f.s.balances, key)
		return nil
	}
	f.s.balances[key] = rec.Qty
	return nil
}

func (f fakeBalances) ListByCompany(companyID string) ([]entity.StockRecord, error) {
	var out []entity.StockRecord
	for k, v := range f.s.balances {
		out = append(out, parseBalKey(k, v))
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].LocationKey+out[i].ProductID < out[j].LocationKey+out[j].ProductID
	})
	return out, nil
}

func (f fakeBalances) ListByLocation(companyID, locationKey string) ([]entity.StockRecord, error) {
	all, _ := f.ListByCompany(companyID)
	var out []entity.StockRecord
	for _, r := range all {
		if r.LocationKey == locationKey {
			out = append(out, r)
		}
	}
	return out, nil
}

func parseBalKey(key string, qty int64) entity.StockRecord {
	// company|locationKey|productID
	var parts [3]string
	idx := 0
	start := 0
	for i := 0; i < len(key) && idx < 2; i++ {
		if key[i] == '|' {
			parts[idx] = key[start:i]
			start = i + 1
			idx++
		}
	}
	parts[2] = key[start:]
	return entity.StockRecord{
		CompanyID:   parts[0],
		LocationKey: parts[1],
		ProductID:   parts[2],
		Qty:         qty,
	}
}

// ── TransferRepository ───────────────────────────────────────────────────────

type fakeTransfers struct{ s *fakeStore }

func (f fakeTransfers) Create(t *entity.Transfer) error {
	f.s.transfers = append(f.s.transfers, t)
	return nil
}

func (f fakeTransfers) ListByCompany(companyID string, limit, offset int) ([]*entity.Transfer, error) {
	return f.s.transfers, nil
}

// ── TxRunner ─────────────────────────────────────────────────────────────────

// fakeTxRunner emulates transactional semantics: on error the store is
// restored to its pre-transaction snapshot.
type fakeTxRunner struct{ s *fakeStore }

func (r fakeTxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovementRepository,
	balRepo repository.BalanceRepository,
	transferRepo repository.TransferRepository,
) error) error {
	balSnap := make(map[string]int64, len(r.s.balances))
	for k, v := range r.s.balances {
		balSnap[k] = v
	}
	movLen, trLen := len(r.s.movements), len(r.s.transfers)

	err := fn(fakeMovements{r.s}, fakeBalances{r.s}, fakeTransfers{r.s})
	if err != nil {
		r.s.balances = balSnap
		r.s.movements = r.s.movements[:movLen]
		r.s.transfers = r.s.transfers[:trLen]
	}
	return err
}

var _ repository.ProductRepository = fakeProducts{}
var _ repository.OutletRepository = fakeOutlets{}
var _ repository.MovementRepository = fakeMovements{}
var _ repository.BalanceRepository = fakeBalances{}
var _ repository.TransferRepository = fakeTransfers{}

package repository

import "github.com/gudangkita/gudang-api/internal/domain/entity"

// MovementQuery narrows a movement history listing. LocationFilter follows
// the location package filter grammar: "all", "central" or "outlet:<id>".
type MovementQuery struct {
	LocationFilter string
	ProductID      string
	Limit          int
	Offset         int
}

// MovementRepository append-only ledger port. Movements are never updated
// or deleted.
type MovementRepository interface {
	Create(m *entity.Movement) error
	List(companyID string, q MovementQuery) ([]*entity.Movement, error)
	// CountByProduct returns how many movements each product has at the given
	// location — the usage signal for prioritization (one per movement, not
	// weighted by quantity).
	CountByProduct(companyID, locationKey string) (map[string]int64, error)
}

package ledger

import (
	"context"

	"github.com/gudangkita/gudang-api/internal/domain/repository"
)

// TxRunner runs a function inside one database transaction, handing it
// repositories bound to that transaction. The ledger entry and the balance
// mutation are inseparable: both commit or neither does.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovementRepository,
		balRepo repository.BalanceRepository,
		transferRepo repository.TransferRepository,
	) error) error
}

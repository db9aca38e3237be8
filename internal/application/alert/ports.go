package alert

import (
	"context"
	"time"

	"github.com/gudangkita/gudang-api/internal/application/dto"
)

// ReportGenerator renders a low-stock alert list into a downloadable report.
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, companyID string, generatedAt time.Time, items []dto.LowStockAlertResponse) ([]byte, error)
}

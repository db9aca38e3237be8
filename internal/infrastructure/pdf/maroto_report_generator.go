// Package pdf renders the low-stock alert list as a downloadable report.
//
// A4 page layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Laporan Stok Menipis  │  Tanggal cetak             │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Produk | SKU | Lokasi | Stok | Minimum | Kurang     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: jumlah item + catatan                              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/gudangkita/gudang-api/internal/application/alert"
	"github.com/gudangkita/gudang-api/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 90, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

var _ alert.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implements alert.ReportGenerator using Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator builds the generator.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateLowStockReport renders the alert list and returns the PDF bytes.
func (g *MarotoReportGenerator) GenerateLowStockReport(
	_ context.Context,
	companyID string,
	generatedAt time.Time,
	items []dto.LowStockAlertResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Laporan Stok Menipis", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(len(items)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generate document: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: report title (left) and print date (right).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("LAPORAN STOK MENIPIS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Produk di bawah stok minimum per lokasi", props.Text{
				Size: 8, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Tanggal cetak", props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(generatedAt.Format("02/01/2006 15:04"), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
		),
	)
}

// tableHeaderRow: column labels.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Produk", 3, align.Left),
		h("SKU", 2, align.Left),
		h("Lokasi", 3, align.Left),
		h("Stok", 1, align.Right),
		h("Minimum", 1, align.Right),
		h("Kurang", 2, align.Right),
	)
}

// tableItemRows: one row per alert, sorted by gap upstream.
func tableItemRows(items []dto.LowStockAlertResponse) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(3).Add(text.New(
				it.Name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.SKU,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray},
			)),
			col.New(3).Add(text.New(
				it.LocationLabel,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(1).Add(text.New(
				strconv.FormatInt(it.CurrentStock, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(1).Add(text.New(
				strconv.FormatInt(it.MinStock, 10),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(2).Add(text.New(
				strconv.FormatInt(it.Gap, 10),
				props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1, Color: colorAlert},
			)),
		))
	}
	return result
}

// footerRow: item count plus a short note.
func footerRow(count int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Total %d item di bawah stok minimum.", count), props.Text{
				Style: fontstyle.Bold, Size: 8, Top: 1,
			}),
			text.New("Saldo dihitung dari buku besar pergerakan stok pada saat cetak.", props.Text{
				Size: 7, Top: 6, Color: colorGray,
			}),
		),
	)
}

package report

import (
	"context"

	"github.com/Christopheryu29/store-management-api/internal/domain/entity"
)

// SalesReportGenerator renderiza el reporte de ventas de una tienda.
// Lo implementa pdf.MarotoReportGenerator.
type SalesReportGenerator interface {
	GenerateSalesReport(ctx context.Context, store *entity.Store, sales []*entity.Sale) ([]byte, error)
}

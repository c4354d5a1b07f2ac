package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Christopheryu29/store-management-api/internal/domain"
	"github.com/Christopheryu29/store-management-api/internal/domain/repository"
)

// Cantidad máxima de ventas que entran en un reporte.
const maxReportSales = 500

// SalesReportUseCase genera el PDF del reporte de ventas de una tienda
// para uno de sus dueños.
type SalesReportUseCase struct {
	storeRepo repository.StoreRepository
	saleRepo  repository.SaleRepository
	generator SalesReportGenerator
}

// NewSalesReportUseCase construye el caso de uso inyectando sus dependencias.
func NewSalesReportUseCase(
	storeRepo repository.StoreRepository,
	saleRepo repository.SaleRepository,
	generator SalesReportGenerator,
) *SalesReportUseCase {
	return &SalesReportUseCase{storeRepo: storeRepo, saleRepo: saleRepo, generator: generator}
}

// Download arma el reporte: carga la tienda, verifica que actorID sea dueño,
// trae las ventas más recientes y renderiza el PDF.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la tienda no existe.
//   - domain.ErrForbidden        si actorID no es dueño de la tienda.
func (uc *SalesReportUseCase) Download(ctx context.Context, actorID, storeID string) (pdfBytes []byte, filename string, err error) {
	store, err := uc.storeRepo.GetByID(storeID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener tienda: %w", err)
	}
	if store == nil {
		return nil, "", domain.ErrNotFound
	}
	owner, err := uc.storeRepo.IsOwner(storeID, actorID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: verificar dueño: %w", err)
	}
	if !owner {
		return nil, "", domain.ErrForbidden
	}

	sales, err := uc.saleRepo.ListByStore(storeID, maxReportSales, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener ventas: %w", err)
	}

	pdfBytes, err = uc.generator.GenerateSalesReport(ctx, store, sales)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("ventas_%s_%s.pdf", store.Name, time.Now().Format("20060102"))
	return pdfBytes, filename, nil
}

package inventory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/freshness"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// dateLayout formato de fechas de compra/vencimiento en la API.
const dateLayout = "2006-01-02"

// UseCase recepción de lotes y vistas de inventario. El estado de frescura se
// recalcula en cada lectura con el clasificador; nunca se sirve un valor
// persistido.
type UseCase struct {
	batchRepo   repository.BatchRepository
	productRepo repository.ProductRepository
	windows     freshness.Windows

	// Now inyectable para fijar la fecha de referencia en tests.
	Now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(batchRepo repository.BatchRepository, productRepo repository.ProductRepository, windows freshness.Windows) *UseCase {
	return &UseCase{
		batchRepo:   batchRepo,
		productRepo: productRepo,
		windows:     windows,
		Now:         time.Now,
	}
}

// ReceiveBatch registra un lote recibido. La fecha de vencimiento se deriva de
// la vida útil típica del producto (purchaseDate + shelfLifeDays).
func (uc *UseCase) ReceiveBatch(ctx context.Context, in dto.CreateBatchRequest) (*dto.BatchResponse, error) {
	if in.ProductID == "" || strings.TrimSpace(in.StoreID) == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	purchaseDate, err := time.Parse(dateLayout, in.PurchaseDate)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	now := uc.Now().UTC()
	batch := &entity.InventoryBatch{
		ID:           uuid.New().String(),
		ProductID:    in.ProductID,
		StoreID:      in.StoreID,
		Quantity:     in.Quantity,
		PurchaseDate: purchaseDate,
		ExpiryDate:   purchaseDate.AddDate(0, 0, product.ShelfLifeDays),
		CreatedAt:    now,
	}
	if err := uc.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return uc.toBatchResponse(batch, product, now), nil
}

// ListBatches lista todos los lotes de una tienda con su estado recalculado,
// ordenados por fecha de vencimiento ascendente.
func (uc *UseCase) ListBatches(ctx context.Context, storeID string) ([]dto.BatchResponse, error) {
	return uc.list(ctx, storeID, func(freshness.Status, int) bool { return true })
}

// ListAtRiskBatches lista los lotes elegibles para canastas: atRisk o
// nearingExpiry, excluyendo vencidos y lotes con cantidad cero. Ordenados por
// fecha de vencimiento ascendente (lo más urgente primero).
func (uc *UseCase) ListAtRiskBatches(ctx context.Context, storeID string) ([]dto.BatchResponse, error) {
	return uc.list(ctx, storeID, func(status freshness.Status, qty int) bool {
		return status.Cratable() && qty > 0
	})
}

func (uc *UseCase) list(ctx context.Context, storeID string, keep func(freshness.Status, int) bool) ([]dto.BatchResponse, error) {
	if storeID == "" {
		return nil, domain.ErrInvalidInput
	}
	batches, err := uc.batchRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	today := uc.Now().UTC()
	products := make(map[string]*entity.Product)
	out := make([]dto.BatchResponse, 0, len(batches))
	for _, b := range batches {
		status := freshness.Classify(b.ExpiryDate, today, uc.windows)
		if !keep(status, b.Quantity) {
			continue
		}
		product, ok := products[b.ProductID]
		if !ok {
			product, err = uc.productRepo.GetByID(ctx, b.ProductID)
			if err != nil {
				return nil, err
			}
			products[b.ProductID] = product
		}
		out = append(out, *uc.toBatchResponse(b, product, today))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ExpiryDate < out[j].ExpiryDate })
	return out, nil
}

func (uc *UseCase) toBatchResponse(b *entity.InventoryBatch, product *entity.Product, today time.Time) *dto.BatchResponse {
	resp := &dto.BatchResponse{
		ID:           b.ID,
		ProductID:    b.ProductID,
		StoreID:      b.StoreID,
		Quantity:     b.Quantity,
		PurchaseDate: b.PurchaseDate.Format(dateLayout),
		ExpiryDate:   b.ExpiryDate.Format(dateLayout),
		Status:       string(freshness.Classify(b.ExpiryDate, today, uc.windows)),
	}
	if product != nil {
		resp.ProductName = product.Name
		resp.Unit = product.Unit
	}
	return resp
}

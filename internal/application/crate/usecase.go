package crate

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/wastenot/surplus-api/internal/application/dto"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// LifecycleUseCase gestiona el ciclo de vida de canastas de excedentes:
// creación (reconciliación de cantidades contra lotes), máquina de estados
// listed → offerReceived → {sold | expired | donated} y resolución de ofertas
// con descuento de inventario en la venta.
type LifecycleUseCase struct {
	txRunner     TxRunner
	productRepo  repository.ProductRepository
	crateRepo    repository.CrateRepository
	offerRepo    repository.OfferRepository
	businessRepo repository.BusinessRepository
	ticketGen    TicketGenerator
}

// NewLifecycleUseCase construye el caso de uso. Los repositorios sueltos se
// usan en lecturas; toda mutación pasa por el TxRunner.
func NewLifecycleUseCase(
	txRunner TxRunner,
	productRepo repository.ProductRepository,
	crateRepo repository.CrateRepository,
	offerRepo repository.OfferRepository,
	businessRepo repository.BusinessRepository,
	ticketGen TicketGenerator,
) *LifecycleUseCase {
	return &LifecycleUseCase{
		txRunner:     txRunner,
		productRepo:  productRepo,
		crateRepo:    crateRepo,
		offerRepo:    offerRepo,
		businessRepo: businessRepo,
		ticketGen:    ticketGen,
	}
}

// CreateCrate valida la solicitud, fusiona líneas duplicadas por producto y
// verifica factibilidad contra el stock total de la tienda dentro de una
// transacción con las filas de lotes bloqueadas. Listar NO descuenta ni
// reserva stock; la reserva es lógica y se re-valida al aceptar una oferta.
func (uc *LifecycleUseCase) CreateCrate(ctx context.Context, in dto.CreateCrateRequest) (*dto.CrateResponse, error) {
	if strings.TrimSpace(in.StoreID) == "" || len(in.Items) == 0 || strings.TrimSpace(in.PickupWindow) == "" {
		return nil, domain.ErrInvalidInput
	}
	if !in.ListingPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	// Fusionar líneas del mismo producto aditivamente, conservando el orden de
	// primera aparición. Evita que una solicitud partida en varias líneas
	// esquive el chequeo de stock.
	merged := make([]entity.CrateLineItem, 0, len(in.Items))
	index := make(map[string]int, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == "" || it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		if i, ok := index[it.ProductID]; ok {
			merged[i].Quantity += it.Quantity
			continue
		}
		index[it.ProductID] = len(merged)
		merged = append(merged, entity.CrateLineItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	for i := range merged {
		product, err := uc.productRepo.GetByID(ctx, merged[i].ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, domain.ErrNotFound
		}
		merged[i].Name = product.Name
	}

	crate := &entity.SurplusCrate{
		ID:           uuid.New().String(),
		StoreID:      in.StoreID,
		Items:        merged,
		ListingPrice: in.ListingPrice,
		PickupWindow: strings.TrimSpace(in.PickupWindow),
		Status:       entity.CrateStatusListed,
		ListedAt:     time.Now().UTC(),
	}

	err := uc.txRunner.Run(ctx, func(
		batchRepo repository.BatchRepository,
		crateRepo repository.CrateRepository,
		_ repository.OfferRepository,
	) error {
		for _, item := range crate.Items {
			lots, err := batchRepo.ListByStoreAndProductForUpdate(ctx, crate.StoreID, item.ProductID)
			if err != nil {
				return err
			}
			available := 0
			for _, lot := range lots {
				available += lot.Quantity
			}
			if available < item.Quantity {
				return &domain.StockShortfallError{
					ProductID:   item.ProductID,
					ProductName: item.Name,
					Requested:   item.Quantity,
					Available:   available,
				}
			}
		}
		return crateRepo.Create(ctx, crate)
	})
	if err != nil {
		return nil, err
	}
	return toCrateResponse(crate), nil
}

// GetCrate devuelve una canasta por ID.
func (uc *LifecycleUseCase) GetCrate(ctx context.Context, crateID string) (*dto.CrateResponse, error) {
	crate, err := uc.crateRepo.GetByID(ctx, crateID)
	if err != nil {
		return nil, err
	}
	if crate == nil {
		return nil, domain.ErrNotFound
	}
	return toCrateResponse(crate), nil
}

// ListCratesForStore lista las canastas de una tienda, recientes primero.
func (uc *LifecycleUseCase) ListCratesForStore(ctx context.Context, storeID string) ([]dto.CrateResponse, error) {
	crates, err := uc.crateRepo.ListByStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return toCrateResponses(crates), nil
}

// ListAvailableCrates lista las canastas en estado listed de todas las
// tiendas (vista de marketplace), recientes primero.
func (uc *LifecycleUseCase) ListAvailableCrates(ctx context.Context) ([]dto.CrateResponse, error) {
	crates, err := uc.crateRepo.ListByStatus(ctx, entity.CrateStatusListed)
	if err != nil {
		return nil, err
	}
	return toCrateResponses(crates), nil
}

// MarkExpired transición terminal listed|offerReceived → expired. El disparo
// (scheduler de vencimiento) es responsabilidad de un colaborador externo;
// aquí solo se expone la capacidad.
func (uc *LifecycleUseCase) MarkExpired(ctx context.Context, crateID string) (*dto.CrateResponse, error) {
	return uc.finalize(ctx, crateID, entity.CrateStatusExpired)
}

// MarkDonated transición terminal listed|offerReceived → donated.
func (uc *LifecycleUseCase) MarkDonated(ctx context.Context, crateID string) (*dto.CrateResponse, error) {
	return uc.finalize(ctx, crateID, entity.CrateStatusDonated)
}

// finalize cierra la canasta en un estado terminal y rechaza las ofertas
// pendientes en la misma transacción para que ninguna quede accionable.
func (uc *LifecycleUseCase) finalize(ctx context.Context, crateID string, terminal entity.CrateStatus) (*dto.CrateResponse, error) {
	var crate *entity.SurplusCrate
	err := uc.txRunner.Run(ctx, func(
		_ repository.BatchRepository,
		crateRepo repository.CrateRepository,
		offerRepo repository.OfferRepository,
	) error {
		var err error
		crate, err = crateRepo.GetByIDForUpdate(ctx, crateID)
		if err != nil {
			return err
		}
		if crate == nil {
			return domain.ErrNotFound
		}
		if crate.Status == entity.CrateStatusSold {
			return domain.ErrCrateAlreadySold
		}
		if crate.Status.Terminal() {
			return domain.ErrConflict
		}
		pending, err := offerRepo.ListPendingByCrate(ctx, crateID)
		if err != nil {
			return err
		}
		for _, o := range pending {
			if err := offerRepo.UpdateStatus(ctx, o.ID, entity.OfferStatusRejected); err != nil {
				return err
			}
		}
		if err := crateRepo.UpdateStatus(ctx, crateID, terminal); err != nil {
			return err
		}
		crate.Status = terminal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCrateResponse(crate), nil
}

// PickupTicket genera el comprobante PDF de recogida de una canasta vendida.
func (uc *LifecycleUseCase) PickupTicket(ctx context.Context, crateID string) ([]byte, error) {
	crate, err := uc.crateRepo.GetByID(ctx, crateID)
	if err != nil {
		return nil, err
	}
	if crate == nil {
		return nil, domain.ErrNotFound
	}
	if crate.Status != entity.CrateStatusSold || crate.SoldToBusinessID == nil {
		return nil, domain.ErrCrateNotSold
	}
	business, err := uc.businessRepo.GetByID(ctx, *crate.SoldToBusinessID)
	if err != nil {
		return nil, err
	}
	if business == nil {
		return nil, domain.ErrNotFound
	}
	return uc.ticketGen.GeneratePickupTicket(ctx, crate, business)
}

func toCrateResponse(c *entity.SurplusCrate) *dto.CrateResponse {
	if c == nil {
		return nil
	}
	items := make([]dto.CrateLineItemResponse, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, dto.CrateLineItemResponse{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
		})
	}
	return &dto.CrateResponse{
		ID:               c.ID,
		StoreID:          c.StoreID,
		Items:            items,
		ListingPrice:     c.ListingPrice,
		PickupWindow:     c.PickupWindow,
		Status:           string(c.Status),
		ListedAt:         c.ListedAt,
		SoldToBusinessID: c.SoldToBusinessID,
		FinalPrice:       c.FinalPrice,
	}
}

func toCrateResponses(crates []*entity.SurplusCrate) []dto.CrateResponse {
	out := make([]dto.CrateResponse, 0, len(crates))
	for _, c := range crates {
		out = append(out, *toCrateResponse(c))
	}
	return out
}

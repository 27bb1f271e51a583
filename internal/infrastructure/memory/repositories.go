package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/wastenot/surplus-api/internal/domain"
	"github.com/wastenot/surplus-api/internal/domain/entity"
)

// ── ProductRepository ─────────────────────────────────────────────────────────

type productRepo struct{ s *Store }

func (r *productRepo) Create(_ context.Context, product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[product.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *productRepo) List(_ context.Context) ([]*entity.Product, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, cloneProduct(p))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ── BatchRepository ───────────────────────────────────────────────────────────

type batchRepo struct{ s *Store }

func (r *batchRepo) Create(_ context.Context, batch *entity.InventoryBatch) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.batches[batch.ID] = cloneBatch(batch)
	return nil
}

func (r *batchRepo) GetByID(_ context.Context, id string) (*entity.InventoryBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.batches[id]
	if !ok {
		return nil, nil
	}
	return cloneBatch(b), nil
}

func (r *batchRepo) ListByStore(_ context.Context, storeID string) ([]*entity.InventoryBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.InventoryBatch
	for _, b := range r.s.batches {
		if b.StoreID == storeID {
			out = append(out, cloneBatch(b))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].ExpiryDate.Equal(out[j].ExpiryDate) {
			return out[i].ExpiryDate.Before(out[j].ExpiryDate)
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *batchRepo) ListByStoreAndProduct(_ context.Context, storeID, productID string) ([]*entity.InventoryBatch, error) {
	return r.listFIFO(storeID, productID)
}

// ListByStoreAndProductForUpdate en memoria no bloquea filas: la exclusión la
// da el TxRunner, que serializa las operaciones mutantes.
func (r *batchRepo) ListByStoreAndProductForUpdate(_ context.Context, storeID, productID string) ([]*entity.InventoryBatch, error) {
	return r.listFIFO(storeID, productID)
}

func (r *batchRepo) listFIFO(storeID, productID string) ([]*entity.InventoryBatch, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.InventoryBatch
	for _, b := range r.s.batches {
		if b.StoreID == storeID && b.ProductID == productID {
			out = append(out, cloneBatch(b))
		}
	}
	sortBatchesFIFO(out)
	return out, nil
}

func (r *batchRepo) UpdateQuantity(_ context.Context, id string, quantity int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	b, ok := r.s.batches[id]
	if !ok {
		return fmt.Errorf("update batch quantity: lote %s no existe", id)
	}
	b.Quantity = quantity
	return nil
}

// ── CrateRepository ───────────────────────────────────────────────────────────

type crateRepo struct{ s *Store }

func (r *crateRepo) Create(_ context.Context, crate *entity.SurplusCrate) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.crates[crate.ID] = cloneCrate(crate)
	return nil
}

func (r *crateRepo) GetByID(_ context.Context, id string) (*entity.SurplusCrate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	c, ok := r.s.crates[id]
	if !ok {
		return nil, nil
	}
	return cloneCrate(c), nil
}

func (r *crateRepo) GetByIDForUpdate(ctx context.Context, id string) (*entity.SurplusCrate, error) {
	return r.GetByID(ctx, id)
}

func (r *crateRepo) ListByStore(_ context.Context, storeID string) ([]*entity.SurplusCrate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.SurplusCrate
	for _, c := range r.s.crates {
		if c.StoreID == storeID {
			out = append(out, cloneCrate(c))
		}
	}
	sortCratesNewestFirst(out)
	return out, nil
}

func (r *crateRepo) ListByStatus(_ context.Context, status entity.CrateStatus) ([]*entity.SurplusCrate, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.SurplusCrate
	for _, c := range r.s.crates {
		if c.Status == status {
			out = append(out, cloneCrate(c))
		}
	}
	sortCratesNewestFirst(out)
	return out, nil
}

func (r *crateRepo) UpdateStatus(_ context.Context, id string, status entity.CrateStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.crates[id]
	if !ok {
		return fmt.Errorf("update crate status: canasta %s no existe", id)
	}
	c.Status = status
	return nil
}

func (r *crateRepo) MarkSold(_ context.Context, id, businessID string, finalPrice decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.crates[id]
	if !ok {
		return fmt.Errorf("mark crate sold: canasta %s no existe", id)
	}
	c.Status = entity.CrateStatusSold
	c.SoldToBusinessID = &businessID
	c.FinalPrice = &finalPrice
	return nil
}

// ── OfferRepository ───────────────────────────────────────────────────────────

type offerRepo struct{ s *Store }

func (r *offerRepo) Create(_ context.Context, offer *entity.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.offers[offer.ID] = cloneOffer(offer)
	return nil
}

func (r *offerRepo) GetByID(_ context.Context, id string) (*entity.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.offers[id]
	if !ok {
		return nil, nil
	}
	return cloneOffer(o), nil
}

func (r *offerRepo) ListByCrate(_ context.Context, crateID string) ([]*entity.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Offer
	for _, o := range r.s.offers {
		if o.CrateID == crateID {
			out = append(out, cloneOffer(o))
		}
	}
	sortOffersNewestFirst(out)
	return out, nil
}

func (r *offerRepo) ListPendingByCrate(_ context.Context, crateID string) ([]*entity.Offer, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	var out []*entity.Offer
	for _, o := range r.s.offers {
		if o.CrateID == crateID && o.Status == entity.OfferStatusPending {
			out = append(out, cloneOffer(o))
		}
	}
	sortOffersNewestFirst(out)
	return out, nil
}

func (r *offerRepo) UpdateStatus(_ context.Context, id string, status entity.OfferStatus) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	o, ok := r.s.offers[id]
	if !ok {
		return fmt.Errorf("update offer status: oferta %s no existe", id)
	}
	o.Status = status
	return nil
}

// ── BusinessRepository ────────────────────────────────────────────────────────

type businessRepo struct{ s *Store }

func (r *businessRepo) Create(_ context.Context, business *entity.LocalBusiness) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.businesses[business.ID]; ok {
		return domain.ErrDuplicate
	}
	r.s.businesses[business.ID] = cloneBusiness(business)
	return nil
}

func (r *businessRepo) GetByID(_ context.Context, id string) (*entity.LocalBusiness, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	b, ok := r.s.businesses[id]
	if !ok {
		return nil, nil
	}
	return cloneBusiness(b), nil
}

func (r *businessRepo) List(_ context.Context) ([]*entity.LocalBusiness, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.LocalBusiness, 0, len(r.s.businesses))
	for _, b := range r.s.businesses {
		out = append(out, cloneBusiness(b))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

package memory

import (
	"context"
	"sync"

	"github.com/wastenot/surplus-api/internal/application/crate"
	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

var _ crate.TxRunner = (*TxRunner)(nil)

// TxRunner emula la transacción de BD sobre el almacén en memoria: un mutex
// serializa las operaciones mutantes (equivalente grueso del aislamiento por
// tienda/canasta) y un snapshot de lotes, canastas y ofertas se restaura si fn
// devuelve error, imitando el rollback.
type TxRunner struct {
	store *Store
	txMu  sync.Mutex
}

// NewTxRunner construye el runner sobre el almacén.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con los repositorios del almacén y revierte todo cambio si fn
// devuelve error.
func (r *TxRunner) Run(_ context.Context, fn func(
	batchRepo repository.BatchRepository,
	crateRepo repository.CrateRepository,
	offerRepo repository.OfferRepository,
) error) error {
	r.txMu.Lock()
	defer r.txMu.Unlock()

	batches, crates, offers := r.snapshot()
	err := fn(r.store.Batches(), r.store.Crates(), r.store.Offers())
	if err != nil {
		r.restore(batches, crates, offers)
		return err
	}
	return nil
}

func (r *TxRunner) snapshot() (map[string]*entity.InventoryBatch, map[string]*entity.SurplusCrate, map[string]*entity.Offer) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	batches := make(map[string]*entity.InventoryBatch, len(r.store.batches))
	for id, b := range r.store.batches {
		batches[id] = cloneBatch(b)
	}
	crates := make(map[string]*entity.SurplusCrate, len(r.store.crates))
	for id, c := range r.store.crates {
		crates[id] = cloneCrate(c)
	}
	offers := make(map[string]*entity.Offer, len(r.store.offers))
	for id, o := range r.store.offers {
		offers[id] = cloneOffer(o)
	}
	return batches, crates, offers
}

func (r *TxRunner) restore(batches map[string]*entity.InventoryBatch, crates map[string]*entity.SurplusCrate, offers map[string]*entity.Offer) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.batches = batches
	r.store.crates = crates
	r.store.offers = offers
}

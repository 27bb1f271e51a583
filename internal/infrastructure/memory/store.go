// Package memory implementa los puertos de persistencia sobre mapas en
// memoria. Se usa en tests y en modo demo (sin PostgreSQL); el contrato es el
// mismo que el de los adaptadores postgres, incluido el orden FIFO de lotes y
// el orden recientes-primero de canastas y ofertas.
package memory

import (
	"sort"
	"sync"

	"github.com/wastenot/surplus-api/internal/domain/entity"
	"github.com/wastenot/surplus-api/internal/domain/repository"
)

// Store almacén en memoria compartido por todos los repositorios.
type Store struct {
	mu         sync.RWMutex
	products   map[string]*entity.Product
	batches    map[string]*entity.InventoryBatch
	crates     map[string]*entity.SurplusCrate
	offers     map[string]*entity.Offer
	businesses map[string]*entity.LocalBusiness
}

// NewStore construye un almacén vacío.
func NewStore() *Store {
	return &Store{
		products:   make(map[string]*entity.Product),
		batches:    make(map[string]*entity.InventoryBatch),
		crates:     make(map[string]*entity.SurplusCrate),
		offers:     make(map[string]*entity.Offer),
		businesses: make(map[string]*entity.LocalBusiness),
	}
}

// Products devuelve la vista ProductRepository del almacén.
func (s *Store) Products() repository.ProductRepository { return &productRepo{s: s} }

// Batches devuelve la vista BatchRepository del almacén.
func (s *Store) Batches() repository.BatchRepository { return &batchRepo{s: s} }

// Crates devuelve la vista CrateRepository del almacén.
func (s *Store) Crates() repository.CrateRepository { return &crateRepo{s: s} }

// Offers devuelve la vista OfferRepository del almacén.
func (s *Store) Offers() repository.OfferRepository { return &offerRepo{s: s} }

// Businesses devuelve la vista BusinessRepository del almacén.
func (s *Store) Businesses() repository.BusinessRepository { return &businessRepo{s: s} }

// ── Copias defensivas ─────────────────────────────────────────────────────────

func cloneBatch(b *entity.InventoryBatch) *entity.InventoryBatch {
	c := *b
	return &c
}

func cloneCrate(c *entity.SurplusCrate) *entity.SurplusCrate {
	out := *c
	out.Items = append([]entity.CrateLineItem(nil), c.Items...)
	if c.SoldToBusinessID != nil {
		v := *c.SoldToBusinessID
		out.SoldToBusinessID = &v
	}
	if c.FinalPrice != nil {
		v := *c.FinalPrice
		out.FinalPrice = &v
	}
	return &out
}

func cloneOffer(o *entity.Offer) *entity.Offer {
	c := *o
	return &c
}

func cloneBusiness(b *entity.LocalBusiness) *entity.LocalBusiness {
	c := *b
	c.Preferences = append([]string(nil), b.Preferences...)
	return &c
}

func cloneProduct(p *entity.Product) *entity.Product {
	c := *p
	return &c
}

// ── Ordenamientos compartidos ─────────────────────────────────────────────────

func sortBatchesFIFO(batches []*entity.InventoryBatch) {
	sort.Slice(batches, func(i, j int) bool {
		if !batches[i].PurchaseDate.Equal(batches[j].PurchaseDate) {
			return batches[i].PurchaseDate.Before(batches[j].PurchaseDate)
		}
		return batches[i].CreatedAt.Before(batches[j].CreatedAt)
	})
}

func sortCratesNewestFirst(crates []*entity.SurplusCrate) {
	sort.Slice(crates, func(i, j int) bool {
		if !crates[i].ListedAt.Equal(crates[j].ListedAt) {
			return crates[i].ListedAt.After(crates[j].ListedAt)
		}
		return crates[i].ID < crates[j].ID
	})
}

func sortOffersNewestFirst(offers []*entity.Offer) {
	sort.Slice(offers, func(i, j int) bool {
		if !offers[i].OfferedAt.Equal(offers[j].OfferedAt) {
			return offers[i].OfferedAt.After(offers[j].OfferedAt)
		}
		return offers[i].ID < offers[j].ID
	})
}

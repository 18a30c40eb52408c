package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type InventoryRepository struct {
	s *Store
}

func NewInventoryRepository(s *Store) *InventoryRepository {
	return &InventoryRepository{s: s}
}

func (r *InventoryRepository) FindByID(id string) (*model.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, item := range r.s.inventory {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *InventoryRepository) FindByPharmacyID(pharmacyID string) []*model.InventoryItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.InventoryItem
	for _, item := range r.s.inventory {
		if item.PharmacyID == pharmacyID {
			out = append(out, item)
		}
	}
	return out
}

func (r *InventoryRepository) Create(item *model.InventoryItem) *model.InventoryItem {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	now := time.Now().UTC()
	stored := *item
	stored.ID = r.s.ids.Next("inv")
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.s.inventory = append(r.s.inventory, &stored)
	r.s.persistInventory()
	return &stored
}

func (r *InventoryRepository) Update(id string, patch *model.InventoryPatch) (*model.InventoryItem, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, item := range r.s.inventory {
		if item.ID != id {
			continue
		}
		updated := *item
		if patch.MedicineName != nil {
			updated.MedicineName = *patch.MedicineName
		}
		if patch.Stock != nil {
			updated.Stock = *patch.Stock
		}
		if patch.Unit != nil {
			updated.Unit = *patch.Unit
		}
		if patch.LowStockThreshold != nil {
			updated.LowStockThreshold = *patch.LowStockThreshold
		}
		updated.UpdatedAt = time.Now().UTC()
		r.s.inventory[i] = &updated
		r.s.persistInventory()
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (r *InventoryRepository) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, item := range r.s.inventory {
		if item.ID != id {
			continue
		}
		r.s.inventory = append(r.s.inventory[:i], r.s.inventory[i+1:]...)
		r.s.persistInventory()
		return nil
	}
	return repository.ErrNotFound
}

func (r *InventoryRepository) GetAll() []*model.InventoryItem {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.InventoryItem(nil), r.s.inventory...)
}

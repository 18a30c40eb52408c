package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type OrderRepository struct {
	s *Store
}

func NewOrderRepository(s *Store) *OrderRepository {
	return &OrderRepository{s: s}
}

func (r *OrderRepository) FindByID(id string) (*model.PrescriptionOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, o := range r.s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *OrderRepository) FindByPharmacyID(pharmacyID string) []*model.PrescriptionOrder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.PrescriptionOrder
	for _, o := range r.s.orders {
		if o.PharmacyID == pharmacyID {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepository) FindByPrescriptionID(prescriptionID string) []*model.PrescriptionOrder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.PrescriptionOrder
	for _, o := range r.s.orders {
		if o.PrescriptionID == prescriptionID {
			out = append(out, o)
		}
	}
	return out
}

func (r *OrderRepository) Create(order *model.PrescriptionOrder) *model.PrescriptionOrder {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *order
	stored.ID = r.s.ids.Next("ord")
	stored.CreatedAt = time.Now().UTC()
	r.s.orders = append(r.s.orders, &stored)
	r.s.persistOrders()
	return &stored
}

func (r *OrderRepository) Update(id string, patch *model.OrderPatch) (*model.PrescriptionOrder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, o := range r.s.orders {
		if o.ID != id {
			continue
		}
		updated := *o
		if patch.Status != nil {
			updated.Status = *patch.Status
		}
		if patch.AlternativeMedicine != nil {
			updated.AlternativeMedicine = *patch.AlternativeMedicine
		}
		if patch.Notes != nil {
			updated.Notes = *patch.Notes
		}
		r.s.orders[i] = &updated
		r.s.persistOrders()
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

func (r *OrderRepository) GetAll() []*model.PrescriptionOrder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.PrescriptionOrder(nil), r.s.orders...)
}

package inventory

import (
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

const (
	defaultUnit      = "units"
	defaultThreshold = 50
)

type Service struct {
	inventory  repository.InventoryRepository
	pharmacies repository.PharmacyRepository
}

func NewService(inventory repository.InventoryRepository, pharmacies repository.PharmacyRepository) *Service {
	return &Service{inventory: inventory, pharmacies: pharmacies}
}

// List returns the pharmacy's items with the stock status derived per item
func (s *Service) List(actor *model.AuthUser) ([]*model.InventoryView, error) {
	pharmacy, err := s.pharmacy(actor)
	if err != nil {
		return nil, err
	}

	views := []*model.InventoryView{}
	for _, item := range s.inventory.FindByPharmacyID(pharmacy.ID) {
		views = append(views, &model.InventoryView{
			InventoryItem: *item,
			Status:        item.StockStatus(),
		})
	}
	return views, nil
}

// Create adds a medicine to the pharmacy's stock with defaults for unit and threshold
func (s *Service) Create(actor *model.AuthUser, req *model.CreateInventoryRequest) (*model.InventoryItem, error) {
	pharmacy, err := s.pharmacy(actor)
	if err != nil {
		return nil, err
	}

	item := &model.InventoryItem{
		PharmacyID:        pharmacy.ID,
		MedicineName:      req.MedicineName,
		Stock:             *req.Stock,
		Unit:              defaultUnit,
		LowStockThreshold: defaultThreshold,
	}
	if req.Unit != "" {
		item.Unit = req.Unit
	}
	if req.LowStockThreshold != nil {
		item.LowStockThreshold = *req.LowStockThreshold
	}
	return s.inventory.Create(item), nil
}

// Update patches the pharmacy's own item; items of other pharmacies read as missing
func (s *Service) Update(actor *model.AuthUser, id string, req *model.UpdateInventoryRequest) (*model.InventoryItem, error) {
	pharmacy, err := s.pharmacy(actor)
	if err != nil {
		return nil, err
	}

	if err := s.checkOwnership(pharmacy.ID, id); err != nil {
		return nil, err
	}

	updated, err := s.inventory.Update(id, &model.InventoryPatch{
		MedicineName:      req.MedicineName,
		Stock:             req.Stock,
		Unit:              req.Unit,
		LowStockThreshold: req.LowStockThreshold,
	})
	if err != nil {
		return nil, apperr.NotFound("inventory item", err)
	}
	return updated, nil
}

// Delete removes the pharmacy's own item
func (s *Service) Delete(actor *model.AuthUser, id string) error {
	pharmacy, err := s.pharmacy(actor)
	if err != nil {
		return err
	}

	if err := s.checkOwnership(pharmacy.ID, id); err != nil {
		return err
	}

	if err := s.inventory.Delete(id); err != nil {
		return apperr.NotFound("inventory item", err)
	}
	return nil
}

func (s *Service) pharmacy(actor *model.AuthUser) (*model.Pharmacy, error) {
	if actor.Role != model.RolePharmacy {
		return nil, apperr.Forbidden("only pharmacies manage inventory", nil)
	}
	pharmacy, err := s.pharmacies.FindByUserID(actor.ID)
	if err != nil {
		return nil, apperr.NotFound("pharmacy profile", err)
	}
	return pharmacy, nil
}

func (s *Service) checkOwnership(pharmacyID, itemID string) error {
	item, err := s.inventory.FindByID(itemID)
	if err != nil || item.PharmacyID != pharmacyID {
		return apperr.NotFound("inventory item", err)
	}
	return nil
}

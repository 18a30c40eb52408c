package model

import "time"

// Stock status values derived at read time, never stored
const (
	StockStatusGood = "Good"
	StockStatusLow  = "Low"
	StockStatusOut  = "Out of Stock"
)

type InventoryItem struct {
	ID                string    `json:"id"`
	PharmacyID        string    `json:"pharmacy_id"`
	MedicineName      string    `json:"medicine_name"`
	Stock             int       `json:"stock"`
	Unit              string    `json:"unit"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// StockStatus derives the display status from current stock
func (i *InventoryItem) StockStatus() string {
	switch {
	case i.Stock == 0:
		return StockStatusOut
	case i.Stock <= i.LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusGood
	}
}

type CreateInventoryRequest struct {
	MedicineName      string `json:"medicine_name" binding:"required"`
	Stock             *int   `json:"stock" binding:"required"`
	Unit              string `json:"unit"`
	LowStockThreshold *int   `json:"low_stock_threshold"`
}

type UpdateInventoryRequest struct {
	MedicineName      *string `json:"medicine_name"`
	Stock             *int    `json:"stock"`
	Unit              *string `json:"unit"`
	LowStockThreshold *int    `json:"low_stock_threshold"`
}

// InventoryPatch carries updatable item fields; nil means keep
type InventoryPatch struct {
	MedicineName      *string
	Stock             *int
	Unit              *string
	LowStockThreshold *int
}

// InventoryView is an item plus its derived stock status
type InventoryView struct {
	InventoryItem
	Status string `json:"status"`
}

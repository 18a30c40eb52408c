package model

import "time"

type OrderStatus string

const (
	OrderStatusPending              OrderStatus = "pending"
	OrderStatusConfirmed            OrderStatus = "confirmed"
	OrderStatusProcessing           OrderStatus = "processing"
	OrderStatusReady                OrderStatus = "ready"
	OrderStatusDelivered            OrderStatus = "delivered"
	OrderStatusCancelled            OrderStatus = "cancelled"
	OrderStatusAlternativeSuggested OrderStatus = "alternative_suggested"
)

// ValidOrderStatus reports whether s is one of the accepted status values
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusReady, OrderStatusDelivered, OrderStatusCancelled,
		OrderStatusAlternativeSuggested:
		return true
	}
	return false
}

type PrescriptionOrder struct {
	ID                  string      `json:"id"`
	PrescriptionID      string      `json:"prescription_id"`
	PharmacyID          string      `json:"pharmacy_id"`
	Status              OrderStatus `json:"status"`
	AlternativeMedicine string      `json:"alternative_medicine,omitempty"`
	Notes               string      `json:"notes,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
}

type CreateOrderRequest struct {
	PrescriptionID string `json:"prescription_id" binding:"required"`
	PharmacyID     string `json:"pharmacy_id" binding:"required"`
}

type UpdateOrderRequest struct {
	Status              string  `json:"status" binding:"required"`
	AlternativeMedicine *string `json:"alternative_medicine"`
	Notes               *string `json:"notes"`
}

// OrderPatch carries updatable order fields; nil means keep
type OrderPatch struct {
	Status              *OrderStatus
	AlternativeMedicine *string
	Notes               *string
}

// OrderView is an order joined with prescription details and participant names.
// Fallback values cover orders whose prescription has gone missing.
type OrderView struct {
	PrescriptionOrder
	MedicationName string `json:"medication_name"`
	Dosage         string `json:"dosage"`
	Quantity       int    `json:"quantity"`
	PatientName    string `json:"patient_name"`
	DoctorName     string `json:"doctor_name"`
}

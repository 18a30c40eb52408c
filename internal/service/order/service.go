package order

import (
	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

const unknownMedication = "Unknown Medication"

type Service struct {
	orders        repository.OrderRepository
	prescriptions repository.PrescriptionRepository
	pharmacies    repository.PharmacyRepository
	doctors       repository.DoctorRepository
	patients      repository.PatientRepository
	users         repository.UserRepository
}

func NewService(
	orders repository.OrderRepository,
	prescriptions repository.PrescriptionRepository,
	pharmacies repository.PharmacyRepository,
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	users repository.UserRepository,
) *Service {
	return &Service{
		orders:        orders,
		prescriptions: prescriptions,
		pharmacies:    pharmacies,
		doctors:       doctors,
		patients:      patients,
		users:         users,
	}
}

// ListForPharmacy returns the pharmacy's orders joined with prescription
// details and participant names. Orders whose prescription has vanished fall
// back to placeholder text instead of failing.
func (s *Service) ListForPharmacy(actor *model.AuthUser) ([]*model.OrderView, error) {
	views := []*model.OrderView{}

	pharmacy, err := s.pharmacies.FindByUserID(actor.ID)
	if err != nil {
		return views, nil
	}

	for _, o := range s.orders.FindByPharmacyID(pharmacy.ID) {
		view := &model.OrderView{
			PrescriptionOrder: *o,
			MedicationName:    unknownMedication,
			PatientName:       "Unknown Patient",
			DoctorName:        "Unknown Doctor",
		}
		if rx, err := s.prescriptions.FindByID(o.PrescriptionID); err == nil {
			view.MedicationName = rx.MedicationName
			view.Dosage = rx.Dosage
			view.Quantity = rx.Quantity
			view.PatientName = s.patientName(rx.PatientID)
			view.DoctorName = s.doctorName(rx.DoctorID)
		}
		views = append(views, view)
	}

	return views, nil
}

// ListForPatient returns the raw orders placed against the patient's prescriptions
func (s *Service) ListForPatient(actor *model.AuthUser) ([]*model.PrescriptionOrder, error) {
	orders := []*model.PrescriptionOrder{}

	patient, err := s.patients.FindByUserID(actor.ID)
	if err != nil {
		return orders, nil
	}

	mine := make(map[string]bool)
	for _, rx := range s.prescriptions.FindByPatientID(patient.ID) {
		mine[rx.ID] = true
	}
	for _, o := range s.orders.GetAll() {
		if mine[o.PrescriptionID] {
			orders = append(orders, o)
		}
	}
	return orders, nil
}

// Create sends a prescription to a pharmacy as a pending order. Patients only.
func (s *Service) Create(actor *model.AuthUser, req *model.CreateOrderRequest) (*model.PrescriptionOrder, error) {
	if actor.Role != model.RolePatient {
		return nil, apperr.Forbidden("only patients can place prescription orders", nil)
	}

	return s.orders.Create(&model.PrescriptionOrder{
		PrescriptionID: req.PrescriptionID,
		PharmacyID:     req.PharmacyID,
		Status:         model.OrderStatusPending,
	}), nil
}

// UpdateStatus lets the fulfilling pharmacy move an order through its states,
// optionally suggesting an alternative medicine. Any enum value is accepted.
func (s *Service) UpdateStatus(actor *model.AuthUser, id string, req *model.UpdateOrderRequest) (*model.PrescriptionOrder, error) {
	if actor.Role != model.RolePharmacy {
		return nil, apperr.Forbidden("only pharmacies can update orders", nil)
	}
	if !model.ValidOrderStatus(req.Status) {
		return nil, apperr.BadRequest("invalid order status", nil)
	}

	if _, err := s.pharmacies.FindByUserID(actor.ID); err != nil {
		return nil, apperr.NotFound("pharmacy profile", err)
	}

	status := model.OrderStatus(req.Status)
	patch := &model.OrderPatch{Status: &status}
	if req.AlternativeMedicine != nil {
		patch.AlternativeMedicine = req.AlternativeMedicine
	}
	if req.Notes != nil {
		patch.Notes = req.Notes
	}

	updated, err := s.orders.Update(id, patch)
	if err != nil {
		return nil, apperr.NotFound("order", err)
	}
	return updated, nil
}

func (s *Service) doctorName(doctorID string) string {
	doctor, err := s.doctors.FindByID(doctorID)
	if err != nil {
		return "Unknown Doctor"
	}
	user, err := s.users.FindByID(doctor.UserID)
	if err != nil {
		return "Unknown Doctor"
	}
	return user.Name
}

func (s *Service) patientName(patientID string) string {
	patient, err := s.patients.FindByID(patientID)
	if err != nil {
		return "Unknown Patient"
	}
	user, err := s.users.FindByID(patient.UserID)
	if err != nil {
		return "Unknown Patient"
	}
	return user.Name
}

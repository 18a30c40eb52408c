package directory

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	apperr "github.com/carelink/carelink-api/pkg/errors"
)

const (
	cacheTTL           = 30 * time.Second
	doctorsCacheKey    = "doctors"
	pharmaciesCacheKey = "pharmacies"
)

// Service serves the provider directories (doctors, pharmacies) and the
// patient roster. The public listings are join-heavy and change only on
// signup, so they sit behind a short TTL cache.
type Service struct {
	doctors      repository.DoctorRepository
	patients     repository.PatientRepository
	pharmacies   repository.PharmacyRepository
	users        repository.UserRepository
	appointments repository.AppointmentRepository
	cache        *gocache.Cache
}

func NewService(
	doctors repository.DoctorRepository,
	patients repository.PatientRepository,
	pharmacies repository.PharmacyRepository,
	users repository.UserRepository,
	appointments repository.AppointmentRepository,
) *Service {
	return &Service{
		doctors:      doctors,
		patients:     patients,
		pharmacies:   pharmacies,
		users:        users,
		appointments: appointments,
		cache:        gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Doctors lists every doctor joined with its account's contact details
func (s *Service) Doctors() ([]*model.DoctorListing, error) {
	if cached, ok := s.cache.Get(doctorsCacheKey); ok {
		return cached.([]*model.DoctorListing), nil
	}

	listings := []*model.DoctorListing{}
	for _, d := range s.doctors.GetAll() {
		listing := &model.DoctorListing{Doctor: *d}
		if user, err := s.users.FindByID(d.UserID); err == nil {
			listing.Name = user.Name
			listing.Email = user.Email
			listing.Phone = user.Phone
		}
		listings = append(listings, listing)
	}

	s.cache.Set(doctorsCacheKey, listings, gocache.DefaultExpiration)
	return listings, nil
}

// Pharmacies lists every pharmacy joined with its account's contact details
func (s *Service) Pharmacies() ([]*model.PharmacyListing, error) {
	if cached, ok := s.cache.Get(pharmaciesCacheKey); ok {
		return cached.([]*model.PharmacyListing), nil
	}

	listings := []*model.PharmacyListing{}
	for _, p := range s.pharmacies.GetAll() {
		listing := &model.PharmacyListing{
			ID:             p.ID,
			UserID:         p.UserID,
			PharmacyName:   p.PharmacyName,
			LicenseNumber:  p.LicenseNumber,
			Address:        p.Address,
			OperatingHours: p.OperatingHours,
			Phone:          p.Phone,
		}
		if user, err := s.users.FindByID(p.UserID); err == nil {
			listing.Name = user.Name
			listing.Email = user.Email
			if user.Phone != "" {
				listing.Phone = user.Phone
			}
		}
		listings = append(listings, listing)
	}

	s.cache.Set(pharmaciesCacheKey, listings, gocache.DefaultExpiration)
	return listings, nil
}

// Patients builds the roster doctors see: contact details plus age and a
// follow-up status derived from open appointments. Never cached, since it
// reflects live appointment state.
func (s *Service) Patients(actor *model.AuthUser, now time.Time) ([]*model.PatientSummary, error) {
	if actor.Role != model.RoleDoctor {
		return nil, apperr.Forbidden("only doctors can view the patient roster", nil)
	}

	summaries := []*model.PatientSummary{}
	for _, p := range s.patients.GetAll() {
		summary := &model.PatientSummary{
			ID:                p.ID,
			Name:              "Unknown Patient",
			Age:               age(p.DateOfBirth, now),
			Status:            s.followUpStatus(p.ID),
			Gender:            p.Gender,
			BloodType:         p.BloodType,
			Allergies:         p.Allergies,
			ChronicConditions: p.ChronicConditions,
		}
		if user, err := s.users.FindByID(p.UserID); err == nil {
			summary.Name = user.Name
			summary.Email = user.Email
			summary.Phone = user.Phone
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (s *Service) followUpStatus(patientID string) string {
	for _, apt := range s.appointments.FindByPatientID(patientID) {
		if apt.Status == model.AppointmentStatusScheduled || apt.Status == model.AppointmentStatusInProgress {
			return "Follow-up needed"
		}
	}
	return "Stable"
}

// age computes full years since a YYYY-MM-DD birth date; unknown dates read as 0
func age(dateOfBirth string, now time.Time) int {
	if dateOfBirth == "" {
		return 0
	}
	born, err := time.Parse("2006-01-02", dateOfBirth)
	if err != nil {
		return 0
	}

	years := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

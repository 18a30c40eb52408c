// Package seed installs the demo records that make a fresh deployment look
// populated, and hosts the startup refresh task that keeps the demo data
// current: fixed demo appointments are shifted onto today's schedule and
// medicine reminders are rolled over to a new day.
package seed

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
	"github.com/carelink/carelink-api/internal/repository/memory"
)

const demoPassword = "demo123"

// The fixed demo appointments and the hour each one moves to on refresh
var demoAppointmentHours = map[string]int{
	"apt-1": 9,
	"apt-2": 10,
	"apt-3": 14,
	"apt-4": 15,
}

// Apply installs the demo accounts and their starting records. It runs before
// LoadPersisted, so anything the demo user changed in an earlier run comes
// back from disk and replaces these rows.
func Apply(store *memory.Store, now time.Time) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	store.SeedUsers(
		&model.User{
			ID:           "user-1",
			Email:        "doctor@demo.com",
			PasswordHash: string(hash),
			Role:         model.RoleDoctor,
			Name:         "Dr. Sarah Smith",
			Phone:        "+1234567890",
			CreatedAt:    now,
		},
		&model.User{
			ID:           "user-2",
			Email:        "patient@demo.com",
			PasswordHash: string(hash),
			Role:         model.RolePatient,
			Name:         "John Doe",
			Phone:        "+1234567891",
			CreatedAt:    now,
		},
		&model.User{
			ID:           "user-3",
			Email:        "pharmacy@demo.com",
			PasswordHash: string(hash),
			Role:         model.RolePharmacy,
			Name:         "HealthCare Pharmacy",
			Phone:        "+1234567892",
			CreatedAt:    now,
		},
	)

	store.SeedDoctors(&model.Doctor{
		ID:             "doctor-1",
		UserID:         "user-1",
		LicenseNumber:  "MD-12345",
		Specialization: "General Medicine",
		Bio:            "Experienced general practitioner",
	})

	store.SeedPatients(&model.Patient{
		ID:          "patient-1",
		UserID:      "user-2",
		DateOfBirth: "1980-01-15",
		Gender:      "Male",
		BloodType:   "O+",
	})

	store.SeedPharmacies(&model.Pharmacy{
		ID:            "pharmacy-1",
		UserID:        "user-3",
		PharmacyName:  "HealthCare Pharmacy",
		LicenseNumber: "PH-12345",
		Address:       "123 Main St",
		Phone:         "+1234567892",
	})

	store.SeedAppointments(
		demoAppointment("apt-1", at(now, 9, 0), "General Checkup"),
		demoAppointment("apt-2", at(now, 10, 30), "Follow-up Consultation"),
		demoAppointment("apt-3", at(now, 14, 0), "Initial Visit"),
		demoAppointment("apt-4", at(now, 15, 30), "Routine Examination"),
		demoAppointment("apt-5", at(now.AddDate(0, 0, 5), 9, 0), ""),
	)

	store.SeedPrescriptions(&model.Prescription{
		ID:             "rx-1",
		PatientID:      "patient-1",
		DoctorID:       "doctor-1",
		MedicationName: "Aspirin 500mg",
		Dosage:         "1 tablet",
		Frequency:      "twice daily",
		DurationDays:   30,
		Quantity:       60,
		CreatedAt:      now,
	})

	return nil
}

func demoAppointment(id string, date time.Time, notes string) *model.Appointment {
	return &model.Appointment{
		ID:              id,
		PatientID:       "patient-1",
		DoctorID:        "doctor-1",
		AppointmentDate: date,
		Status:          model.AppointmentStatusScheduled,
		Notes:           notes,
		CreatedAt:       time.Now().UTC(),
	}
}

func at(day time.Time, hour, minute int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, day.Location())
}

// RefreshDemoAppointments moves the fixed demo appointments onto today's
// schedule when their stored date is some other day, and persists the shift.
// Returns the number of appointments moved.
func RefreshDemoAppointments(repo repository.AppointmentRepository, now time.Time) int {
	today := now.Format("2006-01-02")

	moved := 0
	for id, hour := range demoAppointmentHours {
		apt, err := repo.FindByID(id)
		if err != nil {
			continue
		}
		if apt.AppointmentDate.In(now.Location()).Format("2006-01-02") == today {
			continue
		}
		newDate := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if _, err := repo.Update(id, &model.AppointmentPatch{AppointmentDate: &newDate}); err == nil {
			moved++
		}
	}
	return moved
}

// ResetReminders rolls every reminder not dated today forward to today with
// taken cleared. Runs once per process start.
func ResetReminders(repo repository.ReminderRepository, now time.Time) int {
	return repo.ResetForDate(now.Format("2006-01-02"))
}

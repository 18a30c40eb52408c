package memory

import (
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/repository"
)

type ReminderRepository struct {
	s *Store
}

func NewReminderRepository(s *Store) *ReminderRepository {
	return &ReminderRepository{s: s}
}

func (r *ReminderRepository) FindByID(id string) (*model.MedicineReminder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, rem := range r.s.reminders {
		if rem.ID == id {
			return rem, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *ReminderRepository) FindByPatientID(patientID string) []*model.MedicineReminder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.MedicineReminder
	for _, rem := range r.s.reminders {
		if rem.PatientID == patientID {
			out = append(out, rem)
		}
	}
	return out
}

func (r *ReminderRepository) FindByPatientIDAndDate(patientID, date string) []*model.MedicineReminder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []*model.MedicineReminder
	for _, rem := range r.s.reminders {
		if rem.PatientID == patientID && rem.ReminderDate == date {
			out = append(out, rem)
		}
	}
	return out
}

func (r *ReminderRepository) Create(reminder *model.MedicineReminder) *model.MedicineReminder {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored := *reminder
	stored.ID = r.s.ids.Next("reminder")
	stored.CreatedAt = time.Now().UTC()
	r.s.reminders = append(r.s.reminders, &stored)
	r.s.persistReminders()
	return &stored
}

func (r *ReminderRepository) Update(id string, patch *model.ReminderPatch) (*model.MedicineReminder, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i, rem := range r.s.reminders {
		if rem.ID != id {
			continue
		}
		updated := *rem
		if patch.ReminderTime != nil {
			updated.ReminderTime = *patch.ReminderTime
		}
		if patch.ReminderDate != nil {
			updated.ReminderDate = *patch.ReminderDate
		}
		if patch.Taken != nil {
			updated.Taken = *patch.Taken
		}
		r.s.reminders[i] = &updated
		r.s.persistReminders()
		return &updated, nil
	}
	return nil, repository.ErrNotFound
}

// ResetForDate rolls reminders dated other than date forward to date and
// clears taken. Reminders already on date keep their taken state.
func (r *ReminderRepository) ResetForDate(date string) int {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	touched := 0
	for i, rem := range r.s.reminders {
		if rem.ReminderDate == date {
			continue
		}
		updated := *rem
		updated.ReminderDate = date
		updated.Taken = false
		r.s.reminders[i] = &updated
		touched++
	}
	if touched > 0 {
		r.s.persistReminders()
	}
	return touched
}

func (r *ReminderRepository) GetAll() []*model.MedicineReminder {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return append([]*model.MedicineReminder(nil), r.s.reminders...)
}

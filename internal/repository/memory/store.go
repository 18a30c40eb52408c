package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/carelink/carelink-api/internal/model"
	"github.com/carelink/carelink-api/internal/storage"
	"github.com/carelink/carelink-api/pkg/logger"
)

// idGenerator produces ids of the form "<prefix>-<n>" where n starts from the
// current epoch milliseconds and is forced strictly increasing, so two creates
// inside the same millisecond still get distinct ids.
type idGenerator struct {
	mu   sync.Mutex
	last int64
}

func (g *idGenerator) Next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := time.Now().UnixMilli()
	if n <= g.last {
		n = g.last + 1
	}
	g.last = n
	return fmt.Sprintf("%s-%d", prefix, n)
}

// Store holds every domain collection behind one RWMutex. It is constructed
// once at process start and injected into the per-entity repositories; there
// is no package-level state.
//
// The six mutable collections (appointments, prescriptions, orders, messages,
// reminders, inventory) are mirrored to JSON files after each mutation. A
// failed mirror write is logged and swallowed: memory stays authoritative.
type Store struct {
	mu  sync.RWMutex
	ids idGenerator
	dir *storage.Dir
	log *logger.Logger

	users         []*model.User
	doctors       []*model.Doctor
	patients      []*model.Patient
	pharmacies    []*model.Pharmacy
	appointments  []*model.Appointment
	prescriptions []*model.Prescription
	orders        []*model.PrescriptionOrder
	messages      []*model.Message
	reminders     []*model.MedicineReminder
	inventory     []*model.InventoryItem
}

func NewStore(dir *storage.Dir, log *logger.Logger) *Store {
	return &Store{dir: dir, log: log}
}

// LoadPersisted merges the on-disk mirror of each persisted collection into
// memory: unseen ids are appended, ids already present (seed data) are
// replaced by the file's version, so disk wins after the first save. Must run
// before the HTTP listener starts; it does not take the lock against handlers.
func (s *Store) LoadPersisted() {
	s.mu.Lock()
	defer s.mu.Unlock()

	var appointments []*model.Appointment
	if err := s.dir.Load(storage.AppointmentsFile, &appointments); err != nil {
		s.log.Error(err, "failed to load appointments, starting empty")
	}
	s.appointments = mergeByID(s.appointments, appointments, func(a *model.Appointment) string { return a.ID })

	var prescriptions []*model.Prescription
	if err := s.dir.Load(storage.PrescriptionsFile, &prescriptions); err != nil {
		s.log.Error(err, "failed to load prescriptions, starting empty")
	}
	s.prescriptions = mergeByID(s.prescriptions, prescriptions, func(p *model.Prescription) string { return p.ID })

	var orders []*model.PrescriptionOrder
	if err := s.dir.Load(storage.OrdersFile, &orders); err != nil {
		s.log.Error(err, "failed to load prescription orders, starting empty")
	}
	s.orders = mergeByID(s.orders, orders, func(o *model.PrescriptionOrder) string { return o.ID })

	var messages []*model.Message
	if err := s.dir.Load(storage.MessagesFile, &messages); err != nil {
		s.log.Error(err, "failed to load messages, starting empty")
	}
	s.messages = mergeByID(s.messages, messages, func(m *model.Message) string { return m.ID })

	var reminders []*model.MedicineReminder
	if err := s.dir.Load(storage.RemindersFile, &reminders); err != nil {
		s.log.Error(err, "failed to load medicine reminders, starting empty")
	}
	s.reminders = mergeByID(s.reminders, reminders, func(r *model.MedicineReminder) string { return r.ID })

	var inventory []*model.InventoryItem
	if err := s.dir.Load(storage.InventoryFile, &inventory); err != nil {
		s.log.Error(err, "failed to load inventory, starting empty")
	}
	s.inventory = mergeByID(s.inventory, inventory, func(i *model.InventoryItem) string { return i.ID })
}

func mergeByID[T any](existing, loaded []*T, id func(*T) string) []*T {
	index := make(map[string]int, len(existing))
	for i, row := range existing {
		index[id(row)] = i
	}
	for _, row := range loaded {
		if i, ok := index[id(row)]; ok {
			existing[i] = row
		} else {
			existing = append(existing, row)
		}
	}
	return existing
}

// persist mirrors one collection to disk; callers hold s.mu. Write failures
// never propagate to the caller of a mutation.
func (s *Store) persist(file string, rows interface{}) {
	if err := s.dir.Save(file, rows); err != nil {
		s.log.Error(err, "failed to persist collection", "file", file)
	}
}

func (s *Store) persistAppointments()  { s.persist(storage.AppointmentsFile, s.appointments) }
func (s *Store) persistPrescriptions() { s.persist(storage.PrescriptionsFile, s.prescriptions) }
func (s *Store) persistOrders()        { s.persist(storage.OrdersFile, s.orders) }
func (s *Store) persistMessages()      { s.persist(storage.MessagesFile, s.messages) }
func (s *Store) persistReminders()     { s.persist(storage.RemindersFile, s.reminders) }
func (s *Store) persistInventory()     { s.persist(storage.InventoryFile, s.inventory) }

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Collection file names, one JSON array per persisted entity type
const (
	AppointmentsFile  = "appointments.json"
	PrescriptionsFile = "prescriptions.json"
	OrdersFile        = "prescription-orders.json"
	MessagesFile      = "messages.json"
	RemindersFile     = "medicine-reminders.json"
	InventoryFile     = "inventory.json"
)

// Dir mirrors in-memory collections to pretty-printed JSON files in a local
// directory. A missing or unreadable file reads as an empty collection; writes
// go through a temp file and rename so a crash never leaves a torn file.
type Dir struct {
	path string
}

func New(path string) *Dir {
	return &Dir{path: path}
}

// Path returns the storage directory
func (d *Dir) Path() string {
	return d.path
}

// Check verifies the storage directory exists and is writable
func (d *Dir) Check() error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("storage dir unavailable: %w", err)
	}
	probe, err := os.CreateTemp(d.path, ".probe-*")
	if err != nil {
		return fmt.Errorf("storage dir not writable: %w", err)
	}
	probe.Close()
	os.Remove(probe.Name())
	return nil
}

// Load decodes the named file into out. out must be a pointer to a slice.
// A missing file is the first-run case and leaves out untouched.
func (d *Dir) Load(name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(d.path, name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// Save overwrites the named file with the full serialization of rows
func (d *Dir) Save(name string, rows interface{}) error {
	if err := os.MkdirAll(d.path, 0o755); err != nil {
		return fmt.Errorf("failed to create storage dir: %w", err)
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", name, err)
	}

	target := filepath.Join(d.path, name)
	tmp, err := os.CreateTemp(d.path, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", name, err)
	}
	return nil
}

package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/carelink-lab/carelink/pkg/domain/interfaces"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu       sync.RWMutex
	patients map[types.PatientID]*model.PatientData
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		patients: make(map[types.PatientID]*model.PatientData),
	}
}

// NewMemoryWithData creates a memory repository seeded with patient data
func NewMemoryWithData(ctx context.Context, data ...*model.PatientData) (interfaces.Repository, error) {
	repo := NewMemory()
	for _, d := range data {
		if err := repo.PutPatientData(ctx, d); err != nil {
			return nil, goerr.Wrap(err, "failed to seed memory repository")
		}
	}
	return repo, nil
}

// PutPatientData replaces all display data of a patient
func (m *Memory) PutPatientData(ctx context.Context, data *model.PatientData) error {
	if data == nil {
		return goerr.New("patient data is nil")
	}
	if err := data.Validate(); err != nil {
		return goerr.Wrap(err, "refusing to store invalid patient data")
	}

	// Deep copy to prevent external modifications
	dataCopy := data.Clone()
	dataCopy.AssignIDs()

	m.mu.Lock()
	defer m.mu.Unlock()

	m.patients[dataCopy.Profile.ID] = dataCopy
	return nil
}

// GetPatient retrieves a patient profile by ID
func (m *Memory) GetPatient(ctx context.Context, id types.PatientID) (*model.PatientProfile, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}

	profile := data.Profile
	return &profile, nil
}

// ListSummaryCards lists the dashboard summary cards of a patient
func (m *Memory) ListSummaryCards(ctx context.Context, id types.PatientID) ([]model.SummaryCard, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data.SummaryCards), nil
}

// ListAppointments lists the appointments of a patient
func (m *Memory) ListAppointments(ctx context.Context, id types.PatientID) ([]model.Appointment, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data.Appointments), nil
}

// ListLabResults lists the lab results of a patient
func (m *Memory) ListLabResults(ctx context.Context, id types.PatientID) ([]model.LabResult, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data.LabResults), nil
}

// ListPrescriptions lists the prescriptions of a patient
func (m *Memory) ListPrescriptions(ctx context.Context, id types.PatientID) ([]model.Prescription, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data.Prescriptions), nil
}

// ListRecords lists the medical records of a patient
func (m *Memory) ListRecords(ctx context.Context, id types.PatientID) ([]model.MedicalRecord, error) {
	data, err := m.get(id)
	if err != nil {
		return nil, err
	}
	return slices.Clone(data.Records), nil
}

// Close does nothing for memory repository
func (m *Memory) Close() error {
	return nil
}

func (m *Memory) get(id types.PatientID) (*model.PatientData, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	data, exists := m.patients[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrPatientNotFound, "failed to get patient", goerr.V("id", id))
	}
	return data, nil
}

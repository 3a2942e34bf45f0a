package interfaces

//go:generate moq -out mocks/repository_mock.go -pkg mocks . Repository

import (
	"context"

	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
)

// Repository defines the interface for patient display data
type Repository interface {
	// Patient operations
	GetPatient(ctx context.Context, id types.PatientID) (*model.PatientProfile, error)
	PutPatientData(ctx context.Context, data *model.PatientData) error

	// Record operations
	ListSummaryCards(ctx context.Context, id types.PatientID) ([]model.SummaryCard, error)
	ListAppointments(ctx context.Context, id types.PatientID) ([]model.Appointment, error)
	ListLabResults(ctx context.Context, id types.PatientID) ([]model.LabResult, error)
	ListPrescriptions(ctx context.Context, id types.PatientID) ([]model.Prescription, error)
	ListRecords(ctx context.Context, id types.PatientID) ([]model.MedicalRecord, error)

	// Close closes the repository connection
	Close() error
}

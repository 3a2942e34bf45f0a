package types

import (
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

// PatientID represents a patient identifier
type PatientID string

// String returns the string representation
func (id PatientID) String() string {
	return string(id)
}

// Validate checks if the patient ID is valid (non-empty)
func (id PatientID) Validate() error {
	if id == "" {
		return goerr.New("patient ID cannot be empty")
	}
	return nil
}

// RecordID is the display key of a record shown in a content view
type RecordID string

// String returns the string representation
func (id RecordID) String() string {
	return string(id)
}

// NewRecordID creates a new RecordID
func NewRecordID() RecordID {
	return RecordID(uuid.New().String())
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carelink-lab/carelink/pkg/domain/interfaces/mocks"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/carelink-lab/carelink/pkg/repository"
	"github.com/carelink-lab/carelink/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

const testPatientID = types.PatientID("patient-1")

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestData() *model.PatientData {
	return &model.PatientData{
		Profile: model.PatientProfile{ID: testPatientID, Name: "Sarah Johnson"},
		SummaryCards: []model.SummaryCard{
			{ID: "card-1", Title: "Upcoming Appointments", Value: "3"},
		},
		Appointments: []model.Appointment{
			{ID: "a-late", Doctor: "Dr. Late", Date: day(2025, 3, 1), Status: types.AppointmentUpcoming},
			{ID: "a-done", Doctor: "Dr. Done", Date: day(2024, 12, 1), Status: types.AppointmentCompleted},
			{ID: "a-soon", Doctor: "Dr. Soon", Date: day(2025, 1, 10), Status: types.AppointmentUpcoming},
			{ID: "a-mid", Doctor: "Dr. Mid", Date: day(2025, 2, 1), Status: types.AppointmentUpcoming},
			{ID: "a-far", Doctor: "Dr. Far", Date: day(2025, 6, 1), Status: types.AppointmentUpcoming},
			{ID: "a-old", Doctor: "Dr. Old", Date: day(2024, 6, 1), Status: types.AppointmentCancelled},
		},
		LabResults: []model.LabResult{
			{ID: "l-1", Test: "CBC", Date: day(2024, 10, 1), Status: types.LabResultNormal},
			{ID: "l-2", Test: "Lipid", Date: day(2024, 12, 1), Status: types.LabResultAbnormal},
			{ID: "l-3", Test: "TSH", Date: day(2025, 1, 5), Status: types.LabResultPending},
			{ID: "l-4", Test: "HbA1c", Date: day(2024, 11, 1), Status: types.LabResultNormal},
		},
		Prescriptions: []model.Prescription{
			{ID: "rx-old", Medication: "Amoxicillin", PrescribedAt: day(2024, 6, 1), Status: types.PrescriptionExpired},
			{ID: "rx-new", Medication: "Lisinopril", PrescribedAt: day(2024, 12, 1), Refills: 2, Status: types.PrescriptionActive},
		},
		Records: []model.MedicalRecord{
			{ID: "r-old", Title: "Immunizations", Date: day(2024, 1, 1)},
			{ID: "r-new", Title: "Physical", Date: day(2024, 12, 1)},
		},
	}
}

func newPortal(t *testing.T, opts ...usecase.PortalOption) *usecase.Portal {
	repo, err := repository.NewMemoryWithData(context.Background(), newTestData())
	gt.NoError(t, err).Required()
	return usecase.NewPortal(repo, testPatientID, opts...)
}

func TestPortalDashboard(t *testing.T) {
	ctx := context.Background()
	uc := newPortal(t)

	page, err := uc.Page(ctx, types.PathDashboard, types.SidebarClosed)
	gt.NoError(t, err).Required()

	gt.Equal(t, page.Title, "Dashboard")
	gt.Equal(t, page.Patient.Name, "Sarah Johnson")
	gt.Equal(t, len(page.SummaryCards), 1)

	// Only upcoming appointments, soonest first, capped at three
	gt.Equal(t, len(page.Appointments), 3)
	gt.Equal(t, page.Appointments[0].ID, types.RecordID("a-soon"))
	gt.Equal(t, page.Appointments[1].ID, types.RecordID("a-mid"))
	gt.Equal(t, page.Appointments[2].ID, types.RecordID("a-late"))

	// Most recent lab results first
	gt.Equal(t, len(page.LabResults), 3)
	gt.Equal(t, page.LabResults[0].ID, types.RecordID("l-3"))
	gt.Equal(t, page.LabResults[1].ID, types.RecordID("l-2"))
	gt.Equal(t, page.LabResults[2].ID, types.RecordID("l-4"))

	gt.Equal(t, len(page.Prescriptions), 0)
	gt.Equal(t, len(page.Records), 0)
}

func TestPortalDashboardLimit(t *testing.T) {
	uc := newPortal(t, usecase.WithDashboardLimit(1))

	page, err := uc.Page(context.Background(), types.PathDashboard, types.SidebarClosed)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(page.Appointments), 1)
	gt.Equal(t, len(page.LabResults), 1)
}

func TestPortalAppointments(t *testing.T) {
	uc := newPortal(t)

	page, err := uc.Page(context.Background(), types.PathAppointments, types.SidebarClosed)
	gt.NoError(t, err).Required()

	var ids []types.RecordID
	for _, a := range page.Appointments {
		ids = append(ids, a.ID)
	}
	gt.Equal(t, ids, []types.RecordID{"a-soon", "a-mid", "a-late", "a-far", "a-done", "a-old"})
}

func TestPortalListPages(t *testing.T) {
	ctx := context.Background()
	uc := newPortal(t)

	t.Run("lab results newest first", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathLabResults, types.SidebarClosed)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(page.LabResults), 4)
		gt.Equal(t, page.LabResults[0].ID, types.RecordID("l-3"))
		gt.Equal(t, page.LabResults[3].ID, types.RecordID("l-1"))
	})

	t.Run("prescriptions newest first", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathPrescriptions, types.SidebarClosed)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(page.Prescriptions), 2)
		gt.Equal(t, page.Prescriptions[0].ID, types.RecordID("rx-new"))
	})

	t.Run("records newest first", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathRecords, types.SidebarClosed)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(page.Records), 2)
		gt.Equal(t, page.Records[0].ID, types.RecordID("r-new"))
	})
}

func TestPortalShellState(t *testing.T) {
	ctx := context.Background()
	uc := newPortal(t)

	t.Run("open sidebar renders backdrop", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathRecords, types.SidebarOpen)
		gt.NoError(t, err).Required()
		gt.True(t, page.Shell.Backdrop)
		gt.Equal(t, page.Shell.Transform, model.TransformVisible)
		gt.Equal(t, page.Shell.ActivePath, types.PathRecords)
	})

	t.Run("closed sidebar has no backdrop", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathRecords, types.SidebarClosed)
		gt.NoError(t, err).Required()
		gt.False(t, page.Shell.Backdrop)
		gt.Equal(t, page.Shell.Transform, model.TransformHiddenNarrow)
	})

	t.Run("active item follows the page", func(t *testing.T) {
		page, err := uc.Page(ctx, types.PathLabResults, types.SidebarClosed)
		gt.NoError(t, err).Required()
		for _, item := range page.Shell.Items {
			gt.Equal(t, item.Active, item.Path == types.PathLabResults)
		}
	})
}

func TestPortalErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("path outside the shell", func(t *testing.T) {
		uc := newPortal(t)
		_, err := uc.Page(ctx, types.PathRoleSelection, types.SidebarClosed)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrNotShellPage))
	})

	t.Run("unknown patient", func(t *testing.T) {
		uc := usecase.NewPortal(repository.NewMemory(), "nobody")
		_, err := uc.Page(ctx, types.PathDashboard, types.SidebarClosed)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrPatientNotFound))
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			GetPatientFunc: func(ctx context.Context, id types.PatientID) (*model.PatientProfile, error) {
				return &model.PatientProfile{ID: id, Name: "Sarah Johnson"}, nil
			},
			ListLabResultsFunc: func(ctx context.Context, id types.PatientID) ([]model.LabResult, error) {
				return nil, goerr.New("connection reset")
			},
		}
		uc := usecase.NewPortal(repo, testPatientID)

		_, err := uc.Page(ctx, types.PathLabResults, types.SidebarClosed)
		gt.Error(t, err)
		gt.Equal(t, len(repo.ListLabResultsCalls()), 1)
		gt.Equal(t, repo.ListLabResultsCalls()[0].ID, testPatientID)
	})

	t.Run("dashboard fails when one source fails", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			GetPatientFunc: func(ctx context.Context, id types.PatientID) (*model.PatientProfile, error) {
				return &model.PatientProfile{ID: id, Name: "Sarah Johnson"}, nil
			},
			ListSummaryCardsFunc: func(ctx context.Context, id types.PatientID) ([]model.SummaryCard, error) {
				return []model.SummaryCard{{ID: "c-1", Title: "Cards"}}, nil
			},
			ListAppointmentsFunc: func(ctx context.Context, id types.PatientID) ([]model.Appointment, error) {
				return nil, goerr.New("deadline exceeded")
			},
			ListLabResultsFunc: func(ctx context.Context, id types.PatientID) ([]model.LabResult, error) {
				return nil, nil
			},
		}
		uc := usecase.NewPortal(repo, testPatientID)

		_, err := uc.Page(ctx, types.PathDashboard, types.SidebarClosed)
		gt.Error(t, err)
		gt.Equal(t, len(repo.ListSummaryCardsCalls()), 1)
		gt.Equal(t, len(repo.ListAppointmentsCalls()), 1)
		gt.Equal(t, len(repo.ListLabResultsCalls()), 1)
	})

	t.Run("page reads only what it shows", func(t *testing.T) {
		repo := &mocks.RepositoryMock{
			GetPatientFunc: func(ctx context.Context, id types.PatientID) (*model.PatientProfile, error) {
				return &model.PatientProfile{ID: id, Name: "Sarah Johnson"}, nil
			},
			ListRecordsFunc: func(ctx context.Context, id types.PatientID) ([]model.MedicalRecord, error) {
				return []model.MedicalRecord{{ID: "r-1", Title: "Physical"}}, nil
			},
		}
		uc := usecase.NewPortal(repo, testPatientID)

		page, err := uc.Page(ctx, types.PathRecords, types.SidebarClosed)
		gt.NoError(t, err).Required()
		gt.Equal(t, len(page.Records), 1)
		gt.Equal(t, len(repo.GetPatientCalls()), 1)
	})
}

func TestPortalCustomNavItems(t *testing.T) {
	items := []model.NavItem{
		{Label: "Dashboard", Path: types.PathDashboard},
	}
	uc := newPortal(t, usecase.WithNavItems(items))

	page, err := uc.Page(context.Background(), types.PathDashboard, types.SidebarClosed)
	gt.NoError(t, err).Required()
	gt.Equal(t, len(page.Shell.Items), 1)

	_, err = uc.Page(context.Background(), types.PathRecords, types.SidebarClosed)
	gt.Error(t, err)
	gt.Equal(t, len(uc.NavItems()), 1)
}

package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/carelink-lab/carelink/pkg/domain/interfaces"
	"github.com/carelink-lab/carelink/pkg/domain/model"
	"github.com/carelink-lab/carelink/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	patientsCollection      = "patients"
	summaryCardsCollection  = "summary_cards"
	appointmentsCollection  = "appointments"
	labResultsCollection    = "lab_results"
	prescriptionsCollection = "prescriptions"
	recordsCollection       = "records"
)

// Firestore implements Repository interface with Firestore. Each patient is a
// document of the patients collection and every record kind is a
// subcollection of it.
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on invalid project or missing permissions
	_, err = client.Collection(patientsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

func (f *Firestore) patientDoc(id types.PatientID) *firestore.DocumentRef {
	return f.client.Collection(patientsCollection).Doc(id.String())
}

// PutPatientData replaces all display data of a patient
func (f *Firestore) PutPatientData(ctx context.Context, data *model.PatientData) error {
	if data == nil {
		return goerr.New("patient data is nil")
	}
	if err := data.Validate(); err != nil {
		return goerr.Wrap(err, "refusing to store invalid patient data")
	}

	data = data.Clone()
	data.AssignIDs()
	doc := f.patientDoc(data.Profile.ID)

	// Drop records left over from a previous fixture
	for _, name := range []string{summaryCardsCollection, appointmentsCollection, labResultsCollection, prescriptionsCollection, recordsCollection} {
		if err := f.deleteCollection(ctx, doc.Collection(name)); err != nil {
			return err
		}
	}

	bw := f.client.BulkWriter(ctx)
	var writes []pendingWrite
	set := func(ref *firestore.DocumentRef, v any) error {
		job, err := bw.Set(ref, v)
		if err != nil {
			return goerr.Wrap(err, "failed to enqueue firestore write", goerr.V("path", ref.Path))
		}
		writes = append(writes, pendingWrite{path: ref.Path, job: job})
		return nil
	}

	err := enqueuePatientData(doc, data, set)
	bw.End()
	if err != nil {
		return err
	}
	if err := checkWrites(writes); err != nil {
		return err
	}

	ctxlog.From(ctx).Info("Stored patient data in firestore",
		"patientID", data.Profile.ID,
		"appointments", len(data.Appointments),
		"labResults", len(data.LabResults),
	)

	return nil
}

func enqueuePatientData(doc *firestore.DocumentRef, data *model.PatientData, set func(*firestore.DocumentRef, any) error) error {
	if err := set(doc, data.Profile); err != nil {
		return err
	}
	for _, v := range data.SummaryCards {
		if err := set(doc.Collection(summaryCardsCollection).Doc(v.ID.String()), v); err != nil {
			return err
		}
	}
	for _, v := range data.Appointments {
		if err := set(doc.Collection(appointmentsCollection).Doc(v.ID.String()), v); err != nil {
			return err
		}
	}
	for _, v := range data.LabResults {
		if err := set(doc.Collection(labResultsCollection).Doc(v.ID.String()), v); err != nil {
			return err
		}
	}
	for _, v := range data.Prescriptions {
		if err := set(doc.Collection(prescriptionsCollection).Doc(v.ID.String()), v); err != nil {
			return err
		}
	}
	for _, v := range data.Records {
		if err := set(doc.Collection(recordsCollection).Doc(v.ID.String()), v); err != nil {
			return err
		}
	}
	return nil
}

// writeJob is the result handle of one queued bulk write
type writeJob interface {
	Results() (*firestore.WriteResult, error)
}

type pendingWrite struct {
	path string
	job  writeJob
}

// checkWrites reports the first rejected write. Results blocks until the
// write is done, so call it after BulkWriter.End.
func checkWrites(writes []pendingWrite) error {
	for _, w := range writes {
		if _, err := w.job.Results(); err != nil {
			return goerr.Wrap(err, "firestore write failed", goerr.V("path", w.path))
		}
	}
	return nil
}

func (f *Firestore) deleteCollection(ctx context.Context, col *firestore.CollectionRef) error {
	iter := col.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			return nil
		}
		if err != nil {
			return goerr.Wrap(err, "failed to iterate documents", goerr.V("collection", col.Path))
		}
		if _, err := doc.Ref.Delete(ctx); err != nil {
			return goerr.Wrap(err, "failed to delete document", goerr.V("path", doc.Ref.Path))
		}
	}
}

// GetPatient retrieves a patient profile by ID
func (f *Firestore) GetPatient(ctx context.Context, id types.PatientID) (*model.PatientProfile, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	doc, err := f.patientDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrPatientNotFound, "failed to get patient", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get patient from firestore", goerr.V("id", id))
	}

	var profile model.PatientProfile
	if err := doc.DataTo(&profile); err != nil {
		return nil, goerr.Wrap(err, "failed to decode patient", goerr.V("id", id))
	}

	return &profile, nil
}

// ListSummaryCards lists the dashboard summary cards of a patient
func (f *Firestore) ListSummaryCards(ctx context.Context, id types.PatientID) ([]model.SummaryCard, error) {
	return listRecords[model.SummaryCard](ctx, f, id, summaryCardsCollection)
}

// ListAppointments lists the appointments of a patient
func (f *Firestore) ListAppointments(ctx context.Context, id types.PatientID) ([]model.Appointment, error) {
	return listRecords[model.Appointment](ctx, f, id, appointmentsCollection)
}

// ListLabResults lists the lab results of a patient
func (f *Firestore) ListLabResults(ctx context.Context, id types.PatientID) ([]model.LabResult, error) {
	return listRecords[model.LabResult](ctx, f, id, labResultsCollection)
}

// ListPrescriptions lists the prescriptions of a patient
func (f *Firestore) ListPrescriptions(ctx context.Context, id types.PatientID) ([]model.Prescription, error) {
	return listRecords[model.Prescription](ctx, f, id, prescriptionsCollection)
}

// ListRecords lists the medical records of a patient
func (f *Firestore) ListRecords(ctx context.Context, id types.PatientID) ([]model.MedicalRecord, error) {
	return listRecords[model.MedicalRecord](ctx, f, id, recordsCollection)
}

// listRecords reads a whole record subcollection. Ordering is left to the
// caller to avoid composite indexes.
func listRecords[T any](ctx context.Context, f *Firestore, id types.PatientID, collection string) ([]T, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	iter := f.patientDoc(id).Collection(collection).Documents(ctx)
	defer iter.Stop()

	var records []T
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate records",
				goerr.V("collection", collection),
				goerr.V("patientID", id))
		}

		var record T
		if err := doc.DataTo(&record); err != nil {
			return nil, goerr.Wrap(err, "failed to decode record",
				goerr.V("collection", collection),
				goerr.V("docID", doc.Ref.ID))
		}
		records = append(records, record)
	}

	return records, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if err := f.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close firestore client")
	}
	return nil
}

package repository

import "cloud.google.com/go/firestore"

// Test-only access to the bulk write result check
type WriteJob = writeJob

func CheckWrites(paths []string, jobs []WriteJob) error {
	writes := make([]pendingWrite, len(paths))
	for i := range paths {
		writes[i] = pendingWrite{path: paths[i], job: jobs[i]}
	}
	return checkWrites(writes)
}

var _ WriteJob = (*firestore.BulkWriterJob)(nil)

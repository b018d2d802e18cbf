package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/QTCSOLUTIONS/controlproccp/pkg/domain/interfaces"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/firestore"
	"github.com/QTCSOLUTIONS/controlproccp/pkg/repository/memory"
	"github.com/m-mizutani/gt"
)

func newMemoryRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

// newFirestoreRepository connects to a real Firestore database and isolates
// the run behind a unique collection prefix. Skipped unless the TEST_
// environment variables are set.
func newFirestoreRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}

	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")
	if databaseID == "" {
		t.Skip("TEST_FIRESTORE_DATABASE_ID not set")
	}

	ctx := context.Background()
	prefix := fmt.Sprintf("test-%d", time.Now().UnixNano())
	repo, err := firestore.New(ctx, projectID, databaseID, firestore.WithCollectionPrefix(prefix))
	gt.NoError(t, err).Required()

	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	return repo
}

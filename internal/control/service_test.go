package control_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hawkeye-video/hawkeye/internal/control"
	"github.com/hawkeye-video/hawkeye/internal/model"
	"github.com/hawkeye-video/hawkeye/internal/orchestrator/orchestratortest"
)

func fixtureWatcher(t *testing.T) model.Watcher {
	t.Helper()
	data, err := os.ReadFile("../../testdata/watcher.json")
	require.NoError(t, err)
	w, err := model.Parse(data)
	require.NoError(t, err)
	return *w
}

// TestCreateThenGetLifecycle implements spec.md §8 scenario S5: a
// freshly created watcher is immediately retrievable with status
// Pending, and its id survives the round trip.
func TestCreateThenGetLifecycle(t *testing.T) {
	fake := orchestratortest.New()
	svc := control.NewService(fake, "default", "hawkeye-dev:latest")

	created, err := svc.Create(context.Background(), fixtureWatcher(t))
	require.NoError(t, err)
	require.NotNil(t, created.ID)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.Nil(t, created.Source.IngestIP)

	got, err := svc.Get(context.Background(), *created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created.ID, *got.ID)
	assert.Equal(t, fixtureWatcher(t).SlateURL, got.SlateURL)
	// No status report yet from the (fake) controller manager: the
	// workload's ObservedGeneration is still zero, so status derives to
	// Error per spec.md §4.5's "no status present" row.
	assert.Equal(t, model.StatusError, got.Status)
}

// TestStartRejectedInErrorState implements spec.md §8 scenario S6:
// Start against a watcher whose workload carries no target_status
// label derives to Error and is rejected with the exact message
// spec.md names.
func TestStartRejectedInErrorState(t *testing.T) {
	fake := orchestratortest.New()
	svc := control.NewService(fake, "default", "hawkeye-dev:latest")

	created, err := svc.Create(context.Background(), fixtureWatcher(t))
	require.NoError(t, err)

	err = svc.Start(context.Background(), *created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watcher in error state cannot be set to running")
}

// TestDeleteToleratesMissingWorkloadAndConfig verifies spec.md §4.5
// Delete's tolerance rules: only a missing ingress is a 404.
func TestDeleteToleratesMissingWorkloadAndConfig(t *testing.T) {
	fake := orchestratortest.New()
	svc := control.NewService(fake, "default", "hawkeye-dev:latest")

	err := svc.Delete(context.Background(), "does-not-exist")
	require.Error(t, err)
}

// TestListReportsErrorForOrphanedConfig verifies spec.md §4.5 List:
// a config whose workload is absent is reported with status Error.
func TestListReportsErrorForOrphanedConfig(t *testing.T) {
	fake := orchestratortest.New()
	svc := control.NewService(fake, "default", "hawkeye-dev:latest")

	created, err := svc.Create(context.Background(), fixtureWatcher(t))
	require.NoError(t, err)

	watchers, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, watchers, 1)
	assert.Equal(t, *created.ID, *watchers[0].ID)
	assert.Equal(t, model.StatusError, watchers[0].Status)
}

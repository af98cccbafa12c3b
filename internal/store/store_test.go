package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/models"
)

func evidenceFixture(id string) models.EvidenceItem {
	return models.EvidenceItem{
		ID:              id,
		Timestamp:       time.Now(),
		Location:        "Camera 01 - Main St",
		EncryptedData:   "ENC-xxxx...[AES-256-ENCRYPTED-BLOB]",
		Status:          models.StatusLocked,
		IntegrityStatus: models.IntegrityUnchecked,
	}
}

func TestEvidenceVault_AddAndGet(t *testing.T) {
	ctx := context.Background()
	vault := NewEvidenceVault()

	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-AAAAAAAA")))

	got, err := vault.Get(ctx, "EV-AAAAAAAA")
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocked, got.Status)

	_, err = vault.Get(ctx, "EV-MISSING1")
	assert.ErrorIs(t, err, ErrEvidenceNotFound)
}

func TestEvidenceVault_ListNewestFirst(t *testing.T) {
	ctx := context.Background()
	vault := NewEvidenceVault()

	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000001")))
	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000002")))
	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000003")))

	items, err := vault.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "EV-00000003", items[0].ID)
	assert.Equal(t, "EV-00000001", items[2].ID)
}

func TestEvidenceVault_UpdateKeepsPosition(t *testing.T) {
	ctx := context.Background()
	vault := NewEvidenceVault()

	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000001")))
	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000002")))

	updated := evidenceFixture("EV-00000001")
	updated.Status = models.StatusRequested
	updated.RequesterName = "Officer Dlamini"
	require.NoError(t, vault.Update(ctx, updated))

	items, err := vault.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "EV-00000002", items[0].ID)
	assert.Equal(t, models.StatusRequested, items[1].Status)
	assert.Equal(t, "Officer Dlamini", items[1].RequesterName)
}

func TestEvidenceVault_UpdateMissing(t *testing.T) {
	vault := NewEvidenceVault()

	err := vault.Update(context.Background(), evidenceFixture("EV-MISSING1"))
	assert.ErrorIs(t, err, ErrEvidenceNotFound)
}

func TestEvidenceVault_ListReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	vault := NewEvidenceVault()
	require.NoError(t, vault.Add(ctx, evidenceFixture("EV-00000001")))

	items, err := vault.List(ctx)
	require.NoError(t, err)
	items[0].Status = models.StatusUnlocked

	got, err := vault.Get(ctx, "EV-00000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocked, got.Status)
}

func TestEvidenceVault_ConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	vault := NewEvidenceVault()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_ = vault.Add(ctx, evidenceFixture(fmt.Sprintf("EV-%08d", n)))
		}(i)
	}
	wg.Wait()

	items, err := vault.List(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 50)
}

func TestAlertFeed_SeededNewestFirst(t *testing.T) {
	feed := NewAlertFeed()

	alerts, err := feed.List(context.Background())
	require.NoError(t, err)
	require.Len(t, alerts, 2)
	assert.Equal(t, "Blocked pathway reported", alerts[0].Message)
	assert.Equal(t, models.SeverityHigh, alerts[0].Severity)
	assert.Equal(t, "Bin overflow detected near School Zone", alerts[1].Message)
}

func TestAlertFeed_AddPrepends(t *testing.T) {
	ctx := context.Background()
	feed := NewAlertFeed()

	require.NoError(t, feed.Add(ctx, models.Alert{
		ID:       "alert-3",
		Type:     models.AlertTypeSafety,
		Severity: models.SeverityHigh,
		Message:  "ALERT: Active Illegal Dumping Detected!",
		Location: "Camera 01 - Main St",
	}))

	alerts, err := feed.List(ctx)
	require.NoError(t, err)
	require.Len(t, alerts, 3)
	assert.Equal(t, "alert-3", alerts[0].ID)
}

func TestRoster_ListsSeededWorkforce(t *testing.T) {
	roster := NewRoster()

	workers, err := roster.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workers, 5)
	assert.Equal(t, "Thabo M.", workers[0].Name)
	assert.Equal(t, models.WorkerOnBreak, workers[2].Status)
	assert.Equal(t, models.WorkerOffline, workers[4].Status)
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdantlabs/wastesentry/internal/audit"
	"github.com/verdantlabs/wastesentry/internal/config"
	"github.com/verdantlabs/wastesentry/internal/crypto"
	"github.com/verdantlabs/wastesentry/internal/logger"
	"github.com/verdantlabs/wastesentry/internal/store"
	"github.com/verdantlabs/wastesentry/internal/utils"
	"github.com/verdantlabs/wastesentry/internal/validators"
	"github.com/verdantlabs/wastesentry/models"
)

type custodyFixture struct {
	vault   store.EvidenceVault
	chain   *audit.Chain
	custody CustodyService
}

func newCustodyFixture(t *testing.T, cfg config.Capture) *custodyFixture {
	t.Helper()

	if cfg.VerifyLatency == 0 {
		cfg.VerifyLatency = time.Millisecond
	}

	vault := store.NewEvidenceVault()
	chain := audit.NewChain()

	return &custodyFixture{
		vault:   vault,
		chain:   chain,
		custody: NewCustodyService(vault, chain, crypto.NewSealer(), cfg, logger.Nop()),
	}
}

func (f *custodyFixture) seed(t *testing.T, id string) {
	t.Helper()

	require.NoError(t, f.vault.Add(context.Background(), models.EvidenceItem{
		ID:              id,
		Timestamp:       time.Now(),
		Location:        "Camera 01 - Main St",
		EncryptedData:   "ENC-dGVzdA==...[AES-256-ENCRYPTED-BLOB]",
		Checksum:        utils.SHA256Hex([]byte("raw-frame")),
		OriginalData:    []byte("raw-frame"),
		Status:          models.StatusLocked,
		IntegrityStatus: models.IntegrityUnchecked,
	}))
}

func adminCtx() context.Context {
	return utils.WithUser(context.Background(), utils.SessionUser{Login: "admin", Role: models.RoleAdmin})
}

func officerCtx() context.Context {
	return utils.WithUser(context.Background(), utils.SessionUser{Login: "dlamini", Role: models.RoleOfficer})
}

func accessRequest(id string) models.AccessRequest {
	return models.AccessRequest{EvidenceID: id, Requester: "Officer Dlamini", Reason: "Case 7741"}
}

func TestCustody_RequestApproveUnlockSequence(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	item, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, item.Status)
	assert.Equal(t, "Officer Dlamini", item.RequesterName)
	assert.Equal(t, "Case 7741", item.RequestReason)

	item, err = f.custody.Approve(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, item.Status)

	item, err = f.custody.Unlock(officerCtx(), "EV-00000001")
	require.NoError(t, err)
	assert.Equal(t, models.StatusUnlocked, item.Status)
	assert.Regexp(t, `^KEY-[0-9A-Z]{12}$`, item.DecryptionKey)
	assert.Equal(t, []byte("raw-frame"), item.OriginalData)

	// three transitions plus genesis
	assert.Equal(t, 4, f.chain.Length())
	assert.True(t, f.chain.Validate())

	blocks := f.chain.Blocks()
	assert.Equal(t, models.ActionAccessRequest, blocks[1].Action)
	assert.Equal(t, models.ActionAccessApprove, blocks[2].Action)
	assert.Equal(t, models.ActionEvidenceUnlock, blocks[3].Action)
	assert.Equal(t, "admin", blocks[2].Actor)
}

func TestCustody_DenyIsTerminal(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	_, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)

	item, err := f.custody.Deny(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDenied, item.Status)

	_, err = f.custody.Unlock(officerCtx(), "EV-00000001")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCustody_DeniedRerequestWhenEnabled(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{AllowRerequest: true})
	f.seed(t, "EV-00000001")

	_, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	_, err = f.custody.Deny(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)

	item, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, item.Status)
}

func TestCustody_InvalidTransitionsRejected(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")
	admin := adminCtx()

	// LOCKED allows only request-access
	_, err := f.custody.Approve(admin, models.CustodyDecision{EvidenceID: "EV-00000001"})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.custody.Unlock(admin, "EV-00000001")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = f.custody.Revoke(admin, models.CustodyDecision{EvidenceID: "EV-00000001"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// double request
	_, err = f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	_, err = f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// rejected transitions leave no audit trace: genesis + single request
	assert.Equal(t, 2, f.chain.Length())
}

func TestCustody_AdminCapabilityEnforced(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	_, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)

	decision := models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "dlamini"}
	_, err = f.custody.Approve(officerCtx(), decision)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = f.custody.Deny(officerCtx(), decision)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = f.custody.Revoke(officerCtx(), decision)
	assert.ErrorIs(t, err, ErrAdminRequired)
	_, err = f.custody.VerifyIntegrity(officerCtx(), decision)
	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestCustody_RevokeClearsKeyAndReopensRequest(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	_, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	_, err = f.custody.Approve(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)
	_, err = f.custody.Unlock(officerCtx(), "EV-00000001")
	require.NoError(t, err)

	item, err := f.custody.Revoke(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)
	assert.Equal(t, models.StatusLocked, item.Status)
	assert.Empty(t, item.DecryptionKey)
	assert.Nil(t, item.OriginalData)

	// the revoked item can be requested again
	item, err = f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusRequested, item.Status)
}

func TestCustody_UnlockIsIdempotent(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	_, err := f.custody.RequestAccess(officerCtx(), accessRequest("EV-00000001"))
	require.NoError(t, err)
	_, err = f.custody.Approve(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"})
	require.NoError(t, err)

	first, err := f.custody.Unlock(officerCtx(), "EV-00000001")
	require.NoError(t, err)
	lengthAfterFirst := f.chain.Length()

	second, err := f.custody.Unlock(officerCtx(), "EV-00000001")
	require.NoError(t, err)
	assert.Equal(t, first.DecryptionKey, second.DecryptionKey)
	assert.Equal(t, lengthAfterFirst, f.chain.Length(), "idempotent unlock must not append a block")
}

func TestCustody_VerifyIntegrityIdempotent(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{VerifyLatency: time.Millisecond})
	f.seed(t, "EV-00000001")
	decision := models.CustodyDecision{EvidenceID: "EV-00000001", Admin: "admin"}

	item, err := f.custody.VerifyIntegrity(adminCtx(), decision)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrityVerified, item.IntegrityStatus)
	assert.Equal(t, models.StatusLocked, item.Status, "verification must not touch custody status")
	lengthAfterFirst := f.chain.Length()

	item, err = f.custody.VerifyIntegrity(adminCtx(), decision)
	require.NoError(t, err)
	assert.Equal(t, models.IntegrityVerified, item.IntegrityStatus)
	assert.Equal(t, lengthAfterFirst, f.chain.Length(), "repeat verification must not append a block")
}

func TestCustody_VerifyIntegrityDetectsTamper(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{VerifyLatency: time.Millisecond})

	require.NoError(t, f.vault.Add(context.Background(), models.EvidenceItem{
		ID:              "EV-00000002",
		Timestamp:       time.Now(),
		Location:        "Camera 01 - Main St",
		Checksum:        utils.SHA256Hex([]byte("frame as captured")),
		OriginalData:    []byte("frame after tampering"),
		Status:          models.StatusLocked,
		IntegrityStatus: models.IntegrityUnchecked,
	}))
	lengthBefore := f.chain.Length()

	_, err := f.custody.VerifyIntegrity(adminCtx(), models.CustodyDecision{EvidenceID: "EV-00000002", Admin: "admin"})
	assert.ErrorIs(t, err, ErrChecksumMismatch)

	stored, err := f.vault.Get(context.Background(), "EV-00000002")
	require.NoError(t, err)
	assert.Equal(t, models.IntegrityUnchecked, stored.IntegrityStatus, "a failed check must not mark the item verified")
	assert.Equal(t, lengthBefore, f.chain.Length(), "a failed check must not append a block")
}

func TestCustody_ListAndInspectStripLockedMaterial(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")

	items, err := f.custody.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Nil(t, items[0].OriginalData)
	assert.Empty(t, items[0].DecryptionKey)

	item, err := f.custody.Inspect(context.Background(), "EV-00000001")
	require.NoError(t, err)
	assert.Nil(t, item.OriginalData)
}

func TestCustody_UnknownEvidence(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})

	_, err := f.custody.Inspect(context.Background(), "EV-MISSING1")
	assert.ErrorIs(t, err, store.ErrEvidenceNotFound)

	_, err = f.custody.RequestAccess(officerCtx(), accessRequest("EV-MISSING1"))
	assert.ErrorIs(t, err, store.ErrEvidenceNotFound)
}

func TestCustodyValidationService_RejectsBlankRequest(t *testing.T) {
	f := newCustodyFixture(t, config.Capture{})
	f.seed(t, "EV-00000001")
	wrapped := NewCustodyValidationService(f.custody)

	_, err := wrapped.RequestAccess(officerCtx(), models.AccessRequest{EvidenceID: "EV-00000001", Requester: " ", Reason: "x"})
	assert.ErrorIs(t, err, validators.ErrEmptyRequester)

	_, err = wrapped.Approve(adminCtx(), models.CustodyDecision{})
	assert.ErrorIs(t, err, validators.ErrEmptyEvidenceID)

	// nothing reached the state machine
	assert.Equal(t, 1, f.chain.Length())
}

package services

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"planboard/model"
)

func pendingInvitation(expiresIn time.Duration) *model.Invitation {
	return &model.Invitation{
		InvitationID: "inv1",
		ProjectID:    "p1",
		ProjectName:  "Apollo",
		InvitedEmail: "new@example.com",
		Role:         model.RoleMember,
		Status:       model.InvitationPending,
		ExpiresAt:    testNow.Add(expiresIn),
	}
}

func TestInvitationStateDerivation(t *testing.T) {
	assert.Equal(t, model.InviteStateFound, InvitationState(pendingInvitation(time.Hour), testNow))
	assert.Equal(t, model.InviteStateExpired, InvitationState(pendingInvitation(-time.Hour), testNow))

	accepted := pendingInvitation(time.Hour)
	accepted.Status = model.InvitationAccepted
	assert.Equal(t, model.InviteStateAlreadyAccepted, InvitationState(accepted, testNow))

	// An accepted invitation stays "already accepted" even past expiry.
	acceptedOld := pendingInvitation(-time.Hour)
	acceptedOld.Status = model.InvitationAccepted
	assert.Equal(t, model.InviteStateAlreadyAccepted, InvitationState(acceptedOld, testNow))

	rejected := pendingInvitation(time.Hour)
	rejected.Status = model.InvitationRejected
	assert.Equal(t, model.InviteStateNotFound, InvitationState(rejected, testNow))

	assert.Equal(t, model.InviteStateNotFound, InvitationState(nil, testNow))
}

func TestInvitationStatusCode(t *testing.T) {
	assert.Equal(t, http.StatusOK, InvitationStatusCode(model.InviteStateFound))
	assert.Equal(t, http.StatusGone, InvitationStatusCode(model.InviteStateExpired))
	assert.Equal(t, http.StatusBadRequest, InvitationStatusCode(model.InviteStateAlreadyAccepted))
	assert.Equal(t, http.StatusNotFound, InvitationStatusCode(model.InviteStateNotFound))
	assert.Equal(t, http.StatusInternalServerError, InvitationStatusCode(model.InviteStateError))
}

func TestClassifyInvitationFetch(t *testing.T) {
	assert.Equal(t, model.InviteStateNotFound, ClassifyInvitationFetch(404, ""))
	assert.Equal(t, model.InviteStateExpired, ClassifyInvitationFetch(410, "expired"))
	assert.Equal(t, model.InviteStateAlreadyAccepted, ClassifyInvitationFetch(400, "Invitation already accepted"))
	// A 400 without the accepted marker is an unclassified failure.
	assert.Equal(t, model.InviteStateError, ClassifyInvitationFetch(400, "bad request"))
	assert.Equal(t, model.InviteStateFound, ClassifyInvitationFetch(200, ""))
	assert.Equal(t, model.InviteStateFound, ClassifyInvitationFetch(204, ""))
	assert.Equal(t, model.InviteStateError, ClassifyInvitationFetch(500, "boom"))
	assert.Equal(t, model.InviteStateError, ClassifyInvitationFetch(503, ""))
}

func TestExpiredLookupRoundTrip(t *testing.T) {
	// Server derivation and client classification agree: an expired
	// invitation answers 410 and classifies back to expired, with the
	// invitation body retained for display.
	inv := pendingInvitation(-time.Minute)
	state := InvitationState(inv, testNow)
	code := InvitationStatusCode(state)

	assert.Equal(t, http.StatusGone, code)
	assert.Equal(t, model.InviteStateExpired, ClassifyInvitationFetch(code, "expired"))
	assert.Equal(t, "Apollo", inv.ProjectName)
}

package services

import (
	"net/http"
	"strings"
	"time"

	"planboard/model"
)

// InvitationState derives the lifecycle state of a stored invitation.
// Rejected invitations are indistinguishable from missing ones.
func InvitationState(inv *model.Invitation, now time.Time) string {
	if inv == nil || inv.Status == model.InvitationRejected {
		return model.InviteStateNotFound
	}
	if inv.Status == model.InvitationAccepted {
		return model.InviteStateAlreadyAccepted
	}
	if now.After(inv.ExpiresAt) {
		return model.InviteStateExpired
	}
	return model.InviteStateFound
}

// InvitationStatusCode maps an invitation state to the HTTP status the
// lookup endpoint answers with. Expired answers 410 and still carries
// the invitation in the body so it can be shown to the user.
func InvitationStatusCode(state string) int {
	switch state {
	case model.InviteStateFound:
		return http.StatusOK
	case model.InviteStateExpired:
		return http.StatusGone
	case model.InviteStateAlreadyAccepted:
		return http.StatusBadRequest
	case model.InviteStateNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// ClassifyInvitationFetch is the inverse mapping, used by clients of the
// lookup endpoint: it turns a response status code plus error message
// into a lifecycle state.
func ClassifyInvitationFetch(statusCode int, errMsg string) string {
	switch {
	case statusCode == http.StatusNotFound:
		return model.InviteStateNotFound
	case statusCode == http.StatusGone:
		return model.InviteStateExpired
	case statusCode == http.StatusBadRequest && strings.Contains(strings.ToLower(errMsg), "accepted"):
		return model.InviteStateAlreadyAccepted
	case statusCode >= 200 && statusCode < 300:
		return model.InviteStateFound
	}
	return model.InviteStateError
}

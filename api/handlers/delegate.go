package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/voicedeck/call-dashboard-api/api"
	"github.com/voicedeck/call-dashboard-api/clients"
	"github.com/voicedeck/call-dashboard-api/config"
	"github.com/voicedeck/call-dashboard-api/models"
)

// Delegate exported for testing purposes
type Delegate struct {
	Backend clients.BackendStore
	Mailer  Mailer
}

type delegateRequest struct {
	CallerID   int      `json:"callerId"`
	Recipients []string `json:"recipients"`
	Subject    string   `json:"subject"`
	Message    string   `json:"message"`
	Priority   string   `json:"priority"`
}

type delegateResponse struct {
	Sent bool `json:"sent"`
}

// DelegateHandler composes a delegation email for a caller's issue and hands
// it to the mailer. Subject and message are pre-filled from the caller record
// when the client leaves them empty.
func (d Delegate) DelegateHandler(w http.ResponseWriter, r *http.Request) {
	var req delegateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode delegate request", http.StatusBadRequest, w, err)
		return
	}
	if len(req.Recipients) == 0 {
		config.ErrorStatus("at least one recipient is required", http.StatusBadRequest, w, fmt.Errorf("no recipients"))
		return
	}

	ctx, cancel := api.WithRemoteCallTimeout(r.Context())
	defer cancel()

	callers, err := d.Backend.Callers(ctx)
	if err != nil {
		config.ErrorStatus("failed to fetch caller for delegation", http.StatusInternalServerError, w, err)
		return
	}
	var caller *models.Caller
	for i := range callers {
		if callers[i].ID == req.CallerID {
			caller = &callers[i]
			break
		}
	}
	if caller == nil {
		config.ErrorStatus("caller not found", http.StatusNotFound, w, fmt.Errorf("caller %d not in backend", req.CallerID))
		return
	}

	subject := req.Subject
	if subject == "" {
		subject = fmt.Sprintf("RE: %s - %s", caller.IssueType, caller.CallerName)
	}
	message := req.Message
	if message == "" {
		message = fmt.Sprintf(
			"Dear Team,\n\nI am delegating the following issue:\n\nCaller: %s\nTitle: %s\nIssue Type: %s\n\nPlease handle this request and update the status accordingly.\n\nBest regards,",
			caller.CallerName, caller.Title, caller.IssueType,
		)
	}

	priority := req.Priority
	if priority == "" {
		priority = delegatePriority(caller.Urgency)
	}

	email := DelegationEmail{
		Recipients: req.Recipients,
		Subject:    subject,
		Body:       message,
		Priority:   priority,
	}
	if err := d.Mailer.Send(email); err != nil {
		config.ErrorStatus("failed to send delegation email", http.StatusInternalServerError, w, err)
		return
	}

	b, err := json.Marshal(delegateResponse{Sent: true})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// delegatePriority maps a caller's urgency onto the mail priority used when
// the client does not pick one
func delegatePriority(urgency string) string {
	if models.UrgencyRank(urgency) >= models.UrgencyRank("High") {
		return "high"
	}
	return "normal"
}

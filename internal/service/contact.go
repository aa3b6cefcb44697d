package service

import (
	"github.com/deppfellow/person-api/internal/lib/email"
	"github.com/deppfellow/person-api/internal/model"
	"github.com/deppfellow/person-api/internal/server"
)

// ContactService forwards contact-form submissions to a configured
// inbox. The whole feature is opt-in: without a Resend API key and a
// contact inbox in config, Notify is a no-op and the /contact endpoint
// has zero side effects.
type ContactService struct {
	server *server.Server
	email  *email.Client
	inbox  string
}

// NewContactService constructs a ContactService, wiring the email
// client only when the integration is fully configured.
func NewContactService(s *server.Server) *ContactService {
	cs := &ContactService{server: s}

	if s.Config.Integration.ResendAPIKey != "" && s.Config.Integration.ContactInbox != "" {
		cs.email = email.NewClient(s.Config, s.Logger)
		cs.inbox = s.Config.Integration.ContactInbox
	}

	return cs
}

// Notify emails the submission to the configured inbox.
//
// Failures are logged, never returned: a broken email provider must
// not fail the contact request itself.
func (cs *ContactService) Notify(form model.ContactForm) {
	if cs.email == nil {
		return
	}

	err := cs.email.SendContactNotification(cs.inbox, form.FirstName, form.LastName, form.Email, form.Message)
	if err != nil {
		cs.server.Logger.Error().
			Err(err).
			Str("operation", "contact_notify").
			Msg("failed to send contact notification")
	}
}

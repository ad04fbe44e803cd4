package entity

import "time"

// TicketStatus tracks whether an admin has dealt with a contact message or report.
type TicketStatus string

const (
	TicketStatusNew     TicketStatus = "new"
	TicketStatusHandled TicketStatus = "handled"
)

// IsValid checks if the status is known.
func (s TicketStatus) IsValid() bool {
	return s == TicketStatusNew || s == TicketStatusHandled
}

// ContactMessage is a submission of the public contact form.
type ContactMessage struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Topic     string       `json:"topic"`
	Message   string       `json:"message"`
	Status    TicketStatus `json:"status"`
	CreatedAt time.Time    `json:"createdAt"`
}

// ListingReport is a user complaint about a listing.
type ListingReport struct {
	ID            string       `json:"id"`
	ListingID     string       `json:"listingId"`
	ReporterID    string       `json:"reporterId,omitempty"`
	ReporterEmail string       `json:"reporterEmail,omitempty"`
	Reason        string       `json:"reason"`
	Details       string       `json:"details,omitempty"`
	Status        TicketStatus `json:"status"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// MailJob is a queued outbound email, picked up by the mail delivery extension.
type MailJob struct {
	To      string
	Subject string
	Text    string
}

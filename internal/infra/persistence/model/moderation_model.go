package model

import "time"

// ContactMessageModel mirrors documents in the 'contactMessages' collection.
type ContactMessageModel struct {
	Name      string    `firestore:"name"`
	Email     string    `firestore:"email"`
	Topic     string    `firestore:"topic"`
	Message   string    `firestore:"message"`
	Status    string    `firestore:"status"`
	CreatedAt time.Time `firestore:"createdAt"`
}

// ListingReportModel mirrors documents in the 'listingReports' collection.
type ListingReportModel struct {
	ListingID     string    `firestore:"listingId"`
	ReporterID    string    `firestore:"reporterId"`
	ReporterEmail string    `firestore:"reporterEmail"`
	Reason        string    `firestore:"reason"`
	Details       string    `firestore:"details"`
	Status        string    `firestore:"status"`
	CreatedAt     time.Time `firestore:"createdAt"`
}

// MailModel is a job record picked up by the mail delivery extension.
type MailModel struct {
	To      string           `firestore:"to"`
	Message MailMessageModel `firestore:"message"`
}

type MailMessageModel struct {
	Subject string `firestore:"subject"`
	Text    string `firestore:"text"`
}

package domain

import "time"

// CandidateAuth is the temporary credential issued by an invite. Only one
// credential per normalized email is kept; reinviting overwrites it.
type CandidateAuth struct {
	CandidateID string `json:"candidateId"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}

// OutboxMessage records an email that would have been sent. The outbox is
// append-only and never consumed by the service itself.
type OutboxMessage struct {
	ID      string    `json:"id"`
	At      time.Time `json:"at"`
	To      string    `json:"to"`
	Subject string    `json:"subject"`
	Body    string    `json:"body"`
}

package dto

const (
	MailTypeCollaboratorInvite = "COLLABORATOR_INVITE"
	MailTypePasswordReset      = "PASSWORD_RESET"
)

// MailMessage is the queue payload for outbound mail. Sending happens on
// the consumer side so request handlers never block on SMTP.
type MailMessage struct {
	Type       string `json:"type"`
	To         string `json:"to"`
	Token      string `json:"token,omitempty"`
	NoteTitle  string `json:"note_title,omitempty"`
	OwnerEmail string `json:"owner_email,omitempty"`
}

package types

// EmailData carries everything needed to render and send a transactional email.
type EmailData struct {
	To           string
	Subject      string
	TemplateData map[string]interface{}
}

package models

// EmailConfig holds the user-supplied reminder mail settings. All
// fields are optional; reminders are only attempted once every field
// has been filled in on the settings page.
type EmailConfig struct {
	Sender    string `json:"sender"`
	Password  string `json:"-"`
	Recipient string `json:"recipient"`
}

// IsConfigured reports whether all three fields are set.
func (c EmailConfig) IsConfigured() bool {
	return c.Sender != "" && c.Password != "" && c.Recipient != ""
}

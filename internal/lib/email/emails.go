package email

// SendContactNotification forwards a received contact-form submission
// to the configured inbox using the "contact" template.
func (c *Client) SendContactNotification(to, firstName, lastName, fromEmail, message string) error {
	// Data keys must match what the HTML template expects.
	data := map[string]string{
		"FirstName": firstName,
		"LastName":  lastName,
		"Email":     fromEmail,
		"Message":   message,
	}

	return c.SendEmail(
		to,
		"New contact form submission",
		TemplateContact,
		data,
	)
}

package smtp

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/gourishchouhan/strive/internal/config"
)

const defaultWelcomeTemplate = `
<html>
<body>
	<h2>Welcome to Strive, {{.Name}}!</h2>
	<p>Your account is ready. Schedule your first task or start a challenge to begin building streaks.</p>
	<p>You can turn these emails off anytime in your preferences.</p>
</body>
</html>
`

// Client sends transactional email over SMTP
type Client struct {
	cfg      *config.SMTPConfig
	template *template.Template
}

// NewClient creates a new SMTP client
func NewClient(cfg *config.SMTPConfig) (*Client, error) {
	tmpl, err := template.New("welcome").Parse(defaultWelcomeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse welcome template: %w", err)
	}

	return &Client{cfg: cfg, template: tmpl}, nil
}

// SendWelcomeEmail sends the first-sign-in welcome email
func (c *Client) SendWelcomeEmail(ctx context.Context, to, name string) error {
	var body bytes.Buffer
	if err := c.template.Execute(&body, map[string]interface{}{"Name": name}); err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	return c.send(to, "Welcome to Strive", body.String())
}

func (c *Client) send(to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", c.cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(c.cfg.Host, c.cfg.Port, c.cfg.Username, c.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

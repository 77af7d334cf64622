package mailer

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const mailgunAPI = "https://api.mailgun.net/v3/%s/messages"

// MailgunClient delivers mail through the Mailgun REST API.
type MailgunClient struct {
	domain  string
	apiKey  string
	sender  string
	apiBase string
	client  *http.Client
}

func NewMailgunClient(domain, apiKey, sender string) *MailgunClient {
	return &MailgunClient{
		domain:  domain,
		apiKey:  apiKey,
		sender:  sender,
		apiBase: mailgunAPI,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MailgunClient) Send(to, subject, html string) error {
	form := url.Values{}
	form.Set("from", m.sender)
	form.Set("to", to)
	form.Set("subject", subject)
	form.Set("html", html)

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf(m.apiBase, m.domain), strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth("api", m.apiKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailgun: status %d, body: %s", resp.StatusCode, string(body))
	}
	return nil
}

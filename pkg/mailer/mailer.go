// Package mailer sends transactional mail. The service runs fine without a
// configured mailer; callers must treat delivery as best-effort.
package mailer

type Mailer interface {
	Send(to, subject, html string) error
}

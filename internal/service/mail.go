// Package service holds the collaborators the handlers orchestrate:
// the mail notifier and the avatar pipeline.
package service

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
	"gopkg.in/gomail.v2"
)

// Notifier sends verification emails through an external SMTP relay.
// It is built once at startup from config and treated as read-only, the
// handlers never touch viper directly.
type Notifier struct {
	host      string
	port      int
	user      string
	password  string
	from      string
	publicURL string
}

func NewNotifier() *Notifier {
	return &Notifier{
		host:      viper.GetString("mail.host"),
		port:      viper.GetInt("mail.port"),
		user:      viper.GetString("mail.user"),
		password:  viper.GetString("mail.password"),
		from:      viper.GetString("mail.from"),
		publicURL: viper.GetString("host.public_url"),
	}
}

// Enabled reports whether a relay is configured at all. Without one the
// send becomes a no-op so local development doesn't need a mail server.
func (n *Notifier) Enabled() bool {
	return n.host != ""
}

// SendVerification mails the single-use verification link to sendTo.
// Callers run this in a goroutine and only log failures, a broken relay
// must never fail the HTTP response that triggered the send.
func (n *Notifier) SendVerification(sendTo, token string) error {
	if !n.Enabled() {
		return nil
	}

	if sendTo == n.from {
		return errors.New("invalid email address")
	}

	verifLink := fmt.Sprintf("%s/users/verify/%s", n.publicURL, token)

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", sendTo)
	m.SetHeader("Subject", "Verify your email")
	m.SetBody("text/html", fmt.Sprintf("Click <a href='%s'>here</a> to verify your email address.", verifLink))

	d := gomail.NewDialer(n.host, n.port, n.user, n.password)

	return d.DialAndSend(m)
}

// Package notify delivers a heads-up when a visitor leaves a contact
// message. Delivery is best-effort: the caller dispatches it after the
// write commits, failures are logged and never reach the visitor.
package notify

import (
	"fmt"
	"log"
	"net/smtp"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/jdoe/portfolio-backend/internal/config"
	"github.com/jdoe/portfolio-backend/internal/models"
)

// Notifier delivers one contact message over one channel.
type Notifier interface {
	MessageReceived(m models.ContactMessage) error
}

// FromConfig builds a notifier from whichever channels are configured.
// With none configured it returns a notifier that only logs, so the
// contact flow behaves the same in every environment.
func FromConfig(cfg *config.Config) Notifier {
	var channels multi
	if cfg.SMTP.User != "" && cfg.SMTP.Pass != "" {
		channels = append(channels, newEmail(cfg.SMTP))
	}
	if cfg.Telegram.Token != "" && cfg.Telegram.ChatID != 0 {
		tg, err := newTelegram(cfg.Telegram)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			channels = append(channels, tg)
		}
	}
	if len(channels) == 0 {
		return logOnly{}
	}
	return channels
}

// Dispatch runs the notifier on its own goroutine and logs any failure.
func Dispatch(n Notifier, m models.ContactMessage) {
	if n == nil {
		return
	}
	go func() {
		if err := n.MessageReceived(m); err != nil {
			log.Printf("contact notification failed: %v", err)
		}
	}()
}

type multi []Notifier

func (channels multi) MessageReceived(m models.ContactMessage) error {
	var firstErr error
	for _, n := range channels {
		if err := n.MessageReceived(m); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type logOnly struct{}

func (logOnly) MessageReceived(m models.ContactMessage) error {
	log.Printf("contact message from %s <%s>", m.Name, m.Email)
	return nil
}

// email sends the message over SMTP to the site owner.
type email struct {
	cfg config.SMTP
}

func newEmail(cfg config.SMTP) *email {
	if cfg.Host == "" {
		cfg.Host = "smtp.gmail.com"
	}
	if cfg.Port == "" {
		cfg.Port = "587"
	}
	if cfg.To == "" {
		cfg.To = cfg.User
	}
	return &email{cfg: cfg}
}

func (e *email) MessageReceived(m models.ContactMessage) error {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Phone: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Phone, m.Message)

	msg := []byte("To: " + e.cfg.To + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + e.cfg.User + "\r\n" +
		"Reply-To: " + m.Email + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", e.cfg.User, e.cfg.Pass, e.cfg.Host)
	if err := smtp.SendMail(e.cfg.Host+":"+e.cfg.Port, auth, e.cfg.User, []string{e.cfg.To}, msg); err != nil {
		return fmt.Errorf("sending contact email: %w", err)
	}
	return nil
}

// telegram pushes the message to a chat with the site owner's bot.
type telegram struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

func newTelegram(cfg config.Telegram) (*telegram, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("creating telegram bot: %w", err)
	}
	return &telegram{api: api, chatID: cfg.ChatID}, nil
}

func (t *telegram) MessageReceived(m models.ContactMessage) error {
	text := fmt.Sprintf("📫 New contact message\n\nFrom: %s <%s>\n", m.Name, m.Email)
	if m.Phone != "" {
		text += fmt.Sprintf("Phone: %s\n", m.Phone)
	}
	text += "\n" + m.Message
	if _, err := t.api.Send(tgbotapi.NewMessage(t.chatID, text)); err != nil {
		return fmt.Errorf("sending telegram message: %w", err)
	}
	return nil
}

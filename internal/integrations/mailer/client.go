package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Pratik1Bhuwad/BookSmart-Service/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для отправки почтовых уведомлений через SMTP
// Работает без аутентификации (Mailpit-совместимый relay)
type Client struct {
	addr string
	from string
	log  Logger
}

// NewClient создает новый экземпляр почтового клиента
func NewClient(host string, port string, from string, log Logger) *Client {
	host = strings.TrimSpace(host)
	port = strings.TrimSpace(port)
	from = strings.TrimSpace(from)
	if from == "" {
		from = "no-reply@booksmart.local"
	}
	return &Client{
		addr: fmt.Sprintf("%s:%s", host, port),
		from: from,
		log:  log,
	}
}

// SendBookingConfirmation отправляет клиенту письмо-подтверждение записи
func (c *Client) SendBookingConfirmation(ctx context.Context, msg *BookingConfirmation) error {
	c.log.Info("SendBookingConfirmation: appointment=%d, to=%s", msg.AppointmentID, msg.To)

	subject := fmt.Sprintf("Подтверждение записи: %s", msg.ServiceName)
	body := fmt.Sprintf(
		"Ваша запись принята и ожидает подтверждения.\n\n"+
			"Услуга: %s\n"+
			"Провайдер: %s\n"+
			"Дата: %s\n"+
			"Время: %s - %s\n"+
			"Стоимость: %.2f\n\n"+
			"Номер записи: %d\n",
		msg.ServiceName,
		msg.ProviderName,
		msg.Date.Format(domain.DateFormat),
		msg.StartTime,
		msg.EndTime,
		msg.Price,
		msg.AppointmentID,
	)

	if err := c.send(msg.To, subject, body); err != nil {
		c.log.Error("SendBookingConfirmation: appointment=%d: %v", msg.AppointmentID, err)
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	return nil
}

func (c *Client) send(to string, subject string, body string) error {
	msg := buildMessage(c.from, to, subject, body)
	return smtp.SendMail(c.addr, nil, c.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Минимальное RFC 5322 сообщение, достаточно для Mailpit и большинства relay
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

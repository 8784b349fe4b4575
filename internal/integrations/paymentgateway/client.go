package paymentgateway

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/stripe/stripe-go/v79"
	checkoutsession "github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/stripe/stripe-go/v79/webhook"
)

// webhookTolerance допустимый возраст события при проверке подписи
const webhookTolerance = 5 * time.Minute

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент платежного шлюза поверх Stripe Checkout
// Запись оплачивается разовой сессией, ID записи едет в метаданных
type Client struct {
	webhookSecret string
	successURL    string
	cancelURL     string
	log           Logger
}

// NewClient создает новый экземпляр клиента платежного шлюза
// Stripe использует глобальный API ключ, выставляется при инициализации
func NewClient(secretKey, webhookSecret, successURL, cancelURL string, log Logger) *Client {
	stripe.Key = strings.TrimSpace(secretKey)
	return &Client{
		webhookSecret: strings.TrimSpace(webhookSecret),
		successURL:    successURL,
		cancelURL:     cancelURL,
		log:           log,
	}
}

// CreateCheckoutSession создает платежную сессию для записи
func (c *Client) CreateCheckoutSession(ctx context.Context, p *CheckoutParams) (*CheckoutSession, error) {
	currency := strings.ToLower(strings.TrimSpace(p.Currency))
	if currency == "" {
		currency = "usd"
	}

	// Stripe принимает суммы в минимальных единицах валюты
	amount := int64(math.Round(p.Price * 100))

	appointmentID := strconv.FormatInt(p.AppointmentID, 10)

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:        stripe.String(c.successURL),
		CancelURL:         stripe.String(c.cancelURL),
		ClientReferenceID: stripe.String(appointmentID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(p.ServiceName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		Metadata: map[string]string{
			"appointment_id": appointmentID,
		},
	}

	if email := strings.TrimSpace(p.ClientEmail); email != "" {
		params.CustomerEmail = stripe.String(email)
	}

	// Stripe-level идемпотентность: повтор запроса вернет ту же сессию
	params.IdempotencyKey = stripe.String("appointment:" + appointmentID)
	params.Context = ctx

	sess, err := checkoutsession.New(params)
	if err != nil {
		c.log.Error("CreateCheckoutSession: appointment=%d: %v", p.AppointmentID, err)
		return nil, fmt.Errorf("%w: failed to create checkout session: %v", ErrInternal, err)
	}

	c.log.Info("CreateCheckoutSession: appointment=%d, session=%s", p.AppointmentID, sess.ID)

	return &CheckoutSession{
		ID:  sess.ID,
		URL: sess.URL,
	}, nil
}

// VerifyEvent проверяет подпись вебхука и разбирает событие оплаты
// Возвращает ErrUnsupportedEvent для событий, не связанных с checkout-сессиями
func (c *Client) VerifyEvent(payload []byte, sigHeader string) (*PaymentEvent, error) {
	evt, err := webhook.ConstructEventWithTolerance(payload, sigHeader, c.webhookSecret, webhookTolerance)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	evtType := string(evt.Type)

	var paid bool
	switch evtType {
	case "checkout.session.completed":
		paid = true
	case "checkout.session.expired":
		paid = false
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedEvent, evtType)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(evt.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode checkout session: %v", ErrInvalidPayload, err)
	}

	appointmentID, err := strconv.ParseInt(strings.TrimSpace(session.Metadata["appointment_id"]), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: missing appointment_id in session metadata", ErrInvalidPayload)
	}

	c.log.Info("VerifyEvent: %s, appointment=%d, session=%s", evtType, appointmentID, session.ID)

	return &PaymentEvent{
		AppointmentID: appointmentID,
		Paid:          paid,
		SessionID:     session.ID,
	}, nil
}

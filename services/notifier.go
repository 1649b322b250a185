package services

import (
	"context"
	"encoding/json"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/Govind-619/OrderLadder/models"
	"github.com/Govind-619/OrderLadder/utils"
)

// Notifier is told about every committed payment. Failures are reported to the
// caller for logging only; the payment is already durable.
type Notifier interface {
	PaymentRecorded(ctx context.Context, p models.Payment) error
}

// Notifiers fans a payment out to several notifiers.
type Notifiers []Notifier

func (ns Notifiers) PaymentRecorded(ctx context.Context, p models.Payment) error {
	var errs []error
	for _, n := range ns {
		if err := n.PaymentRecorded(ctx, p); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%d notifier(s) failed: %v", len(errs), errs)
}

// PaymentEvent is the payload published for a recorded payment.
type PaymentEvent struct {
	OrderNumber       int64     `json:"order_number"`
	Amount            int64     `json:"amount"`
	RazorpayOrderID   string    `json:"razorpay_order_id"`
	RazorpayPaymentID string    `json:"razorpay_payment_id"`
	RecordedAt        time.Time `json:"recorded_at"`
}

// Publisher is the part of *nats.Conn used for events.
type Publisher interface {
	Publish(subject string, data []byte) error
}

// NATSNotifier publishes PaymentEvents on a subject.
type NATSNotifier struct {
	pub     Publisher
	subject string
}

func NewNATSNotifier(pub Publisher, subject string) *NATSNotifier {
	return &NATSNotifier{pub: pub, subject: subject}
}

// ConnectNATS dials the broker with unlimited reconnects.
func ConnectNATS(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("orderladder"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, errors.Wrap(err, "connect nats")
	}
	return nc, nil
}

func (n *NATSNotifier) PaymentRecorded(ctx context.Context, p models.Payment) error {
	data, err := json.Marshal(PaymentEvent{
		OrderNumber:       p.OrderNumber,
		Amount:            p.Amount,
		RazorpayOrderID:   p.RazorpayOrderID,
		RazorpayPaymentID: p.RazorpayPaymentID,
		RecordedAt:        p.CreatedAt,
	})
	if err != nil {
		return errors.Wrap(err, "marshal payment event")
	}
	if err := n.pub.Publish(n.subject, data); err != nil {
		return errors.Wrapf(err, "publish to %s", n.subject)
	}
	return nil
}

// EmailNotifier mails a confirmation to the operations inbox. Delivery runs in
// the background so SMTP latency never holds up the verification response.
// Close waits for mails still in flight.
type EmailNotifier struct {
	cfg      utils.EmailConfig
	to       string
	currency string
	send     func(cfg utils.EmailConfig, to, subject, body string) error
	inflight sync.WaitGroup
}

func NewEmailNotifier(cfg utils.EmailConfig, to, currency string) *EmailNotifier {
	return &EmailNotifier{cfg: cfg, to: to, currency: currency, send: utils.SendEmail}
}

func (n *EmailNotifier) PaymentRecorded(ctx context.Context, p models.Payment) error {
	subject := fmt.Sprintf("[%s] Order #%d paid", utils.AppName, p.OrderNumber)
	body := fmt.Sprintf(`
		<h2>Order #%d</h2>
		<p>%s (%s) paid %s %d.</p>
		<p>Address: %s</p>
		<p>Razorpay order: %s<br>Razorpay payment: %s</p>
	`, p.OrderNumber, html.EscapeString(p.Name), p.Mobile, n.currency, p.Amount,
		html.EscapeString(p.Address), p.RazorpayOrderID, p.RazorpayPaymentID)

	n.inflight.Add(1)
	go func() {
		defer n.inflight.Done()
		if err := n.send(n.cfg, n.to, subject, body); err != nil {
			utils.LogError("Failed to send confirmation for order #%d: %v", p.OrderNumber, err)
			return
		}
		utils.LogDebug("Confirmation for order #%d sent to %s", p.OrderNumber, n.to)
	}()
	return nil
}

// Close blocks until every pending confirmation has been handed to SMTP.
func (n *EmailNotifier) Close() {
	n.inflight.Wait()
}

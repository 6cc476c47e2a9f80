// Package notification sends the order-notification email. It sits on
// the best-effort side channel: the order service dispatches it after the
// store write and only logs its outcome.
package notification

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/erikselimi/bookmart-backend/internal/cart"
	"github.com/erikselimi/bookmart-backend/internal/order"
)

// Config holds SMTP settings for the order mailer.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	To       string
}

// Mailer implements order.Notifier over SMTP.
type Mailer struct {
	cfg Config
	log *zap.Logger
}

func NewMailer(cfg Config, log *zap.Logger) *Mailer {
	return &Mailer{cfg: cfg, log: log}
}

func (m *Mailer) Notify(ctx context.Context, ord order.Order) error {
	body, err := m.render(ord)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", m.cfg.To)
	msg.SetHeader("Subject", "New BookMart Order - "+ord.ID)
	msg.SetBody("text/html", body)

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.Username, m.cfg.Password)

	// gomail has no context support, so the send runs on its own
	// goroutine and the caller's deadline wins.
	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()
	select {
	case err := <-done:
		if err != nil {
			return errors.Wrap(err, "send order notification")
		}
		m.log.Info("order notification sent", zap.String("orderId", ord.ID))
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "send order notification")
	}
}

type mailLine struct {
	Title    string
	Grade    int
	Quantity int
	Price    string
	Subtotal string
}

type mailData struct {
	ID              string
	CustomerName    string
	CustomerPhone   string
	CustomerAddress string
	AdditionalInfo  string
	Lines           []mailLine
	Total           string
	PlacedAt        string
}

func (m *Mailer) render(ord order.Order) (string, error) {
	items, err := cart.ParseItems(ord.OrderItems)
	if err != nil {
		return "", err
	}

	lines := make([]mailLine, 0, len(items))
	for _, it := range items {
		sub, err := cart.Subtotal(it)
		if err != nil {
			return "", err
		}
		lines = append(lines, mailLine{
			Title:    it.Title,
			Grade:    it.Grade,
			Quantity: it.Quantity,
			Price:    it.Price,
			Subtotal: sub,
		})
	}

	data := mailData{
		ID:              ord.ID,
		CustomerName:    ord.CustomerName,
		CustomerPhone:   ord.CustomerPhone,
		CustomerAddress: ord.CustomerAddress,
		Lines:           lines,
		Total:           ord.Total,
		PlacedAt:        placedAt(ord.CreatedAt),
	}
	if ord.AdditionalInfo != nil {
		data.AdditionalInfo = *ord.AdditionalInfo
	}

	var buf bytes.Buffer
	if err := orderTemplate.Execute(&buf, data); err != nil {
		return "", errors.Wrap(err, "render order notification")
	}
	return buf.String(), nil
}

func placedAt(createdAt string) string {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return createdAt
	}
	return t.Format("Jan 2, 2006 15:04 MST")
}

var orderTemplate = template.Must(template.New("order").Funcs(template.FuncMap{
	"nl2br": func(s string) template.HTML {
		return template.HTML(strings.ReplaceAll(template.HTMLEscapeString(s), "\n", "<br>"))
	},
}).Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1e40af;">New BookMart Order - {{.ID}}</h2>

  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 8px;">
    <h3 style="margin-top: 0; color: #374151;">Customer Information</h3>
    <p><strong>Name:</strong> {{.CustomerName}}</p>
    <p><strong>Phone:</strong> {{.CustomerPhone}}</p>
    <p><strong>Address:</strong><br>{{nl2br .CustomerAddress}}</p>
    {{if .AdditionalInfo}}<p><strong>Additional Info:</strong><br>{{nl2br .AdditionalInfo}}</p>{{end}}
  </div>

  <h3 style="color: #374151;">Order Items</h3>
  <table style="width: 100%; border-collapse: collapse; border: 1px solid #e5e7eb;">
    <thead>
      <tr style="background-color: #f9fafb;">
        <th style="padding: 12px; text-align: left;">Book Title</th>
        <th style="padding: 12px; text-align: left;">Grade</th>
        <th style="padding: 12px; text-align: center;">Qty</th>
        <th style="padding: 12px; text-align: right;">Price</th>
        <th style="padding: 12px; text-align: right;">Total</th>
      </tr>
    </thead>
    <tbody>
      {{range .Lines}}<tr>
        <td style="padding: 8px;">{{.Title}}</td>
        <td style="padding: 8px;">Grade {{.Grade}}</td>
        <td style="padding: 8px; text-align: center;">{{.Quantity}}</td>
        <td style="padding: 8px; text-align: right;">${{.Price}}</td>
        <td style="padding: 8px; text-align: right;">${{.Subtotal}}</td>
      </tr>
      {{end}}
    </tbody>
    <tfoot>
      <tr style="background-color: #f9fafb; font-weight: bold;">
        <td colspan="4" style="padding: 12px; text-align: right;">Order Total:</td>
        <td style="padding: 12px; text-align: right; color: #1e40af;">${{.Total}}</td>
      </tr>
    </tfoot>
  </table>

  <div style="background-color: #fef3c7; padding: 15px; border-radius: 8px; border-left: 4px solid #f59e0b;">
    <p style="margin: 0; color: #92400e;">
      <strong>Payment Reminder:</strong> This order requires peer-to-peer payment arrangement.
      Please contact the customer at {{.CustomerPhone}} to arrange payment and delivery.
    </p>
  </div>

  <p style="margin-top: 20px; color: #6b7280; font-size: 14px;">Order placed on: {{.PlacedAt}}</p>
</div>
`))

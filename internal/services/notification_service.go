// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/sirupsen/logrus"

	"github.com/javlonbek/shoeshop-backend/internal/config"
	"github.com/javlonbek/shoeshop-backend/internal/models"
)

type NotificationService struct {
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(config *config.Config) *NotificationService {
	return &NotificationService{config: config}
}

// SendNewOrderEmail notifies the shop inbox about a freshly captured order.
// Delivery failures are the caller's problem to log; order capture never
// depends on this succeeding.
func (s *NotificationService) SendNewOrderEmail(order *models.Order) error {
	if s.config.Email.OrderEmail == "" {
		return nil
	}

	type itemRow struct {
		ProductName string
		Size        int
		Quantity    int
		Price       float64
		Subtotal    float64
	}

	items := make([]itemRow, 0, len(order.Items))
	for _, item := range order.Items {
		name := ""
		if item.Product != nil {
			name = item.Product.Name
		}
		items = append(items, itemRow{
			ProductName: name,
			Size:        item.Size,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Subtotal:    item.Subtotal(),
		})
	}

	data := map[string]interface{}{
		"OrderID":       order.ID,
		"CustomerName":  order.CustomerName,
		"CustomerPhone": order.CustomerPhone,
		"CustomerEmail": order.CustomerEmail,
		"City":          order.ShippingCity,
		"Address":       order.ShippingAddress,
		"TotalAmount":   order.TotalAmount,
		"Notes":         order.Notes,
		"Items":         items,
		"AdminURL":      fmt.Sprintf("%s/orders/%s", s.config.Admin.BaseURL, order.ID),
	}

	tmpl := s.getEmailTemplate("new_order")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := fmt.Sprintf("%s - %s", tmpl.Subject, order.CustomerName)
	return s.sendEmail(s.config.Email.OrderEmail, subject, body)
}

// SendOrderStatusEmail tells the customer their order moved to a new status.
// Orders without a customer email are skipped.
func (s *NotificationService) SendOrderStatusEmail(order *models.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	data := map[string]interface{}{
		"CustomerName": order.CustomerName,
		"OrderID":      order.ID,
		"Status":       string(order.Status),
		"TotalAmount":  order.TotalAmount,
	}

	tmpl := s.getEmailTemplate("order_status")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(order.CustomerEmail, tmpl.Subject, body)
}

func (s *NotificationService) getEmailTemplate(name string) EmailTemplate {
	switch name {
	case "new_order":
		return EmailTemplate{
			Subject: "New order received",
			Body: `
<h2>New order</h2>
<p><strong>{{.CustomerName}}</strong> ({{.CustomerPhone}}{{if .CustomerEmail}}, {{.CustomerEmail}}{{end}})</p>
{{if .Address}}<p>{{.City}}, {{.Address}}</p>{{end}}
<table border="1" cellpadding="4" cellspacing="0">
<tr><th>Product</th><th>Size</th><th>Qty</th><th>Price</th><th>Subtotal</th></tr>
{{range .Items}}<tr><td>{{.ProductName}}</td><td>{{.Size}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td><td>{{.Subtotal}}</td></tr>
{{end}}</table>
<p>Total: <strong>{{.TotalAmount}}</strong></p>
{{if .Notes}}<p>Notes: {{.Notes}}</p>{{end}}
<p><a href="{{.AdminURL}}">Open in admin panel</a></p>`,
		}
	case "order_status":
		return EmailTemplate{
			Subject: "Your order status has changed",
			Body: `
<p>Hello {{.CustomerName}},</p>
<p>Your order <strong>{{.OrderID}}</strong> is now <strong>{{.Status}}</strong>.</p>
<p>Order total: {{.TotalAmount}}</p>`,
		}
	default:
		return EmailTemplate{Subject: "Notification", Body: "{{.Message}}"}
	}
}

func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPUsername == "" {
		logrus.WithFields(logrus.Fields{
			"to":      to,
			"subject": subject,
		}).Info("SMTP not configured, skipping email")
		return nil
	}

	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\nFrom: %s <%s>\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		to, s.config.Email.FromName, s.config.Email.FromEmail, subject, body))

	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

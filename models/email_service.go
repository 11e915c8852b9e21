package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/gomail.v2"

	"house-of-rahaa/config"
)

type EmailService struct {
	dialer *gomail.Dialer
}

func NewEmailService() (*EmailService, error) {
	smtpHost := os.Getenv("SMTP_HOST")
	smtpPort := os.Getenv("SMTP_PORT")
	smtpUser := os.Getenv("SMTP_USER")
	smtpPass := os.Getenv("SMTP_PASS")

	if smtpHost == "" || smtpUser == "" || smtpPass == "" {
		return nil, fmt.Errorf("SMTP configuration missing")
	}

	port, err := strconv.Atoi(smtpPort)
	if err != nil {
		port = 465
	}

	dialer := gomail.NewDialer(smtpHost, port, smtpUser, smtpPass)

	return &EmailService{dialer: dialer}, nil
}

func (s *EmailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", fmt.Sprintf(`"House of Rahaa" <%s>`, os.Getenv("SMTP_FROM")))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *EmailService) SendWelcomeEmail(toEmail, name string) error {
	body := rahaaLayout(fmt.Sprintf(`
        <p style="font-size: 10px; text-transform: uppercase; letter-spacing: 4px; color: #d4a373; font-weight: bold;">Authentication Successful</p>
        <h1 style="font-size: 32px; font-weight: normal; margin: 20px 0;">Welcome, %s</h1>
        <p style="color: #888; font-size: 14px;">Your identity has been secured in our private vault. You now hold access to our most exclusive artifact collection.</p>
        <div style="margin-top: 40px;">
            <a href="%s" style="background: #ffffff; color: #000000; padding: 15px 35px; text-decoration: none; border-radius: 100px; font-size: 10px; font-weight: bold; text-transform: uppercase; letter-spacing: 2px;">Explore Archive</a>
        </div>
	`, name, config.AppConfig.ClientURL))

	return s.send(toEmail, "Vault Access Granted", body)
}

func (s *EmailService) SendOrderEmail(toEmail, orderID string, amount int, products []OrderProduct) error {
	var lines strings.Builder
	for _, p := range products {
		lines.WriteString(fmt.Sprintf(`
            <div style="border-bottom: 1px solid rgba(255,255,255,0.03); padding: 10px 0;">
                <span style="font-size: 12px; color: #ccc;">%s</span>
                <span style="font-size: 12px; color: #d4a373; float: right;">INR %s</span>
            </div>`, p.Name, formatINR(p.Price)))
	}

	details := fmt.Sprintf(`
        <div style="text-align: left; margin: 40px 0; border: 1px solid rgba(255,255,255,0.05); padding: 20px; border-radius: 20px;">
            <p style="font-size: 9px; text-transform: uppercase; letter-spacing: 2px; color: #d4a373;">Inventory Log:</p>
            %s
            <div style="padding-top: 15px; text-align: right;">
                <p style="font-size: 10px; color: #555; margin: 0;">Net Valuation</p>
                <h2 style="font-size: 24px; color: #ffffff; margin: 5px 0;">INR %s</h2>
            </div>
        </div>`, lines.String(), formatINR(amount))

	body := rahaaLayout(fmt.Sprintf(`
        <p style="font-size: 10px; text-transform: uppercase; letter-spacing: 4px; color: #d4a373; font-weight: bold;">Acquisition Secured</p>
        <h1 style="font-size: 28px; font-weight: normal; margin: 20px 0;">Transaction Verified</h1>
        <p style="font-family: monospace; font-size: 11px; color: #555;">Token: #%s</p>
        %s
	`, shortID(orderID), details))

	if err := s.send(toEmail, fmt.Sprintf("Acquisition Confirmed #%s", shortID(orderID)), body); err != nil {
		return err
	}

	if admin := config.AppConfig.AdminEmail; admin != "" {
		adminBody := rahaaLayout(fmt.Sprintf(`
            <h2 style="color:#d4a373; font-weight: normal;">New Sale Alert</h2>
            <p style="color:#ccc; font-size: 12px;">Collector: <b>%s</b></p>
            <p style="color:#888; font-size: 11px;">Token: %s</p>
            %s
		`, toEmail, orderID, details))
		return s.send(admin, fmt.Sprintf("[ADMIN] New Acquisition: INR %s", formatINR(amount)), adminBody)
	}
	return nil
}

func (s *EmailService) SendStatusEmail(toEmail, status, orderID string) error {
	body := rahaaLayout(fmt.Sprintf(`
        <p style="font-size: 10px; text-transform: uppercase; letter-spacing: 4px; color: #d4a373; font-weight: bold;">Logistics Protocol</p>
        <h1 style="font-size: 28px; font-weight: normal; margin: 20px 0;">Artifact %s</h1>
        <p style="color: #888; font-size: 14px;">Your artifact for Acquisition <span style="color:#fff">#%s</span> has moved to the <b>%s</b> phase.</p>
        <div style="margin-top: 40px;">
            <a href="%s/dashboard/user/orders" style="border: 1px solid rgba(212,163,115,0.5); color: #d4a373; padding: 12px 30px; text-decoration: none; border-radius: 100px; font-size: 9px; text-transform: uppercase; letter-spacing: 2px;">Trace Live</a>
        </div>
	`, status, shortID(orderID), status, config.AppConfig.ClientURL))

	if err := s.send(toEmail, fmt.Sprintf("Logistics Update: %s", status), body); err != nil {
		return err
	}

	if admin := config.AppConfig.AdminEmail; admin != "" {
		adminBody := rahaaLayout(fmt.Sprintf(`
            <h2 style="color:#d4a373; font-weight: normal;">Logistics Protocol Updated</h2>
            <p style="color:#888; font-size: 12px;">Order: #%s</p>
            <p style="color:#888; font-size: 12px;">Collector: %s</p>
            <p style="font-size: 18px; color:#fff; margin-top: 20px;">Current Status: <b>%s</b></p>
		`, orderID, toEmail, status))
		return s.send(admin, fmt.Sprintf("[ADMIN] Status Sync: #%s moved to %s", shortID(orderID), status), adminBody)
	}
	return nil
}

func rahaaLayout(content string) string {
	return fmt.Sprintf(`
<div style="background-color: #050505; color: #ffffff; font-family: 'Times New Roman', serif; padding: 40px 20px; text-align: center; line-height: 1.6;">
    <div style="max-width: 600px; margin: 0 auto; border: 1px solid rgba(212, 163, 115, 0.2); padding: 40px; background: #0a0a0a; border-radius: 40px;">
        <h2 style="color: #d4a373; font-style: italic; font-size: 28px; margin-bottom: 30px; font-weight: normal;">Rahaa.</h2>
        <div style="height: 1px; width: 40px; background: #d4a373; margin: 0 auto 30px;"></div>
        %s
        <div style="margin-top: 50px; padding-top: 30px; border-top: 1px solid rgba(255,255,255,0.05);">
            <p style="font-size: 8px; text-transform: uppercase; letter-spacing: 5px; color: #444;">House of Rahaa</p>
        </div>
    </div>
</div>`, content)
}

// shortID trims an order id to its last six characters for subject lines.
func shortID(orderID string) string {
	if len(orderID) <= 6 {
		return strings.ToUpper(orderID)
	}
	return strings.ToUpper(orderID[len(orderID)-6:])
}

func formatINR(amount int) string {
	str := fmt.Sprintf("%d", amount)
	n := len(str)
	if n <= 3 {
		return str
	}

	result := ""
	for i, digit := range str {
		if i > 0 && (n-i)%3 == 0 {
			result += ","
		}
		result += string(digit)
	}
	return result
}

package notification

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log"
)

// ContactNotification carries the fields of a new contact submission
// rendered into the notification email sent to the studio inbox.
type ContactNotification struct {
	ReferenceID string
	FullName    string
	Phone       string
	Address     string
	Content     string
	SubmittedAt string
}

// Service is the notification surface the contact module depends on.
type Service interface {
	NotifyNewContact(n ContactNotification) error
}

type service struct {
	sender  *EmailSender
	inbox   string
	contact *template.Template
}

var contactTemplate = template.Must(template.New("contact").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"></head>
<body style="margin:0;padding:24px;font-family:'Segoe UI',Tahoma,sans-serif;background-color:#f4f4f5;">
  <div style="max-width:600px;margin:0 auto;background:#ffffff;border-radius:12px;overflow:hidden;">
    <div style="background:#09403b;padding:24px;text-align:center;">
      <h1 style="margin:0;color:#d9b588;font-size:22px;">F Production</h1>
      <p style="margin:6px 0 0;color:rgba(255,255,255,.8);font-size:13px;">Yêu cầu liên hệ mới</p>
    </div>
    <div style="padding:24px;">
      <p style="margin:0 0 12px;color:#92400e;font-size:12px;font-weight:600;">Mã tham chiếu: {{.ReferenceID}} — {{.SubmittedAt}}</p>
      <table style="width:100%;border-collapse:collapse;font-size:14px;color:#1f2937;">
        <tr><td style="padding:8px 0;color:#6b7280;width:140px;">Họ và tên</td><td style="padding:8px 0;">{{.FullName}}</td></tr>
        <tr><td style="padding:8px 0;color:#6b7280;">Số điện thoại</td><td style="padding:8px 0;"><a href="tel:{{.Phone}}" style="color:#059669;">{{.Phone}}</a></td></tr>
        {{if .Address}}<tr><td style="padding:8px 0;color:#6b7280;">Địa chỉ</td><td style="padding:8px 0;">{{.Address}}</td></tr>{{end}}
        {{if .Content}}<tr><td style="padding:8px 0;color:#6b7280;">Nội dung</td><td style="padding:8px 0;">{{.Content}}</td></tr>{{end}}
      </table>
    </div>
    <div style="background:#f9fafb;padding:16px;text-align:center;border-top:1px solid #e5e7eb;">
      <p style="margin:0;color:#9ca3af;font-size:12px;">Email này được gửi tự động từ hệ thống F Production</p>
    </div>
  </div>
</body>
</html>`))

func NewService(sender *EmailSender, inbox string) Service {
	return &service{sender: sender, inbox: inbox, contact: contactTemplate}
}

// NotifyNewContact renders and sends the notification email. Callers treat
// the returned error as a best-effort outcome, not a request failure.
func (s *service) NotifyNewContact(n ContactNotification) error {
	if !s.sender.Configured() {
		log.Println("SMTP not configured, skipping contact notification")
		return nil
	}
	if s.inbox == "" {
		return errors.New("CONTACT_EMAIL not configured")
	}

	var body bytes.Buffer
	if err := s.contact.Execute(&body, n); err != nil {
		return fmt.Errorf("render contact email: %w", err)
	}

	subject := fmt.Sprintf("[Liên hệ mới] %s - %s", n.FullName, n.Phone)
	if err := s.sender.Send([]string{s.inbox}, subject, body.String()); err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}
	return nil
}

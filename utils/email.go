package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"log"
	"net/smtp"
	"os"
	"strconv"

	"github.com/jordan-wright/email"
	"gopkg.in/gomail.v2"
)

// TicketConfirmationData dữ liệu cho template email xác nhận vé
type TicketConfirmationData struct {
	PublicCode    string
	StudentName   string
	Homeroom      string
	TicketType    string
	Amount        string
	PaymentMedium string
	QRBase64      string
}

func smtpDialer() (*gomail.Dialer, string) {
	host := os.Getenv("SMTP_HOST")
	portStr := os.Getenv("SMTP_PORT")
	username := os.Getenv("SMTP_USERNAME")
	password := os.Getenv("SMTP_PASSWORD")
	from := os.Getenv("SMTP_FROM")

	port, _ := strconv.Atoi(portStr)
	return gomail.NewDialer(host, port, username, password), from
}

// SendTicketConfirmationEmail gửi email xác nhận vé (async)
func SendTicketConfirmationEmail(to string, data TicketConfirmationData) {
	go func() { // Async để không delay response
		tmplPath := "templates/ticket_confirmation.html"
		tmpl, err := template.ParseFiles(tmplPath)
		if err != nil {
			log.Printf("Lỗi load template email: %v", err)
			return
		}

		var body bytes.Buffer
		if err := tmpl.Execute(&body, data); err != nil {
			log.Printf("Lỗi render template email: %v", err)
			return
		}

		d, from := smtpDialer()

		m := gomail.NewMessage()
		m.SetHeader("From", from)
		m.SetHeader("To", to)
		m.SetHeader("Subject", "Xác nhận vé VTEAM #"+data.PublicCode)
		m.SetBody("text/html", body.String())

		if err := d.DialAndSend(m); err != nil {
			log.Printf("Lỗi gửi email: %v", err)
		}
	}()
}

// SendRejectionEmail báo đơn online bị từ chối, kèm lý do của người duyệt.
func SendRejectionEmail(to, publicCode, note string) {
	go func() {
		host := os.Getenv("SMTP_HOST")
		port := os.Getenv("SMTP_PORT")
		username := os.Getenv("SMTP_USERNAME")
		password := os.Getenv("SMTP_PASSWORD")
		from := os.Getenv("SMTP_FROM")

		body := fmt.Sprintf("Đơn đặt vé %s chưa được duyệt do chứng từ chuyển khoản không hợp lệ.", publicCode)
		if note != "" {
			body += "\nGhi chú: " + note
		}
		body += "\nVui lòng đặt lại đơn hoặc liên hệ ban tổ chức VTEAM."

		e := email.NewEmail()
		e.From = from
		e.To = []string{to}
		e.Subject = "Đơn đặt vé VTEAM #" + publicCode + " bị từ chối"
		e.Text = []byte(body)
		if err := e.Send(host+":"+port, smtp.PlainAuth("", username, password, host)); err != nil {
			log.Printf("Lỗi gửi email từ chối đơn %s: %v", publicCode, err)
		}
	}()
}

// DailySummaryData dữ liệu báo cáo bán vé gửi quản trị mỗi sáng
type DailySummaryData struct {
	Date        string
	TicketCount int64
	Revenue     string
}

func SendDailySummaryEmail(to string, data DailySummaryData) {
	d, from := smtpDialer()

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Báo cáo bán vé VTEAM ngày "+data.Date)
	m.SetBody("text/plain", fmt.Sprintf("Ngày %s bán được %d vé, doanh thu %s.", data.Date, data.TicketCount, data.Revenue))

	if err := d.DialAndSend(m); err != nil {
		log.Printf("Lỗi gửi báo cáo ngày %s tới %s: %v", data.Date, to, err)
	}
}

package delivery

import "fmt"

// EmailMessage là nội dung email đã render
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
}

// WelcomeEmail email chào mừng sau khi đăng ký tài khoản
func WelcomeEmail(to, name string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: "Welcome to EcoJourney",
		HTML: fmt.Sprintf(
			`<h2>Welcome to EcoJourney, %s!</h2>
<p>Tài khoản của bạn đã được tạo thành công. Bạn có thể bắt đầu đăng nội dung ngay bây giờ.</p>`,
			name),
	}
}

// PasswordResetEmail email chứa link đặt lại mật khẩu (hiệu lực 1 giờ)
func PasswordResetEmail(to, name, resetURL string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: "Đặt lại mật khẩu EcoJourney",
		HTML: fmt.Sprintf(
			`<h2>Xin chào %s,</h2>
<p>Chúng tôi nhận được yêu cầu đặt lại mật khẩu cho tài khoản của bạn.</p>
<p><a href="%s" style="display:inline-block;padding:10px 20px;text-decoration:none;border-radius:5px;background-color:#007bff;color:#fff;">Đặt lại mật khẩu</a></p>
<p>Link này có hiệu lực trong 1 giờ. Nếu bạn không yêu cầu đặt lại mật khẩu, vui lòng bỏ qua email này.</p>`,
			name, resetURL),
	}
}

// SubmissionEmail email xác nhận nội dung đã được gửi duyệt
func SubmissionEmail(to, name, title string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: "Nội dung của bạn đã được gửi duyệt",
		HTML: fmt.Sprintf(
			`<h2>Xin chào %s,</h2>
<p>Nội dung "<strong>%s</strong>" của bạn đã được gửi duyệt thành công và đang chờ xét duyệt.</p>
<p>Chúng tôi sẽ thông báo cho bạn khi có kết quả.</p>`,
			name, title),
	}
}

// ApprovedEmail email thông báo nội dung đã được duyệt
func ApprovedEmail(to, name, title string) EmailMessage {
	return EmailMessage{
		To:      to,
		Subject: "Nội dung của bạn đã được duyệt",
		HTML: fmt.Sprintf(
			`<h2>Chúc mừng %s!</h2>
<p>Nội dung "<strong>%s</strong>" của bạn đã được duyệt và sẵn sàng để xuất bản.</p>`,
			name, title),
	}
}

// RejectedEmail email thông báo nội dung bị từ chối kèm lý do
func RejectedEmail(to, name, title, reason string) EmailMessage {
	html := fmt.Sprintf(
		`<h2>Xin chào %s,</h2>
<p>Rất tiếc, nội dung "<strong>%s</strong>" của bạn chưa được duyệt.</p>`,
		name, title)
	if reason != "" {
		html += fmt.Sprintf(`<p>Lý do: %s</p>`, reason)
	}
	html += `<p>Bạn có thể chỉnh sửa và gửi duyệt lại.</p>`
	return EmailMessage{
		To:      to,
		Subject: "Nội dung của bạn chưa được duyệt",
		HTML:    html,
	}
}

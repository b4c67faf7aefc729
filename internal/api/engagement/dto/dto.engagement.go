// Package engagementdto - các DTO đầu vào của domain engagement.
package engagementdto

// ContactMessageCreateInput đầu vào gửi tin nhắn liên hệ.
// Các trường văn bản tự do đều được kiểm tra XSS vì form liên hệ là công khai.
type ContactMessageCreateInput struct {
	Name    string `json:"name" validate:"required,no_xss"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,no_xss"`
	Message string `json:"message" validate:"required,no_xss"`
}

// ContactMessageStatusInput đầu vào cập nhật trạng thái tin nhắn.
type ContactMessageStatusInput struct {
	Status string `json:"status" validate:"required"`
}

// SubscribeInput đầu vào đăng ký nhận bản tin.
type SubscribeInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscribeResult kết quả đăng ký bản tin.
// Renewed = true khi email đã từng đăng ký và được kích hoạt lại.
type SubscribeResult struct {
	Email   string `json:"email"`
	Renewed bool   `json:"renewed"`
}

package global

import "testing"

type freeTextInput struct {
	Content string `validate:"required,no_xss"`
}

// TestValidateNoXSS kiểm tra validator no_xss chặn các mẫu XSS phổ biến
func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	safe := []string{
		"Xin chào, tôi muốn hỏi về giờ lễ Chúa nhật.",
		"Liên hệ lại giúp tôi qua số 0901234567.",
	}
	for _, content := range safe {
		if err := Validate.Struct(freeTextInput{Content: content}); err != nil {
			t.Errorf("Nội dung an toàn %q không được bị từ chối, nhận %v", content, err)
		}
	}

	dangerous := []string{
		"<script>alert(1)</script>",
		"xem tại javascript:void(0)",
		"<img src=x onerror=alert(1)>",
		"<IFRAME src='http://x'>",
	}
	for _, content := range dangerous {
		if err := Validate.Struct(freeTextInput{Content: content}); err == nil {
			t.Errorf("Nội dung %q phải bị validator no_xss từ chối", content)
		}
	}
}

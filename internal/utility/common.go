package utility

import (
	"regexp"
	"time"

	"church_connect/internal/common"
)

// UnixMilli dùng để lấy mili giây của thời gian cho trước
// @params - thời gian
// @returns - mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli dùng để lấy thời gian hiện tại tính bằng mili giây
// Hàm này sẽ được sử dụng khi cần timestamp hiện tại
// @returns - timestamp hiện tại (tính bằng mili giây)
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// ValidateEmail kiểm tra định dạng email
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return common.ErrInvalidEmail
	}
	return nil
}

// ValidatePassword kiểm tra độ dài tối thiểu của mật khẩu
func ValidatePassword(password string) error {
	if len(password) < 6 {
		return common.ErrWeakPassword
	}
	return nil
}

package utility

import (
	"golang.org/x/crypto/bcrypt"

	"church_connect/internal/common"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
// @params - mật khẩu dạng plain text
// @returns - chuỗi hash và lỗi nếu có
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// CheckPassword so sánh mật khẩu plain text với hash đã lưu
// @params - hash đã lưu, mật khẩu cần kiểm tra
// @returns - nil nếu khớp, ErrInvalidCredentials nếu không
func CheckPassword(hashed string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}

package utility

import (
	"errors"
	"testing"

	"church_connect/internal/common"
)

// TestHashAndCheckPassword kiểm tra băm và so khớp mật khẩu
func TestHashAndCheckPassword(t *testing.T) {
	password := "matkhau123"

	hashed, err := HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword trả về lỗi: %v", err)
	}
	if hashed == password {
		t.Error("Hash không được trùng với mật khẩu gốc")
	}

	if err := CheckPassword(hashed, password); err != nil {
		t.Errorf("CheckPassword với mật khẩu đúng trả về lỗi: %v", err)
	}

	if err := CheckPassword(hashed, "mat-khau-sai"); !errors.Is(err, common.ErrInvalidCredentials) {
		t.Errorf("CheckPassword với mật khẩu sai phải trả về ErrInvalidCredentials, nhận %v", err)
	}
}

// TestValidatePassword kiểm tra độ dài tối thiểu của mật khẩu
func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("12345"); !errors.Is(err, common.ErrWeakPassword) {
		t.Errorf("Mật khẩu 5 ký tự phải trả về ErrWeakPassword, nhận %v", err)
	}
	if err := ValidatePassword("123456"); err != nil {
		t.Errorf("Mật khẩu 6 ký tự phải hợp lệ, nhận %v", err)
	}
}

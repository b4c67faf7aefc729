package utility

import (
	"errors"
	"testing"

	"church_connect/internal/common"
)

const testSecret = "test-secret-key"

// TestCreateAndVerifyToken kiểm tra chu trình tạo và xác thực token
func TestCreateAndVerifyToken(t *testing.T) {
	adminID := "64f1a2b3c4d5e6f7a8b9c0d1"

	token, err := CreateToken(testSecret, adminID, 7)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}
	if token == "" {
		t.Fatal("CreateToken trả về token rỗng")
	}

	gotID, err := VerifyToken(testSecret, token)
	if err != nil {
		t.Fatalf("VerifyToken trả về lỗi với token hợp lệ: %v", err)
	}
	if gotID != adminID {
		t.Errorf("VerifyToken subject = %q, mong muốn %q", gotID, adminID)
	}
}

// TestVerifyTokenWrongSecret kiểm tra token ký bằng secret khác bị từ chối
func TestVerifyTokenWrongSecret(t *testing.T) {
	token, err := CreateToken(testSecret, "admin1", 7)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	if _, err := VerifyToken("secret-khac", token); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Token ký sai secret phải trả về ErrTokenInvalid, nhận %v", err)
	}
}

// TestVerifyTokenExpired kiểm tra token đã hết hạn
func TestVerifyTokenExpired(t *testing.T) {
	// Thời hạn âm để token hết hạn ngay khi tạo
	token, err := CreateToken(testSecret, "admin1", -1)
	if err != nil {
		t.Fatalf("CreateToken trả về lỗi: %v", err)
	}

	if _, err := VerifyToken(testSecret, token); !errors.Is(err, common.ErrTokenExpired) {
		t.Errorf("Token hết hạn phải trả về ErrTokenExpired, nhận %v", err)
	}
}

// TestVerifyTokenMalformed kiểm tra chuỗi không phải JWT
func TestVerifyTokenMalformed(t *testing.T) {
	if _, err := VerifyToken(testSecret, "khong-phai-token"); !errors.Is(err, common.ErrTokenInvalid) {
		t.Errorf("Chuỗi không phải JWT phải trả về ErrTokenInvalid, nhận %v", err)
	}
}

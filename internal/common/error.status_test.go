package common

import (
	"errors"
	"fmt"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

// TestErrorIs kiểm tra so khớp lỗi qua errors.Is
func TestErrorIs(t *testing.T) {
	if !errors.Is(ErrNotFound, ErrNotFound) {
		t.Error("ErrNotFound phải khớp với chính nó qua errors.Is")
	}
	if errors.Is(ErrNotFound, ErrTokenInvalid) {
		t.Error("ErrNotFound không được khớp với ErrTokenInvalid")
	}

	wrapped := fmt.Errorf("lớp ngoài: %w", ErrAlreadySubscribed)
	if !errors.Is(wrapped, ErrAlreadySubscribed) {
		t.Error("Lỗi được bọc phải khớp với sentinel gốc qua errors.Is")
	}
}

// TestErrorStatusCodes kiểm tra status code của các sentinel chính
func TestErrorStatusCodes(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"ErrInvalidCredentials", ErrInvalidCredentials, StatusUnauthorized},
		{"ErrTokenMissing", ErrTokenMissing, StatusUnauthorized},
		{"ErrTokenExpired", ErrTokenExpired, StatusUnauthorized},
		{"ErrNotFound", ErrNotFound, StatusNotFound},
		{"ErrInvalidInput", ErrInvalidInput, StatusBadRequest},
		{"ErrWeakPassword", ErrWeakPassword, StatusBadRequest},
		{"ErrAdminExists", ErrAdminExists, StatusBadRequest},
		{"ErrAlreadySubscribed", ErrAlreadySubscribed, StatusBadRequest},
		{"ErrMongoConnection", ErrMongoConnection, StatusServiceUnavailable},
		{"ErrMongoTimeout", ErrMongoTimeout, StatusServiceUnavailable},
		{"ErrMongoDuplicate", ErrMongoDuplicate, StatusConflict},
	}

	for _, tc := range cases {
		var customErr *Error
		if !errors.As(tc.err, &customErr) {
			t.Errorf("%s: phải là *Error", tc.name)
			continue
		}
		if customErr.StatusCode != tc.want {
			t.Errorf("%s: StatusCode = %d, mong muốn %d", tc.name, customErr.StatusCode, tc.want)
		}
	}
}

// TestConvertMongoError kiểm tra chuyển đổi lỗi MongoDB
func TestConvertMongoError(t *testing.T) {
	if got := ConvertMongoError(nil); got != nil {
		t.Errorf("ConvertMongoError(nil) = %v, mong muốn nil", got)
	}

	if got := ConvertMongoError(mongo.ErrNoDocuments); !errors.Is(got, ErrNotFound) {
		t.Errorf("mongo.ErrNoDocuments phải được chuyển thành ErrNotFound, nhận %v", got)
	}

	// Lỗi custom giữ nguyên, không bị bọc lại
	if got := ConvertMongoError(ErrAlreadySubscribed); !errors.Is(got, ErrAlreadySubscribed) {
		t.Errorf("Lỗi custom phải được giữ nguyên, nhận %v", got)
	}

	// Lỗi không xác định trở thành lỗi hệ thống 500
	unknown := errors.New("lỗi lạ")
	got := ConvertMongoError(unknown)
	var customErr *Error
	if !errors.As(got, &customErr) {
		t.Fatalf("Lỗi không xác định phải được bọc thành *Error, nhận %T", got)
	}
	if customErr.StatusCode != StatusInternalServerError {
		t.Errorf("Lỗi không xác định phải có StatusCode 500, nhận %d", customErr.StatusCode)
	}
	if customErr.Code.Code != ErrCodeInternalServer.Code {
		t.Errorf("Lỗi không xác định phải mang mã %s, nhận %s", ErrCodeInternalServer.Code, customErr.Code.Code)
	}
}

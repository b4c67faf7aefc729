package utility

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"church_connect/internal/common"
)

// CreateToken tạo JWT token cho admin với thời hạn expireDays ngày
// @params - secret ký token, adminID làm subject, số ngày hết hạn
// @returns - chuỗi token đã ký và lỗi nếu có
func CreateToken(secret string, adminID string, expireDays int) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   adminID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expireDays) * 24 * time.Hour)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể tạo token", common.StatusInternalServerError, err)
	}
	return signed, nil
}

// VerifyToken kiểm tra và giải mã JWT token
// @params - secret ký token, chuỗi token cần kiểm tra
// @returns - adminID (subject) và lỗi nếu token không hợp lệ hoặc hết hạn
func VerifyToken(secret string, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		// Chỉ chấp nhận HMAC, chặn thuật toán khác (ví dụ none)
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject == "" {
		return "", common.ErrTokenInvalid
	}

	return claims.Subject, nil
}

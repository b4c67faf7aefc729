package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authsvc "church_connect/internal/api/auth/service"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/logger"
	"church_connect/internal/utility"
)

// AuthManager quản lý xác thực quản trị viên
type AuthManager struct {
	AdminCRUD *authsvc.AdminService
	JwtSecret string
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo một instance mới của AuthManager (private constructor)
func newAuthManager() (*AuthManager, error) {
	newManager := new(AuthManager)

	adminService, err := authsvc.NewAdminService()
	if err != nil {
		return nil, fmt.Errorf("failed to create admin service: %v", err)
	}
	newManager.AdminCRUD = adminService
	newManager.JwtSecret = global.MongoDB_ServerConfig.JwtSecret

	return newManager, nil
}

// AuthMiddleware middleware xác thực cho Fiber.
// Yêu cầu header Authorization dạng "Bearer <token>", token phải là JWT hợp lệ
// và quản trị viên trong token phải còn tồn tại trong hệ thống.
func AuthMiddleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		authManager := GetAuthManager()

		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và thời hạn của token
		adminID, err := utility.VerifyToken(authManager.JwtSecret, token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		// Kiểm tra quản trị viên trong token còn tồn tại không
		admin, err := authManager.AdminCRUD.FindOneById(context.Background(), utility.String2ObjectID(adminID))
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":     c.Path(),
				"admin_id": adminID,
			}).Warn("❌ [AUTH] Admin in token no longer exists")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin quản trị viên vào context
		c.Locals("admin_id", utility.ObjectID2String(admin.ID))
		c.Locals("admin", admin)

		return c.Next()
	}
}

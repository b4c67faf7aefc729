// Package authsvc - service quản trị viên (Admin).
package authsvc

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "church_connect/internal/api/auth/dto"
	models "church_connect/internal/api/auth/models"
	basesvc "church_connect/internal/api/base/service"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/utility"
)

// RoleAdmin là vai trò mặc định gán cho quản trị viên khi đăng ký
const RoleAdmin = "admin"

// AdminService là cấu trúc chứa các phương thức liên quan đến quản trị viên
type AdminService struct {
	*basesvc.BaseServiceMongoImpl[models.Admin]
}

// NewAdminService tạo mới AdminService
func NewAdminService() (*AdminService, error) {
	adminCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Admins)
	if !exist {
		return nil, fmt.Errorf("failed to get admins collection: %v", common.ErrNotFound)
	}

	return &AdminService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Admin](adminCollection),
	}, nil
}

// Register đăng ký quản trị viên mới.
// Username và email phải chưa tồn tại, mật khẩu tối thiểu 6 ký tự.
func (s *AdminService) Register(ctx context.Context, input *authdto.AdminRegisterInput) (models.Admin, error) {
	var zero models.Admin

	if err := utility.ValidateEmail(input.Email); err != nil {
		return zero, err
	}
	if err := utility.ValidatePassword(input.Password); err != nil {
		return zero, err
	}

	// Kiểm tra trùng username hoặc email
	exists, err := s.BaseServiceMongoImpl.DocumentExists(ctx, bson.M{
		"$or": []bson.M{
			{"username": input.Username},
			{"email": input.Email},
		},
	})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.ErrAdminExists
	}

	hashedPassword, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, err
	}

	admin := models.Admin{
		Username: input.Username,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     RoleAdmin,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, admin)
	if err != nil {
		return zero, err
	}

	logrus.WithFields(logrus.Fields{
		"username": created.Username,
		"email":    created.Email,
	}).Info("Đã đăng ký quản trị viên mới")

	return created, nil
}

// Login đăng nhập quản trị viên bằng username (hoặc email) và mật khẩu.
// Trả về JWT có thời hạn cùng thông tin quản trị viên.
func (s *AdminService) Login(ctx context.Context, input *authdto.AdminLoginInput) (*authdto.AdminLoginResult, error) {
	admin, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{
		"$or": []bson.M{
			{"username": input.Username},
			{"email": input.Username},
		},
	}, nil)
	if err != nil {
		// Không tiết lộ tài khoản có tồn tại hay không
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.CheckPassword(admin.Password, input.Password); err != nil {
		return nil, err
	}

	cfg := global.MongoDB_ServerConfig
	token, err := utility.CreateToken(cfg.JwtSecret, utility.ObjectID2String(admin.ID), cfg.JwtExpireDays)
	if err != nil {
		return nil, err
	}

	// Lưu token mới nhất vào document của quản trị viên
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token": token,
		},
	}
	if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, admin.ID, updateData); err != nil {
		return nil, err
	}

	return &authdto.AdminLoginResult{
		Token: token,
		Admin: authdto.AdminInfo{
			ID:       utility.ObjectID2String(admin.ID),
			Username: admin.Username,
			Email:    admin.Email,
			Role:     admin.Role,
		},
	}, nil
}

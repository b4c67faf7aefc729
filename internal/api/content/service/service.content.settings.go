package contentsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "church_connect/internal/api/base/service"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	"church_connect/internal/common"
	"church_connect/internal/global"
)

// SettingsService là service quản lý cấu hình trang (document singleton)
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.SiteSettings]
}

// NewSettingsService tạo mới SettingsService
func NewSettingsService() (*SettingsService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.SiteSettings)
	if !exist {
		return nil, fmt.Errorf("failed to get site_settings collection: %v", common.ErrNotFound)
	}

	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.SiteSettings](collection),
	}, nil
}

// singletonFilter là filter trỏ tới document cấu hình duy nhất
func singletonFilter() bson.M {
	return bson.M{"type": contentmodels.SiteSettingsType}
}

// defaultSiteSettings là cấu hình trả về khi chưa từng có document cấu hình nào
func defaultSiteSettings() contentmodels.SiteSettings {
	return contentmodels.SiteSettings{
		Type:         contentmodels.SiteSettingsType,
		MusicURL:     "",
		MusicEnabled: false,
	}
}

// musicProjection trích phần nhạc nền công khai từ cấu hình.
// Khi nhạc nền đang tắt, URL trả về là chuỗi rỗng.
func musicProjection(settings contentmodels.SiteSettings) *contentdto.SiteMusicResult {
	result := &contentdto.SiteMusicResult{}
	if settings.MusicEnabled {
		result.MusicURL = settings.MusicURL
	}
	return result
}

// Get lấy cấu hình trang hiện tại.
// Nếu chưa từng được cấu hình, trả về giá trị mặc định (nhạc nền tắt) thay vì lỗi.
func (s *SettingsService) Get(ctx context.Context) (contentmodels.SiteSettings, error) {
	settings, err := s.BaseServiceMongoImpl.FindOne(ctx, singletonFilter(), nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return defaultSiteSettings(), nil
		}
		return settings, err
	}
	return settings, nil
}

// Update tạo hoặc cập nhật document cấu hình duy nhất (upsert)
func (s *SettingsService) Update(ctx context.Context, input *contentdto.SiteSettingsUpdateInput) (contentmodels.SiteSettings, error) {
	return s.BaseServiceMongoImpl.Upsert(ctx, singletonFilter(), bson.M{
		"type":         contentmodels.SiteSettingsType,
		"musicUrl":     input.MusicURL,
		"musicEnabled": input.MusicEnabled,
	})
}

// GetMusic trả về URL nhạc nền cho trang công khai.
// Khi nhạc nền đang tắt, URL trả về là chuỗi rỗng.
func (s *SettingsService) GetMusic(ctx context.Context) (*contentdto.SiteMusicResult, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return musicProjection(settings), nil
}

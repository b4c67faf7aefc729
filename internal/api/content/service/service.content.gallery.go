package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "church_connect/internal/api/base/service"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/utility"
)

// GalleryService là service quản lý thư viện ảnh
type GalleryService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.GalleryImage]
}

// NewGalleryService tạo mới GalleryService
func NewGalleryService() (*GalleryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.GalleryImages)
	if !exist {
		return nil, fmt.Errorf("failed to get gallery_images collection: %v", common.ErrNotFound)
	}

	return &GalleryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.GalleryImage](collection),
	}, nil
}

// Create thêm ảnh mới vào thư viện, category mặc định là "general"
func (s *GalleryService) Create(ctx context.Context, input *contentdto.GalleryImageCreateInput) (contentmodels.GalleryImage, error) {
	image := contentmodels.GalleryImage{
		Title:       input.Title,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Description: input.Description,
		UploadedAt:  utility.CurrentTimeInMilli(),
	}
	if image.Category == "" {
		image.Category = contentmodels.GalleryCategoryDefault
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, image)
}

// List lấy danh sách ảnh, mới tải lên trước.
// Nếu category khác rỗng thì chỉ lấy các ảnh thuộc danh mục đó.
func (s *GalleryService) List(ctx context.Context, category string) ([]contentmodels.GalleryImage, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "uploadedAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

package contentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "church_connect/internal/api/base/service"
	contentdto "church_connect/internal/api/content/dto"
	contentmodels "church_connect/internal/api/content/models"
	"church_connect/internal/common"
	"church_connect/internal/global"
)

// SermonService là service quản lý bài giảng
type SermonService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Sermon]
}

// NewSermonService tạo mới SermonService
func NewSermonService() (*SermonService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Sermons)
	if !exist {
		return nil, fmt.Errorf("failed to get sermons collection: %v", common.ErrNotFound)
	}

	return &SermonService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Sermon](collection),
	}, nil
}

// Create tạo bài giảng mới với số lượt xem bắt đầu từ 0
func (s *SermonService) Create(ctx context.Context, input *contentdto.SermonCreateInput) (contentmodels.Sermon, error) {
	sermon := contentmodels.Sermon{
		Title:       input.Title,
		Speaker:     input.Speaker,
		Date:        input.Date,
		Description: input.Description,
		Image:       input.Image,
		Series:      input.Series,
		VideoURL:    input.VideoURL,
		AudioURL:    input.AudioURL,
		Views:       0,
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, sermon)
}

// List lấy danh sách bài giảng, mới nhất trước.
// Nếu series khác rỗng thì chỉ lấy các bài giảng thuộc loạt bài đó.
func (s *SermonService) List(ctx context.Context, series string) ([]contentmodels.Sermon, error) {
	filter := bson.M{}
	if series != "" {
		filter["series"] = series
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// GetAndCountView lấy chi tiết một bài giảng và tăng số lượt xem thêm 1.
// Việc tăng được thực hiện nguyên tử, kết quả trả về đã bao gồm lượt xem mới.
func (s *SermonService) GetAndCountView(ctx context.Context, id primitive.ObjectID) (contentmodels.Sermon, error) {
	return s.BaseServiceMongoImpl.IncrementField(ctx, id, "views", 1)
}

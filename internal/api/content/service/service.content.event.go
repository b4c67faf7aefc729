// Package contentsvc - các service của domain content.
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
)

// EventService là service quản lý sự kiện của hội thánh
type EventService struct {
	*basesvc.BaseServiceMongoImpl[contentmodels.Event]
}

// NewEventService tạo mới EventService
func NewEventService() (*EventService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Events)
	if !exist {
		return nil, fmt.Errorf("failed to get events collection: %v", common.ErrNotFound)
	}

	return &EventService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[contentmodels.Event](collection),
	}, nil
}

// Create tạo sự kiện mới, category mặc định là "upcoming" nếu không chỉ định
func (s *EventService) Create(ctx context.Context, input *contentdto.EventCreateInput) (contentmodels.Event, error) {
	event := contentmodels.Event{
		Title:       input.Title,
		Date:        input.Date,
		Time:        input.Time,
		Location:    input.Location,
		Description: input.Description,
		Image:       input.Image,
		Category:    input.Category,
	}
	if event.Category == "" {
		event.Category = contentmodels.EventCategoryDefault
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, event)
}

// List lấy danh sách sự kiện, mới nhất trước (sắp xếp theo ngày giảm dần).
// Nếu category khác rỗng, chỉ trả về các sự kiện thuộc category đó.
func (s *EventService) List(ctx context.Context, category string) ([]contentmodels.Event, error) {
	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

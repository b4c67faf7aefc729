// Package engagementsvc - các service của domain engagement.
package engagementsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "church_connect/internal/api/base/service"
	engagementdto "church_connect/internal/api/engagement/dto"
	engagementmodels "church_connect/internal/api/engagement/models"
	"church_connect/internal/common"
	"church_connect/internal/global"
)

// MessageService là service quản lý tin nhắn liên hệ
type MessageService struct {
	*basesvc.BaseServiceMongoImpl[engagementmodels.ContactMessage]
}

// NewMessageService tạo mới MessageService
func NewMessageService() (*MessageService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.ContactMessages)
	if !exist {
		return nil, fmt.Errorf("failed to get contact_messages collection: %v", common.ErrNotFound)
	}

	return &MessageService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[engagementmodels.ContactMessage](collection),
	}, nil
}

// Create lưu tin nhắn liên hệ mới với trạng thái "new"
func (s *MessageService) Create(ctx context.Context, input *engagementdto.ContactMessageCreateInput) (engagementmodels.ContactMessage, error) {
	message := engagementmodels.ContactMessage{
		Name:    input.Name,
		Email:   input.Email,
		Subject: input.Subject,
		Message: input.Message,
		Status:  engagementmodels.MessageStatusNew,
	}

	return s.BaseServiceMongoImpl.InsertOne(ctx, message)
}

// List lấy danh sách tin nhắn, mới nhất trước.
// Nếu status khác rỗng thì chỉ lấy các tin nhắn ở trạng thái đó.
func (s *MessageService) List(ctx context.Context, status string) ([]engagementmodels.ContactMessage, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// UpdateStatus cập nhật trạng thái của một tin nhắn
func (s *MessageService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (engagementmodels.ContactMessage, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"status": status,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

package engagementsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "church_connect/internal/api/base/service"
	engagementdto "church_connect/internal/api/engagement/dto"
	engagementmodels "church_connect/internal/api/engagement/models"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/utility"
)

// SubscriberService là service quản lý người đăng ký bản tin
type SubscriberService struct {
	*basesvc.BaseServiceMongoImpl[engagementmodels.Subscriber]
}

// NewSubscriberService tạo mới SubscriberService
func NewSubscriberService() (*SubscriberService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("failed to get subscribers collection: %v", common.ErrNotFound)
	}

	return &SubscriberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[engagementmodels.Subscriber](collection),
	}, nil
}

// subscribeDecision là hướng xử lý cho một yêu cầu đăng ký bản tin
type subscribeDecision int

const (
	subscribeCreate     subscribeDecision = iota // email chưa từng đăng ký: tạo mới
	subscribeReactivate                          // email từng hủy đăng ký: kích hoạt lại
	subscribeReject                              // email đang đăng ký: báo lỗi
)

// decideSubscribe chọn hướng xử lý dựa trên subscriber hiện có (nil nếu email chưa từng đăng ký)
func decideSubscribe(existing *engagementmodels.Subscriber) subscribeDecision {
	if existing == nil {
		return subscribeCreate
	}
	if existing.Active {
		return subscribeReject
	}
	return subscribeReactivate
}

// Subscribe đăng ký email nhận bản tin.
// - Email đang đăng ký: trả về lỗi đã đăng ký
// - Email từng hủy đăng ký: kích hoạt lại (Renewed = true)
// - Email mới: tạo đăng ký mới
func (s *SubscriberService) Subscribe(ctx context.Context, input *engagementdto.SubscribeInput) (*engagementdto.SubscribeResult, error) {
	if err := utility.ValidateEmail(input.Email); err != nil {
		return nil, err
	}

	found, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	var existing *engagementmodels.Subscriber
	if err == nil {
		existing = &found
	}

	switch decideSubscribe(existing) {
	case subscribeReject:
		return nil, common.ErrAlreadySubscribed

	case subscribeReactivate:
		updateData := &basesvc.UpdateData{
			Set: map[string]interface{}{
				"active":       true,
				"subscribedAt": utility.CurrentTimeInMilli(),
			},
		}
		if _, err := s.BaseServiceMongoImpl.UpdateById(ctx, existing.ID, updateData); err != nil {
			return nil, err
		}
		return &engagementdto.SubscribeResult{Email: input.Email, Renewed: true}, nil

	default:
		subscriber := engagementmodels.Subscriber{
			Email:        input.Email,
			Active:       true,
			SubscribedAt: utility.CurrentTimeInMilli(),
		}
		if _, err := s.BaseServiceMongoImpl.InsertOne(ctx, subscriber); err != nil {
			return nil, err
		}
		return &engagementdto.SubscribeResult{Email: input.Email, Renewed: false}, nil
	}
}

// Unsubscribe hủy đăng ký bản tin (soft delete: chỉ tắt cờ active, giữ lại document)
func (s *SubscriberService) Unsubscribe(ctx context.Context, id primitive.ObjectID) (engagementmodels.Subscriber, error) {
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"active": false,
		},
	}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// ListActive lấy danh sách người đăng ký đang hoạt động, đăng ký gần nhất trước
func (s *SubscriberService) ListActive(ctx context.Context) ([]engagementmodels.Subscriber, error) {
	opts := options.Find().SetSort(bson.D{{Key: "subscribedAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"active": true}, opts)
}

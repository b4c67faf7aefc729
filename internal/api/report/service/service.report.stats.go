// Package reportsvc - service tổng hợp số liệu cho trang quản trị.
package reportsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	contentsvc "church_connect/internal/api/content/service"
	engagementmodels "church_connect/internal/api/engagement/models"
	engagementsvc "church_connect/internal/api/engagement/service"
	reportdto "church_connect/internal/api/report/dto"
)

// StatsService tổng hợp số liệu từ các collection nội dung và tương tác
type StatsService struct {
	eventService      *contentsvc.EventService
	sermonService     *contentsvc.SermonService
	galleryService    *contentsvc.GalleryService
	messageService    *engagementsvc.MessageService
	subscriberService *engagementsvc.SubscriberService
}

// NewStatsService tạo mới StatsService
func NewStatsService() (*StatsService, error) {
	eventService, err := contentsvc.NewEventService()
	if err != nil {
		return nil, fmt.Errorf("failed to create event service: %v", err)
	}
	sermonService, err := contentsvc.NewSermonService()
	if err != nil {
		return nil, fmt.Errorf("failed to create sermon service: %v", err)
	}
	galleryService, err := contentsvc.NewGalleryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create gallery service: %v", err)
	}
	messageService, err := engagementsvc.NewMessageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create message service: %v", err)
	}
	subscriberService, err := engagementsvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber service: %v", err)
	}

	return &StatsService{
		eventService:      eventService,
		sermonService:     sermonService,
		galleryService:    galleryService,
		messageService:    messageService,
		subscriberService: subscriberService,
	}, nil
}

// GetSiteStats đếm số liệu tổng hợp cho trang quản trị
func (s *StatsService) GetSiteStats(ctx context.Context) (*reportdto.SiteStats, error) {
	totalEvents, err := s.eventService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalSermons, err := s.sermonService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalGalleryImages, err := s.galleryService.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	totalMessages, err := s.messageService.CountDocuments(ctx, bson.M{"status": engagementmodels.MessageStatusNew})
	if err != nil {
		return nil, err
	}
	totalSubscribers, err := s.subscriberService.CountDocuments(ctx, bson.M{"active": true})
	if err != nil {
		return nil, err
	}

	return &reportdto.SiteStats{
		TotalEvents:        totalEvents,
		TotalSermons:       totalSermons,
		TotalMessages:      totalMessages,
		TotalGalleryImages: totalGalleryImages,
		TotalSubscribers:   totalSubscribers,
	}, nil
}

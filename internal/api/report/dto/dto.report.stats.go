// Package reportdto - các DTO của domain report.
package reportdto

// SiteStats tổng hợp số liệu cho trang quản trị.
// TotalMessages chỉ đếm tin nhắn chưa xử lý, TotalSubscribers chỉ đếm đăng ký đang hoạt động.
type SiteStats struct {
	TotalEvents        int64 `json:"totalEvents"`
	TotalSermons       int64 `json:"totalSermons"`
	TotalMessages      int64 `json:"totalMessages"`
	TotalGalleryImages int64 `json:"totalGalleryImages"`
	TotalSubscribers   int64 `json:"totalSubscribers"`
}

package contentdto

// SiteSettingsUpdateInput đầu vào cập nhật cấu hình trang (upsert document singleton).
type SiteSettingsUpdateInput struct {
	MusicURL     string `json:"musicUrl"`
	MusicEnabled bool   `json:"musicEnabled"`
}

// SiteMusicResult kết quả trả về cho endpoint nhạc nền công khai.
// MusicURL rỗng khi nhạc nền đang tắt.
type SiteMusicResult struct {
	MusicURL string `json:"musicUrl"`
}

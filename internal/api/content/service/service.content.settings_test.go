package contentsvc

import (
	"testing"

	contentmodels "church_connect/internal/api/content/models"
)

func TestDefaultSiteSettings(t *testing.T) {
	settings := defaultSiteSettings()

	if settings.Type != contentmodels.SiteSettingsType {
		t.Errorf("Cấu hình mặc định phải có type %q, nhận được %q", contentmodels.SiteSettingsType, settings.Type)
	}
	if settings.MusicURL != "" {
		t.Errorf("Cấu hình mặc định phải có URL nhạc nền rỗng, nhận được %q", settings.MusicURL)
	}
	if settings.MusicEnabled {
		t.Error("Cấu hình mặc định phải tắt nhạc nền")
	}
}

func TestMusicProjection(t *testing.T) {
	enabled := musicProjection(contentmodels.SiteSettings{
		Type:         contentmodels.SiteSettingsType,
		MusicURL:     "https://example.com/nhac-nen.mp3",
		MusicEnabled: true,
	})
	if enabled.MusicURL != "https://example.com/nhac-nen.mp3" {
		t.Errorf("Khi nhạc nền bật phải trả về URL gốc, nhận được %q", enabled.MusicURL)
	}

	disabled := musicProjection(contentmodels.SiteSettings{
		Type:         contentmodels.SiteSettingsType,
		MusicURL:     "https://example.com/nhac-nen.mp3",
		MusicEnabled: false,
	})
	if disabled.MusicURL != "" {
		t.Errorf("Khi nhạc nền tắt URL trả về phải rỗng, nhận được %q", disabled.MusicURL)
	}
}

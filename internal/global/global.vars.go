package global

import (
	"church_connect/config"
	"church_connect/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_Site_CollectionName chứa tên các collection trong MongoDB
type MongoDB_Site_CollectionName struct {
	Admins          string // Tên collection cho quản trị viên
	Events          string // Tên collection cho sự kiện
	Sermons         string // Tên collection cho bài giảng
	GalleryImages   string // Tên collection cho hình ảnh thư viện
	ContactMessages string // Tên collection cho tin nhắn liên hệ
	Subscribers     string // Tên collection cho người đăng ký bản tin
	SiteSettings    string // Tên collection cho cấu hình trang (singleton)
}

// Các biến toàn cục
var Validate *validator.Validate                                                     // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                                    // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration                                       // Cấu hình của server
var MongoDB_ColNames MongoDB_Site_CollectionName = *new(MongoDB_Site_CollectionName) // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections

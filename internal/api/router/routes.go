package router

import (
	"github.com/gofiber/fiber/v3"

	"church_connect/internal/api/middleware"
)

// ============================================================================
// LƯU Ý: CÁCH ĐĂNG KÝ MIDDLEWARE TRONG FIBER V3
// ============================================================================
//
// Fiber v3 có vấn đề với cách đăng ký middleware trực tiếp trong route:
//
//	router.Get("/path", middleware.AuthMiddleware(), handler)
//	→ Middleware sẽ KHÔNG được gọi!
//
// Cách đúng là tạo group và đăng ký middleware qua .Use():
//
//	RegisterRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{authMiddleware}, handler)
//
// Mọi route mới trong các domain router PHẢI dùng RegisterRouteWithMiddleware.
// ============================================================================

// RoutePrefix chứa các prefix cơ bản cho API
type RoutePrefix struct {
	Base string // Prefix cơ bản (/api)
	V1   string // Prefix cho API version 1 (/api/v1)
}

// NewRoutePrefix tạo mới một instance của RoutePrefix với các giá trị mặc định
func NewRoutePrefix() RoutePrefix {
	base := "/api"
	return RoutePrefix{
		Base: base,
		V1:   base + "/v1",
	}
}

// Router quản lý việc định tuyến cho API
type Router struct {
	app   *fiber.App
	admin fiber.Router
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// AdminGroup trả về group /admin dùng chung đã gắn middleware xác thực.
// Group chỉ được tạo một lần để middleware không chạy lặp trên cùng request.
// Route công khai cùng prefix /admin phải được đăng ký trước lời gọi đầu tiên.
func (r *Router) AdminGroup(v1 fiber.Router) fiber.Router {
	if r.admin == nil {
		r.admin = v1.Group("/admin")
		r.admin.Use(middleware.AuthMiddleware())
	}
	return r.admin
}

// RegisterRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method (cách đúng theo Fiber v3).
// Middleware chỉ áp dụng cho các route trong group được tạo từ prefix.
func RegisterRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(mw)
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// RegisterFunc là hàm đăng ký route của một domain (do domain/router export).
type RegisterFunc func(v1 fiber.Router, r *Router) error

// APIVersion là phiên bản hiển thị trong banner gốc
const APIVersion = "1.0.0"

// SetupRoutes thiết lập tất cả các route cho ứng dụng.
// Caller truyền lần lượt Register của từng domain để tránh import cycle.
func SetupRoutes(app *fiber.App, regs ...RegisterFunc) error {
	// Banner gốc cho thao tác kiểm tra nhanh service
	app.Get("/", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Church Connect API",
			"version": APIVersion,
		})
	})

	prefix := NewRoutePrefix()
	v1 := app.Group(prefix.V1)
	r := NewRouter(app)
	for _, reg := range regs {
		if err := reg(v1, r); err != nil {
			return err
		}
	}
	return nil
}

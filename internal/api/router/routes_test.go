package router

import (
	"testing"

	"github.com/gofiber/fiber/v3"
)

// Group /admin phải được dùng chung giữa các domain router,
// nếu không middleware xác thực sẽ chạy lặp trên cùng một request.
func TestAdminGroupReuse(t *testing.T) {
	app := fiber.New()
	v1 := app.Group(NewRoutePrefix().V1)
	r := NewRouter(app)

	first := r.AdminGroup(v1)
	second := r.AdminGroup(v1)

	if first == nil {
		t.Fatal("AdminGroup phải trả về group hợp lệ")
	}
	if first != second {
		t.Error("AdminGroup phải trả về cùng một group cho mọi lời gọi")
	}
}

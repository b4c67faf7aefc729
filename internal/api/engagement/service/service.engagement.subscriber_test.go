package engagementsvc

import (
	"testing"

	engagementmodels "church_connect/internal/api/engagement/models"
)

// TestDecideSubscribe kiểm tra đủ ba nhánh xử lý đăng ký bản tin
func TestDecideSubscribe(t *testing.T) {
	// Email chưa từng đăng ký: tạo mới
	if got := decideSubscribe(nil); got != subscribeCreate {
		t.Errorf("Email chưa từng đăng ký phải trả về subscribeCreate, nhận %v", got)
	}

	// Email đang đăng ký: từ chối
	active := &engagementmodels.Subscriber{Email: "a@nhatho.vn", Active: true}
	if got := decideSubscribe(active); got != subscribeReject {
		t.Errorf("Email đang đăng ký phải trả về subscribeReject, nhận %v", got)
	}

	// Email từng hủy đăng ký: kích hoạt lại
	inactive := &engagementmodels.Subscriber{Email: "b@nhatho.vn", Active: false}
	if got := decideSubscribe(inactive); got != subscribeReactivate {
		t.Errorf("Email từng hủy đăng ký phải trả về subscribeReactivate, nhận %v", got)
	}
}

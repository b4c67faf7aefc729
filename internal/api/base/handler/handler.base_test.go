package basehdl

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"church_connect/internal/common"
	"church_connect/internal/global"
)

type sampleInput struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Note  string `json:"note" validate:"omitempty,min=3"`
}

func newTestHandler() *BaseHandler[struct{}, sampleInput, sampleInput] {
	global.InitValidator()
	return NewBaseHandler[struct{}, sampleInput, sampleInput](nil)
}

// TestValidateInput kiểm tra thông báo lỗi validate nêu đúng trường đầu tiên không hợp lệ
func TestValidateInput(t *testing.T) {
	h := newTestHandler()

	// Thiếu trường bắt buộc đầu tiên
	err := h.ValidateInput(&sampleInput{Email: "a@b.com"})
	if err == nil {
		t.Fatal("Input thiếu Name phải trả về lỗi")
	}
	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi validate phải là *common.Error, nhận %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("StatusCode phải là %d, nhận %d", common.StatusBadRequest, customErr.StatusCode)
	}
	if customErr.Message != "Thiếu trường bắt buộc: Name" {
		t.Errorf("Thông báo lỗi không đúng: %q", customErr.Message)
	}

	// Email sai định dạng
	err = h.ValidateInput(&sampleInput{Name: "Nguyễn Văn A", Email: "khong-phai-email"})
	if err == nil {
		t.Fatal("Email sai định dạng phải trả về lỗi")
	}
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi validate phải là *common.Error, nhận %T", err)
	}
	if customErr.Message != "Trường Email không đúng định dạng email" {
		t.Errorf("Thông báo lỗi email không đúng: %q", customErr.Message)
	}

	// Vi phạm min
	err = h.ValidateInput(&sampleInput{Name: "A", Email: "a@b.com", Note: "ab"})
	if err == nil {
		t.Fatal("Note ngắn hơn 3 ký tự phải trả về lỗi")
	}
	if !errors.As(err, &customErr) {
		t.Fatalf("Lỗi validate phải là *common.Error, nhận %T", err)
	}
	if customErr.Message != "Trường Note phải có ít nhất 3 ký tự" {
		t.Errorf("Thông báo lỗi min không đúng: %q", customErr.Message)
	}

	// Input hợp lệ
	if err := h.ValidateInput(&sampleInput{Name: "A", Email: "a@b.com"}); err != nil {
		t.Errorf("Input hợp lệ không được trả về lỗi, nhận %v", err)
	}
}

// TestValidateFilter kiểm tra các ràng buộc bảo mật của filter
func TestValidateFilter(t *testing.T) {
	h := newTestHandler()

	// Filter hợp lệ
	if err := h.validateFilter(map[string]interface{}{"category": "upcoming"}); err != nil {
		t.Errorf("Filter hợp lệ không được trả về lỗi, nhận %v", err)
	}

	// Trường bị cấm
	if err := h.validateFilter(map[string]interface{}{"password": "x"}); err == nil {
		t.Error("Filter chứa trường password phải bị từ chối")
	}

	// Operator không được phép
	filter := map[string]interface{}{
		"title": map[string]interface{}{"$regex": ".*"},
	}
	if err := h.validateFilter(filter); err == nil {
		t.Error("Filter chứa toán tử $regex phải bị từ chối")
	}

	// Operator được phép
	filter = map[string]interface{}{
		"views": map[string]interface{}{"$gte": 10},
	}
	if err := h.validateFilter(filter); err != nil {
		t.Errorf("Filter với toán tử $gte phải hợp lệ, nhận %v", err)
	}

	// Vượt quá số lượng trường cho phép
	tooMany := make(map[string]interface{})
	for i := 0; i < 11; i++ {
		tooMany[string(rune('a'+i))] = i
	}
	if err := h.validateFilter(tooMany); err == nil {
		t.Error("Filter có 11 trường phải bị từ chối")
	}
}

// TestNormalizeFilter kiểm tra việc chuyển đổi string thành ObjectID trong filter
func TestNormalizeFilter(t *testing.T) {
	h := newTestHandler()
	hexID := primitive.NewObjectID().Hex()

	// Trường có hậu tố Id chứa string ObjectID hợp lệ
	filter := h.normalizeFilter(map[string]interface{}{"eventId": hexID})
	if _, ok := filter["eventId"].(primitive.ObjectID); !ok {
		t.Errorf("eventId phải được chuyển thành ObjectID, nhận %T", filter["eventId"])
	}

	// Trường thường không bị chuyển đổi
	filter = h.normalizeFilter(map[string]interface{}{"title": hexID})
	if _, ok := filter["title"].(string); !ok {
		t.Errorf("title phải giữ nguyên kiểu string, nhận %T", filter["title"])
	}

	// MongoDB Extended JSON format
	filter = h.normalizeFilter(map[string]interface{}{
		"_id": map[string]interface{}{"$oid": hexID},
	})
	if _, ok := filter["_id"].(primitive.ObjectID); !ok {
		t.Errorf("$oid phải được chuyển thành ObjectID, nhận %T", filter["_id"])
	}

	// $oid không hợp lệ giữ nguyên giá trị gốc
	filter = h.normalizeFilter(map[string]interface{}{
		"_id": map[string]interface{}{"$oid": "khong-hop-le"},
	})
	if _, ok := filter["_id"].(map[string]interface{}); !ok {
		t.Errorf("$oid không hợp lệ phải giữ nguyên, nhận %T", filter["_id"])
	}

	// Mảng trong trường Id
	filter = h.normalizeFilter(map[string]interface{}{
		"sermonId": map[string]interface{}{
			"$in": []interface{}{hexID},
		},
	})
	inner, ok := filter["sermonId"].(map[string]interface{})
	if !ok {
		t.Fatalf("sermonId phải là map, nhận %T", filter["sermonId"])
	}
	arr, ok := inner["$in"].([]interface{})
	if !ok || len(arr) != 1 {
		t.Fatalf("$in phải là mảng 1 phần tử, nhận %v", inner["$in"])
	}
	if _, ok := arr[0].(primitive.ObjectID); !ok {
		t.Errorf("Phần tử trong $in phải được chuyển thành ObjectID, nhận %T", arr[0])
	}
}

// TestParseSortMap kiểm tra việc chuyển map sort sang bson.D
func TestParseSortMap(t *testing.T) {
	sortBson := parseSortMap(map[string]interface{}{
		"date":    float64(-1),
		"invalid": float64(2),
		"bogus":   "desc",
	})
	if len(sortBson) != 1 {
		t.Fatalf("Chỉ giá trị 1 và -1 được chấp nhận, nhận %d phần tử", len(sortBson))
	}
	if sortBson[0].Key != "date" || sortBson[0].Value != -1 {
		t.Errorf("Sort phải là date:-1, nhận %v", sortBson[0])
	}
}

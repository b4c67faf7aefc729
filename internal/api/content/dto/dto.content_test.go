package contentdto

import (
	"testing"

	"church_connect/internal/utility"
)

// TestSermonUpdateInputPartial kiểm tra input cập nhật chỉ sinh ra các trường có giá trị,
// với tên khóa trùng với bson tag của model (videoUrl, audioUrl...)
func TestSermonUpdateInputPartial(t *testing.T) {
	input := SermonUpdateInput{VideoURL: "https://example.com/v.mp4"}

	updateData := make(map[string]interface{})
	if _, err := utility.ConvertStruct(input, &updateData); err != nil {
		t.Fatalf("ConvertStruct trả về lỗi: %v", err)
	}

	if len(updateData) != 1 {
		t.Fatalf("Chỉ trường có giá trị mới được đưa vào update, nhận %d trường: %v", len(updateData), updateData)
	}
	if updateData["videoUrl"] != "https://example.com/v.mp4" {
		t.Errorf("Khóa videoUrl phải giữ đúng tên và giá trị, nhận %v", updateData)
	}
	if _, ok := updateData["videourl"]; ok {
		t.Error("Không được sinh khóa viết thường videourl")
	}
	if _, ok := updateData["title"]; ok {
		t.Error("Trường title bị bỏ trống không được đưa vào update")
	}
}

// TestEventUpdateInputPartial kiểm tra input cập nhật sự kiện không ghi đè các trường bỏ trống
func TestEventUpdateInputPartial(t *testing.T) {
	input := EventUpdateInput{Title: "Đêm thánh nhạc", Category: "special"}

	updateData := make(map[string]interface{})
	if _, err := utility.ConvertStruct(input, &updateData); err != nil {
		t.Fatalf("ConvertStruct trả về lỗi: %v", err)
	}

	if len(updateData) != 2 {
		t.Fatalf("Update phải gồm đúng 2 trường có giá trị, nhận %d: %v", len(updateData), updateData)
	}
	if updateData["title"] != "Đêm thánh nhạc" || updateData["category"] != "special" {
		t.Errorf("Dữ liệu update không khớp: %v", updateData)
	}
}

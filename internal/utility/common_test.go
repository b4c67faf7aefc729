package utility

import (
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"church_connect/internal/common"
)

// TestValidateEmail kiểm tra định dạng email hợp lệ và không hợp lệ
func TestValidateEmail(t *testing.T) {
	valid := []string{
		"admin@nhatho.vn",
		"nguoi.dung+tag@example.com",
		"a_b-c%d@sub.domain.org",
	}
	for _, email := range valid {
		if err := ValidateEmail(email); err != nil {
			t.Errorf("Email %q phải hợp lệ, nhận lỗi %v", email, err)
		}
	}

	invalid := []string{
		"",
		"khong-co-a-cong",
		"thieu-domain@",
		"@thieu-local.vn",
		"hai@cham@example.com",
		"thieu-tld@example",
	}
	for _, email := range invalid {
		if err := ValidateEmail(email); !errors.Is(err, common.ErrInvalidEmail) {
			t.Errorf("Email %q phải trả về ErrInvalidEmail, nhận %v", email, err)
		}
	}
}

// TestString2ObjectID kiểm tra chuyển đổi chuỗi hex sang ObjectID
func TestString2ObjectID(t *testing.T) {
	id := primitive.NewObjectID()
	if got := String2ObjectID(id.Hex()); got != id {
		t.Errorf("String2ObjectID phải trả về ObjectID gốc, nhận %v", got)
	}
	if got := String2ObjectID("khong-hop-le"); got != primitive.NilObjectID {
		t.Errorf("Chuỗi không hợp lệ phải trả về NilObjectID, nhận %v", got)
	}
}

// TestConvertStruct kiểm tra chuyển đổi struct qua JSON
func TestConvertStruct(t *testing.T) {
	type source struct {
		Title string `json:"title"`
		Views int64  `json:"views"`
	}
	type target struct {
		Title string `json:"title"`
		Views int64  `json:"views"`
		Extra string `json:"extra"`
	}

	var dst target
	if _, err := ConvertStruct(source{Title: "Bài giảng", Views: 5}, &dst); err != nil {
		t.Fatalf("ConvertStruct trả về lỗi: %v", err)
	}
	if dst.Title != "Bài giảng" || dst.Views != 5 {
		t.Errorf("Dữ liệu chuyển đổi không khớp: %+v", dst)
	}
	if dst.Extra != "" {
		t.Errorf("Trường không có trong source phải giữ giá trị zero, nhận %q", dst.Extra)
	}
}

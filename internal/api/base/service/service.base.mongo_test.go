package basesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

// TestToUpdateDataFromStruct kiểm tra chuyển struct thường thành $set
func TestToUpdateDataFromStruct(t *testing.T) {
	input := struct {
		Title string `bson:"title"`
		Views int64  `bson:"views"`
	}{Title: "Bài giảng", Views: 3}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set == nil {
		t.Fatal("Struct thường phải được wrap trong $set")
	}
	if update.Set["title"] != "Bài giảng" {
		t.Errorf("Set[title] = %v, mong muốn %q", update.Set["title"], "Bài giảng")
	}
}

// TestToUpdateDataPassthrough kiểm tra UpdateData được trả về nguyên vẹn
func TestToUpdateDataPassthrough(t *testing.T) {
	original := &UpdateData{Set: map[string]interface{}{"status": "read"}}

	update, err := ToUpdateData(original)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update != original {
		t.Error("UpdateData pointer phải được trả về nguyên vẹn, không copy")
	}

	byValue, err := ToUpdateData(*original)
	if err != nil {
		t.Fatalf("ToUpdateData với value trả về lỗi: %v", err)
	}
	if byValue.Set["status"] != "read" {
		t.Errorf("Set[status] = %v, mong muốn %q", byValue.Set["status"], "read")
	}
}

// TestToUpdateDataWithOperators kiểm tra map đã chứa operator MongoDB
func TestToUpdateDataWithOperators(t *testing.T) {
	input := map[string]interface{}{
		"$set":   map[string]interface{}{"active": true},
		"$unset": map[string]interface{}{"token": ""},
	}

	update, err := ToUpdateData(input)
	if err != nil {
		t.Fatalf("ToUpdateData trả về lỗi: %v", err)
	}
	if update.Set["active"] != true {
		t.Errorf("Set[active] = %v, mong muốn true", update.Set["active"])
	}
	if _, ok := update.Unset["token"]; !ok {
		t.Error("Unset phải chứa key token")
	}
}

// TestUpdateDataMarshal kiểm tra UpdateData mã hóa đúng operator bson
func TestUpdateDataMarshal(t *testing.T) {
	update := &UpdateData{
		Set:         map[string]interface{}{"musicEnabled": true},
		SetOnInsert: map[string]interface{}{"createdAt": int64(1)},
	}

	raw, err := bson.Marshal(update)
	if err != nil {
		t.Fatalf("bson.Marshal trả về lỗi: %v", err)
	}

	var decoded bson.M
	if err := bson.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("bson.Unmarshal trả về lỗi: %v", err)
	}
	if _, ok := decoded["$set"]; !ok {
		t.Error("UpdateData phải mã hóa thành operator $set")
	}
	if _, ok := decoded["$setOnInsert"]; !ok {
		t.Error("UpdateData phải mã hóa thành operator $setOnInsert")
	}
	if _, ok := decoded["$unset"]; ok {
		t.Error("Unset rỗng không được xuất hiện trong bson (omitempty)")
	}
}

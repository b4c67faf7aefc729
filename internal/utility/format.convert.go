package utility

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// String2ObjectID chuyển đổi chuỗi thành ObjectID
// @params - chuỗi cần chuyển đổi
// @returns - ObjectID
func String2ObjectID(id string) primitive.ObjectID {
	objectId, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID
	}
	return objectId
}

// ObjectID2String chuyển đổi ObjectID thành chuỗi
// @params - ObjectID cần chuyển đổi
// @returns - chuỗi ObjectID
func ObjectID2String(id primitive.ObjectID) string {
	stringObjectID := id.Hex()
	return stringObjectID
}

// ConvertStruct chuyển đổi một struct sang struct khác qua JSON
// Parameters:
//   - source: Struct nguồn cần chuyển đổi
//   - target: Con trỏ đến struct đích
//
// Returns:
//   - interface{}: Struct đích đã được chuyển đổi
//   - error: Lỗi nếu có
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	// Chuyển source thành JSON
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	// Chuyển JSON thành target struct
	err = json.Unmarshal(jsonData, target)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Package basehdl chứa các handler xử lý request HTTP trong ứng dụng.
// Package này cung cấp các chức năng CRUD cơ bản và các tiện ích để xử lý request/response.
package basehdl

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "church_connect/internal/api/base/service"
	"church_connect/internal/common"
	"church_connect/internal/global"
	"church_connect/internal/utility"
)

// FilterOptions cấu hình cho việc validate filter
type FilterOptions struct {
	DeniedFields     []string // Các trường bị cấm filter
	AllowedOperators []string // Các operator MongoDB được phép
	MaxFields        int      // Số lượng field tối đa trong một filter
}

// BaseHandler là base handler cho các Fiber handler, cung cấp các chức năng CRUD cơ bản.
// Struct này sử dụng Generic Type để có thể tái sử dụng cho nhiều loại model khác nhau.
//
// Type parameters:
// - T: Kiểu dữ liệu của model
// - CreateInput: Kiểu dữ liệu của input khi tạo mới
// - UpdateInput: Kiểu dữ liệu của input khi cập nhật
type BaseHandler[T any, CreateInput any, UpdateInput any] struct {
	BaseService   basesvc.BaseServiceMongo[T] // Service xử lý logic nghiệp vụ với MongoDB
	filterOptions FilterOptions               // Cấu hình validate filter
}

// NewBaseHandler tạo mới một BaseHandler với BaseService được cung cấp
func NewBaseHandler[T any, CreateInput any, UpdateInput any](baseService basesvc.BaseServiceMongo[T]) *BaseHandler[T, CreateInput, UpdateInput] {
	return &BaseHandler[T, CreateInput, UpdateInput]{
		BaseService: baseService,
		filterOptions: FilterOptions{
			DeniedFields: []string{
				"password",
				"token",
				"secret",
				"key",
				"hash",
			},
			AllowedOperators: []string{
				"$eq",
				"$gt",
				"$gte",
				"$lt",
				"$lte",
				"$in",
				"$nin",
				"$exists",
			},
			MaxFields: 10,
		},
	}
}

// ValidateInput thực hiện validate dữ liệu đầu vào bằng struct tag (validate, oneof, etc.)
// Lỗi trả về nêu rõ trường đầu tiên không hợp lệ theo thứ tự khai báo trong struct.
func (h *BaseHandler[T, CreateInput, UpdateInput]) ValidateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
			return common.NewError(
				common.ErrCodeValidationInput,
				formatValidationError(validationErrs[0]),
				common.StatusBadRequest,
				err,
			)
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// formatValidationError chuyển một lỗi validator thành thông báo dễ hiểu cho client
func formatValidationError(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Thiếu trường bắt buộc: %s", field)
	case "email":
		return fmt.Sprintf("Trường %s không đúng định dạng email", field)
	case "min":
		return fmt.Sprintf("Trường %s phải có ít nhất %s ký tự", field, fe.Param())
	case "max":
		return fmt.Sprintf("Trường %s vượt quá độ dài cho phép (%s ký tự)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("Trường %s phải là một trong các giá trị: %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("Trường %s phải là một URL hợp lệ", field)
	case "no_xss":
		return fmt.Sprintf("Trường %s chứa nội dung không được phép", field)
	default:
		return fmt.Sprintf("Trường %s không hợp lệ", field)
	}
}

// ParseRequestBody parse và validate dữ liệu từ request body.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
//
// Parameters:
// - c: Fiber context
// - input: Con trỏ tới struct sẽ chứa dữ liệu được parse
//
// Returns:
// - error: Lỗi nếu có trong quá trình parse hoặc validate
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	// Parse body thành struct
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	// Validate chi tiết input
	if err := h.ValidateInput(input); err != nil {
		return err
	}

	return nil
}

// ParseObjectIDParam lấy và validate ObjectID từ URI params.
//
// Parameters:
// - c: Fiber context
// - name: Tên param (thường là "id")
//
// Returns:
// - primitive.ObjectID: ObjectID đã parse
// - error: Lỗi nếu param rỗng hoặc không đúng định dạng
func (h *BaseHandler[T, CreateInput, UpdateInput]) ParseObjectIDParam(c fiber.Ctx, name string) (primitive.ObjectID, error) {
	id := c.Params(name)
	if id == "" {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			"ID không được để trống trong URL params",
			common.StatusBadRequest,
			nil,
		)
	}

	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("ID '%s' không đúng định dạng MongoDB ObjectID (phải là chuỗi hex 24 ký tự)", id),
			common.StatusBadRequest,
			nil,
		)
	}

	return utility.String2ObjectID(id), nil
}

// ProcessFilter xử lý và validate filter từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFilter(c fiber.Ctx) (map[string]interface{}, error) {
	var filter map[string]interface{}

	// Parse filter từ query
	filterStr := c.Query("filter", "{}")
	if err := json.Unmarshal([]byte(filterStr), &filter); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị filter nhận được: %s", err, filterStr),
			common.StatusBadRequest,
			err,
		)
	}

	// Normalize filter: chuyển đổi các string ObjectId thành ObjectID
	filter = h.normalizeFilter(filter)

	// Validate filter
	if err := h.validateFilter(filter); err != nil {
		return nil, err
	}

	return filter, nil
}

// normalizeFilter chuyển đổi các string có format ObjectId thành ObjectID trong filter
// Hỗ trợ các trường có tên kết thúc bằng "Id" hoặc "ID"
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilter(filter map[string]interface{}) map[string]interface{} {
	if filter == nil {
		return filter
	}

	normalized := make(map[string]interface{})
	for field, value := range filter {
		// Kiểm tra nếu field name kết thúc bằng "Id" hoặc "ID" (case-insensitive)
		fieldLower := strings.ToLower(field)
		isIDField := strings.HasSuffix(fieldLower, "id") && len(fieldLower) > 2

		normalized[field] = h.normalizeFilterValue(value, isIDField)
	}

	return normalized
}

// normalizeFilterValue chuyển đổi giá trị trong filter, hỗ trợ nested structures
func (h *BaseHandler[T, CreateInput, UpdateInput]) normalizeFilterValue(value interface{}, isIDField bool) interface{} {
	if value == nil {
		return value
	}

	// Hỗ trợ MongoDB Extended JSON format: {"$oid": "..."}
	if mapValue, ok := value.(map[string]interface{}); ok {
		if oidValue, hasOid := mapValue["$oid"]; hasOid {
			if oidStr, ok := oidValue.(string); ok {
				if primitive.IsValidObjectID(oidStr) {
					objID, err := primitive.ObjectIDFromHex(oidStr)
					if err == nil {
						return objID
					}
				}
			}
			// Nếu $oid không hợp lệ, trả về giá trị gốc
			return value
		}
	}

	// Nếu là string và field là ID field, thử chuyển đổi thành ObjectID
	if strValue, ok := value.(string); ok && isIDField {
		if primitive.IsValidObjectID(strValue) {
			objID, err := primitive.ObjectIDFromHex(strValue)
			if err == nil {
				return objID
			}
		}
		return strValue
	}

	// Nếu là mảng, xử lý từng phần tử
	if arrValue, ok := value.([]interface{}); ok {
		normalizedArr := make([]interface{}, len(arrValue))
		for i, item := range arrValue {
			normalizedArr[i] = h.normalizeFilterValue(item, isIDField)
		}
		return normalizedArr
	}

	// Nếu là map (cho các operator như $in, $nin, $eq, etc.), xử lý đệ quy
	if mapValue, ok := value.(map[string]interface{}); ok {
		normalizedMap := make(map[string]interface{})
		for key, val := range mapValue {
			normalizedMap[key] = h.normalizeFilterValue(val, isIDField)
		}
		return normalizedMap
	}

	return value
}

// validateFilter kiểm tra tính hợp lệ của filter
func (h *BaseHandler[T, CreateInput, UpdateInput]) validateFilter(filter map[string]interface{}) error {
	deniedFields := h.filterOptions.DeniedFields
	if len(deniedFields) == 0 {
		deniedFields = []string{"password", "token", "secret", "key", "hash"}
	}

	allowedOperators := h.filterOptions.AllowedOperators
	if len(allowedOperators) == 0 {
		allowedOperators = []string{"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists"}
	}

	maxFields := h.filterOptions.MaxFields
	if maxFields == 0 {
		maxFields = 10
	}

	// Kiểm tra số lượng field
	if len(filter) > maxFields {
		return common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Filter vượt quá số lượng trường cho phép. Tối đa %d trường, hiện tại có %d trường. Vui lòng giảm số lượng trường trong filter.", maxFields, len(filter)),
			common.StatusBadRequest,
			nil,
		)
	}

	// Kiểm tra từng field và operator
	for field, value := range filter {
		// Kiểm tra field có bị cấm không
		if contains(deniedFields, field) {
			return common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("Trường '%s' không được phép sử dụng trong filter vì lý do bảo mật. Vui lòng sử dụng các trường khác.", field),
				common.StatusBadRequest,
				nil,
			)
		}

		// Kiểm tra operator nếu value là map
		if mapValue, ok := value.(map[string]interface{}); ok {
			for op := range mapValue {
				if strings.HasPrefix(op, "$") && !contains(allowedOperators, op) {
					return common.NewError(
						common.ErrCodeValidationFormat,
						fmt.Sprintf("Toán tử MongoDB '%s' không được phép sử dụng. Các toán tử được phép: %v", op, allowedOperators),
						common.StatusBadRequest,
						nil,
					)
				}
			}
		}
	}

	return nil
}

// contains kiểm tra slice có chứa giá trị hay không
func contains(items []string, value string) bool {
	for _, item := range items {
		if item == value {
			return true
		}
	}
	return false
}

// ProcessFindOptions xử lý options tìm kiếm từ query string (projection, sort, limit, skip)
func (h *BaseHandler[T, CreateInput, UpdateInput]) ProcessFindOptions(c fiber.Ctx) (*options.FindOptions, error) {
	var rawOptions map[string]interface{}

	optionsStr := c.Query("options", "{}")
	if err := json.Unmarshal([]byte(optionsStr), &rawOptions); err != nil {
		return nil, common.NewError(
			common.ErrCodeValidationFormat,
			fmt.Sprintf("Options không đúng định dạng JSON. Chi tiết lỗi: %v. Giá trị options nhận được: %s", err, optionsStr),
			common.StatusBadRequest,
			err,
		)
	}

	opts := options.Find()

	if projection, ok := rawOptions["projection"].(map[string]interface{}); ok {
		opts.SetProjection(projection)
	}
	if sortMap, ok := rawOptions["sort"].(map[string]interface{}); ok {
		if sortBson := parseSortMap(sortMap); len(sortBson) > 0 {
			opts.SetSort(sortBson)
		}
	}
	if limit, ok := rawOptions["limit"].(float64); ok && limit > 0 {
		opts.SetLimit(int64(limit))
	}
	if skip, ok := rawOptions["skip"].(float64); ok && skip >= 0 {
		opts.SetSkip(int64(skip))
	}

	return opts, nil
}

// parseSortMap chuyển map sort từ JSON sang bson.D (chỉ chấp nhận giá trị 1 và -1)
func parseSortMap(sortMap map[string]interface{}) bson.D {
	sortBson := bson.D{}
	for field, value := range sortMap {
		var sortValue int
		switch v := value.(type) {
		case float64:
			sortValue = int(v)
		case int:
			sortValue = v
		default:
			continue
		}
		if sortValue != 1 && sortValue != -1 {
			continue
		}
		sortBson = append(sortBson, bson.E{Key: field, Value: sortValue})
	}
	return sortBson
}

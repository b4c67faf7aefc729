package basehdl

import (
	"context"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	"church_connect/internal/common"
	"church_connect/internal/utility"
)

// ====================================
// CÁC HANDLER CRUD CƠ BẢN
// ====================================

// Find xử lý request tìm kiếm nhiều document theo filter và options từ query string
func (h *BaseHandler[T, CreateInput, UpdateInput]) Find(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	opts, err := h.ProcessFindOptions(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	data, err := h.BaseService.Find(context.Background(), filter, opts)
	return h.HandleResponse(c, data, err)
}

// FindOneById xử lý request lấy một document theo ID
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindOneById(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	data, err := h.BaseService.FindOneById(context.Background(), id)
	return h.HandleResponse(c, data, err)
}

// FindWithPagination xử lý request tìm kiếm có phân trang.
// Page và limit lấy từ query string, mặc định page=1, limit=10.
func (h *BaseHandler[T, CreateInput, UpdateInput]) FindWithPagination(c fiber.Ctx) error {
	filter, err := h.ProcessFilter(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	opts, err := h.ProcessFindOptions(c)
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	page, err := strconv.ParseInt(c.Query("page", "1"), 10, 64)
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.ParseInt(c.Query("limit", "10"), 10, 64)
	if err != nil || limit < 1 || limit > 100 {
		limit = 10
	}

	data, err := h.BaseService.FindWithPagination(context.Background(), filter, page, limit, opts)
	return h.HandleResponse(c, data, err)
}

// UpdateById xử lý request cập nhật một document theo ID
func (h *BaseHandler[T, CreateInput, UpdateInput]) UpdateById(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	var input UpdateInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		return HandleErrorResponse(c, err)
	}

	// Chuyển input sang map qua JSON: chỉ các trường có giá trị mới xuất hiện
	// (nhờ omitempty), tên khóa theo json tag nên trùng với bson tag của model
	updateData := make(map[string]interface{})
	if _, err := utility.ConvertStruct(input, &updateData); err != nil {
		return HandleErrorResponse(c, common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err))
	}
	delete(updateData, "_id")
	delete(updateData, "createdAt")

	data, err := h.BaseService.UpdateById(context.Background(), id, bson.M(updateData))
	return h.HandleResponse(c, data, err)
}

// DeleteById xử lý request xóa một document theo ID
func (h *BaseHandler[T, CreateInput, UpdateInput]) DeleteById(c fiber.Ctx) error {
	id, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		return HandleErrorResponse(c, err)
	}

	if err := h.BaseService.DeleteById(context.Background(), id); err != nil {
		return HandleErrorResponse(c, err)
	}
	return HandleSuccessResponse(c, common.StatusOK, "Xóa dữ liệu thành công", nil)
}

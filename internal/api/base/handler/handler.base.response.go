package basehdl

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v3"

	"church_connect/internal/common"
	"church_connect/internal/logger"
)

// ====================================
// CẤU TRÚC RESPONSE CHUẨN
// ====================================

// Response là cấu trúc phản hồi chuẩn của API
type Response struct {
	Code    string      `json:"code"`           // Mã lỗi/thành công
	Message string      `json:"message"`        // Thông báo cho client
	Data    interface{} `json:"data,omitempty"` // Dữ liệu trả về
	Status  int         `json:"status"`         // HTTP status code
}

// JSONResponse gửi response dạng JSON với status code và envelope chuẩn
func JSONResponse(c fiber.Ctx, statusCode int, code string, message string, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(Response{
		Code:    code,
		Message: message,
		Data:    data,
		Status:  statusCode,
	})
}

// SafeHandler bọc một handler để recover khi có panic, tránh crash server.
// Khi panic xảy ra, log lại stack trace và trả về lỗi 500 cho client.
func SafeHandler(fn func(c fiber.Ctx) error) func(c fiber.Ctx) error {
	return func(c fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				logger.GetErrorLogger().WithFields(map[string]interface{}{
					"panic": r,
					"path":  c.Path(),
				}).Error("Panic trong quá trình xử lý request")
				debug.PrintStack()

				_ = JSONResponse(c, common.StatusInternalServerError, common.ErrCodeInternalServer.Code, common.MsgInternalError, nil)
			}
		}()
		return fn(c)
	}
}

// ====================================
// XỬ LÝ RESPONSE THÀNH CÔNG / LỖI
// ====================================

// HandleResponse xử lý kết quả trả về của một thao tác:
// - Nếu có lỗi, chuyển thành response lỗi với status code tương ứng
// - Nếu thành công, trả về dữ liệu với status 200
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	return JSONResponse(c, common.StatusOK, "SUCCESS", common.MsgSuccess, data)
}

// HandleCreatedResponse trả về response 201 cho các thao tác tạo mới
func (h *BaseHandler[T, CreateInput, UpdateInput]) HandleCreatedResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		return HandleErrorResponse(c, err)
	}
	return JSONResponse(c, common.StatusCreated, "SUCCESS", common.MsgCreated, data)
}

// HandleSuccessResponse trả về response thành công với message tùy chỉnh
func HandleSuccessResponse(c fiber.Ctx, statusCode int, message string, data interface{}) error {
	return JSONResponse(c, statusCode, "SUCCESS", message, data)
}

// HandleErrorResponse chuyển error thành response lỗi chuẩn.
// Các lỗi *common.Error giữ nguyên status code và mã lỗi,
// các lỗi khác được coi là lỗi hệ thống (500).
func HandleErrorResponse(c fiber.Ctx, err error) error {
	var customErr *common.Error
	if errors.As(err, &customErr) {
		return JSONResponse(c, customErr.StatusCode, customErr.Code.Code, customErr.Message, nil)
	}

	logger.GetErrorLogger().WithError(err).Error("Lỗi không xác định trong quá trình xử lý request")
	return JSONResponse(c, common.StatusInternalServerError, common.ErrCodeDatabase.Code, common.MsgInternalError, nil)
}

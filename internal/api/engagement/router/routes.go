// Package router đăng ký các route thuộc domain engagement: Contact, Newsletter.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	engagementhdl "church_connect/internal/api/engagement/handler"
	"church_connect/internal/api/middleware"
	apirouter "church_connect/internal/api/router"
)

// Register đăng ký tất cả route engagement lên v1.
// Gửi tin nhắn và đăng ký bản tin là công khai, phần còn lại yêu cầu xác thực.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerMessageRoutes(v1); err != nil {
		return err
	}
	if err := registerSubscriberRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerMessageRoutes(router fiber.Router) error {
	messageHandler, err := engagementhdl.NewMessageHandler()
	if err != nil {
		return fmt.Errorf("failed to create message handler: %w", err)
	}

	// Route công khai phải đăng ký trước group có middleware xác thực cùng prefix
	router.Post("/messages", messageHandler.HandleCreate)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/messages", "GET", "/", []fiber.Handler{authMiddleware}, messageHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(router, "/messages", "GET", "/find", []fiber.Handler{authMiddleware}, messageHandler.Find)
	apirouter.RegisterRouteWithMiddleware(router, "/messages", "GET", "/find-with-pagination", []fiber.Handler{authMiddleware}, messageHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(router, "/messages", "PATCH", "/:id", []fiber.Handler{authMiddleware}, messageHandler.HandleUpdateStatus)
	apirouter.RegisterRouteWithMiddleware(router, "/messages", "DELETE", "/:id", []fiber.Handler{authMiddleware}, messageHandler.DeleteById)
	return nil
}

func registerSubscriberRoutes(router fiber.Router) error {
	subscriberHandler, err := engagementhdl.NewSubscriberHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscriber handler: %w", err)
	}

	router.Post("/subscribe", subscriberHandler.HandleSubscribe)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/subscribers", "GET", "/", []fiber.Handler{authMiddleware}, subscriberHandler.HandleList)
	apirouter.RegisterRouteWithMiddleware(router, "/subscribers", "DELETE", "/:id", []fiber.Handler{authMiddleware}, subscriberHandler.HandleUnsubscribe)
	return nil
}

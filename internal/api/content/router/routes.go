// Package router đăng ký các route thuộc domain content: Event, Sermon, Gallery, Settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "church_connect/internal/api/content/handler"
	"church_connect/internal/api/middleware"
	apirouter "church_connect/internal/api/router"
)

// Register đăng ký tất cả route content lên v1.
// Các route đọc là công khai, các route ghi yêu cầu xác thực quản trị viên.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerEventRoutes(v1); err != nil {
		return err
	}
	if err := registerSermonRoutes(v1); err != nil {
		return err
	}
	if err := registerGalleryRoutes(v1); err != nil {
		return err
	}
	if err := registerSettingsRoutes(v1); err != nil {
		return err
	}
	return nil
}

func registerEventRoutes(router fiber.Router) error {
	eventHandler, err := contenthdl.NewEventHandler()
	if err != nil {
		return fmt.Errorf("failed to create event handler: %w", err)
	}

	router.Get("/events", eventHandler.HandleList)
	router.Get("/events/:id", eventHandler.FindOneById)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/events", "POST", "/", []fiber.Handler{authMiddleware}, eventHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/events", "PUT", "/:id", []fiber.Handler{authMiddleware}, eventHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(router, "/events", "DELETE", "/:id", []fiber.Handler{authMiddleware}, eventHandler.DeleteById)
	return nil
}

func registerSermonRoutes(router fiber.Router) error {
	sermonHandler, err := contenthdl.NewSermonHandler()
	if err != nil {
		return fmt.Errorf("failed to create sermon handler: %w", err)
	}

	router.Get("/sermons", sermonHandler.HandleList)
	router.Get("/sermons/:id", sermonHandler.HandleGetById)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/sermons", "POST", "/", []fiber.Handler{authMiddleware}, sermonHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/sermons", "PUT", "/:id", []fiber.Handler{authMiddleware}, sermonHandler.UpdateById)
	apirouter.RegisterRouteWithMiddleware(router, "/sermons", "DELETE", "/:id", []fiber.Handler{authMiddleware}, sermonHandler.DeleteById)
	return nil
}

func registerGalleryRoutes(router fiber.Router) error {
	galleryHandler, err := contenthdl.NewGalleryHandler()
	if err != nil {
		return fmt.Errorf("failed to create gallery handler: %w", err)
	}

	router.Get("/gallery", galleryHandler.HandleList)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/gallery", "POST", "/", []fiber.Handler{authMiddleware}, galleryHandler.HandleCreate)
	apirouter.RegisterRouteWithMiddleware(router, "/gallery", "DELETE", "/:id", []fiber.Handler{authMiddleware}, galleryHandler.DeleteById)
	return nil
}

func registerSettingsRoutes(router fiber.Router) error {
	settingsHandler, err := contenthdl.NewSettingsHandler()
	if err != nil {
		return fmt.Errorf("failed to create settings handler: %w", err)
	}

	router.Get("/settings", settingsHandler.HandleGet)
	router.Get("/settings/music", settingsHandler.HandleGetMusic)

	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/settings", "PUT", "/", []fiber.Handler{authMiddleware}, settingsHandler.HandleUpdate)
	return nil
}

package handlers

import (
	"bucketlist/internal/middleware"
	"bucketlist/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	bucketlistService *service.BucketlistService,
	itemService *service.ItemService,
	logger *zap.SugaredLogger,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)

	// Handlers
	userHandler := NewUserHandler(userService, logger)
	bucketlistHandler := NewBucketlistHandler(bucketlistService, logger)
	itemHandler := NewItemHandler(itemService, logger)

	// Public routes
	r.Post("/auth/register", userHandler.Register)
	r.Post("/auth/login", userHandler.Login)

	// Token-guarded routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.WithAuth(userService))

		r.Get("/auth/user/", userHandler.Details)

		r.Route("/bucketlists", func(r chi.Router) {
			r.Post("/", bucketlistHandler.Create)
			r.Get("/", bucketlistHandler.List)
			r.Get("/{id}", bucketlistHandler.Get)
			r.Put("/{id}", bucketlistHandler.Update)
			r.Delete("/{id}", bucketlistHandler.Delete)

			r.Post("/{id}/items/", itemHandler.Create)
			r.Put("/{id}/items/{itemID}", itemHandler.Update)
			r.Delete("/{id}/items/{itemID}", itemHandler.Delete)
		})
	})

	return &Handler{Router: r}
}

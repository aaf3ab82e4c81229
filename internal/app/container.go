package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/itemshare/item-sharing-backend/internal/api"
	"github.com/itemshare/item-sharing-backend/internal/booking"
	"github.com/itemshare/item-sharing-backend/internal/comment"
	"github.com/itemshare/item-sharing-backend/internal/item"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	"github.com/itemshare/item-sharing-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// User Module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Item Module
	itemRepo := item.NewPgxRepository(cfg.DBPool)
	itemService := item.NewService(itemRepo, userService)

	// Booking Module
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)
	bookingService := booking.NewService(bookingRepo, userService, itemService)

	// Comment Module
	commentRepo := comment.NewPgxRepository(cfg.DBPool)
	commentService := comment.NewService(commentRepo, userService, itemService)

	// Item Request Module
	itemRequestRepo := itemrequest.NewPgxRepository(cfg.DBPool)
	itemRequestService := itemrequest.NewService(itemRequestRepo, userService, itemService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:       cfg.IsProduction,
		ProdOrigins:        cfg.ProdOrigins,
		UserService:        userService,
		ItemService:        itemService,
		BookingService:     bookingService,
		CommentService:     commentService,
		ItemRequestService: itemRequestService,
	})

	return &Container{
		Router: router,
	}
}

package api

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/itemshare/item-sharing-backend/internal/booking"
	bookingHttp "github.com/itemshare/item-sharing-backend/internal/booking/http"
	"github.com/itemshare/item-sharing-backend/internal/comment"
	commentHttp "github.com/itemshare/item-sharing-backend/internal/comment/http"
	"github.com/itemshare/item-sharing-backend/internal/identity"
	"github.com/itemshare/item-sharing-backend/internal/item"
	itemHttp "github.com/itemshare/item-sharing-backend/internal/item/http"
	"github.com/itemshare/item-sharing-backend/internal/itemrequest"
	itemRequestHttp "github.com/itemshare/item-sharing-backend/internal/itemrequest/http"
	"github.com/itemshare/item-sharing-backend/internal/user"
	userHttp "github.com/itemshare/item-sharing-backend/internal/user/http"
)

// Config holds the services and settings the router needs.
type Config struct {
	IsProduction       bool
	ProdOrigins        string
	UserService        user.Service
	ItemService        item.Service
	BookingService     booking.Service
	CommentService     comment.Service
	ItemRequestService itemrequest.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger, Identity) and registering routes for various modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = strings.Split(cfg.ProdOrigins, ",")
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", identity.Header}
	r.Use(cors.New(corsConfig))

	// identityMiddleware: extracts the trusted sharer user id header.
	identityMiddleware := identity.Required()

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	userHandler := userHttp.NewHandler(cfg.UserService)
	itemHandler := itemHttp.NewHandler(cfg.ItemService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	commentHandler := commentHttp.NewHandler(cfg.CommentService)
	itemRequestHandler := itemRequestHttp.NewHandler(cfg.ItemRequestService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		userHttp.RegisterRoutes(v1, userHandler)
		itemHttp.RegisterRoutes(v1, itemHandler, identityMiddleware)
		bookingHttp.RegisterRoutes(v1, bookingHandler, identityMiddleware)
		commentHttp.RegisterRoutes(v1, commentHandler, identityMiddleware)
		itemRequestHttp.RegisterRoutes(v1, itemRequestHandler, identityMiddleware)
	}

	return r
}

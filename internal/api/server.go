package api

import "github.com/Sathish182603/Gleam-Heaven/internal/api/handler"

type Server struct {
	AuthHandler          *handler.AuthHandler
	MetalRateHandler     *handler.MetalRateHandler
	ProductHandler       *handler.ProductHandler
	CartHandler          *handler.CartHandler
	ReviewHandler        *handler.ReviewHandler
	AdminUserHandler     *handler.AdminUserHandler
	DesignRequestHandler *handler.DesignRequestHandler
}

func NewServer(
	authHandler *handler.AuthHandler,
	metalRateHandler *handler.MetalRateHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	reviewHandler *handler.ReviewHandler,
	adminUserHandler *handler.AdminUserHandler,
	designRequestHandler *handler.DesignRequestHandler,
) *Server {
	return &Server{
		AuthHandler:          authHandler,
		MetalRateHandler:     metalRateHandler,
		ProductHandler:       productHandler,
		CartHandler:          cartHandler,
		ReviewHandler:        reviewHandler,
		AdminUserHandler:     adminUserHandler,
		DesignRequestHandler: designRequestHandler,
	}
}

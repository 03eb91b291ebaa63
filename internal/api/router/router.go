package router

import (
	"net/http"

	"github.com/RoyceAzure/rj/api/token"
	_ "github.com/Sathish182603/Gleam-Heaven/docs"
	"github.com/Sathish182603/Gleam-Heaven/internal/api"
	m "github.com/Sathish182603/Gleam-Heaven/internal/api/middleware"
	"github.com/Sathish182603/Gleam-Heaven/internal/pkg/ratelimit"
	"github.com/Sathish182603/Gleam-Heaven/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"
)

// SetupRouter limiter 為 nil 時不限流
func SetupRouter(server *api.Server, tokenMaker token.Maker[uuid.UUID], roleService service.IRoleService, limiter ratelimit.ILimiter, logger *zerolog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// 全局中間件
	r.Use(m.RequestIdMiddleware)
	r.Use(middleware.RealIP)
	r.Use(m.AuthPayloadMiddleware(tokenMaker))
	r.Use(m.LoggerMiddleware(logger))
	if limiter != nil {
		r.Use(ratelimit.NewRateLimitMiddleware(limiter, ratelimit.ClientIPKey))
	}

	// Swagger 文檔
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/", http.StatusMovedPermanently)
	})
	r.Get("/swagger/*", httpSwagger.Handler())

	// API 路由
	r.Route("/api/v1", func(r chi.Router) {
		// 不需登入
		r.Group(func(r chi.Router) {
			r.Get("/metal-rates", server.MetalRateHandler.ListRates)
			r.Get("/products", server.ProductHandler.ListProducts)
			r.Get("/products/{id}", server.ProductHandler.GetProduct)
			r.Get("/products/{id}/reviews", server.ProductHandler.ListReviews)
			r.Get("/reviews/recent", server.ReviewHandler.ListRecent)
			r.Post("/auth/signup", server.AuthHandler.SignUp)
			r.Post("/auth/signin", server.AuthHandler.SignIn)
		})

		// 需登入
		r.Group(func(r chi.Router) {
			r.Use(m.AuthMiddleware)

			r.Get("/me", server.AuthHandler.Me)
			r.Get("/profile", server.AuthHandler.GetProfile)
			r.Put("/profile", server.AuthHandler.UpdateProfile)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", server.CartHandler.GetCart)
				r.Delete("/", server.CartHandler.Clear)
				r.Get("/summary", server.CartHandler.Summary)
				r.Post("/items", server.CartHandler.AddItem)
				r.Put("/items/{productID}", server.CartHandler.SetQuantity)
				r.Delete("/items/{productID}", server.CartHandler.RemoveItem)
			})

			r.Get("/likes", server.ReviewHandler.ListLikes)
			r.Post("/likes/{productID}/toggle", server.ReviewHandler.ToggleLike)

			r.Post("/reviews", server.ReviewHandler.CreateReview)
			r.Get("/reviews/mine", server.ReviewHandler.ListMine)
			r.Delete("/reviews/{id}", server.ReviewHandler.DeleteReview)

			r.Post("/design-requests", server.DesignRequestHandler.Create)
			r.Get("/design-requests", server.DesignRequestHandler.ListMine)
		})

		// 後台
		r.Route("/admin", func(r chi.Router) {
			r.Use(m.AuthMiddleware)
			r.Use(m.AdminMiddleware(roleService))

			r.Put("/metal-rates", server.MetalRateHandler.SetRates)
			r.Get("/metal-rates/{metal}/history", server.MetalRateHandler.ListHistory)

			r.Post("/products", server.ProductHandler.CreateProduct)
			r.Post("/products/seed", server.ProductHandler.SeedCollection)
			r.Get("/products/export", server.ProductHandler.ExportProducts)
			r.Put("/products/{id}", server.ProductHandler.UpdateProduct)
			r.Delete("/products/{id}", server.ProductHandler.DeleteProduct)
			r.Post("/products/{id}/reprice", server.ProductHandler.RepriceProduct)

			r.Get("/users", server.AdminUserHandler.ListUsers)
			r.Post("/users/promote-by-email", server.AdminUserHandler.PromoteByEmail)
			r.Post("/users/{id}/promote", server.AdminUserHandler.Promote)
			r.Delete("/users/{id}/admin", server.AdminUserHandler.Demote)

			r.Get("/design-requests", server.DesignRequestHandler.ListAll)
			r.Patch("/design-requests/{id}", server.DesignRequestHandler.UpdateStatus)
		})
	})

	// 設置完所有路由後記錄路由樹
	chi.Walk(r, func(method string, route string, handler http.Handler, middlewares ...func(http.Handler) http.Handler) error {
		if logger != nil {
			logger.Debug().Str("method", method).Str("route", route).Msg("route registered")
		}
		return nil
	})
	return r
}

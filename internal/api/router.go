package api

import (
	"net/http"

	_ "github.com/aaravmahajanofficial/easymenu/internal/api/docs"
	"github.com/aaravmahajanofficial/easymenu/internal/api/handlers"
	"github.com/aaravmahajanofficial/easymenu/internal/api/middleware"
	"github.com/aaravmahajanofficial/easymenu/internal/metrics"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Handlers struct {
	Menu    *handlers.MenuHandler
	Cart    *handlers.CartHandler
	Order   *handlers.OrderHandler
	Share   *handlers.ShareHandler
	Session *handlers.SessionHandler
	Catalog *handlers.CatalogHandler
}

// NewRouter registers the API routes. Customer routes are rate limited per
// client IP and dashboard routes require an operator session.
func NewRouter(h Handlers, auth *middleware.AuthMiddleware, limiter *middleware.RateLimiter) *http.ServeMux {
	mux := http.NewServeMux()

	public := func(pattern string, handler http.HandlerFunc) {
		mux.Handle(pattern, limiter.Limit(handler))
	}
	operator := func(pattern string, handler http.HandlerFunc) {
		mux.HandleFunc(pattern, auth.Authenticate(handler))
	}

	// customer menu
	public("GET /api/v1/menu/{slug}", h.Menu.GetMenu())
	public("GET /api/v1/menu/{slug}/qrcode", h.Share.QRCode())
	public("GET /api/v1/menu/{slug}/tablecard", h.Share.TableCard())
	public("POST /api/v1/menu/{slug}/selection/validate", h.Menu.ValidateSelection())
	public("POST /api/v1/menu/{slug}/selection/toggle", h.Menu.ToggleOption())
	public("POST /api/v1/menu/{slug}/cart/lines", h.Cart.AddLine())
	public("PATCH /api/v1/menu/{slug}/cart/lines/{index}", h.Cart.UpdateLine())
	public("DELETE /api/v1/menu/{slug}/cart/lines/{index}", h.Cart.RemoveLine())
	public("POST /api/v1/menu/{slug}/cart/quote", h.Cart.Quote())
	public("POST /api/v1/menu/{slug}/checkout", h.Order.Checkout())

	// operator session
	public("POST /api/v1/session", h.Session.Login())
	operator("DELETE /api/v1/session", h.Session.Logout())

	// dashboard
	operator("GET /api/v1/admin/catalog", h.Catalog.GetCatalog())
	operator("GET /api/v1/admin/overview", h.Catalog.Overview())
	operator("PUT /api/v1/admin/business", h.Catalog.UpdateBusiness())
	operator("PUT /api/v1/admin/business/settings", h.Catalog.UpdateSettings())
	operator("PUT /api/v1/admin/business/hours", h.Catalog.UpdateHours())
	operator("POST /api/v1/admin/categories", h.Catalog.CreateCategory())
	operator("PUT /api/v1/admin/categories/{id}", h.Catalog.UpdateCategory())
	operator("DELETE /api/v1/admin/categories/{id}", h.Catalog.DeleteCategory())
	operator("PATCH /api/v1/admin/categories/{id}/active", h.Catalog.ToggleCategory())
	operator("GET /api/v1/admin/products", h.Catalog.ListProducts())
	operator("POST /api/v1/admin/products", h.Catalog.CreateProduct())
	operator("PUT /api/v1/admin/products/{id}", h.Catalog.UpdateProduct())
	operator("DELETE /api/v1/admin/products/{id}", h.Catalog.DeleteProduct())
	operator("PATCH /api/v1/admin/products/{id}/availability", h.Catalog.ToggleProductAvailability())

	// infra
	mux.Handle("GET /metrics", metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return mux
}

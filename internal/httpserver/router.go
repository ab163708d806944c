package httpserver

import (
	"embed"
	"html/template"
	"log"

	"freshbasket/internal/catalog"
	cartsvc "freshbasket/internal/service/cart"
	profilesvc "freshbasket/internal/service/profile"
	"freshbasket/internal/view"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

// Deps carries everything the handlers need.
type Deps struct {
	Catalog    *catalog.Catalog
	CartSvc    *cartsvc.Service
	ProfileSvc *profilesvc.Service
	Notices    *view.Notices
	AssetBase  string
}

// buildRouter wires routes for the storefront.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())

	tmpl, err := template.ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return nil, err
	}
	router.SetHTMLTemplate(tmpl)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	pages := router.Group("/", sessionMiddleware())
	pages.GET("/", catalogPage(deps))
	pages.GET("/cart", cartPage(deps))
	pages.GET("/profile", profilePage(deps))
	pages.POST("/cart/items", addToCart(deps))
	pages.POST("/cart/items/:id/remove", removeFromCart(deps))
	pages.POST("/checkout", checkoutHandler(deps))
	pages.POST("/profile", saveProfile(deps))

	api := router.Group("/api", sessionMiddleware())
	api.GET("/products", listProducts(deps))
	api.GET("/cart", getCart(deps))

	return router, nil
}

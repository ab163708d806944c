package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type apiCartLine struct {
	ProductID      int64  `json:"productId"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPricePaise int64  `json:"unitPricePaise"`
	SubtotalPaise  int64  `json:"subtotalPaise"`
}

func listProducts(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		products := deps.Catalog.All()
		c.JSON(http.StatusOK, gin.H{
			"count":   len(products),
			"results": products,
		})
	}
}

func getCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		ctx := c.Request.Context()

		cart := deps.CartSvc.Load(ctx, sid)
		lines := make([]apiCartLine, 0, len(cart))
		for _, l := range deps.CartSvc.Resolve(cart) {
			lines = append(lines, apiCartLine{
				ProductID:      l.Product.ID,
				Name:           l.Product.Name,
				Quantity:       l.Quantity,
				UnitPricePaise: l.Product.PricePaise,
				SubtotalPaise:  l.SubtotalPaise,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"lineItems":  lines,
			"itemCount":  deps.CartSvc.ItemCount(ctx, sid),
			"totalPaise": deps.CartSvc.TotalPaise(cart),
		})
	}
}

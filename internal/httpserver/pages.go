package httpserver

import (
	"net/http"
	"strconv"

	"freshbasket/internal/view"
	"github.com/gin-gonic/gin"
)

func catalogPage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)

		cards := view.BuildCatalog(deps.Catalog.All(), deps.AssetBase)
		for i := range cards {
			if _, ok := deps.Notices.Get(view.AddedKey(sid, cards[i].ID)); ok {
				cards[i].AddLabel = view.AddedLabel
			}
		}

		c.HTML(http.StatusOK, "catalog.tmpl", gin.H{
			"Nav":   navFor(c, deps),
			"Cards": cards,
		})
	}
}

func cartPage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		ctx := c.Request.Context()

		cart := deps.CartSvc.Load(ctx, sid)
		v := view.BuildCart(deps.CartSvc.Resolve(cart), deps.CartSvc.TotalPaise(cart), deps.AssetBase)
		if msg, ok := deps.Notices.Take(view.CheckoutKey(sid)); ok {
			v.Message = msg
		}

		c.HTML(http.StatusOK, "cart.tmpl", gin.H{
			"Nav":  navFor(c, deps),
			"Cart": v,
		})
	}
}

func profilePage(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		ctx := c.Request.Context()

		form := view.BuildProfileForm(deps.ProfileSvc.LoadForEdit(ctx, sid))
		if msg, ok := deps.Notices.Get(view.ProfileKey(sid)); ok {
			form.Message = msg
		}

		c.HTML(http.StatusOK, "profile.tmpl", gin.H{
			"Nav":     navFor(c, deps),
			"Profile": form,
		})
	}
}

func addToCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		productID, err := strconv.ParseInt(c.PostForm("product_id"), 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid product id")
			return
		}
		if err := deps.CartSvc.Add(c.Request.Context(), sid, productID); err != nil {
			c.String(http.StatusInternalServerError, "could not update cart")
			return
		}
		deps.Notices.Set(view.AddedKey(sid, productID), view.AddedLabel, view.AddedFeedbackTTL)
		c.Redirect(http.StatusSeeOther, "/")
	}
}

func removeFromCart(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil {
			c.String(http.StatusBadRequest, "invalid product id")
			return
		}
		if err := deps.CartSvc.Remove(c.Request.Context(), sid, productID); err != nil {
			c.String(http.StatusInternalServerError, "could not update cart")
			return
		}
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

func checkoutHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		res, err := deps.CartSvc.Checkout(c.Request.Context(), sid)
		if err != nil {
			c.String(http.StatusInternalServerError, "checkout failed")
			return
		}
		deps.Notices.Set(view.CheckoutKey(sid), res.Message, 0)
		c.Redirect(http.StatusSeeOther, "/cart")
	}
}

func saveProfile(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid := sessionID(c)
		if _, err := deps.ProfileSvc.Save(c.Request.Context(), sid, c.PostForm("name"), c.PostForm("email")); err != nil {
			c.String(http.StatusInternalServerError, "could not save profile")
			return
		}
		deps.Notices.Set(view.ProfileKey(sid), view.ProfileSavedMessage, view.ProfileSavedTTL)
		c.Redirect(http.StatusSeeOther, "/profile")
	}
}

// navFor builds the shared navigation surface rendered on every page.
func navFor(c *gin.Context, deps Deps) view.Nav {
	sid := sessionID(c)
	ctx := c.Request.Context()
	return view.BuildNav(deps.ProfileSvc.Load(ctx, sid), deps.CartSvc.ItemCount(ctx, sid))
}

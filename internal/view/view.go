package view

import (
	"fmt"
	"math"
	"strings"

	"freshbasket/internal/domain"
	cartsvc "freshbasket/internal/service/cart"
)

// Literal UI strings from the storefront.
const (
	AddToCartLabel      = "Add to Cart"
	AddedLabel          = "Added!"
	ProfileSavedMessage = "Profile updated!"
	EmptyCartMessage    = "Your cart is empty. Go back to the shop!"
)

// Nav is the shared navigation surface: greeting plus cart badge.
type Nav struct {
	Greeting  string `json:"greeting"`
	CartCount int    `json:"cartCount"`
}

// BuildNav greets by name only when one is set and is not the guest
// placeholder; otherwise the greeting stays empty.
func BuildNav(p domain.Profile, cartCount int) Nav {
	n := Nav{CartCount: cartCount}
	if p.Name != "" && p.Name != domain.GuestName {
		n.Greeting = fmt.Sprintf("Hi, %s!", p.Name)
	}
	return n
}

// ProductCard is one catalog grid entry.
type ProductCard struct {
	ID       int64
	Name     string
	Tags     []string
	ImageURL string
	Stars    string
	Price    string
	AddLabel string
}

// BuildCatalog projects products onto cards in catalog order. Every
// card starts with the default add label; callers flip it to the
// transient "Added!" feedback where a notice is active.
func BuildCatalog(products []domain.Product, assetBase string) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		cards = append(cards, ProductCard{
			ID:       p.ID,
			Name:     p.Name,
			Tags:     p.Tags,
			ImageURL: assetURL(assetBase, p.Image),
			Stars:    Stars(p.Rating),
			Price:    INR(p.PricePaise),
			AddLabel: AddToCartLabel,
		})
	}
	return cards
}

// Stars renders floor(rating) filled stars plus a half-star glyph when
// the fractional part is non-zero.
func Stars(rating float64) string {
	full := int(math.Floor(rating))
	if full < 0 {
		full = 0
	}
	s := strings.Repeat("★", full)
	if rating > math.Floor(rating) {
		s += "½"
	}
	return s
}

// CartLineView is one resolved cart row.
type CartLineView struct {
	ProductID int64
	Name      string
	ImageURL  string
	UnitPrice string
	Quantity  int
	Subtotal  string
}

// CartView is the cart page surface. Message carries the one-shot
// checkout outcome when present.
type CartView struct {
	Lines        []CartLineView
	Total        string
	Empty        bool
	EmptyMessage string
	Message      string
}

// BuildCart projects resolved lines and the grand total. Lines for
// unknown products never reach here; Resolve already dropped them.
func BuildCart(lines []cartsvc.Line, totalPaise int64, assetBase string) CartView {
	v := CartView{
		Total:        INR(totalPaise),
		Empty:        len(lines) == 0,
		EmptyMessage: EmptyCartMessage,
	}
	for _, l := range lines {
		v.Lines = append(v.Lines, CartLineView{
			ProductID: l.Product.ID,
			Name:      l.Product.Name,
			ImageURL:  assetURL(assetBase, l.Product.Image),
			UnitPrice: INR(l.Product.PricePaise),
			Quantity:  l.Quantity,
			Subtotal:  INR(l.SubtotalPaise),
		})
	}
	return v
}

// ProfileForm is the profile page surface. Message carries the
// transient saved confirmation while its timer is live.
type ProfileForm struct {
	Name    string
	Email   string
	Message string
}

// BuildProfileForm fills the form from an edit-normalized profile.
func BuildProfileForm(p domain.Profile) ProfileForm {
	return ProfileForm{Name: p.Name, Email: p.Email}
}

func assetURL(base, image string) string {
	if base == "" {
		return image
	}
	return strings.TrimSuffix(base, "/") + "/" + image
}

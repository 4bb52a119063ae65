// Package router maps paths to pages, applies auth/role redirects, and
// decides whether the navigation chrome is shown.
package router

import (
	"strings"

	"github.com/rashedq/artscape/internal/session"
)

// Page identifies a destination in the path table.
type Page string

const (
	PageLoading         Page = "loading"
	PageLogin           Page = "login"
	PageSignup          Page = "signup"
	PageArts            Page = "arts"
	PageArtDetail       Page = "art-detail"
	PageArtistProfile   Page = "artist-profile"
	PageBlogs           Page = "blogs"
	PageBlogDetail      Page = "blog-detail"
	PageReceivedOrders  Page = "artist-orders"
	PageMyOrders        Page = "my-orders"
	PageCompanyOneUnits Page = "units-company-one"
	PageCompanyTwoUnits Page = "units-company-two"
	PageAdminCompanyOne Page = "admin-company-one"
	PageAdminCompanyTwo Page = "admin-company-two"
	PageAdminBookings   Page = "admin-bookings"
	PageNotFound        Page = "not-found"
)

// Public route paths. The two developments keep their brand slugs.
const (
	PathLogin        = "/login"
	PathSignup       = "/signup"
	PathDefaultUnits = "/units/zaya-development"
	PathUnitsTwo     = "/units/rikaz-development"
	PathAdmin        = "/admin"
)

// Resolution is the outcome of resolving one path: either a redirect or a
// page (possibly with a captured id), plus the chrome toggle.
type Resolution struct {
	Page       Page
	Param      string // captured {id} segment, when the route has one
	RedirectTo string // non-empty means navigate again instead of render
	ShowChrome bool
}

// Router resolves paths against the session provider's current state.
type Router struct {
	sess *session.Provider
}

func New(sess *session.Provider) *Router {
	return &Router{sess: sess}
}

// Resolve maps a path to its page. Root redirects per auth state; the
// admin subtree requires the admin role; chrome is suppressed under the
// admin prefix.
func (r *Router) Resolve(path string) Resolution {
	path = strings.TrimRight(path, "/")
	if path == "" {
		path = "/"
	}

	if r.sess.Loading() {
		return Resolution{Page: PageLoading, ShowChrome: false}
	}

	if strings.HasPrefix(path, PathAdmin) {
		return r.resolveAdmin(path)
	}

	res := Resolution{ShowChrome: true}
	switch {
	case path == "/":
		if r.sess.User() == nil {
			res.RedirectTo = PathLogin
		} else {
			res.RedirectTo = PathDefaultUnits
		}
	case path == PathLogin:
		res.Page = PageLogin
	case path == PathSignup:
		res.Page = PageSignup
	case path == "/arts":
		res.Page = PageArts
	case strings.HasPrefix(path, "/arts/"):
		res.Page, res.Param = PageArtDetail, strings.TrimPrefix(path, "/arts/")
	case strings.HasPrefix(path, "/artist/"):
		res.Page, res.Param = PageArtistProfile, strings.TrimPrefix(path, "/artist/")
	case path == "/blogs":
		res.Page = PageBlogs
	case strings.HasPrefix(path, "/blogs/"):
		res.Page, res.Param = PageBlogDetail, strings.TrimPrefix(path, "/blogs/")
	case path == "/artist-orders":
		res.Page = PageReceivedOrders
	case path == "/my-orders":
		res.Page = PageMyOrders
	case path == PathDefaultUnits:
		res.Page = PageCompanyOneUnits
	case path == PathUnitsTwo:
		res.Page = PageCompanyTwoUnits
	default:
		res.Page = PageNotFound
	}
	return res
}

func (r *Router) resolveAdmin(path string) Resolution {
	if !r.sess.IsAdmin() {
		return Resolution{RedirectTo: PathLogin}
	}
	switch path {
	case PathAdmin:
		return Resolution{RedirectTo: PathAdmin + "/zaya-development"}
	case PathAdmin + "/zaya-development":
		return Resolution{Page: PageAdminCompanyOne}
	case PathAdmin + "/rikaz-development":
		return Resolution{Page: PageAdminCompanyTwo}
	case PathAdmin + "/bookings":
		return Resolution{Page: PageAdminBookings}
	}
	return Resolution{Page: PageNotFound}
}

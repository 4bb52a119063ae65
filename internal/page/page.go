// Package page implements the headless page controllers: each owns its
// page number, filters, and last fetched result, fetches through the
// query cache, and reports failures through a Notifier. Controllers are
// renderer-agnostic; the CLI and the tests drive them the same way.
package page

import (
	"errors"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
)

// Page sizes per listing. The public unit grids show a dozen cards; the
// art catalog and the admin tables use their own densities.
const (
	publicUnitsPageSize = 12
	artsPageSize        = 20
	adminPageSize       = 10
)

// Cache resource names shared between fetches and invalidations.
const (
	resourceCompanyOneUnits = "units/company-one"
	resourceCompanyTwoUnits = "units/company-two"
	resourceBookings        = "bookings"
	resourceArts            = "art"
	resourceBlogs           = "blog"
	resourceMyOrders        = "order/mine"
	resourceReceivedOrders  = "order/my-orders"
)

// Navigator performs route changes requested by controllers (login
// redirects, post-order navigation).
type Navigator interface {
	Navigate(path string)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(path string)

func (f NavigatorFunc) Navigate(path string) { f(path) }

// Session is the slice of auth state controllers read. Satisfied by
// session.Provider.
type Session interface {
	User() *model.User
}

// Options prepends the "all" sentinel to a dropdown's option values.
func Options(values []string) []string {
	return append([]string{api.All}, values...)
}

// report routes a fetch error to the notifier. Superseded fetches are
// discarded silently; every other failure becomes a dismissible notice.
// It reports whether err was a real failure.
func report(n notify.Notifier, err error, fallback string) bool {
	if err == nil || errors.Is(err, errs.ErrStale) {
		return false
	}
	n.Error(notify.ErrMessage(err, fallback))
	return true
}

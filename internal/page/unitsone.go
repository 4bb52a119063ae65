package page

import (
	"context"
	"errors"
	"net/url"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/forms"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
)

// CompanyOneAPI is the backend slice the company-one listing needs.
type CompanyOneAPI interface {
	ListCompanyOneUnits(ctx context.Context, p api.ListParams, f api.CompanyOneFilter) (api.CompanyOnePage, error)
	CompanyOneMeta(ctx context.Context) (model.CompanyOneMeta, error)
	CreateBooking(ctx context.Context, req api.BookingCreate) (model.Booking, error)
}

// bookingDialog is the open booking form bound to one unit.
type bookingDialog struct {
	unitID string
	label  string
	form   forms.BookingForm
}

// CompanyOneList is the public company-one unit grid with filters,
// pagination, and the booking dialog. Single-goroutine use.
type CompanyOneList struct {
	api   CompanyOneAPI
	cache *query.Cache
	sess  Session
	note  notify.Notifier

	pager   paging.Pager
	filter  api.CompanyOneFilter
	meta    model.CompanyOneMeta
	hasMeta bool
	units   []model.CompanyOneUnit

	booking *bookingDialog
	sub     uuid.UUID
}

// NewCompanyOneList subscribes the controller to unit invalidations so a
// booking made elsewhere re-fetches the grid. Call Close when leaving
// the page.
func NewCompanyOneList(a CompanyOneAPI, cache *query.Cache, sess Session, n notify.Notifier) *CompanyOneList {
	c := &CompanyOneList{
		api:   a,
		cache: cache,
		sess:  sess,
		note:  n,
		pager: paging.Pager{Current: 1, TotalPages: 1},
	}
	c.sub = cache.Subscribe(resourceCompanyOneUnits, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *CompanyOneList) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current page under the current filter. The dropdown
// option sets are fetched once; a meta failure degrades the dropdowns
// but not the grid.
func (c *CompanyOneList) Load(ctx context.Context) error {
	if !c.hasMeta {
		m, err := c.api.CompanyOneMeta(ctx)
		if err == nil {
			c.meta = m
			c.hasMeta = true
		} else {
			report(c.note, err, "failed to load filter options")
		}
	}

	p := api.ListParams{Page: c.pager.Current, Limit: publicUnitsPageSize}
	key := listKey(resourceCompanyOneUnits, p, c.filter.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.CompanyOnePage, error) {
		return c.api.ListCompanyOneUnits(ctx, p, c.filter)
	})
	if errors.Is(err, errs.ErrStale) {
		return nil
	}
	if err != nil {
		report(c.note, err, "failed to load units")
		return err
	}

	c.units = pageData.Units
	c.pager.TotalPages = paging.TotalPages(pageData.Count, publicUnitsPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// SetFilter replaces the filter and restarts from page 1.
func (c *CompanyOneList) SetFilter(ctx context.Context, f api.CompanyOneFilter) error {
	c.filter = f
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *CompanyOneList) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *CompanyOneList) Units() []model.CompanyOneUnit { return c.units }
func (c *CompanyOneList) Pager() paging.Pager           { return c.pager }
func (c *CompanyOneList) Filter() api.CompanyOneFilter  { return c.filter }
func (c *CompanyOneList) Meta() model.CompanyOneMeta    { return c.meta }

// CanBook reports whether the booking action is enabled for a unit:
// available status and a signed-in user.
func (c *CompanyOneList) CanBook(u model.CompanyOneUnit) bool {
	return u.Status == model.UnitAvailable && c.sess.User() != nil
}

// OpenBooking opens the dialog for a unit with the form defaults.
func (c *CompanyOneList) OpenBooking(u model.CompanyOneUnit) error {
	if c.sess.User() == nil {
		return errs.ErrLoginRequired
	}
	if u.Status != model.UnitAvailable {
		return errs.ErrUnitUnavailable
	}
	c.booking = &bookingDialog{unitID: u.ID, label: u.Label(), form: forms.NewBookingForm()}
	return nil
}

// Booking returns the open dialog's form for editing, or false when no
// dialog is open.
func (c *CompanyOneList) Booking() (*forms.BookingForm, bool) {
	if c.booking == nil {
		return nil, false
	}
	return &c.booking.form, true
}

// BookingLabel returns the display label of the unit being booked.
func (c *CompanyOneList) BookingLabel() string {
	if c.booking == nil {
		return ""
	}
	return c.booking.label
}

// CancelBooking discards the open dialog.
func (c *CompanyOneList) CancelBooking() { c.booking = nil }

// SubmitBooking validates and sends the booking, then closes the dialog
// and invalidates bookings plus this grid on success. Failures keep the
// dialog open with its values intact.
func (c *CompanyOneList) SubmitBooking(ctx context.Context) error {
	if c.booking == nil {
		return nil
	}
	if err := forms.Check(c.booking.form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	_, err := c.api.CreateBooking(ctx, c.booking.form.Payload(model.ModelCompanyOne, c.booking.unitID))
	if err != nil {
		report(c.note, err, "failed to book unit")
		return err
	}
	c.booking = nil
	c.note.Success("unit booked")
	c.cache.Invalidate(resourceBookings)
	c.cache.Invalidate(resourceCompanyOneUnits)
	return nil
}

// listKey builds the cache key for one page of a filtered listing.
func listKey(resource string, p api.ListParams, filter url.Values) query.Key {
	q := p.Values()
	for k, vs := range filter {
		q[k] = vs
	}
	return query.KeyOf(resource, q)
}

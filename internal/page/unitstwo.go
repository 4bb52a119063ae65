package page

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/forms"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/paging"
	"github.com/rashedq/artscape/internal/query"
)

// CompanyTwoAPI is the backend slice the company-two listing needs.
type CompanyTwoAPI interface {
	ListCompanyTwoUnits(ctx context.Context, p api.ListParams, f api.CompanyTwoFilter) (api.CompanyTwoPage, error)
	CompanyTwoMeta(ctx context.Context) (model.CompanyTwoMeta, error)
	CreateBooking(ctx context.Context, req api.BookingCreate) (model.Booking, error)
}

// CompanyTwoList is the public company-two unit grid. Unlike the
// company-one grid, the status filter never reaches the wire: it is
// applied to the fetched page locally, so a filtered page may show fewer
// cards than the page size while the pager still follows the server
// count.
type CompanyTwoList struct {
	api   CompanyTwoAPI
	cache *query.Cache
	sess  Session
	note  notify.Notifier

	pager   paging.Pager
	filter  api.CompanyTwoFilter // Status stripped before fetching
	status  string
	meta    model.CompanyTwoMeta
	hasMeta bool
	units   []model.CompanyTwoUnit

	booking *bookingDialog
	sub     uuid.UUID
}

// NewCompanyTwoList subscribes the controller to unit invalidations.
// Call Close when leaving the page.
func NewCompanyTwoList(a CompanyTwoAPI, cache *query.Cache, sess Session, n notify.Notifier) *CompanyTwoList {
	c := &CompanyTwoList{
		api:   a,
		cache: cache,
		sess:  sess,
		note:  n,
		pager: paging.Pager{Current: 1, TotalPages: 1},
	}
	c.sub = cache.Subscribe(resourceCompanyTwoUnits, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *CompanyTwoList) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current page under the wire filter.
func (c *CompanyTwoList) Load(ctx context.Context) error {
	if !c.hasMeta {
		m, err := c.api.CompanyTwoMeta(ctx)
		if err == nil {
			c.meta = m
			c.hasMeta = true
		} else {
			report(c.note, err, "failed to load filter options")
		}
	}

	p := api.ListParams{Page: c.pager.Current, Limit: publicUnitsPageSize}
	key := listKey(resourceCompanyTwoUnits, p, c.filter.Values())
	pageData, err := query.Run(ctx, c.cache, key, func(ctx context.Context) (api.CompanyTwoPage, error) {
		return c.api.ListCompanyTwoUnits(ctx, p, c.filter)
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

// SetFilter replaces the filter and restarts from page 1. The status
// field is kept local and stripped from the wire filter.
func (c *CompanyTwoList) SetFilter(ctx context.Context, f api.CompanyTwoFilter) error {
	c.status = f.Status
	f.Status = ""
	c.filter = f
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *CompanyTwoList) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

// Displayed returns the fetched page narrowed by the local status filter.
func (c *CompanyTwoList) Displayed() []model.CompanyTwoUnit {
	if c.status == "" || c.status == api.All {
		return c.units
	}
	out := make([]model.CompanyTwoUnit, 0, len(c.units))
	for _, u := range c.units {
		if string(u.Status) == c.status {
			out = append(out, u)
		}
	}
	return out
}

func (c *CompanyTwoList) Pager() paging.Pager        { return c.pager }
func (c *CompanyTwoList) Meta() model.CompanyTwoMeta { return c.meta }

// Filter returns the filter as the user set it, status included.
func (c *CompanyTwoList) Filter() api.CompanyTwoFilter {
	f := c.filter
	f.Status = c.status
	return f
}

// CanBook reports whether the booking action is enabled for a unit.
func (c *CompanyTwoList) CanBook(u model.CompanyTwoUnit) bool {
	return u.Status == model.UnitAvailable && c.sess.User() != nil
}

// OpenBooking opens the dialog for a unit with the form defaults.
func (c *CompanyTwoList) OpenBooking(u model.CompanyTwoUnit) error {
	if c.sess.User() == nil {
		return errs.ErrLoginRequired
	}
	if u.Status != model.UnitAvailable {
		return errs.ErrUnitUnavailable
	}
	c.booking = &bookingDialog{unitID: u.ID, label: u.Label(), form: forms.NewBookingForm()}
	return nil
}

// Booking returns the open dialog's form for editing.
func (c *CompanyTwoList) Booking() (*forms.BookingForm, bool) {
	if c.booking == nil {
		return nil, false
	}
	return &c.booking.form, true
}

// BookingLabel returns the display label of the unit being booked.
func (c *CompanyTwoList) BookingLabel() string {
	if c.booking == nil {
		return ""
	}
	return c.booking.label
}

// CancelBooking discards the open dialog.
func (c *CompanyTwoList) CancelBooking() { c.booking = nil }

// SubmitBooking validates and sends the booking, then closes the dialog
// and invalidates bookings plus this grid on success.
func (c *CompanyTwoList) SubmitBooking(ctx context.Context) error {
	if c.booking == nil {
		return nil
	}
	if err := forms.Check(c.booking.form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	_, err := c.api.CreateBooking(ctx, c.booking.form.Payload(model.ModelCompanyTwo, c.booking.unitID))
	if err != nil {
		report(c.note, err, "failed to book unit")
		return err
	}
	c.booking = nil
	c.note.Success("unit booked")
	c.cache.Invalidate(resourceBookings)
	c.cache.Invalidate(resourceCompanyTwoUnits)
	return nil
}

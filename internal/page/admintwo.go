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

// CompanyTwoAdminAPI is the backend slice the company-two admin table
// needs.
type CompanyTwoAdminAPI interface {
	ListCompanyTwoUnits(ctx context.Context, p api.ListParams, f api.CompanyTwoFilter) (api.CompanyTwoPage, error)
	CompanyTwoMeta(ctx context.Context) (model.CompanyTwoMeta, error)
	CreateCompanyTwoUnit(ctx context.Context, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error)
	UpdateCompanyTwoUnit(ctx context.Context, id string, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error)
	DeleteCompanyTwoUnit(ctx context.Context, id string) error
}

// CompanyTwoAdmin is the admin table for company-two units with the
// create/edit form dialog. Unlike the public grid, the admin status
// filter goes to the server.
type CompanyTwoAdmin struct {
	api   CompanyTwoAdminAPI
	cache *query.Cache
	note  notify.Notifier

	pager   paging.Pager
	filter  api.CompanyTwoFilter
	meta    model.CompanyTwoMeta
	hasMeta bool
	units   []model.CompanyTwoUnit

	formOpen  bool
	editingID string
	form      forms.CompanyTwoForm

	sub uuid.UUID
}

// NewCompanyTwoAdmin subscribes to unit invalidations. Call Close when
// leaving the page.
func NewCompanyTwoAdmin(a CompanyTwoAdminAPI, cache *query.Cache, n notify.Notifier) *CompanyTwoAdmin {
	c := &CompanyTwoAdmin{api: a, cache: cache, note: n, pager: paging.Pager{Current: 1, TotalPages: 1}}
	c.sub = cache.Subscribe(resourceCompanyTwoUnits, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *CompanyTwoAdmin) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current table page.
func (c *CompanyTwoAdmin) Load(ctx context.Context) error {
	if !c.hasMeta {
		m, err := c.api.CompanyTwoMeta(ctx)
		if err == nil {
			c.meta = m
			c.hasMeta = true
		} else {
			report(c.note, err, "failed to load filter options")
		}
	}

	p := api.ListParams{Page: c.pager.Current, Limit: adminPageSize}
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
	c.pager.TotalPages = paging.TotalPages(pageData.Count, adminPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// SetFilter replaces the filter and restarts from page 1.
func (c *CompanyTwoAdmin) SetFilter(ctx context.Context, f api.CompanyTwoFilter) error {
	c.filter = f
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *CompanyTwoAdmin) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *CompanyTwoAdmin) Units() []model.CompanyTwoUnit { return c.units }
func (c *CompanyTwoAdmin) Pager() paging.Pager           { return c.pager }
func (c *CompanyTwoAdmin) Filter() api.CompanyTwoFilter  { return c.filter }
func (c *CompanyTwoAdmin) Meta() model.CompanyTwoMeta    { return c.meta }

// OpenCreate opens an empty form.
func (c *CompanyTwoAdmin) OpenCreate() {
	c.formOpen = true
	c.editingID = ""
	c.form = forms.CompanyTwoForm{Company: model.CompanyTwoTilal, Status: model.UnitAvailable}
}

// OpenEdit opens the form populated from an existing unit.
func (c *CompanyTwoAdmin) OpenEdit(u model.CompanyTwoUnit) {
	c.formOpen = true
	c.editingID = u.ID
	c.form = forms.FromCompanyTwo(u)
}

// Form returns the open form for editing.
func (c *CompanyTwoAdmin) Form() (*forms.CompanyTwoForm, bool) {
	if !c.formOpen {
		return nil, false
	}
	return &c.form, true
}

// Editing reports whether the open form updates an existing unit.
func (c *CompanyTwoAdmin) Editing() bool { return c.editingID != "" }

// CancelForm discards the open form.
func (c *CompanyTwoAdmin) CancelForm() {
	c.formOpen = false
	c.editingID = ""
	c.form = forms.CompanyTwoForm{}
}

// Submit validates and sends the form, updating when an id is bound and
// creating otherwise.
func (c *CompanyTwoAdmin) Submit(ctx context.Context) error {
	if !c.formOpen {
		return nil
	}
	if err := c.form.Validate(); err != nil {
		c.note.Error(err.Error())
		return err
	}
	payload := c.form.Payload()
	var err error
	if c.editingID != "" {
		_, err = c.api.UpdateCompanyTwoUnit(ctx, c.editingID, payload)
	} else {
		_, err = c.api.CreateCompanyTwoUnit(ctx, payload)
	}
	if err != nil {
		report(c.note, err, "failed to save unit")
		return err
	}
	if c.editingID != "" {
		c.note.Success("unit updated")
	} else {
		c.note.Success("unit created")
	}
	c.CancelForm()
	c.cache.Invalidate(resourceCompanyTwoUnits)
	return nil
}

// Delete removes a unit after the confirm callback approves; a nil
// callback skips confirmation.
func (c *CompanyTwoAdmin) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := c.api.DeleteCompanyTwoUnit(ctx, id); err != nil {
		report(c.note, err, "failed to delete unit")
		return err
	}
	c.note.Success("unit deleted")
	c.cache.Invalidate(resourceCompanyTwoUnits)
	return nil
}

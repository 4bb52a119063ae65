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

// CompanyOneAdminAPI is the backend slice the company-one admin table
// needs.
type CompanyOneAdminAPI interface {
	ListCompanyOneUnits(ctx context.Context, p api.ListParams, f api.CompanyOneFilter) (api.CompanyOnePage, error)
	CompanyOneMeta(ctx context.Context) (model.CompanyOneMeta, error)
	CreateCompanyOneUnit(ctx context.Context, u model.CompanyOneUnit) (model.CompanyOneUnit, error)
	UpdateCompanyOneUnit(ctx context.Context, id string, u model.CompanyOneUnit) (model.CompanyOneUnit, error)
	DeleteCompanyOneUnit(ctx context.Context, id string) error
}

// CompanyOneAdmin is the admin table for company-one units with the
// create/edit form dialog. One dialog serves both modes: an empty id
// means create, a populated form carries the edited unit's id.
type CompanyOneAdmin struct {
	api   CompanyOneAdminAPI
	cache *query.Cache
	note  notify.Notifier

	pager   paging.Pager
	filter  api.CompanyOneFilter
	meta    model.CompanyOneMeta
	hasMeta bool
	units   []model.CompanyOneUnit

	formOpen  bool
	editingID string
	form      forms.CompanyOneForm

	sub uuid.UUID
}

// NewCompanyOneAdmin subscribes to unit invalidations. Call Close when
// leaving the page.
func NewCompanyOneAdmin(a CompanyOneAdminAPI, cache *query.Cache, n notify.Notifier) *CompanyOneAdmin {
	c := &CompanyOneAdmin{api: a, cache: cache, note: n, pager: paging.Pager{Current: 1, TotalPages: 1}}
	c.sub = cache.Subscribe(resourceCompanyOneUnits, func() { _ = c.Load(context.Background()) })
	return c
}

// Close cancels the invalidation subscription.
func (c *CompanyOneAdmin) Close() { c.cache.Unsubscribe(c.sub) }

// Load fetches the current table page.
func (c *CompanyOneAdmin) Load(ctx context.Context) error {
	if !c.hasMeta {
		m, err := c.api.CompanyOneMeta(ctx)
		if err == nil {
			c.meta = m
			c.hasMeta = true
		} else {
			report(c.note, err, "failed to load filter options")
		}
	}

	p := api.ListParams{Page: c.pager.Current, Limit: adminPageSize}
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
	c.pager.TotalPages = paging.TotalPages(pageData.Count, adminPageSize)
	if c.pager.Current > c.pager.TotalPages {
		c.pager.Current = c.pager.TotalPages
		return c.Load(ctx)
	}
	return nil
}

// SetFilter replaces the filter and restarts from page 1.
func (c *CompanyOneAdmin) SetFilter(ctx context.Context, f api.CompanyOneFilter) error {
	c.filter = f
	c.pager.Current = 1
	return c.Load(ctx)
}

// GoTo moves to page n; out-of-range moves are no-ops.
func (c *CompanyOneAdmin) GoTo(ctx context.Context, n int) error {
	if !c.pager.GoTo(n) {
		return nil
	}
	return c.Load(ctx)
}

func (c *CompanyOneAdmin) Units() []model.CompanyOneUnit { return c.units }
func (c *CompanyOneAdmin) Pager() paging.Pager           { return c.pager }
func (c *CompanyOneAdmin) Filter() api.CompanyOneFilter  { return c.filter }
func (c *CompanyOneAdmin) Meta() model.CompanyOneMeta    { return c.meta }

// OpenCreate opens an empty form.
func (c *CompanyOneAdmin) OpenCreate() {
	c.formOpen = true
	c.editingID = ""
	c.form = forms.CompanyOneForm{Company: model.CompanyOneSakaya, Status: model.UnitAvailable}
}

// OpenEdit opens the form populated from an existing unit.
func (c *CompanyOneAdmin) OpenEdit(u model.CompanyOneUnit) {
	c.formOpen = true
	c.editingID = u.ID
	c.form = forms.FromCompanyOne(u)
}

// Form returns the open form for editing.
func (c *CompanyOneAdmin) Form() (*forms.CompanyOneForm, bool) {
	if !c.formOpen {
		return nil, false
	}
	return &c.form, true
}

// Editing reports whether the open form updates an existing unit.
func (c *CompanyOneAdmin) Editing() bool { return c.editingID != "" }

// CancelForm discards the open form.
func (c *CompanyOneAdmin) CancelForm() {
	c.formOpen = false
	c.editingID = ""
	c.form = forms.CompanyOneForm{}
}

// Submit validates and sends the form, updating when an id is bound and
// creating otherwise. On success the form closes, clears, and the table
// re-fetches.
func (c *CompanyOneAdmin) Submit(ctx context.Context) error {
	if !c.formOpen {
		return nil
	}
	if err := forms.Check(c.form); err != nil {
		c.note.Error(err.Error())
		return err
	}
	payload := c.form.Payload()
	var err error
	if c.editingID != "" {
		_, err = c.api.UpdateCompanyOneUnit(ctx, c.editingID, payload)
	} else {
		_, err = c.api.CreateCompanyOneUnit(ctx, payload)
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
	c.cache.Invalidate(resourceCompanyOneUnits)
	return nil
}

// Delete removes a unit after the confirm callback approves; a nil
// callback skips confirmation. The table re-fetches and the pager clamps
// when the last row of the last page goes away.
func (c *CompanyOneAdmin) Delete(ctx context.Context, id string, confirm func() bool) error {
	if confirm != nil && !confirm() {
		return nil
	}
	if err := c.api.DeleteCompanyOneUnit(ctx, id); err != nil {
		report(c.note, err, "failed to delete unit")
		return err
	}
	c.note.Success("unit deleted")
	c.cache.Invalidate(resourceCompanyOneUnits)
	return nil
}

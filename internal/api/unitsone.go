package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// CompanyOnePage is one fetched page of company-one units.
type CompanyOnePage struct {
	Units []model.CompanyOneUnit `json:"units"`
	Count int                    `json:"count"`
}

// ListCompanyOneUnits fetches a filtered page of company-one units.
func (c *Client) ListCompanyOneUnits(ctx context.Context, p ListParams, f CompanyOneFilter) (CompanyOnePage, error) {
	var out CompanyOnePage
	err := c.getJSON(ctx, "/units/company-one", merge(p.Values(), f.Values()), &out)
	return out, err
}

// GetCompanyOneUnit fetches one unit.
func (c *Client) GetCompanyOneUnit(ctx context.Context, id string) (model.CompanyOneUnit, error) {
	var out model.CompanyOneUnit
	err := c.getJSON(ctx, "/units/company-one/"+id, nil, &out)
	return out, err
}

// CreateCompanyOneUnit creates a unit. The payload is the tagged union;
// only the active shape's fields are sent.
func (c *Client) CreateCompanyOneUnit(ctx context.Context, u model.CompanyOneUnit) (model.CompanyOneUnit, error) {
	var out model.CompanyOneUnit
	err := c.sendJSON(ctx, http.MethodPost, "/units/company-one", u, &out)
	return out, err
}

// UpdateCompanyOneUnit patches a unit by id.
func (c *Client) UpdateCompanyOneUnit(ctx context.Context, id string, u model.CompanyOneUnit) (model.CompanyOneUnit, error) {
	var out model.CompanyOneUnit
	err := c.sendJSON(ctx, http.MethodPatch, "/units/company-one/"+id, u, &out)
	return out, err
}

// DeleteCompanyOneUnit removes a unit.
func (c *Client) DeleteCompanyOneUnit(ctx context.Context, id string) error {
	return c.delete(ctx, "/units/company-one/"+id, nil)
}

// CompanyOneMeta fetches the dropdown option sets for company-one pages.
func (c *Client) CompanyOneMeta(ctx context.Context) (model.CompanyOneMeta, error) {
	var out model.CompanyOneMeta
	err := c.getJSON(ctx, "/units/company-one/meta/list", nil, &out)
	return out, err
}

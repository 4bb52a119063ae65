package api

import (
	"context"
	"net/http"

	"github.com/rashedq/artscape/internal/model"
)

// CompanyTwoPage is one fetched page of company-two units.
type CompanyTwoPage struct {
	Units []model.CompanyTwoUnit `json:"units"`
	Count int                    `json:"count"`
}

// ListCompanyTwoUnits fetches a filtered page of company-two units.
func (c *Client) ListCompanyTwoUnits(ctx context.Context, p ListParams, f CompanyTwoFilter) (CompanyTwoPage, error) {
	var out CompanyTwoPage
	err := c.getJSON(ctx, "/units/company-two", merge(p.Values(), f.Values()), &out)
	return out, err
}

// GetCompanyTwoUnit fetches one unit.
func (c *Client) GetCompanyTwoUnit(ctx context.Context, id string) (model.CompanyTwoUnit, error) {
	var out model.CompanyTwoUnit
	err := c.getJSON(ctx, "/units/company-two/"+id, nil, &out)
	return out, err
}

// CreateCompanyTwoUnit creates a unit from the tagged union payload.
func (c *Client) CreateCompanyTwoUnit(ctx context.Context, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error) {
	var out model.CompanyTwoUnit
	err := c.sendJSON(ctx, http.MethodPost, "/units/company-two", u, &out)
	return out, err
}

// UpdateCompanyTwoUnit patches a unit by id.
func (c *Client) UpdateCompanyTwoUnit(ctx context.Context, id string, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error) {
	var out model.CompanyTwoUnit
	err := c.sendJSON(ctx, http.MethodPatch, "/units/company-two/"+id, u, &out)
	return out, err
}

// DeleteCompanyTwoUnit removes a unit.
func (c *Client) DeleteCompanyTwoUnit(ctx context.Context, id string) error {
	return c.delete(ctx, "/units/company-two/"+id, nil)
}

// CompanyTwoMeta fetches the dropdown option sets for company-two pages.
func (c *Client) CompanyTwoMeta(ctx context.Context) (model.CompanyTwoMeta, error) {
	var out model.CompanyTwoMeta
	err := c.getJSON(ctx, "/units/company-two/meta/list", nil, &out)
	return out, err
}

package page

import (
	"context"
	"strings"
	"testing"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/query"
)

type fakeAdminTwoAPI struct {
	created []model.CompanyTwoUnit
	updated map[string]model.CompanyTwoUnit
	deleted []string
}

var _ CompanyTwoAdminAPI = (*fakeAdminTwoAPI)(nil)

func (f *fakeAdminTwoAPI) ListCompanyTwoUnits(context.Context, api.ListParams, api.CompanyTwoFilter) (api.CompanyTwoPage, error) {
	return api.CompanyTwoPage{}, nil
}

func (f *fakeAdminTwoAPI) CompanyTwoMeta(context.Context) (model.CompanyTwoMeta, error) {
	return model.CompanyTwoMeta{}, nil
}

func (f *fakeAdminTwoAPI) CreateCompanyTwoUnit(_ context.Context, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error) {
	f.created = append(f.created, u)
	return u, nil
}

func (f *fakeAdminTwoAPI) UpdateCompanyTwoUnit(_ context.Context, id string, u model.CompanyTwoUnit) (model.CompanyTwoUnit, error) {
	if f.updated == nil {
		f.updated = make(map[string]model.CompanyTwoUnit)
	}
	f.updated[id] = u
	return u, nil
}

func (f *fakeAdminTwoAPI) DeleteCompanyTwoUnit(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCompanyTwoAdmin_ValuationRequiredPerCompany(t *testing.T) {
	a := &fakeAdminTwoAPI{}
	notes := &notify.Memory{}
	c := NewCompanyTwoAdmin(a, query.NewCache(), notes)
	defer c.Close()
	ctx := context.Background()

	c.OpenCreate()
	f, _ := c.Form()
	if f.Company != model.CompanyTwoTilal {
		t.Fatalf("create default: %+v", f)
	}
	f.View = "park"
	f.Orientation = "west"
	f.BlockNumber = "4"
	f.LandNumber = "17"
	f.Area = 300
	f.LandValue = 650000 // wrong valuation for Tilal

	if err := c.Submit(ctx); err == nil {
		t.Fatalf("missing totalValue accepted")
	}
	if len(a.created) != 0 {
		t.Fatalf("request sent despite invalid form")
	}
	if n, ok := notes.Last(); !ok || !strings.Contains(n.Message, "totalvalue") {
		t.Fatalf("valuation error not surfaced: %+v", n)
	}

	f.TotalValue = 900000
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(a.created) != 1 || a.created[0].Tilal == nil || a.created[0].Tilal.TotalValue != 900000 {
		t.Fatalf("created: %+v", a.created)
	}
}

func TestCompanyTwoAdmin_EditKeepsVariant(t *testing.T) {
	a := &fakeAdminTwoAPI{}
	c := NewCompanyTwoAdmin(a, query.NewCache(), &notify.Memory{})
	defer c.Close()
	ctx := context.Background()

	u := model.CompanyTwoUnit{
		ID:          "t9",
		Company:     model.CompanyTwoOyoon,
		View:        "park",
		Orientation: "west",
		Oyoon: &model.OyoonUnit{
			LandParcel: model.LandParcel{BlockNumber: "2", LandNumber: "5", Area: 250},
			BlockArea:  40,
			LandValue:  650000,
		},
	}
	c.OpenEdit(u)
	if !c.Editing() {
		t.Fatalf("edit dialog reports create")
	}
	f, _ := c.Form()
	if f.BlockArea != 40 || f.LandValue != 650000 {
		t.Fatalf("form not populated: %+v", f)
	}

	f.LandValue = 700000
	if err := c.Submit(ctx); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	sent, ok := a.updated["t9"]
	if !ok || sent.Oyoon == nil || sent.Oyoon.LandValue != 700000 {
		t.Fatalf("updated: %+v", a.updated)
	}
	if sent.Tilal != nil || sent.Rikaz != nil {
		t.Fatalf("foreign variants populated: %+v", sent)
	}
}

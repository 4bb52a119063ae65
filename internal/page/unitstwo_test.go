package page

import (
	"context"
	"testing"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/query"
)

type fakeUnitsTwoAPI struct {
	page    api.CompanyTwoPage
	filters []api.CompanyTwoFilter

	meta model.CompanyTwoMeta

	bookings []api.BookingCreate
}

var _ CompanyTwoAPI = (*fakeUnitsTwoAPI)(nil)

func (f *fakeUnitsTwoAPI) ListCompanyTwoUnits(_ context.Context, _ api.ListParams, fl api.CompanyTwoFilter) (api.CompanyTwoPage, error) {
	f.filters = append(f.filters, fl)
	return f.page, nil
}

func (f *fakeUnitsTwoAPI) CompanyTwoMeta(context.Context) (model.CompanyTwoMeta, error) {
	return f.meta, nil
}

func (f *fakeUnitsTwoAPI) CreateBooking(_ context.Context, req api.BookingCreate) (model.Booking, error) {
	f.bookings = append(f.bookings, req)
	return model.Booking{ID: "bk1"}, nil
}

func rikazUnit(id string, status model.UnitStatus) model.CompanyTwoUnit {
	return model.CompanyTwoUnit{
		ID:      id,
		Company: model.CompanyTwoRikaz,
		Status:  status,
		Rikaz:   &model.RikazUnit{Unit: id, Building: "T1"},
	}
}

func TestCompanyTwoList_StatusFilterStaysLocal(t *testing.T) {
	a := &fakeUnitsTwoAPI{page: api.CompanyTwoPage{
		Units: []model.CompanyTwoUnit{
			rikazUnit("u1", model.UnitAvailable),
			rikazUnit("u2", model.UnitSold),
			rikazUnit("u3", model.UnitAvailable),
		},
		Count: 3,
	}}
	c := NewCompanyTwoList(a, query.NewCache(), loggedIn(), &notify.Memory{})
	defer c.Close()

	f := api.CompanyTwoFilter{Building: "T1", Status: "available"}
	if err := c.SetFilter(context.Background(), f); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}

	// the wire filter carries the building but never the status
	sent := a.filters[len(a.filters)-1]
	if sent.Building != "T1" || sent.Status != "" {
		t.Fatalf("wire filter: %+v", sent)
	}

	got := c.Displayed()
	if len(got) != 2 || got[0].ID != "u1" || got[1].ID != "u3" {
		t.Fatalf("displayed: %+v", got)
	}

	// the accessor reflects what the user picked
	if c.Filter().Status != "available" {
		t.Fatalf("filter accessor: %+v", c.Filter())
	}

	// the "all" sentinel shows the whole page again
	f.Status = api.All
	if err := c.SetFilter(context.Background(), f); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	if len(c.Displayed()) != 3 {
		t.Fatalf("all sentinel filtered: %v", c.Displayed())
	}
}

func TestCompanyTwoList_BookingBindsCompanyTwoModel(t *testing.T) {
	a := &fakeUnitsTwoAPI{}
	c := NewCompanyTwoList(a, query.NewCache(), loggedIn(), &notify.Memory{})
	defer c.Close()

	if err := c.OpenBooking(rikazUnit("u9", model.UnitAvailable)); err != nil {
		t.Fatalf("OpenBooking: %v", err)
	}
	if c.BookingLabel() != "Unit u9 / Building T1" {
		t.Fatalf("label: %q", c.BookingLabel())
	}
	f, _ := c.Booking()
	f.ClientName = "Amr"
	f.Email = "amr@example.com"
	f.Phone = "0500000000"
	if err := c.SubmitBooking(context.Background()); err != nil {
		t.Fatalf("SubmitBooking: %v", err)
	}
	if len(a.bookings) != 1 || a.bookings[0].UnitModel != model.ModelCompanyTwo {
		t.Fatalf("bookings: %+v", a.bookings)
	}
}

func TestCompanyTwoList_CancelDiscardsDialog(t *testing.T) {
	a := &fakeUnitsTwoAPI{}
	c := NewCompanyTwoList(a, query.NewCache(), loggedIn(), &notify.Memory{})
	defer c.Close()

	if err := c.OpenBooking(rikazUnit("u9", model.UnitAvailable)); err != nil {
		t.Fatalf("OpenBooking: %v", err)
	}
	c.CancelBooking()
	if _, open := c.Booking(); open {
		t.Fatalf("dialog survived cancel")
	}
	if err := c.SubmitBooking(context.Background()); err != nil {
		t.Fatalf("submit on closed dialog: %v", err)
	}
	if len(a.bookings) != 0 {
		t.Fatalf("request sent after cancel")
	}
}

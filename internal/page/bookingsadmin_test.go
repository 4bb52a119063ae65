package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/errs"
	"github.com/rashedq/artscape/internal/model"
	"github.com/rashedq/artscape/internal/notify"
	"github.com/rashedq/artscape/internal/query"
)

type fakeBookingsAPI struct {
	pages map[int][]model.Booking
	count int

	exported    [][]string
	exportedAll int
}

var _ BookingsAPI = (*fakeBookingsAPI)(nil)

func (f *fakeBookingsAPI) ListBookings(_ context.Context, p api.ListParams, _ api.BookingFilter) (api.BookingPage, error) {
	return api.BookingPage{Bookings: f.pages[p.Page], Count: f.count}, nil
}

func (f *fakeBookingsAPI) ExportBookings(_ context.Context, ids []string) ([]byte, error) {
	f.exported = append(f.exported, ids)
	return []byte("sheet"), nil
}

func (f *fakeBookingsAPI) ExportAllBookings(context.Context) ([]byte, error) {
	f.exportedAll++
	return []byte("sheet"), nil
}

func booking(id string, status model.UnitStatus) model.Booking {
	return model.Booking{ID: id, ClientName: "Amr", Status: status}
}

func TestBookingsAdmin_SelectionSurvivesPageChange(t *testing.T) {
	a := &fakeBookingsAPI{
		pages: map[int][]model.Booking{
			1: {booking("b1", model.UnitBooked), booking("b2", model.UnitBooked)},
			2: {booking("b3", model.UnitBooked)},
		},
		count: 12,
	}
	c := NewBookingsAdmin(a, query.NewCache(), &notify.Memory{})
	defer c.Close()
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.ToggleSelect("b1")
	if err := c.GoTo(ctx, 2); err != nil {
		t.Fatalf("GoTo: %v", err)
	}
	c.ToggleSelect("b3")
	if !c.Selected("b1") || !c.Selected("b3") || c.SelectedCount() != 2 {
		t.Fatalf("selection lost across pages")
	}
}

func TestBookingsAdmin_TogglePage(t *testing.T) {
	a := &fakeBookingsAPI{
		pages: map[int][]model.Booking{1: {
			booking("b1", model.UnitBooked),
			booking("b2", model.UnitSold),
			booking("b3", model.UnitBooked),
		}},
		count: 3,
	}
	c := NewBookingsAdmin(a, query.NewCache(), &notify.Memory{})
	defer c.Close()
	ctx := context.Background()

	// narrow the page locally, then select-all only touches displayed rows
	if err := c.SetFilter(ctx, api.BookingFilter{}, "booked"); err != nil {
		t.Fatalf("SetFilter: %v", err)
	}
	c.TogglePage()
	if c.SelectedCount() != 2 || c.Selected("b2") {
		t.Fatalf("select-all touched hidden rows: count=%d", c.SelectedCount())
	}

	// partial selection upgrades to full before any deselect happens
	c.ToggleSelect("b3")
	c.TogglePage()
	if c.SelectedCount() != 2 {
		t.Fatalf("partial toggle did not select all: %d", c.SelectedCount())
	}

	// a second toggle with everything selected clears the page
	c.TogglePage()
	if c.SelectedCount() != 0 {
		t.Fatalf("full toggle did not deselect: %d", c.SelectedCount())
	}
}

func TestBookingsAdmin_ExportSelectedEmptyRejected(t *testing.T) {
	a := &fakeBookingsAPI{}
	notes := &notify.Memory{}
	c := NewBookingsAdmin(a, query.NewCache(), notes)
	defer c.Close()

	_, err := c.ExportSelected(context.Background())
	if !errors.Is(err, errs.ErrEmptySelection) {
		t.Fatalf("err = %v", err)
	}
	if len(a.exported) != 0 {
		t.Fatalf("export request sent for empty selection")
	}
	if n, ok := notes.Last(); !ok || n.Level != notify.Error {
		t.Fatalf("rejection not surfaced")
	}
}

func TestBookingsAdmin_ExportFilenamesAreDated(t *testing.T) {
	a := &fakeBookingsAPI{
		pages: map[int][]model.Booking{1: {booking("b1", model.UnitBooked)}},
		count: 1,
	}
	c := NewBookingsAdmin(a, query.NewCache(), &notify.Memory{})
	defer c.Close()
	c.now = func() time.Time { return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC) }
	ctx := context.Background()

	if err := c.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	c.ToggleSelect("b1")
	c.ToggleSelect("b9") // selected on an earlier visit, no longer fetched

	out, err := c.ExportSelected(ctx)
	if err != nil {
		t.Fatalf("ExportSelected: %v", err)
	}
	if out.Filename != "bookings_selected_2026-03-14.xlsx" {
		t.Fatalf("filename: %q", out.Filename)
	}
	// visible rows lead, off-page selections follow
	ids := a.exported[0]
	if len(ids) != 2 || ids[0] != "b1" || ids[1] != "b9" {
		t.Fatalf("ids: %v", ids)
	}

	all, err := c.ExportAll(ctx)
	if err != nil {
		t.Fatalf("ExportAll: %v", err)
	}
	if all.Filename != "bookings_all_2026-03-14.xlsx" {
		t.Fatalf("filename: %q", all.Filename)
	}
	if a.exportedAll != 1 {
		t.Fatalf("export-all calls: %d", a.exportedAll)
	}
}

package forms

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/rashedq/artscape/internal/model"
)

func validSakayaForm() CompanyOneForm {
	return CompanyOneForm{
		Company:     model.CompanyOneSakaya,
		View:        "sea",
		Orientation: "north",
		Status:      model.UnitAvailable,
		Unit:        "12",
		Building:    "B1",
		Area:        120,
		Bedrooms:    3,
		Price:       500000,
	}
}

func TestCompanyOneForm_RequiredPerShape(t *testing.T) {
	t.Parallel()
	f := validSakayaForm()
	if err := Check(f); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}

	f.Building = ""
	if err := Check(f); err == nil {
		t.Fatalf("missing Sakaya field accepted")
	}

	// the same empty Building is fine once the active shape is Upvida
	f.Company = model.CompanyOneUpvida
	f.TotalPrice = 1
	f.TotalArea = 1
	f.NetArea = 1
	f.ModelName = "M1"
	f.FloorNumber = "3"
	f.UnitNumber = "7"
	if err := Check(f); err != nil {
		t.Fatalf("Upvida form rejected: %v", err)
	}
}

func TestCompanyOneForm_SwitchingShapeDropsStaleFields(t *testing.T) {
	t.Parallel()
	// user fills Sakaya fields, then switches the dropdown to Upvida
	f := validSakayaForm()
	f.Company = model.CompanyOneUpvida
	f.TotalPrice = 900000
	f.TotalArea = 200
	f.NetArea = 180
	f.ModelName = "M2"
	f.FloorNumber = "5"
	f.UnitNumber = "9"

	u := f.Payload()
	if u.Sakaya != nil || u.Upvida == nil {
		t.Fatalf("payload shapes: sakaya=%v upvida=%v", u.Sakaya, u.Upvida)
	}

	raw, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, stale := range []string{"bedrooms", `"price"`} {
		if strings.Contains(string(raw), stale) {
			t.Fatalf("stale field %s on wire: %s", stale, raw)
		}
	}
}

func TestCompanyTwoForm_ValuationPerCompany(t *testing.T) {
	t.Parallel()
	base := CompanyTwoForm{
		Company:     model.CompanyTwoTilal,
		View:        "park",
		Orientation: "east",
		BlockNumber: "4",
		LandNumber:  "17",
		Area:        300,
	}

	if err := base.Validate(); err == nil {
		t.Fatalf("Tilal without total value accepted")
	}
	base.TotalValue = 1_000_000
	if err := base.Validate(); err != nil {
		t.Fatalf("valid Tilal rejected: %v", err)
	}

	manazel := base
	manazel.Company = model.CompanyTwoManazel
	manazel.TotalValue = 0
	if err := manazel.Validate(); err == nil {
		t.Fatalf("Manazel without land value accepted")
	}
	manazel.LandValue = 800_000
	if err := manazel.Validate(); err != nil {
		t.Fatalf("valid Manazel rejected: %v", err)
	}

	oyoon := manazel
	oyoon.Company = model.CompanyTwoOyoon
	if err := oyoon.Validate(); err == nil {
		t.Fatalf("Oyoon without block area accepted")
	}
	oyoon.BlockArea = 50
	if err := oyoon.Validate(); err != nil {
		t.Fatalf("valid Oyoon rejected: %v", err)
	}
}

func TestCompanyTwoForm_RikazShape(t *testing.T) {
	t.Parallel()
	f := CompanyTwoForm{
		Company:     model.CompanyTwoRikaz,
		View:        "city",
		Orientation: "south",
		Unit:        "21",
		Building:    "T3",
		TotalPrice:  700000,
		TotalArea:   150,
		ModelCode:   "R2",
	}
	if err := f.Validate(); err != nil {
		t.Fatalf("valid Rikaz rejected: %v", err)
	}

	// land fields are not required for the legacy shape
	if f.BlockNumber != "" {
		t.Fatalf("test setup")
	}

	f.ModelCode = ""
	if err := f.Validate(); err == nil {
		t.Fatalf("Rikaz without model code accepted")
	}
}

func TestCompanyTwoForm_PayloadOnlyActiveVariant(t *testing.T) {
	t.Parallel()
	f := CompanyTwoForm{
		Company:     model.CompanyTwoOyoon,
		View:        "park",
		Orientation: "west",
		BlockNumber: "2",
		LandNumber:  "5",
		Area:        250,
		BlockArea:   40,
		LandValue:   650_000,
		// stale from a previous Rikaz selection
		Unit:       "9",
		TotalPrice: 123,
	}
	u := f.Payload()
	if u.Oyoon == nil || u.Rikaz != nil || u.Tilal != nil || u.Manazel != nil {
		t.Fatalf("payload variants: %+v", u)
	}

	raw, err := json.Marshal(&u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "totalPrice") {
		t.Fatalf("stale Rikaz field on wire: %s", raw)
	}
}

func TestRoundTrip_FormFromUnit(t *testing.T) {
	t.Parallel()
	u := validSakayaForm().Payload()
	u.ID = "abc"
	f := FromCompanyOne(u)
	if f.Company != model.CompanyOneSakaya || f.Unit != "12" || f.Price != 500000 {
		t.Fatalf("FromCompanyOne: %+v", f)
	}
	if err := Check(f); err != nil {
		t.Fatalf("round-tripped form invalid: %v", err)
	}
}

func TestBookingForm_Defaults(t *testing.T) {
	t.Parallel()
	f := NewBookingForm()
	if f.PaymentMethod != model.PayCash || f.Status != model.UnitBooked {
		t.Fatalf("defaults: %+v", f)
	}

	if err := Check(f); err == nil {
		t.Fatalf("empty client fields accepted")
	}

	f.ClientName = "Amr"
	f.Email = "not-an-email"
	f.Phone = "0500000000"
	if err := Check(f); err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("bad email: %v", err)
	}

	f.Email = "amr@example.com"
	if err := Check(f); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}

	p := f.Payload(model.ModelCompanyTwo, "unit9")
	if p.UnitModel != model.ModelCompanyTwo || p.Unit != "unit9" || p.Status != model.UnitBooked {
		t.Fatalf("payload: %+v", p)
	}
}

func TestOrderForm_Payload(t *testing.T) {
	t.Parallel()
	f := OrderForm{PhoneNumber: "050", City: "Riyadh", Street: "King Fahd"}
	if err := Check(f); err != nil {
		t.Fatalf("valid order rejected: %v", err)
	}
	p := f.Payload("art1")
	if p.ArtID != "art1" || p.PaymentMethod != "cash_on_delivery" || p.Address.City != "Riyadh" {
		t.Fatalf("payload: %+v", p)
	}

	f.City = ""
	if err := Check(f); err == nil {
		t.Fatalf("missing city accepted")
	}
}

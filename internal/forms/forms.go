// Package forms mirrors server-side validation for the client's forms and
// builds submit payloads for the polymorphic unit shapes. A form session
// keeps every field a user touched, but the payload reads only the fields
// applicable to the currently selected discriminator, so switching shapes
// never leaks stale hidden values.
package forms

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rashedq/artscape/internal/api"
	"github.com/rashedq/artscape/internal/model"
)

var validate = validator.New()

// Check validates a form value and returns a user-facing error naming the
// first failing field.
func Check(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		f := verrs[0]
		switch f.Tag() {
		case "required", "required_if":
			return fmt.Errorf("%s is required", strings.ToLower(f.Field()))
		case "email":
			return fmt.Errorf("%s must be a valid email", strings.ToLower(f.Field()))
		case "oneof":
			return fmt.Errorf("%s must be one of: %s", strings.ToLower(f.Field()), f.Param())
		}
		return fmt.Errorf("%s is invalid", strings.ToLower(f.Field()))
	}
	return err
}

// CompanyOneForm is the admin create/edit form for company-one units.
// Fields of both shapes coexist while the form is open; only the active
// shape is validated and submitted.
type CompanyOneForm struct {
	Company     model.CompanyOne `validate:"required,oneof=Sakaya Upvida"`
	View        string           `validate:"required"`
	Orientation string           `validate:"required"`
	Status      model.UnitStatus `validate:"omitempty,oneof=available booked sold mokp hold"`

	// Sakaya shape
	Unit     string  `validate:"required_if=Company Sakaya"`
	Building string  `validate:"required_if=Company Sakaya"`
	Area     float64 `validate:"required_if=Company Sakaya"`
	Bedrooms int     `validate:"required_if=Company Sakaya"`
	Price    float64 `validate:"required_if=Company Sakaya"`

	// Upvida shape
	TotalPrice     float64 `validate:"required_if=Company Upvida"`
	TotalArea      float64 `validate:"required_if=Company Upvida"`
	Balcony        float64
	NetArea        float64 `validate:"required_if=Company Upvida"`
	ModelName      string  `validate:"required_if=Company Upvida"`
	FloorNumber    string  `validate:"required_if=Company Upvida"`
	UnitNumber     string  `validate:"required_if=Company Upvida"`
	BuildingNumber string
	TowerNumber    string
}

// FromCompanyOne populates the form from an existing record for editing.
func FromCompanyOne(u model.CompanyOneUnit) CompanyOneForm {
	f := CompanyOneForm{
		Company:     u.Company,
		View:        u.View,
		Orientation: u.Orientation,
		Status:      u.Status,
	}
	if u.Sakaya != nil {
		f.Unit = u.Sakaya.Unit
		f.Building = u.Sakaya.Building
		f.Area = u.Sakaya.Area
		f.Bedrooms = u.Sakaya.Bedrooms
		f.Price = u.Sakaya.Price
	}
	if u.Upvida != nil {
		f.TotalPrice = u.Upvida.TotalPrice
		f.TotalArea = u.Upvida.TotalArea
		f.Balcony = u.Upvida.Balcony
		f.NetArea = u.Upvida.NetArea
		f.ModelName = u.Upvida.ModelName
		f.FloorNumber = u.Upvida.FloorNumber
		f.UnitNumber = u.Upvida.UnitNumber
		f.BuildingNumber = u.Upvida.BuildingNumber
		f.TowerNumber = u.Upvida.TowerNumber
	}
	return f
}

// Payload builds the submit payload from the active shape only.
func (f CompanyOneForm) Payload() model.CompanyOneUnit {
	u := model.CompanyOneUnit{
		Company:     f.Company,
		View:        f.View,
		Orientation: f.Orientation,
		Status:      f.Status,
	}
	switch f.Company {
	case model.CompanyOneUpvida:
		u.Upvida = &model.UpvidaUnit{
			TotalPrice:     f.TotalPrice,
			TotalArea:      f.TotalArea,
			Balcony:        f.Balcony,
			NetArea:        f.NetArea,
			ModelName:      f.ModelName,
			FloorNumber:    f.FloorNumber,
			UnitNumber:     f.UnitNumber,
			BuildingNumber: f.BuildingNumber,
			TowerNumber:    f.TowerNumber,
		}
	default:
		u.Sakaya = &model.SakayaUnit{
			Unit:     f.Unit,
			Building: f.Building,
			Area:     f.Area,
			Bedrooms: f.Bedrooms,
			Price:    f.Price,
		}
	}
	return u
}

// CompanyTwoForm is the admin create/edit form for company-two units.
type CompanyTwoForm struct {
	Company     model.CompanyTwo `validate:"required,oneof=Tilal Manazel Oyoon Rikaz"`
	View        string           `validate:"required"`
	Orientation string           `validate:"required"`
	Status      model.UnitStatus `validate:"omitempty,oneof=available booked sold mokp hold"`

	// Land-based shapes
	BlockNumber   string  `validate:"required_unless=Company Rikaz"`
	LandNumber    string  `validate:"required_unless=Company Rikaz"`
	Area          float64 `validate:"required_unless=Company Rikaz"`
	PricePerMeter float64
	Usage         string
	TotalValue    float64
	LandValue     float64
	BlockArea     float64

	// Rikaz shape
	Unit       string  `validate:"required_if=Company Rikaz"`
	Building   string  `validate:"required_if=Company Rikaz"`
	Floor      int     `validate:"omitempty"`
	TotalPrice float64 `validate:"required_if=Company Rikaz"`
	TotalArea  float64 `validate:"required_if=Company Rikaz"`
	Balcony    float64
	NetArea    float64
	ModelCode  string `validate:"required_if=Company Rikaz"`
}

// Validate runs the shared tag checks plus the per-company valuation
/// rule: each land-based company requires exactly its own valuation
// fields. (The pairing cannot be expressed as a single validator tag.)
func (f CompanyTwoForm) Validate() error {
	if err := Check(f); err != nil {
		return err
	}
	switch f.Company {
	case model.CompanyTwoTilal:
		if f.TotalValue <= 0 {
			return errors.New("totalvalue is required")
		}
	case model.CompanyTwoManazel:
		if f.LandValue <= 0 {
			return errors.New("landvalue is required")
		}
	case model.CompanyTwoOyoon:
		if f.BlockArea <= 0 {
			return errors.New("blockarea is required")
		}
		if f.LandValue <= 0 {
			return errors.New("landvalue is required")
		}
	}
	return nil
}

// FromCompanyTwo populates the form from an existing record for editing.
func FromCompanyTwo(u model.CompanyTwoUnit) CompanyTwoForm {
	f := CompanyTwoForm{
		Company:     u.Company,
		View:        u.View,
		Orientation: u.Orientation,
		Status:      u.Status,
	}
	land := func(p model.LandParcel) {
		f.BlockNumber = p.BlockNumber
		f.LandNumber = p.LandNumber
		f.Area = p.Area
		f.PricePerMeter = p.PricePerMeter
		f.Usage = p.Usage
	}
	switch {
	case u.Tilal != nil:
		land(u.Tilal.LandParcel)
		f.TotalValue = u.Tilal.TotalValue
	case u.Manazel != nil:
		land(u.Manazel.LandParcel)
		f.LandValue = u.Manazel.LandValue
	case u.Oyoon != nil:
		land(u.Oyoon.LandParcel)
		f.BlockArea = u.Oyoon.BlockArea
		f.LandValue = u.Oyoon.LandValue
	case u.Rikaz != nil:
		f.Unit = u.Rikaz.Unit
		f.Building = u.Rikaz.Building
		f.Floor = u.Rikaz.Floor
		f.TotalPrice = u.Rikaz.TotalPrice
		f.TotalArea = u.Rikaz.TotalArea
		f.Balcony = u.Rikaz.Balcony
		f.NetArea = u.Rikaz.NetArea
		f.ModelCode = u.Rikaz.ModelCode
	}
	return f
}

// Payload builds the submit payload from the active shape only.
func (f CompanyTwoForm) Payload() model.CompanyTwoUnit {
	u := model.CompanyTwoUnit{
		Company:     f.Company,
		View:        f.View,
		Orientation: f.Orientation,
		Status:      f.Status,
	}
	parcel := model.LandParcel{
		BlockNumber:   f.BlockNumber,
		LandNumber:    f.LandNumber,
		Area:          f.Area,
		PricePerMeter: f.PricePerMeter,
		Usage:         f.Usage,
	}
	switch f.Company {
	case model.CompanyTwoTilal:
		u.Tilal = &model.TilalUnit{LandParcel: parcel, TotalValue: f.TotalValue}
	case model.CompanyTwoManazel:
		u.Manazel = &model.ManazelUnit{LandParcel: parcel, LandValue: f.LandValue}
	case model.CompanyTwoOyoon:
		u.Oyoon = &model.OyoonUnit{LandParcel: parcel, BlockArea: f.BlockArea, LandValue: f.LandValue}
	default:
		u.Rikaz = &model.RikazUnit{
			Unit:       f.Unit,
			Building:   f.Building,
			Floor:      f.Floor,
			TotalPrice: f.TotalPrice,
			TotalArea:  f.TotalArea,
			Balcony:    f.Balcony,
			NetArea:    f.NetArea,
			ModelCode:  f.ModelCode,
		}
	}
	return u
}

// BookingForm is the booking dialog on the public unit listings.
type BookingForm struct {
	ClientName    string              `validate:"required"`
	Email         string              `validate:"required,email"`
	Phone         string              `validate:"required"`
	PaymentMethod model.PaymentMethod `validate:"required,oneof=cash installments transfer other"`
	Status        model.UnitStatus    `validate:"required,oneof=available booked sold mokp hold"`
}

// NewBookingForm returns the dialog defaults.
func NewBookingForm() BookingForm {
	return BookingForm{PaymentMethod: model.PayCash, Status: model.UnitBooked}
}

// Payload binds the form to a unit of the given model.
func (f BookingForm) Payload(unitModel model.UnitModel, unitID string) api.BookingCreate {
	return api.BookingCreate{
		ClientName:    f.ClientName,
		Email:         f.Email,
		Phone:         f.Phone,
		PaymentMethod: f.PaymentMethod,
		UnitModel:     unitModel,
		Unit:          unitID,
		Status:        f.Status,
	}
}

// OrderForm is the order dialog on the art detail page.
type OrderForm struct {
	PhoneNumber          string `validate:"required"`
	PhoneNumberSecondary string
	City                 string `validate:"required"`
	Street               string `validate:"required"`
	ZipCode              string
}

// Payload binds the form to an art piece. Payment is fixed to cash on
// delivery in the current flow.
func (f OrderForm) Payload(artID string) api.OrderCreate {
	return api.OrderCreate{
		ArtID:                artID,
		PhoneNumber:          f.PhoneNumber,
		PhoneNumberSecondary: f.PhoneNumberSecondary,
		Address:              model.Address{City: f.City, Street: f.Street, ZipCode: f.ZipCode},
		PaymentMethod:        "cash_on_delivery",
	}
}

package model

import (
	"encoding/json"
	"fmt"
)

// CompanyOne discriminates the two historical shapes of a company-one unit.
type CompanyOne string

const (
	CompanyOneSakaya CompanyOne = "Sakaya"
	CompanyOneUpvida CompanyOne = "Upvida"
)

// SakayaUnit is the fixed-fields company-one shape.
type SakayaUnit struct {
	Unit     string  `json:"unit"`
	Building string  `json:"building"`
	Area     float64 `json:"area"`
	Bedrooms int     `json:"bedrooms"`
	Price    float64 `json:"price"`
}

// UpvidaUnit is the model-coded company-one shape.
type UpvidaUnit struct {
	TotalPrice     float64 `json:"totalPrice"`
	TotalArea      float64 `json:"totalArea"`
	Balcony        float64 `json:"balcony"`
	NetArea        float64 `json:"netArea"`
	ModelName      string  `json:"modelName"`
	FloorNumber    string  `json:"floorNumber"`
	UnitNumber     string  `json:"unitNumber"`
	BuildingNumber string  `json:"buildingNumber"`
	TowerNumber    string  `json:"towerNumber"`
}

// CompanyOneUnit is a tagged union over the company discriminator. Exactly
// one of Sakaya/Upvida is set; the wire format stays flat (the backend
// stores both shapes in one collection).
type CompanyOneUnit struct {
	ID          string
	Company     CompanyOne
	View        string
	Orientation string
	Status      UnitStatus
	Sakaya      *SakayaUnit
	Upvida      *UpvidaUnit
	Client      *BookingClient // embedded snapshot when not available
}

// Label is the short display name used in cards and booking titles.
func (u *CompanyOneUnit) Label() string {
	switch u.Company {
	case CompanyOneUpvida:
		if u.Upvida != nil {
			return fmt.Sprintf("Unit %s / Tower %s", u.Upvida.UnitNumber, u.Upvida.TowerNumber)
		}
	default:
		if u.Sakaya != nil {
			return fmt.Sprintf("Unit %s / Building %s", u.Sakaya.Unit, u.Sakaya.Building)
		}
	}
	return "Unit " + u.ID
}

type companyOneWire struct {
	ID          string         `json:"_id,omitempty"`
	Company     CompanyOne     `json:"company"`
	View        string         `json:"view"`
	Orientation string         `json:"orientation"`
	Status      UnitStatus     `json:"status,omitempty"`
	Client      *BookingClient `json:"clientInfo,omitempty"`
	*SakayaUnit
	*UpvidaUnit
}

// MarshalJSON emits only the fields of the active variant. Fields of the
// inactive shape never reach the wire even if populated.
func (u CompanyOneUnit) MarshalJSON() ([]byte, error) {
	w := companyOneWire{
		ID:          u.ID,
		Company:     u.Company,
		View:        u.View,
		Orientation: u.Orientation,
		Status:      u.Status,
		Client:      u.Client,
	}
	switch u.Company {
	case CompanyOneUpvida:
		w.UpvidaUnit = u.Upvida
	case CompanyOneSakaya:
		w.SakayaUnit = u.Sakaya
	default:
		return nil, fmt.Errorf("company-one unit: unknown company %q", u.Company)
	}
	return json.Marshal(w)
}

// UnmarshalJSON decodes the flat document and binds the variant matching
// the discriminator, dropping fields of the other shape.
func (u *CompanyOneUnit) UnmarshalJSON(b []byte) error {
	var w struct {
		ID          string         `json:"_id"`
		Company     CompanyOne     `json:"company"`
		View        string         `json:"view"`
		Orientation string         `json:"orientation"`
		Status      UnitStatus     `json:"status"`
		Client      *BookingClient `json:"clientInfo"`
		SakayaUnit
		UpvidaUnit
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*u = CompanyOneUnit{
		ID:          w.ID,
		Company:     w.Company,
		View:        w.View,
		Orientation: w.Orientation,
		Status:      w.Status,
		Client:      w.Client,
	}
	switch w.Company {
	case CompanyOneUpvida:
		up := w.UpvidaUnit
		u.Upvida = &up
	default:
		// Sakaya is the original shape; unknown discriminators fall back to it.
		sk := w.SakayaUnit
		u.Sakaya = &sk
	}
	return nil
}

// CompanyTwo discriminates the company-two shapes. The three land-based
// companies differ only in which valuation field applies; Rikaz is the
// older building/floor/model-code shape.
type CompanyTwo string

const (
	CompanyTwoTilal   CompanyTwo = "Tilal"   // totalValue
	CompanyTwoManazel CompanyTwo = "Manazel" // landValue
	CompanyTwoOyoon   CompanyTwo = "Oyoon"   // blockArea + landValue
	CompanyTwoRikaz   CompanyTwo = "Rikaz"   // legacy building/floor shape
)

// LandParcel carries the fields shared by the land-based company-two shapes.
type LandParcel struct {
	BlockNumber   string  `json:"blockNumber"`
	LandNumber    string  `json:"landNumber"`
	Area          float64 `json:"area"`
	PricePerMeter float64 `json:"pricePerMeter"`
	Usage         string  `json:"usage"`
}

// TilalUnit values the parcel by a single total.
type TilalUnit struct {
	LandParcel
	TotalValue float64 `json:"totalValue"`
}

// ManazelUnit values the land alone.
type ManazelUnit struct {
	LandParcel
	LandValue float64 `json:"landValue"`
}

// OyoonUnit values the land plus a block area component.
type OyoonUnit struct {
	LandParcel
	BlockArea float64 `json:"blockArea"`
	LandValue float64 `json:"landValue"`
}

// RikazUnit is the building/floor/model-code shape shown on the public
// company-two listing.
type RikazUnit struct {
	Unit       string  `json:"unit"`
	Building   string  `json:"building"`
	Floor      int     `json:"floor"`
	TotalPrice float64 `json:"totalPrice"`
	TotalArea  float64 `json:"totalArea"`
	Balcony    float64 `json:"balcony"`
	NetArea    float64 `json:"netArea"`
	ModelCode  string  `json:"modelCode"`
}

// CompanyTwoUnit is a tagged union over the company-two discriminator.
// Exactly one variant pointer is set.
type CompanyTwoUnit struct {
	ID          string
	Company     CompanyTwo
	View        string
	Orientation string
	Status      UnitStatus
	Tilal       *TilalUnit
	Manazel     *ManazelUnit
	Oyoon       *OyoonUnit
	Rikaz       *RikazUnit
}

// Label is the short display name used in cards and booking titles.
func (u *CompanyTwoUnit) Label() string {
	switch {
	case u.Rikaz != nil:
		return fmt.Sprintf("Unit %s / Building %s", u.Rikaz.Unit, u.Rikaz.Building)
	case u.Tilal != nil:
		return fmt.Sprintf("Block %s / Land %s", u.Tilal.BlockNumber, u.Tilal.LandNumber)
	case u.Manazel != nil:
		return fmt.Sprintf("Block %s / Land %s", u.Manazel.BlockNumber, u.Manazel.LandNumber)
	case u.Oyoon != nil:
		return fmt.Sprintf("Block %s / Land %s", u.Oyoon.BlockNumber, u.Oyoon.LandNumber)
	}
	return "Unit " + u.ID
}

type companyTwoHead struct {
	ID          string     `json:"_id,omitempty"`
	Company     CompanyTwo `json:"company"`
	View        string     `json:"view"`
	Orientation string     `json:"orientation"`
	Status      UnitStatus `json:"status,omitempty"`
}

// MarshalJSON emits only the fields of the active variant. The variants
// share wire names (blockNumber, landValue), so each is paired with the
// head separately instead of embedding them all at once.
func (u CompanyTwoUnit) MarshalJSON() ([]byte, error) {
	h := companyTwoHead{
		ID:          u.ID,
		Company:     u.Company,
		View:        u.View,
		Orientation: u.Orientation,
		Status:      u.Status,
	}
	switch u.Company {
	case CompanyTwoTilal:
		return json.Marshal(struct {
			companyTwoHead
			*TilalUnit
		}{h, u.Tilal})
	case CompanyTwoManazel:
		return json.Marshal(struct {
			companyTwoHead
			*ManazelUnit
		}{h, u.Manazel})
	case CompanyTwoOyoon:
		return json.Marshal(struct {
			companyTwoHead
			*OyoonUnit
		}{h, u.Oyoon})
	case CompanyTwoRikaz:
		return json.Marshal(struct {
			companyTwoHead
			*RikazUnit
		}{h, u.Rikaz})
	}
	return nil, fmt.Errorf("company-two unit: unknown company %q", u.Company)
}

// UnmarshalJSON binds the variant matching the discriminator.
func (u *CompanyTwoUnit) UnmarshalJSON(b []byte) error {
	var w struct {
		ID          string     `json:"_id"`
		Company     CompanyTwo `json:"company"`
		View        string     `json:"view"`
		Orientation string     `json:"orientation"`
		Status      UnitStatus `json:"status"`
		LandParcel
		TotalValue float64 `json:"totalValue"`
		BlockArea  float64 `json:"blockArea"`
		LandValue  float64 `json:"landValue"`
		RikazUnit
	}
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*u = CompanyTwoUnit{
		ID:          w.ID,
		Company:     w.Company,
		View:        w.View,
		Orientation: w.Orientation,
		Status:      w.Status,
	}
	switch w.Company {
	case CompanyTwoTilal:
		u.Tilal = &TilalUnit{LandParcel: w.LandParcel, TotalValue: w.TotalValue}
	case CompanyTwoManazel:
		u.Manazel = &ManazelUnit{LandParcel: w.LandParcel, LandValue: w.LandValue}
	case CompanyTwoOyoon:
		u.Oyoon = &OyoonUnit{LandParcel: w.LandParcel, BlockArea: w.BlockArea, LandValue: w.LandValue}
	default:
		// Rikaz predates the discriminator; missing/unknown values decode as it.
		rk := w.RikazUnit
		u.Rikaz = &rk
	}
	return nil
}

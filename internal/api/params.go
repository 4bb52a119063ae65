package api

import (
	"net/url"
	"strconv"
)

// All is the dropdown sentinel meaning "no filter". Unset and "all"
// fields are omitted from the query string.
const All = "all"

func isSet(v string) bool { return v != "" && v != All }

func setIf(q url.Values, key, v string) {
	if isSet(v) {
		q.Set(key, v)
	}
}

// ListParams are the shared page/limit/sort query parameters accepted by
// every list endpoint.
type ListParams struct {
	Page  int
	Limit int
	Sort  string
}

func (p ListParams) Values() url.Values {
	q := url.Values{}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	setIf(q, "sort", p.Sort)
	return q
}

func merge(dst, src url.Values) url.Values {
	for k, vs := range src {
		for _, v := range vs {
			dst.Add(k, v)
		}
	}
	return dst
}

// CompanyOneFilter narrows the company-one unit listing. Zero values and
// the "all" sentinel mean "omit the parameter".
type CompanyOneFilter struct {
	Company  string
	Building string
	Status   string
	Bedrooms string // numeric dropdown value; kept as string next to "all"
}

func (f CompanyOneFilter) Values() url.Values {
	q := url.Values{}
	setIf(q, "company", f.Company)
	setIf(q, "building", f.Building)
	setIf(q, "status", f.Status)
	setIf(q, "bedrooms", f.Bedrooms)
	return q
}

// ParseCompanyOneFilter is the inverse of Values.
func ParseCompanyOneFilter(q url.Values) CompanyOneFilter {
	return CompanyOneFilter{
		Company:  q.Get("company"),
		Building: q.Get("building"),
		Status:   q.Get("status"),
		Bedrooms: q.Get("bedrooms"),
	}
}

// CompanyTwoFilter narrows the company-two unit listing. The public page
// leaves Status unset here and filters the fetched page locally instead
// (see page.CompanyTwoList).
type CompanyTwoFilter struct {
	Building    string
	Status      string
	Orientation string
	ModelCode   string
	Floor       string
}

func (f CompanyTwoFilter) Values() url.Values {
	q := url.Values{}
	setIf(q, "building", f.Building)
	setIf(q, "status", f.Status)
	setIf(q, "orientation", f.Orientation)
	setIf(q, "modelCode", f.ModelCode)
	setIf(q, "floor", f.Floor)
	return q
}

// ParseCompanyTwoFilter is the inverse of Values.
func ParseCompanyTwoFilter(q url.Values) CompanyTwoFilter {
	return CompanyTwoFilter{
		Building:    q.Get("building"),
		Status:      q.Get("status"),
		Orientation: q.Get("orientation"),
		ModelCode:   q.Get("modelCode"),
		Floor:       q.Get("floor"),
	}
}

// BookingFilter narrows the bookings admin listing. Status is applied
// client-side on the fetched page, matching the unit-status semantics.
type BookingFilter struct {
	UnitModel     string
	PaymentMethod string
}

func (f BookingFilter) Values() url.Values {
	q := url.Values{}
	setIf(q, "unitModel", f.UnitModel)
	setIf(q, "paymentMethod", f.PaymentMethod)
	return q
}

// ParseBookingFilter is the inverse of Values.
func ParseBookingFilter(q url.Values) BookingFilter {
	return BookingFilter{
		UnitModel:     q.Get("unitModel"),
		PaymentMethod: q.Get("paymentMethod"),
	}
}

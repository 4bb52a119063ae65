package api

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFilterValuesParseRoundTrip(t *testing.T) {
	t.Parallel()

	one := CompanyOneFilter{Company: "Sakaya", Building: "B1", Bedrooms: "3"}
	require.Equal(t, one, ParseCompanyOneFilter(one.Values()))

	two := CompanyTwoFilter{Building: "T1", Orientation: "west", ModelCode: "R2", Floor: "4"}
	require.Equal(t, two, ParseCompanyTwoFilter(two.Values()))

	bk := BookingFilter{UnitModel: "CompanyOneUnit", PaymentMethod: "cash"}
	require.Equal(t, bk, ParseBookingFilter(bk.Values()))
}

func TestFilterValuesDropSentinels(t *testing.T) {
	t.Parallel()

	f := CompanyOneFilter{Company: All, Status: "", Building: "B1"}
	q := f.Values()
	require.False(t, q.Has("company"))
	require.False(t, q.Has("status"))
	require.Equal(t, "B1", q.Get("building"))

	// the sentinel is not recoverable; it parses back as unset
	require.Equal(t, CompanyOneFilter{Building: "B1"}, ParseCompanyOneFilter(q))
}

func TestListParamsValues(t *testing.T) {
	t.Parallel()

	q := ListParams{Page: 2, Limit: 12, Sort: "-createdAt"}.Values()
	require.Equal(t, "2", q.Get("page"))
	require.Equal(t, "12", q.Get("limit"))
	require.Equal(t, "-createdAt", q.Get("sort"))

	require.Empty(t, ListParams{}.Values())
}

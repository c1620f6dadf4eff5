package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeAddress(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "12 Admiralty Way, Lekki", want: "12 admiralty way lekki"},
		{in: "  12  ADMIRALTY way,Lekki. ", want: "12 admiralty waylekki"},
		{in: "Plot 5, Block B; Ikoyi!", want: "plot 5 block b ikoyi"},
		{in: "Flat 3\tOff Awolowo Rd.", want: "flat 3 off awolowo rd"},
		{in: "", want: ""},
		{in: "---", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeAddress(tt.in))
		})
	}
}

func TestListing_CloneIsDeep(t *testing.T) {
	lat, lon := 6.4281, 3.4219
	l := &Listing{Address: "x", Latitude: &lat, Longitude: &lon, Status: ListingStatusLive}

	c := l.Clone()
	*c.Latitude = 0
	c.Status = ListingStatusRejected

	assert.InDelta(t, 6.4281, *l.Latitude, 1e-12)
	assert.Equal(t, ListingStatusLive, l.Status)
}

func TestListing_Point(t *testing.T) {
	lat, lon := 6.4281, 3.4219
	p, ok := (&Listing{Latitude: &lat, Longitude: &lon}).Point()

	assert.True(t, ok)
	assert.InDelta(t, 3.4219, p.Lon(), 1e-12)
	assert.InDelta(t, 6.4281, p.Lat(), 1e-12)

	_, ok = (&Listing{Latitude: &lat}).Point()
	assert.False(t, ok)
}

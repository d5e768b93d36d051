//go:build !ios && !android && (amd64 || arm64)

package sp

import "testing"

func TestConnectionStateString(t *testing.T) {
	tests := []struct {
		state ConnectionState
		want  string
	}{
		{ConnectionStateLoggedOut, "logged out"},
		{ConnectionStateLoggedIn, "logged in"},
		{ConnectionStateDisconnected, "disconnected"},
		{ConnectionStateOffline, "offline"},
		{ConnectionStateUndefined, "undefined"},
		{ConnectionState(99), "undefined"},
	}
	for _, tt := range tests {
		if got := tt.state.String(); got != tt.want {
			t.Errorf("ConnectionState(%d).String() = %q, want %q", tt.state, got, tt.want)
		}
	}
}

func TestRegionCountry(t *testing.T) {
	if got := RegionCountry("SE"); got != ToplistRegion('S'<<8|'E') {
		t.Errorf("RegionCountry(SE) = %d", got)
	}
	if got := RegionCountry(""); got != ToplistRegionEverywhere {
		t.Errorf("RegionCountry(\"\") = %d, want everywhere", got)
	}
	if got := RegionCountry("SWE"); got != ToplistRegionEverywhere {
		t.Errorf("RegionCountry(SWE) = %d, want everywhere", got)
	}
}

func TestCountryString(t *testing.T) {
	c := Country('S'<<8 | 'E')
	if got := c.String(); got != "SE" {
		t.Errorf("Country.String() = %q, want SE", got)
	}
	if got := Country(0).String(); got != "" {
		t.Errorf("zero Country.String() = %q, want \"\"", got)
	}
}

func TestSearchAndBrowseDefaults(t *testing.T) {
	// The zero values are what the high-level package passes when the
	// caller does not pick anything.
	var q SearchQuery
	if q.Type != SearchTypeStandard {
		t.Errorf("zero SearchQuery.Type = %d, want standard", q.Type)
	}
	if ArtistBrowseFull != ArtistBrowseType(0) {
		t.Errorf("ArtistBrowseFull = %d, want 0", ArtistBrowseFull)
	}
	if ImageSizeNormal != ImageSize(0) {
		t.Errorf("ImageSizeNormal = %d, want 0", ImageSizeNormal)
	}
}

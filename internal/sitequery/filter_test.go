package sitequery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rbiomeds/newsdesk/internal/domain"
)

func TestRegistry_Filter(t *testing.T) {
	reg := DefaultRegistry()

	cases := []struct {
		name     string
		selector string
		want     Filter
	}{
		{
			name:     "no selector matches everything",
			selector: "",
			want:     Filter{MatchAll: true},
		},
		{
			name:     "default site includes legacy records",
			selector: domain.DefaultSite,
			want:     Filter{Contains: []string{domain.DefaultSite}, IncludeMissing: true},
		},
		{
			name:     "partner site matches the literal only",
			selector: domain.PartnerSite,
			want:     Filter{Contains: []string{domain.PartnerSite}},
		},
		{
			name:     "both requires membership in every site",
			selector: AllSelector,
			want:     Filter{Contains: []string{domain.DefaultSite, domain.PartnerSite}},
		},
		{
			name:     "unknown literal matches itself",
			selector: "some-future-site",
			want:     Filter{Contains: []string{"some-future-site"}},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, reg.Filter(tc.selector))
		})
	}
}

func TestRegistry_Filter_CustomDefaultSite(t *testing.T) {
	reg := Registry{Default: "main", Sites: []string{"main", "mirror"}}

	assert.Equal(t,
		Filter{Contains: []string{"main"}, IncludeMissing: true},
		reg.Filter("main"))

	// The built-in default site is just another literal for this registry.
	assert.Equal(t,
		Filter{Contains: []string{domain.DefaultSite}},
		reg.Filter(domain.DefaultSite))
}

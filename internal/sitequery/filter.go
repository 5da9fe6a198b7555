// Package sitequery translates the "site" selector of a list request into a
// store-agnostic filter expression. The mapping is pure; each storage backend
// renders the filter in its own query language.
package sitequery

import (
	"slices"

	"github.com/rbiomeds/newsdesk/internal/domain"
)

// AllSelector asks for articles published to every registered site at once.
const AllSelector = "both"

// Filter is the store-agnostic visibility expression.
type Filter struct {
	// MatchAll matches every record, with no filtering at all.
	MatchAll bool
	// Contains lists site ids the record's sites sequence must all contain.
	Contains []string
	// IncludeMissing additionally matches records that predate the sites
	// field and therefore have no value for it.
	IncludeMissing bool
}

// Registry names the publishing destinations the backend knows about.
type Registry struct {
	Default string   `yaml:"default"`
	Sites   []string `yaml:"sites"`
}

// DefaultRegistry returns the built-in destination set.
func DefaultRegistry() Registry {
	return Registry{
		Default: domain.DefaultSite,
		Sites:   []string{domain.DefaultSite, domain.PartnerSite},
	}
}

// Filter maps a selector to a visibility filter:
//   - empty selector matches everything
//   - the default site also matches legacy records with no sites field
//   - AllSelector requires membership in every registered site (intersection)
//   - any other literal requires membership in exactly that value
func (r Registry) Filter(selector string) Filter {
	switch selector {
	case "":
		return Filter{MatchAll: true}
	case r.Default:
		return Filter{Contains: []string{r.Default}, IncludeMissing: true}
	case AllSelector:
		return Filter{Contains: slices.Clone(r.Sites)}
	default:
		return Filter{Contains: []string{selector}}
	}
}

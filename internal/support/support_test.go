package support

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/dotcomponents"
)

func TestURL(t *testing.T) {
	b := NewBuilder("https://support.test/")
	rc := domain.RequestContext{Edition: domain.EditionUK}

	got := b.URL(dotcomponents.ActionContribute, dotcomponents.PlacementHeader, rc)
	assert.Equal(t, "https://support.test/contribute?INTCMP=dotcom_uk_header_contribute", got)
}

func TestURL_TrackingCodeVariesByAxis(t *testing.T) {
	b := NewBuilder("https://support.test")

	seen := make(map[string]struct{})
	for _, e := range []domain.Edition{domain.EditionUK, domain.EditionAU} {
		rc := domain.RequestContext{Edition: e}
		for _, p := range []dotcomponents.Placement{dotcomponents.PlacementHeader, dotcomponents.PlacementFooter, dotcomponents.PlacementSideMenu} {
			for _, a := range []dotcomponents.Action{dotcomponents.ActionContribute, dotcomponents.ActionSubscribe, dotcomponents.ActionSupport} {
				seen[b.URL(a, p, rc)] = struct{}{}
			}
		}
	}

	assert.Len(t, seen, 18)
}

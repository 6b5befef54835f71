package dotcomponents

import "dotcomponents/internal/domain"

// Placement is a UI location with its own monetization link set.
type Placement string

// Action is the monetization intent forming the other axis of the matrix.
type Action string

const (
	PlacementHeader   Placement = "header"
	PlacementFooter   Placement = "footer"
	PlacementSideMenu Placement = "side-menu"

	ActionContribute Action = "contribute"
	ActionSubscribe  Action = "subscribe"
	ActionSupport    Action = "support"
)

// RevenueURLBuilder resolves one destination URL per (action, placement)
// pair for the given request context.
type RevenueURLBuilder interface {
	URL(action Action, placement Placement, rc domain.RequestContext) string
}

// NormalizeRevenueLinks resolves the full placement/action matrix: three
// fixed placements, three fixed actions, nine URLs. The matrix is
// exhaustive; changing it is a contract break and requires a Version bump.
func NormalizeRevenueLinks(builder RevenueURLBuilder, rc domain.RequestContext) ReaderRevenueLinks {
	link := func(p Placement) ReaderRevenueLink {
		return ReaderRevenueLink{
			Contribute: builder.URL(ActionContribute, p, rc),
			Subscribe:  builder.URL(ActionSubscribe, p, rc),
			Support:    builder.URL(ActionSupport, p, rc),
		}
	}

	return ReaderRevenueLinks{
		Header:   link(PlacementHeader),
		Footer:   link(PlacementFooter),
		SideMenu: link(PlacementSideMenu),
	}
}

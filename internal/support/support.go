package support

import (
	"fmt"
	"net/url"
	"strings"

	"dotcomponents/internal/domain"
	"dotcomponents/internal/dotcomponents"
)

// Builder derives reader-revenue destination URLs on the support site.
// Each (action, placement) pair gets its own tracking code so campaigns
// can attribute by UI location and edition.
type Builder struct {
	host string
}

func NewBuilder(host string) *Builder {
	return &Builder{host: strings.TrimRight(host, "/")}
}

func (b *Builder) URL(action dotcomponents.Action, placement dotcomponents.Placement, rc domain.RequestContext) string {
	q := url.Values{}
	q.Set("INTCMP", trackingCode(action, placement, rc.Edition))
	return fmt.Sprintf("%s/%s?%s", b.host, action, q.Encode())
}

func trackingCode(action dotcomponents.Action, placement dotcomponents.Placement, edition domain.Edition) string {
	return fmt.Sprintf("dotcom_%s_%s_%s", edition.ID, placement, action)
}

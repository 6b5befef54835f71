package dotcomponents

import (
	"time"

	"dotcomponents/internal/domain"
)

const displayDateLayout = "Monday, 2 January 2006 15:04 MST"

// FormatDisplayDate renders a publication instant in the edition's time
// zone. It is always derived from the same time.Time that produces the
// epoch-millis field, so the two represent one instant.
func FormatDisplayDate(t time.Time, edition domain.Edition) string {
	return t.In(edition.Location()).Format(displayDateLayout)
}

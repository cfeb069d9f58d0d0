package booking

import (
	"time"

	"github.com/styleon-app/stylist-scheduler/internal/timezone"
)

// Clock abstracts "now" so boundary conditions (lead time, horizon) can be
// pinned in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct {
	tz string
}

func (c realClock) Now() time.Time {
	return timezone.NowIn(c.tz)
}

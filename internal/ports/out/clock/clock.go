package clock

import "time"

// Clock provides time to the application. Using an interface keeps
// timestamps (joined dates, generation times) deterministic in tests.
type Clock interface {
	Now() time.Time
}

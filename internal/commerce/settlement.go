package commerce

import (
	"fmt"
	"time"
)

// MonthlyCycle derives the settlement cycle identifier ("YYYY-MM", zero
// padded) from the calendar fields of t. No timezone conversion happens
// here: the caller supplies a timestamp already expressed in the
// organization's settlement timezone.
func MonthlyCycle(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

package commerce

import (
	"fmt"
	"strings"
)

// ServiceCount is one "serviceType × count" pair of a package description.
type ServiceCount struct {
	ServiceType string
	Count       int
}

const (
	displayServiceSep = "+"
	displaySegmentSep = " | "
)

// FormatPackageDisplay renders the canonical human-readable description of a
// service package: uppercased region level, tier as given, then every
// service pair as "type×count" in input order.
func FormatPackageDisplay(regionLevel, tier string, services []ServiceCount) string {
	parts := make([]string, 0, len(services))
	for _, s := range services {
		parts = append(parts, fmt.Sprintf("%s×%d", s.ServiceType, s.Count))
	}
	segments := []string{
		strings.ToUpper(regionLevel),
		tier,
		strings.Join(parts, displayServiceSep),
	}
	return strings.Join(segments, displaySegmentSep)
}

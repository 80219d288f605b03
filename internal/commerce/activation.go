package commerce

import (
	"fmt"
	"strings"
)

// ApplyActivation enforces the write-once activation marker: once a
// non-empty activator is recorded, the first writer wins and every later
// attempt gets the original value back unchanged. The caller can detect
// "already activated" by comparing the returned id with the requested one.
//
// A first activation with an empty activator id is invalid — "activated by
// nobody" is not a representable state.
func ApplyActivation(currentActivatorID, activatorID string) (string, error) {
	if strings.TrimSpace(currentActivatorID) != "" {
		return currentActivatorID, nil
	}
	if strings.TrimSpace(activatorID) == "" {
		return "", fmt.Errorf("%w: activator id is empty", ErrInvalidArgument)
	}
	return activatorID, nil
}

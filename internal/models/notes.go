package models

import "strings"

// Words the operators use in Observacoes for delays, cancellations and
// revised times.
var disruptionWords = []string{"atraso", "suprimido", "prevista"}

// IsDisruption reports whether an Observacoes text announces a delay,
// cancellation or revised time
func IsDisruption(notes string) bool {
	lower := strings.ToLower(notes)
	for _, w := range disruptionWords {
		if strings.Contains(lower, w) {
			return true
		}
	}
	return false
}

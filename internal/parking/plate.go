package parking

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MinPlateLength is the shortest normalized plate the send action accepts.
const MinPlateLength = 4

// NormalizePlate uppercases raw with full case mapping (ß becomes SS) and
// drops every character outside [A-Z0-9].
func NormalizePlate(raw string) string {
	upper := cases.Upper(language.Und).String(raw)
	var b strings.Builder
	b.Grow(len(upper))
	for _, r := range upper {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsSendEnabled reports whether plate is long enough to be sent.
func IsSendEnabled(plate string) bool {
	return len(NormalizePlate(plate)) >= MinPlateLength
}

// dedupePlates normalizes plates and drops empties and repeats, keeping the
// first occurrence order.
func dedupePlates(plates []string) []string {
	out := make([]string, 0, len(plates))
	seen := make(map[string]struct{}, len(plates))
	for _, p := range plates {
		p = NormalizePlate(p)
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}

package enrich

import (
	"regexp"
	"strings"

	"github.com/chenna-nefer/InsightScout-new/internal/domain/model"
)

// founderLine matches the strict "Founder: First Last" / "CEO: First Last"
// shape the discovery prompt asks for. Requiring at least two capitalized
// name parts filters out hedged or malformed model output.
var founderLine = regexp.MustCompile(`^(Founder|CEO):\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)+)$`)

// parseFounderLines extracts validated, deduplicated founder leads from the
// discovery response. Returns nil when the model reports no verified data.
func parseFounderLines(raw string) []model.FounderLead {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.Contains(strings.ToLower(raw), "no verified founder") {
		return nil
	}

	seen := make(map[string]bool)
	var leads []model.FounderLead
	for _, line := range strings.Split(raw, "\n") {
		m := founderLine.FindStringSubmatch(strings.TrimSpace(line))
		if m == nil {
			continue
		}
		role, name := m[1], m[2]
		if seen[name] {
			continue
		}
		seen[name] = true
		leads = append(leads, model.FounderLead{Name: name, Role: role})
	}
	return leads
}

// splitName returns the first and last parts of a cleaned-up full name, or
// ok=false when there are fewer than two parts.
func splitName(full string) (first, last string, ok bool) {
	cleaned := nonNameChars.ReplaceAllString(full, "")
	parts := strings.Fields(cleaned)
	if len(parts) < 2 {
		return "", "", false
	}
	return parts[0], parts[len(parts)-1], true
}

var nonNameChars = regexp.MustCompile(`[^\w\s]`)

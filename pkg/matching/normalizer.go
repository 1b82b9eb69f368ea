// Package matching holds the pure pieces of the job-intern matching pipeline:
// document normalization and score ranking. Nothing here touches storage or
// the network.
package matching

import (
	"fmt"
	"strings"
)

// InternDocument builds the semantic document for an intern profile. Nil or
// empty skills produce "Skills: " with no placeholder; the function is total.
func InternDocument(summary string, skills []string) string {
	return fmt.Sprintf("Skills: %s\nSummary: %s", strings.Join(skills, ", "), summary)
}

// JobDocument builds the semantic document for a job post. List fields may be
// nil. No truncation happens here; the embedding backend owns length limits.
func JobDocument(title, description string, requirements, responsibilities []string) string {
	return fmt.Sprintf("%s\n%s\nRequirements: %s\nResponsibilities: %s",
		title,
		description,
		strings.Join(requirements, ", "),
		strings.Join(responsibilities, ", "),
	)
}

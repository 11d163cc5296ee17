package formatter

import (
	"fmt"
	"strings"
)

// FormatReport renders a validation outcome: a single OK line when issues is
// empty, otherwise a FAIL header followed by one indented line per issue.
func FormatReport(subject string, issues []string, color bool) string {
	pal := palette{enabled: color}
	var sb strings.Builder
	if len(issues) == 0 {
		fmt.Fprintf(&sb, "%s %s\n", pal.ok("OK"), subject)
		return sb.String()
	}
	fmt.Fprintf(&sb, "%s %s (%d problem", pal.err("FAIL"), subject, len(issues))
	if len(issues) != 1 {
		sb.WriteString("s")
	}
	sb.WriteString(")\n")
	for _, is := range issues {
		fmt.Fprintf(&sb, "  - %s\n", is)
	}
	return sb.String()
}

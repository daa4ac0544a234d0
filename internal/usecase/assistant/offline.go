package assistant

import "strings"

const (
	offlinePreamble = "Offline assistant mode (no usable AI API call succeeded).\n" +
		"Below is a rule-based analysis based on your incident data."

	prioritisationAdvice = "\nPrioritisation advice:\n" +
		"- Resolve High/Critical incidents that are still Open first.\n" +
		"- Next, clear Medium incidents that have been open for a long time.\n" +
		"- Low severity incidents can be grouped and handled in batches."

	phishingGuidance = "\nPhishing guidance:\n" +
		"- Check if a large share of incidents are phishing emails.\n" +
		"- If yes, recommend short staff training and stronger email filtering rules.\n" +
		"- Monitor how phishing incidents change after these actions."

	backlogAnalysis = "\nBacklog / bottleneck analysis:\n" +
		"- A high count of Open incidents suggests insufficient capacity.\n" +
		"- Many incidents stuck In Progress can indicate process bottlenecks.\n" +
		"- Compare incident counts per assignee to detect imbalances."

	generalGuidance = "\nGeneral guidance:\n" +
		"- Use the filters and charts above to inspect which incident types, " +
		"severities, and assignees dominate, then adjust playbooks accordingly."

	offlineTrailer = "\nIn a full deployment, this panel sends the same question and context to " +
		"the OpenRouter model via the OpenRouter API."
)

// offlineAnswer is the deterministic rule-based fallback. Advice blocks are
// keyed on keyword containment in the lowered question; the general block
// appears only when no keyword matched.
func offlineAnswer(question string, contextText string) string {
	parts := []string{offlinePreamble}

	if contextText != "" {
		parts = append(parts, "\nIncident summary:\n"+contextText)
	}

	msg := strings.ToLower(question)
	matched := false

	if strings.Contains(msg, "priorit") || strings.Contains(msg, "first") {
		parts = append(parts, prioritisationAdvice)
		matched = true
	}
	if strings.Contains(msg, "phishing") {
		parts = append(parts, phishingGuidance)
		matched = true
	}
	if strings.Contains(msg, "backlog") || strings.Contains(msg, "bottleneck") {
		parts = append(parts, backlogAnalysis)
		matched = true
	}
	if !matched {
		parts = append(parts, generalGuidance)
	}

	parts = append(parts, offlineTrailer)
	return strings.Join(parts, "\n")
}

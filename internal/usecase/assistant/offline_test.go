package assistant

import (
	"strings"
	"testing"
)

func TestOfflineAnswerNoKeyword(t *testing.T) {
	got := offlineAnswer("What is going on?", "")

	want := "Offline assistant mode (no usable AI API call succeeded).\n" +
		"Below is a rule-based analysis based on your incident data.\n" +
		"\nGeneral guidance:\n" +
		"- Use the filters and charts above to inspect which incident types, severities, and assignees dominate, then adjust playbooks accordingly.\n" +
		"\nIn a full deployment, this panel sends the same question and context to the OpenRouter model via the OpenRouter API."

	if got != want {
		t.Fatalf("offlineAnswer() = %q, want %q", got, want)
	}
}

func TestOfflineAnswerEchoesContext(t *testing.T) {
	got := offlineAnswer("Which incidents should we fix first?", "5 open incidents, 2 High")

	if !strings.Contains(got, "\nIncident summary:\n5 open incidents, 2 High\n") {
		t.Fatalf("offlineAnswer() missing context echo:\n%s", got)
	}
	if !strings.Contains(got, "\nPrioritisation advice:\n") {
		t.Fatalf("offlineAnswer() missing prioritisation block:\n%s", got)
	}
	if strings.Contains(got, "General guidance") {
		t.Fatalf("offlineAnswer() has general guidance despite keyword match:\n%s", got)
	}
}

func TestOfflineAnswerContextWithoutKeywordStillGeneral(t *testing.T) {
	got := offlineAnswer("Tell me something.", "7 incidents")

	if !strings.Contains(got, "\nIncident summary:\n7 incidents\n") {
		t.Fatalf("offlineAnswer() missing context echo:\n%s", got)
	}
	if !strings.Contains(got, "\nGeneral guidance:\n") {
		t.Fatalf("offlineAnswer() missing general guidance:\n%s", got)
	}
}

func TestOfflineAnswerAccumulatesBlocks(t *testing.T) {
	got := offlineAnswer("How do we prioritise the phishing backlog?", "")

	priorIdx := strings.Index(got, "Prioritisation advice:")
	phishIdx := strings.Index(got, "Phishing guidance:")
	backlogIdx := strings.Index(got, "Backlog / bottleneck analysis:")
	if priorIdx < 0 || phishIdx < 0 || backlogIdx < 0 {
		t.Fatalf("offlineAnswer() missing blocks:\n%s", got)
	}
	if !(priorIdx < phishIdx && phishIdx < backlogIdx) {
		t.Fatalf("offlineAnswer() block order = %d, %d, %d", priorIdx, phishIdx, backlogIdx)
	}
	if strings.Contains(got, "General guidance") {
		t.Fatalf("offlineAnswer() has general guidance despite keyword matches:\n%s", got)
	}
	if !strings.HasSuffix(got, "via the OpenRouter API.") {
		t.Fatalf("offlineAnswer() missing trailer:\n%s", got)
	}
}

func TestOfflineAnswerIsCaseInsensitive(t *testing.T) {
	got := offlineAnswer("PRIORITIZE the BOTTLENECK", "")

	if !strings.Contains(got, "Prioritisation advice:") {
		t.Fatalf("offlineAnswer() missing prioritisation block:\n%s", got)
	}
	if !strings.Contains(got, "Backlog / bottleneck analysis:") {
		t.Fatalf("offlineAnswer() missing backlog block:\n%s", got)
	}
}

func TestOfflineAnswerIsDeterministic(t *testing.T) {
	first := offlineAnswer("phishing wave", "ctx")
	second := offlineAnswer("phishing wave", "ctx")
	if first != second {
		t.Fatalf("offlineAnswer() not deterministic")
	}
}

package yangvalidator

import "testing"

func TestIssueBuilder(t *testing.T) {
	issue := Error(DiagMissingElement).
		At("/iface").
		Node("name").
		Within("iface").
		Build()

	if issue.Severity != SeverityError {
		t.Errorf("Severity = %q; want %q", issue.Severity, SeverityError)
	}
	if issue.Kind != DiagMissingElement {
		t.Errorf("Kind = %q; want %q", issue.Kind, DiagMissingElement)
	}
	if issue.Path != "/iface" {
		t.Errorf("Path = %q; want %q", issue.Path, "/iface")
	}
	if issue.Node != "name" || issue.Within != "iface" {
		t.Errorf("Node/Within = %q/%q; want name/iface", issue.Node, issue.Within)
	}
}

func TestIssueIsError(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		want     bool
	}{
		{SeverityError, true},
		{SeverityWarning, false},
		{SeverityInformation, false},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if got := issue.IsError(); got != tt.want {
			t.Errorf("IsError() for %q = %v; want %v", tt.severity, got, tt.want)
		}
	}
}

func TestIssueString(t *testing.T) {
	issue := Error(DiagWrongSiblingOrder).
		At("/sys/out").
		Node("out").
		Detail("in").
		Build()

	want := "error: wrong-sibling-order out (in) at /sys/out"
	if got := issue.String(); got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestWarningBuilder(t *testing.T) {
	issue := Warning(DiagObsoleteData).Node("old").Build()
	if issue.Severity != SeverityWarning {
		t.Errorf("Severity = %q; want %q", issue.Severity, SeverityWarning)
	}
	if issue.IsError() {
		t.Error("warning should not be an error")
	}
}

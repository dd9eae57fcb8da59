package yangvalidator

import "testing"

func TestAcquireResult(t *testing.T) {
	r := AcquireResult()
	defer r.Release()

	if !r.Valid {
		t.Error("fresh result should be valid")
	}
	if len(r.Issues) != 0 {
		t.Errorf("fresh result has %d issues; want 0", len(r.Issues))
	}
}

func TestResultAddIssue(t *testing.T) {
	r := AcquireResult()
	defer r.Release()

	r.AddIssue(Warning(DiagObsoleteData).Build())
	if !r.Valid {
		t.Error("warning should not invalidate the result")
	}

	r.AddIssue(Error(DiagTooManyInstances).Build())
	if r.Valid {
		t.Error("error should invalidate the result")
	}
	if !r.HasErrors() {
		t.Error("HasErrors() = false; want true")
	}
	if got := len(r.Errors()); got != 1 {
		t.Errorf("len(Errors()) = %d; want 1", got)
	}
}

func TestResultReuse(t *testing.T) {
	r := AcquireResult()
	r.AddIssue(Error(DiagMissingElement).Build())
	r.JobID = "job-1"
	r.Nodes = 10
	r.Release()

	r2 := AcquireResult()
	defer r2.Release()
	if !r2.Valid || len(r2.Issues) != 0 || r2.JobID != "" || r2.Nodes != 0 {
		t.Error("reused result was not reset")
	}
}

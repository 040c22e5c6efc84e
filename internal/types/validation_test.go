package types

import "testing"

func TestRequestValidation(t *testing.T) {
	t.Parallel()
	if err := (CreateProjectRequest{Name: "yeast run", Description: "tryptic digest"}).Validate(); err != nil {
		t.Fatalf("valid create project rejected: %v", err)
	}
	if err := (CreateProjectRequest{Description: "no name"}).Validate(); err == nil {
		t.Fatal("empty project name accepted")
	}
	if err := (UpdateOrganizationRequest{}).Validate(); err == nil {
		t.Fatal("empty organization name accepted")
	}
	if err := (UpdateFastaRequest{Name: "uniprot-human"}).Validate(); err != nil {
		t.Fatalf("nil decoy tag rejected: %v", err)
	}
}

func TestInviteRequestEmail(t *testing.T) {
	t.Parallel()
	if err := (InviteRequest{Email: "researcher@example.org"}).Validate(); err != nil {
		t.Fatalf("valid email rejected: %v", err)
	}
	if err := (InviteRequest{Email: "not-an-email"}).Validate(); err == nil {
		t.Fatal("malformed email accepted")
	}
	if err := (InviteRequest{}).Validate(); err == nil {
		t.Fatal("empty email accepted")
	}
}

func TestSearchStatusTerminal(t *testing.T) {
	t.Parallel()
	for _, s := range []SearchStatus{StatusSubmitted, StatusPending, StatusRunnable, StatusStarting, StatusRunning} {
		if s.Terminal() {
			t.Errorf("%s should not be terminal", s)
		}
	}
	for _, s := range []SearchStatus{StatusSucceeded, StatusFailed} {
		if !s.Terminal() {
			t.Errorf("%s should be terminal", s)
		}
	}
}

package ndrvalidator

import "testing"

func TestVersionSet(t *testing.T) {
	if Version == "" {
		t.Error("Version must not be empty")
	}
	if RulesRevision == "" {
		t.Error("RulesRevision must not be empty")
	}
}

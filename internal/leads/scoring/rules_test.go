package scoring

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRulesEmptyPathReturnsDefaults(t *testing.T) {
	rules, err := LoadRules("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules.Version != DefaultRules().Version {
		t.Fatalf("expected default version, got %q", rules.Version)
	}
}

func TestLoadRulesMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	content := "version: custom-v2\nbroker_keywords:\n  - acme broker\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write rules file: %v", err)
	}

	rules, err := LoadRules(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rules.Version != "custom-v2" {
		t.Fatalf("expected overridden version, got %q", rules.Version)
	}
	if len(rules.BrokerKeywords) != 1 || rules.BrokerKeywords[0] != "acme broker" {
		t.Fatalf("expected overridden broker keywords, got %v", rules.BrokerKeywords)
	}
	// Keys absent from the file keep their default vocabulary.
	if len(rules.SeniorTitleKeywords) == 0 {
		t.Fatal("expected default senior title keywords to survive the merge")
	}
}

func TestLoadRulesMissingFileFails(t *testing.T) {
	if _, err := LoadRules(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing rules file")
	}
}

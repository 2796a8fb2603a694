package phone

import "testing"

func TestNormalizeE164RegionFormatsNationalNumber(t *testing.T) {
	got := NormalizeE164Region("07911 123456", "GB")
	if got != "+447911123456" {
		t.Fatalf("expected +447911123456, got %q", got)
	}
}

func TestNormalizeE164KeepsInternationalPrefix(t *testing.T) {
	got := NormalizeE164Region("+2348031234567", "GB")
	if got != "+2348031234567" {
		t.Fatalf("expected prefix preserved, got %q", got)
	}
}

func TestNormalizeE164ReturnsInputWhenUnparseable(t *testing.T) {
	if got := NormalizeE164("not a number"); got != "not a number" {
		t.Fatalf("expected input returned unchanged, got %q", got)
	}
	if got := NormalizeE164("  "); got != "" {
		t.Fatalf("expected empty string for whitespace, got %q", got)
	}
}

func TestNormalizeE164RegionFallsBackToDefaultRegion(t *testing.T) {
	withDefault := NormalizeE164Region("07911 123456", "")
	if withDefault != "+447911123456" {
		t.Fatalf("expected GB fallback, got %q", withDefault)
	}
}

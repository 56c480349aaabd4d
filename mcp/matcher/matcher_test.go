package matcher

import "testing"

func TestMatch(t *testing.T) {
	var testCases = []struct {
		pattern   string
		candidate string
		matched   bool
	}{
		{"*", "anything", true},
		{"", "anything", false},

		// Exact matches
		{"dynamic-convert", "dynamic-convert", true},
		{"system/exec", "system/exec", true},
		{"system/exec", "system/exec2", true},

		// Prefix matches with "/"
		{"system/", "system/exec", true},
		{"sys/", "system/exec", false},

		// Prefix matches with "-" and trailing star
		{"dynamic-", "dynamic-types", true},
		{"dyn*", "dynamic-types", true},
		{"printer*", "dynamic-types", false},
	}

	for i, tc := range testCases {
		if got := Match(tc.pattern, tc.candidate); got != tc.matched {
			t.Fatalf("[%d] Match(%q, %q) = %v; expected %v", i, tc.pattern, tc.candidate, got, tc.matched)
		}
	}
}

func TestMatchAny(t *testing.T) {
	if !MatchAny([]string{"nop", "system/"}, "system/storage") {
		t.Fatalf("expected system/storage to match")
	}
	if MatchAny(nil, "nop") {
		t.Fatalf("expected no match for empty patterns")
	}
}

package apilevel

import (
	"testing"
)

func TestParse_Valid(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"16", JellyBean},
		{"v16", JellyBean},
		{"23", M},
		{"M", M},
		{"marshmallow", M},
		{"jelly_bean", JellyBean},
		{"JELLY_BEAN_MR1", JellyBeanMR1},
		{"ics", IceCream},
		{"jellybean", JellyBean},
		{"JellyBean", JellyBean},
		{"icecreamsandwich", IceCream},
		{"kitkat", KitKat},
		{"lollipop", Lollipop},
		{"42", Level(42)},
		{" 28 ", P},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []string{
		"",
		"0",
		"-3",
		"v0",
		"v",
		"banana",
		"16.1",
		"v99999999999999999999999",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Parse(input)
			if err == nil {
				t.Errorf("Parse(%q) should return error", input)
			}
		})
	}
}

func TestParseToken(t *testing.T) {
	tests := []struct {
		input  string
		want   Level
		wantOK bool
	}{
		{"v7", 7, true},
		{"v21", Lollipop, true},
		{"v", 0, false},
		{"w480dp", 0, false},
		{"v7a", 0, false},
		{"vr", 0, false},
		{"v99999999999999999999999", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseToken(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseToken(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseToken(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsToken(t *testing.T) {
	tests := map[string]bool{
		"v0":                       true,
		"v21":                      true,
		"v99999999999999999999999": true,
		"v":                        false,
		"v7a":                      false,
		"vrheadset":                false,
		"21":                       false,
	}

	for input, want := range tests {
		if got := IsToken(input); got != want {
			t.Errorf("IsToken(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLevel_Token(t *testing.T) {
	if got := JellyBean.Token(); got != "v16" {
		t.Errorf("Token() = %q, want %q", got, "v16")
	}
	if got := Level(30).Token(); got != "v30" {
		t.Errorf("Token() = %q, want %q", got, "v30")
	}
}

func TestLevel_Codename(t *testing.T) {
	if got := KitKat.Codename(); got != "KITKAT" {
		t.Errorf("Codename() = %q, want %q", got, "KITKAT")
	}
	if got := Level(99).Codename(); got != "API_99" {
		t.Errorf("Codename() = %q, want %q", got, "API_99")
	}
}

func TestRules_JellyBeanThreshold(t *testing.T) {
	for _, r := range []Rule{RuleLocaleLayoutDirection, RuleConfigurationDensity} {
		t.Run(r.String(), func(t *testing.T) {
			if r.Threshold() != JellyBean {
				t.Errorf("Threshold() = %d, want %d", r.Threshold(), JellyBean)
			}
			if Honeycomb.Enables(r) {
				t.Error("rule should be off below the threshold")
			}
			if JellyBean.Enables(r) {
				t.Error("rule should be off at the threshold")
			}
			if !JellyBeanMR1.Enables(r) {
				t.Error("rule should be on above the threshold")
			}
			if !Latest.Enables(r) {
				t.Error("rule should be on at the latest level")
			}
		})
	}
}

func TestRules_Unknown(t *testing.T) {
	if Latest.Enables(Rule(200)) {
		t.Error("unknown rule should never be enabled")
	}
	if Rule(200).String() != "UNKNOWN" {
		t.Errorf("String() = %q, want UNKNOWN", Rule(200).String())
	}
}

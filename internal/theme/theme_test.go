package theme

import "testing"

func TestByName(t *testing.T) {
	for _, th := range All {
		if got := ByName(th.Name); got.Name != th.Name {
			t.Errorf("ByName(%q) = %q", th.Name, got.Name)
		}
	}
	if got := ByName("no-such-theme"); got.Name != FlexokiDark.Name {
		t.Errorf("unknown theme fell back to %q, want %q", got.Name, FlexokiDark.Name)
	}
}

func TestNames_DefaultFirst(t *testing.T) {
	names := Names()
	if len(names) != len(All) || names[0] != "flexoki-dark" {
		t.Errorf("Names() = %v", names)
	}
}

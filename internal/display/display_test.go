package display

import "testing"

func TestMatch(t *testing.T) {
	names := []string{"DP-1", "HDMI-A-1", "eDP-1"}

	cases := []struct {
		filter string
		index  int
		ok     bool
	}{
		{"", 0, true},
		{"hdmi", 1, true},
		{"HDMI-A-1", 1, true},
		{"edp", 2, true},
		{"dp", 0, true}, // substring match takes the first hit
		{"vga", 0, false},
	}
	for _, c := range cases {
		i, ok := Match(names, c.filter)
		if i != c.index || ok != c.ok {
			t.Errorf("Match(%q) = (%d, %v), want (%d, %v)", c.filter, i, ok, c.index, c.ok)
		}
	}
}

func TestMatchNoMonitors(t *testing.T) {
	if _, ok := Match(nil, ""); ok {
		t.Error("Match with no monitors should report no match")
	}
}

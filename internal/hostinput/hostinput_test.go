package hostinput

import "testing"

// TestKeyString verifies key names.
func TestKeyString(t *testing.T) {
	cases := []struct {
		key  Key
		want string
	}{
		{KeyW, "w"},
		{KeyD, "d"},
		{KeyArrowUp, "arrow_up"},
		{KeyArrowRight, "arrow_right"},
		{Key(200), "unknown"},
	}
	for _, tc := range cases {
		if got := tc.key.String(); got != tc.want {
			t.Fatalf("key %d: expected %q, got %q", tc.key, tc.want, got)
		}
	}
}

// TestNullAxisSink verifies the discard sink never errors.
func TestNullAxisSink(t *testing.T) {
	var sink NullAxisSink
	if err := sink.SetAxis(0, 127); err != nil {
		t.Fatalf("SetAxis returned error: %v", err)
	}
}

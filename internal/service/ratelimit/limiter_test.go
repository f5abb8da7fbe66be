package ratelimit

import "testing"

func TestAllowWithinBurst(t *testing.T) {
	l := New(3, 1)
	for i := 0; i < 3; i++ {
		if !l.Allow("client") {
			t.Fatalf("request %d should be allowed within burst", i)
		}
	}
	if l.Allow("client") {
		t.Fatalf("request beyond burst should be denied")
	}
}

func TestKeysAreIndependent(t *testing.T) {
	l := New(1, 1)
	if !l.Allow("a") {
		t.Fatalf("first request for a should pass")
	}
	if l.Allow("a") {
		t.Fatalf("second request for a should be denied")
	}
	if !l.Allow("b") {
		t.Fatalf("b has its own bucket and should pass")
	}
}

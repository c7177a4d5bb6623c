package crackcache

import (
	"testing"
	"time"
)

func TestGetSetRoundTrip(t *testing.T) {
	c, err := New(1 << 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	c.Set("deadbeef", "abcd")
	// ristretto's admission is asynchronous; give its buffered writes a
	// moment to land before asserting on Get.
	time.Sleep(50 * time.Millisecond)

	got, ok := c.Get("deadbeef")
	if !ok {
		t.Fatal("Get did not find a key that was just Set")
	}
	if got != "abcd" {
		t.Fatalf("Get = %q, want %q", got, "abcd")
	}
}

func TestGetMiss(t *testing.T) {
	c, err := New(1 << 20)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	if _, ok := c.Get("never-set"); ok {
		t.Fatal("Get found a key that was never Set")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	var c *Cache
	c.Set("k", "v") // must not panic
	if _, ok := c.Get("k"); ok {
		t.Fatal("a nil Cache must never report a hit")
	}
	c.Close() // must not panic
}

package gradient

import (
	"errors"
	"sync"
	"testing"
)

func TestCacheSampleMatchesSampler(t *testing.T) {
	c := NewCache(0)
	side := Stops(red, green, blue)

	got, err := c.Sample(side, 11, nil)
	if err != nil {
		t.Fatalf("Cache.Sample() error: %v", err)
	}
	expected, _ := Sample(side.Colors(), 11)
	for i := range expected {
		if got[i] != expected[i] {
			t.Errorf("Cache.Sample()[%d] = %v, expected %v", i, got[i], expected[i])
		}
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", c.Len())
	}

	// Same key reuses the entry.
	again, _ := c.Sample(Stops(red, green, blue), 11, nil)
	if &again[0] != &got[0] {
		t.Error("second Sample() should return the cached slice")
	}
	if c.Len() != 1 {
		t.Errorf("Len() after hit = %d, expected 1", c.Len())
	}
}

func TestCacheKeysByLengthAndFallback(t *testing.T) {
	c := NewCache(0)
	if _, err := c.Sample(Stops(), 4, red); err != nil {
		t.Fatalf("Cache.Sample() error: %v", err)
	}
	got, err := c.Sample(Stops(), 4, blue)
	if err != nil {
		t.Fatalf("Cache.Sample() error: %v", err)
	}
	if got[0] != blue {
		t.Errorf("empty side with blue fallback = %v, expected %v", got[0], blue)
	}
	if _, err := c.Sample(Stops(), 5, blue); err != nil {
		t.Fatalf("Cache.Sample() error: %v", err)
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", c.Len())
	}
}

func TestCacheNegativeLength(t *testing.T) {
	c := NewCache(0)
	if _, err := c.Sample(Stops(red), -3, nil); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("Cache.Sample(-3) error = %v, expected ErrNegativeLength", err)
	}
	if c.Len() != 0 {
		t.Errorf("failed sample should not be cached, Len() = %d", c.Len())
	}
}

func TestCacheBounded(t *testing.T) {
	c := NewCache(4)
	for length := 1; length <= 10; length++ {
		if _, err := c.Sample(Stops(red, blue), length, nil); err != nil {
			t.Fatalf("Cache.Sample() error: %v", err)
		}
		if c.Len() > 4 {
			t.Fatalf("Len() = %d exceeds bound 4", c.Len())
		}
	}

	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d, expected 0", c.Len())
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := NewCache(8)
	side := Stops(red, green, blue, white)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				length := (g+i)%20 + 1
				cells, err := c.Sample(side, length, nil)
				if err != nil {
					t.Errorf("Cache.Sample() error: %v", err)
					return
				}
				if len(cells) != length {
					t.Errorf("Cache.Sample() len = %d, expected %d", len(cells), length)
					return
				}
			}
		}(g)
	}
	wg.Wait()
}

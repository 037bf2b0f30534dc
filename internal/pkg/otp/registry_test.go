package otp

import (
	"regexp"
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func newTestRegistry(ttl time.Duration) (*Memory, *fakeClock) {
	clk := &fakeClock{now: time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)}
	return NewMemory(ttl, clk), clk
}

func TestGenerate(t *testing.T) {

	t.Run("CodeShape", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)
		re := regexp.MustCompile(`^[1-9][0-9]{5}$`)

		// Act & Assert
		for range 200 {
			code := reg.Generate("a@b.com")
			if !re.MatchString(code) {
				t.Fatalf("expected a 6-digit code in 100000-999999, got %q", code)
			}
		}
	})

	t.Run("OverwritesPreviousCode", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)
		first := reg.Generate("a@b.com")

		// Act
		second := reg.Generate("a@b.com")

		// Assert
		if reg.IsValid("a@b.com", first) && first != second {
			t.Fatalf("expected the first code to be replaced")
		}
		if !reg.IsValid("a@b.com", second) {
			t.Fatalf("expected the newest code to be valid")
		}
	})
}

func TestValidate(t *testing.T) {

	t.Run("WrongCodeKeepsEntry", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)
		code := reg.Generate("a@b.com")
		wrong := "000000"
		if wrong == code {
			wrong = "000001"
		}

		// Act
		ok := reg.Validate("a@b.com", wrong)

		// Assert
		if ok {
			t.Fatalf("expected wrong code to be rejected")
		}
		if !reg.IsValid("a@b.com", code) {
			t.Fatalf("expected entry to survive a failed validation")
		}
	})

	t.Run("ConsumesOnMatch", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)
		code := reg.Generate("a@b.com")

		// Act
		first := reg.Validate("a@b.com", code)
		second := reg.Validate("a@b.com", code)

		// Assert
		if !first {
			t.Fatalf("expected the right code to validate")
		}
		if second {
			t.Fatalf("expected the code to be single-use")
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)

		// Act & Assert
		if reg.Validate("nobody@b.com", "123456") {
			t.Fatalf("expected validation to fail for an unknown email")
		}
	})
}

func TestIsValid(t *testing.T) {

	t.Run("RepeatableUntilConsumed", func(t *testing.T) {

		// Arrange
		reg, _ := newTestRegistry(5 * time.Minute)
		code := reg.Generate("a@b.com")

		// Act & Assert
		for range 3 {
			if !reg.IsValid("a@b.com", code) {
				t.Fatalf("expected non-consuming check to stay valid")
			}
		}

		if !reg.Validate("a@b.com", code) {
			t.Fatalf("expected code to validate")
		}
		if reg.IsValid("a@b.com", code) {
			t.Fatalf("expected check to fail after consumption")
		}
	})
}

func TestExpiry(t *testing.T) {

	t.Run("PurgesAfterWindow", func(t *testing.T) {

		// Arrange
		reg, clk := newTestRegistry(5 * time.Minute)
		code := reg.Generate("a@b.com")

		// Act
		clk.Advance(5*time.Minute + time.Second)

		// Assert
		if reg.IsValid("a@b.com", code) {
			t.Fatalf("expected expired code to be invalid")
		}
		if reg.Validate("a@b.com", code) {
			t.Fatalf("expected expired code to be invalid for the consuming check too")
		}
	})

	t.Run("ValidJustBeforeWindow", func(t *testing.T) {

		// Arrange
		reg, clk := newTestRegistry(5 * time.Minute)
		code := reg.Generate("a@b.com")

		// Act
		clk.Advance(5*time.Minute - time.Second)

		// Assert
		if !reg.IsValid("a@b.com", code) {
			t.Fatalf("expected code to be valid inside its window")
		}
	})
}

func TestConcurrentAccess(t *testing.T) {

	// Arrange
	reg, _ := newTestRegistry(5 * time.Minute)
	emails := []string{"a@b.com", "b@b.com", "c@b.com", "d@b.com"}
	codes := make(map[string]string, len(emails))
	for _, e := range emails {
		codes[e] = reg.Generate(e)
	}

	// Act: hammer the registry from many goroutines; exactly one consuming
	// validation per email may succeed.
	var wg sync.WaitGroup
	wins := make(chan string, len(emails)*32)
	for _, e := range emails {
		for range 32 {
			wg.Add(1)
			go func(email, code string) {
				defer wg.Done()
				reg.IsValid(email, code)
				if reg.Validate(email, code) {
					wins <- email
				}
			}(e, codes[e])
		}
	}
	wg.Wait()
	close(wins)

	// Assert
	perEmail := make(map[string]int)
	for e := range wins {
		perEmail[e]++
	}
	for _, e := range emails {
		if perEmail[e] != 1 {
			t.Fatalf("expected exactly one successful consume for %s, got %d", e, perEmail[e])
		}
	}
}

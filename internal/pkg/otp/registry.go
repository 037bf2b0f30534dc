package otp

import (
	"crypto/rand"
	"hash/fnv"
	"math/big"
	"strconv"
	"sync"
	"time"
)

// Registry defines the contract for one-time passcode issuance and checks.
type Registry interface {
	// Generate creates a fresh 6-digit code for the email, replacing any
	// previous unconsumed code, and returns it.
	Generate(email string) string
	// IsValid reports whether the code matches the live entry for the email
	// without consuming it. Expired entries are purged and report false.
	IsValid(email, code string) bool
	// Validate is the consuming variant: a matching code removes the entry
	// so it can never be used again.
	Validate(email, code string) bool
}

type clocker interface {
	Now() time.Time
}

type entry struct {
	code      string
	expiresAt time.Time
}

const shardCount = 16

type shard struct {
	mu      sync.Mutex
	entries map[string]entry
}

// Memory is a process-wide Registry backed by a lock-striped map.
//
// At most one live entry exists per email: Generate overwrites, and entries
// are removed the moment they are consumed or found expired. Nothing here is
// durable; that is acceptable for the configured lifetime.
type Memory struct {
	shards [shardCount]*shard
	ttl    time.Duration
	clock  clocker
}

// DefaultTTL is the code lifetime used when NewMemory receives a
// non-positive ttl.
const DefaultTTL = 5 * time.Minute

// NewMemory constructs a Memory registry with the given code lifetime.
func NewMemory(ttl time.Duration, clock clocker) *Memory {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	m := &Memory{ttl: ttl, clock: clock}
	for i := range m.shards {
		m.shards[i] = &shard{entries: make(map[string]entry)}
	}

	return m
}

func (m *Memory) shardFor(email string) *shard {
	h := fnv.New32a()
	h.Write([]byte(email))
	return m.shards[h.Sum32()%shardCount]
}

// Generate creates a fresh code for the email and stores it with the
// configured expiry, overwriting any prior entry for the same address.
func (m *Memory) Generate(email string) string {
	code := randomCode()

	s := m.shardFor(email)
	s.mu.Lock()
	s.entries[email] = entry{code: code, expiresAt: m.clock.Now().Add(m.ttl)}
	s.mu.Unlock()

	return code
}

// IsValid checks the code without consuming it.
func (m *Memory) IsValid(email, code string) bool {
	return m.check(email, code, false)
}

// Validate checks the code and removes the entry on a match.
func (m *Memory) Validate(email, code string) bool {
	return m.check(email, code, true)
}

func (m *Memory) check(email, code string, consume bool) bool {
	s := m.shardFor(email)
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[email]
	if !ok {
		return false
	}

	if m.clock.Now().After(e.expiresAt) {
		delete(s.entries, email)
		return false
	}

	if e.code != code {
		return false
	}

	if consume {
		delete(s.entries, email)
	}

	return true
}

// randomCode returns a uniformly random 6-digit numeric string in the range
// 100000-999999 inclusive, from a cryptographically secure source.
func randomCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// crypto/rand never fails on supported platforms; if it somehow
		// does, refusing to issue a code beats issuing a weak one.
		panic("otp: crypto/rand unavailable: " + err.Error())
	}

	return strconv.FormatInt(100000+n.Int64(), 10)
}

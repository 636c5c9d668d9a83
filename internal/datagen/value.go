// Package datagen implements the dependency-ordered entity generation engine:
// a deterministic value source, the shared identifier state, one generator per
// entity kind, and the orchestrator that runs them in topological order.
package datagen

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
)

// Timestamp layouts used in every generated column.
const (
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// accentFold transliterates the accented Latin characters that appear in the
// seed pools to their ASCII equivalents before slugging.
var accentFold = strings.NewReplacer(
	"à", "a", "á", "a", "â", "a", "ã", "a", "ä", "a", "å", "a",
	"è", "e", "é", "e", "ê", "e", "ë", "e",
	"ì", "i", "í", "i", "î", "i", "ï", "i",
	"ò", "o", "ó", "o", "ô", "o", "õ", "o", "ö", "o",
	"ù", "u", "ú", "u", "û", "u", "ü", "u",
	"ç", "c",
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// ValueSource produces every random value the generators draw. All state is
// seeded transitively from a single integer seed, so a fixed (seed, now) pair
// reproduces the exact same draw sequence.
type ValueSource struct {
	rng        *rand.Rand
	faker      *gofakeit.Faker
	now        time.Time
	seenEmails map[string]struct{}
}

// NewValueSource builds a value source from one seed and a reference time.
// The CLI passes time.Now(); tests pin a fixed instant for reproducibility.
func NewValueSource(seed int64, now time.Time) *ValueSource {
	return &ValueSource{
		rng:        rand.New(rand.NewSource(seed)),
		faker:      gofakeit.New(uint64(seed)),
		now:        now,
		seenEmails: make(map[string]struct{}),
	}
}

// UUID returns a fresh v4 identifier drawn from the seeded stream.
func (v *ValueSource) UUID() string {
	id, err := uuid.NewRandomFromReader(v.rng)
	if err != nil {
		// The underlying reader never fails; treat this as a contract
		// violation rather than a recoverable error.
		panic(fmt.Sprintf("datagen: uuid generation failed: %v", err))
	}
	return id.String()
}

// PastTime returns an instant 0..maxDaysAgo days before the reference time,
// with 0..23 hours of jitter.
func (v *ValueSource) PastTime(maxDaysAgo int) time.Time {
	if maxDaysAgo < 0 {
		maxDaysAgo = 0
	}
	days := v.rng.Intn(maxDaysAgo + 1)
	hours := v.rng.Intn(24)
	return v.now.AddDate(0, 0, -days).Add(-time.Duration(hours) * time.Hour)
}

// PastTimestamp renders PastTime in the storage timestamp layout.
func (v *ValueSource) PastTimestamp(maxDaysAgo int) string {
	return v.PastTime(maxDaysAgo).Format(timestampLayout)
}

// FutureTimestamp returns a timestamp 1..maxDaysAhead days after the
// reference time.
func (v *ValueSource) FutureTimestamp(maxDaysAhead int) string {
	if maxDaysAhead < 1 {
		maxDaysAhead = 1
	}
	days := 1 + v.rng.Intn(maxDaysAhead)
	return v.now.AddDate(0, 0, days).Format(timestampLayout)
}

// PastDate returns a date 0..maxDaysAgo days before the reference time.
func (v *ValueSource) PastDate(maxDaysAgo int) string {
	if maxDaysAgo < 0 {
		maxDaysAgo = 0
	}
	days := v.rng.Intn(maxDaysAgo + 1)
	return v.now.AddDate(0, 0, -days).Format(dateLayout)
}

// FutureDate returns a date 1..maxDaysAhead days after the reference time.
func (v *ValueSource) FutureDate(maxDaysAhead int) string {
	if maxDaysAhead < 1 {
		maxDaysAhead = 1
	}
	days := 1 + v.rng.Intn(maxDaysAhead)
	return v.now.AddDate(0, 0, days).Format(dateLayout)
}

// Slugify lowercases text, folds accented characters to ASCII, collapses runs
// of non-alphanumerics to single hyphens, and trims leading/trailing hyphens.
func Slugify(text string) string {
	s := accentFold.Replace(strings.ToLower(text))
	s = nonSlugRun.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// JSON encodes value as compact JSON without HTML escaping, preserving
// non-ASCII characters. Encoding failure is a programming-contract violation.
func (v *ValueSource) JSON(value any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		panic(fmt.Sprintf("datagen: json encode failed: %v", err))
	}
	return strings.TrimRight(buf.String(), "\n")
}

// Pick returns a uniformly chosen element. An empty candidate set where a
// guaranteed result is required is a contract violation.
func (v *ValueSource) Pick(items []string) string {
	if len(items) == 0 {
		panic("datagen: pick from empty candidate set")
	}
	return items[v.rng.Intn(len(items))]
}

// PickOptional returns nil when items is empty or when a uniform draw falls
// below noneProb; otherwise a uniformly chosen element.
func (v *ValueSource) PickOptional(items []string, noneProb float64) any {
	if len(items) == 0 {
		return nil
	}
	if v.rng.Float64() < noneProb {
		return nil
	}
	return items[v.rng.Intn(len(items))]
}

// IntBetween returns an integer in [lo, hi], both bounds inclusive.
func (v *ValueSource) IntBetween(lo, hi int) int {
	if hi < lo {
		panic("datagen: inverted integer range")
	}
	return lo + v.rng.Intn(hi-lo+1)
}

// Price returns a uniform amount in [lo, hi] rounded to two decimals.
func (v *ValueSource) Price(lo, hi float64) float64 {
	x := lo + v.rng.Float64()*(hi-lo)
	return float64(int(x*100)) / 100
}

// Sample returns k distinct elements in random order. k is clamped to the
// candidate set size.
func (v *ValueSource) Sample(items []string, k int) []string {
	if k > len(items) {
		k = len(items)
	}
	out := make([]string, 0, k)
	for _, idx := range v.rng.Perm(len(items))[:k] {
		out = append(out, items[idx])
	}
	return out
}

// UniqueEmail returns an email address not returned before by this source.
func (v *ValueSource) UniqueEmail() string {
	for range 100 {
		email := v.faker.Email()
		if _, seen := v.seenEmails[email]; !seen {
			v.seenEmails[email] = struct{}{}
			return email
		}
	}
	// The faker pool is exhausted for practical purposes; derive a unique
	// address from the running count instead.
	email := fmt.Sprintf("user%d@%s", len(v.seenEmails), v.faker.DomainName())
	v.seenEmails[email] = struct{}{}
	return email
}

// PasswordHash returns a plausible argon2id digest string.
func (v *ValueSource) PasswordHash() string {
	return "$argon2id$v=19$" + v.hexString(30)
}

// TokenHash returns a 64-character hex token, shaped like a SHA-256 digest.
func (v *ValueSource) TokenHash() string {
	return v.hexString(64)
}

func (v *ValueSource) hexString(n int) string {
	raw := make([]byte, (n+1)/2)
	v.rng.Read(raw)
	return hex.EncodeToString(raw)[:n]
}

// Faker exposes the seeded fake-value provider for semantic values (names,
// addresses, sentences) that have no structural constraints.
func (v *ValueSource) Faker() *gofakeit.Faker {
	return v.faker
}

// Now returns the reference time of this source.
func (v *ValueSource) Now() time.Time {
	return v.now
}

package services

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/aniruddha1321/WellNest/domain"
)

// OTPGeneratorImpl implements domain.OTPGenerator. The random source is
// injected so tests can supply deterministic sequences; the mutex guards the
// shared rand.Rand, which is not safe for concurrent use.
type OTPGeneratorImpl struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewOTPGenerator creates a new OTP generator backed by the given source
func NewOTPGenerator(src rand.Source) domain.OTPGenerator {
	return &OTPGeneratorImpl{rng: rand.New(src)}
}

// Generate implements domain.OTPGenerator. Codes are drawn uniformly from
// [100000, 999999]; codes with a leading zero never occur.
func (g *OTPGeneratorImpl) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fmt.Sprintf("%06d", 100000+g.rng.Intn(900000))
}

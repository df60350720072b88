package dynarray

import (
	"math"
	"sync"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// DefaultGrowthFactor is the multiplier used when no policy is given.
const DefaultGrowthFactor = 2.0

// Ratchet tuning, in tenths of the growth factor.
const (
	ratchetStart     = 20
	ratchetFloor     = 16
	ratchetStep      = 1
	ratchetThreshold = 1000
)

// GrowthPolicy computes the capacity of a full array's next backing store.
// Next must return a value greater than capacity.
type GrowthPolicy interface {
	Next(capacity, size int) int
}

// FixedGrowth grows by floor(Factor*capacity)+1.
type FixedGrowth struct {
	Factor float64
}

// NewFixedGrowth validates factor and returns the policy.
func NewFixedGrowth(factor float64) (FixedGrowth, error) {
	if factor < 1 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return FixedGrowth{}, invalidArgument("NewFixedGrowth", "factor %v below 1", factor)
	}
	return FixedGrowth{Factor: factor}, nil
}

func (g FixedGrowth) Next(capacity, size int) int {
	next := int(math.Floor(g.Factor*float64(capacity))) + 1
	if next <= capacity {
		next = capacity + 1
	}
	return next
}

// Ratchet is a growth factor that starts at 2.0 and drops by 0.1 each time an
// array larger than 1000 elements grows, until it reaches 1.6. The decay is
// one-way and affects every array sharing the Ratchet.
//
// Ratchet is safe for concurrent use.
type Ratchet struct {
	tenths int
	logger log.Logger
	lock   sync.Mutex
}

// SharedRatchet is the process-wide Ratchet.
var SharedRatchet *Ratchet = nil

func init() {
	SharedRatchet = NewRatchet()
}

func NewRatchet() *Ratchet {
	return &Ratchet{
		tenths: ratchetStart,
		logger: log.NewNopLogger(),
	}
}

// SetLogger sets the logger that reports factor decay.
func (r *Ratchet) SetLogger(l log.Logger) {
	r.lock.Lock()
	defer r.lock.Unlock()
	if l == nil {
		l = log.NewNopLogger()
	}
	r.logger = l
}

// Factor returns the current growth factor.
func (r *Ratchet) Factor() float64 {
	r.lock.Lock()
	defer r.lock.Unlock()
	return float64(r.tenths) / 10
}

// Reset restores the factor to 2.0.
func (r *Ratchet) Reset() {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.tenths = ratchetStart
}

func (r *Ratchet) Next(capacity, size int) int {
	r.lock.Lock()
	defer r.lock.Unlock()

	if r.tenths > ratchetFloor && size > ratchetThreshold {
		r.tenths -= ratchetStep
		level.Info(r.logger).Log("msg", "growth factor decayed", "factor", float64(r.tenths)/10, "size", size)
	}
	// integer math keeps floor(factor*capacity) exact
	return capacity*r.tenths/10 + 1
}

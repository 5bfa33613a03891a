package ProbeMap

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

const (
	DefaultInitialCapacity  uint    = 500
	DefaultProbeStep        uint    = 23
	DefaultResizeLoadFactor float64 = 0.5
	DefaultRehashLoadFactor float64 = 0.2
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid probe map config")

// Config of a ProbeMap. Use DefaultConfig and the Option functions instead of filling it by hand.
type Config struct {
	//InitialCapacity is the slot count of a new map. It only ever doubles afterwards.
	InitialCapacity uint
	//ProbeStep is the distance between two consecutive probes. It must be odd and coprime with InitialCapacity, which
	//keeps it coprime with every doubled capacity, so a probe visits every slot before repeating.
	ProbeStep uint
	//ResizeLoadFactor: the capacity doubles once Size exceeds ResizeLoadFactor*Capacity after an Add.
	ResizeLoadFactor float64
	//RehashLoadFactor: the table is rebuilt in place once the tombstone count exceeds RehashLoadFactor*Capacity after a Delete.
	RehashLoadFactor float64
}

func DefaultConfig() Config {
	return Config{
		InitialCapacity:  DefaultInitialCapacity,
		ProbeStep:        DefaultProbeStep,
		ResizeLoadFactor: DefaultResizeLoadFactor,
		RehashLoadFactor: DefaultRehashLoadFactor,
	}
}

type Option func(*Config)

func WithInitialCapacity(c uint) Option {
	return func(cfg *Config) {
		cfg.InitialCapacity = c
	}
}

func WithProbeStep(step uint) Option {
	return func(cfg *Config) {
		cfg.ProbeStep = step
	}
}

func WithResizeLoadFactor(f float64) Option {
	return func(cfg *Config) {
		cfg.ResizeLoadFactor = f
	}
}

func WithRehashLoadFactor(f float64) Option {
	return func(cfg *Config) {
		cfg.RehashLoadFactor = f
	}
}

// Validate returns all the problems of the config at once, or nil.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.InitialCapacity < 1 {
		result = multierror.Append(result, fmt.Errorf("%w: initial capacity must be at least 1", ErrInvalidConfig))
	}
	if c.ProbeStep&1 == 0 {
		result = multierror.Append(result, fmt.Errorf("%w: probe step %d must be odd", ErrInvalidConfig, c.ProbeStep))
	} else if c.InitialCapacity > 0 && gcd(c.ProbeStep, c.InitialCapacity) != 1 {
		result = multierror.Append(result, fmt.Errorf("%w: probe step %d and initial capacity %d aren't coprime", ErrInvalidConfig, c.ProbeStep, c.InitialCapacity))
	}
	if !(c.ResizeLoadFactor > 0 && c.ResizeLoadFactor < 1) {
		result = multierror.Append(result, fmt.Errorf("%w: resize load factor %v not in (0,1)", ErrInvalidConfig, c.ResizeLoadFactor))
	}
	if !(c.RehashLoadFactor > 0 && c.RehashLoadFactor < c.ResizeLoadFactor) {
		result = multierror.Append(result, fmt.Errorf("%w: rehash load factor %v not in (0,%v)", ErrInvalidConfig, c.RehashLoadFactor, c.ResizeLoadFactor))
	}
	return result.ErrorOrNil()
}

func gcd(a, b uint) uint {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

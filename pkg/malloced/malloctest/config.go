package malloctest

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/coinbase/malloced-go/pkg/malloced/logging"
)

// DefaultHistory is the number of events a Tracker keeps for failure reports
// when Config.History is zero.
const DefaultHistory = 64

// validate is a package-level singleton; building a validator is expensive.
var validate = validator.New()

// Config controls a Tracker.
type Config struct {
	// Logger receives one record per allocation event. Nil discards them.
	Logger logging.Logger

	// History bounds the number of recent events retained and printed when
	// a tracker assertion fails. Zero selects DefaultHistory.
	History int `validate:"gte=0,lte=65536"`

	// CaptureContents snapshots every block's bytes right before it is
	// passed to free, for inspection with Tracker.Contents.
	CaptureContents bool

	// AllowLeaks disables the leak check performed at test cleanup.
	AllowLeaks bool
}

// Validate checks the struct tags of c.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("malloctest: invalid config: %w", err)
	}
	return nil
}

func (c Config) withDefaults() Config {
	if c.Logger == nil {
		c.Logger = logging.Discard()
	}
	if c.History == 0 {
		c.History = DefaultHistory
	}
	return c
}

package ethereum

import (
	"fmt"
	"strings"

	"github.com/smartzplatform/minter-service/internal/model"
)

// rejectionMarkers are node error fragments that will not change on retry.
var rejectionMarkers = []string{
	"execution reverted",
	"always failing transaction",
	"invalid opcode",
	"insufficient funds",
	"invalid sender",
	"exceeds block gas limit",
}

// classify maps a node error onto the gateway taxonomy. Anything not
// recognized as a definitive rejection stays transient: an ambiguous
// failure must leave the record pending, never mark it failed.
func classify(err error) error {
	if err == nil {
		return nil
	}

	msg := strings.ToLower(err.Error())
	for _, marker := range rejectionMarkers {
		if strings.Contains(msg, marker) {
			return fmt.Errorf("%w: %w", model.ErrLedgerRejected, err)
		}
	}

	return &model.LedgerTransientError{Err: err}
}

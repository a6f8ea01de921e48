package ledger

import (
	"context"

	"github.com/Wichuda1723/expense-tracker2/internal/core"
)

// Ports for ledger persistence adapters.
type (
	// Store owns the on-disk representation of the ledger.
	Store interface {
		// Load reads the persisted dataset. An absent or zero-byte backing
		// store yields an empty ledger, not an error.
		Load(ctx context.Context) (core.Ledger, error)

		// Append returns a new ledger with tx appended at the end and
		// synchronously rewrites the whole backing store. A write failure
		// is fatal for the submission and must reach the caller.
		Append(ctx context.Context, l core.Ledger, tx core.Transaction) (core.Ledger, error)
	}
)

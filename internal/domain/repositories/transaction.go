package repositories

import (
	"context"
)

// TxFn is a function executed within a transaction. The context passed to it
// carries the transaction, so repository calls made with it automatically
// participate.
type TxFn func(ctx context.Context) error

// TransactionManager runs functions inside a single storage transaction.
// The chapter-delete cascade is the one multi-statement mutation in the
// system and must not be observable half-done.
type TransactionManager interface {
	ExecTx(ctx context.Context, fn TxFn) error
}

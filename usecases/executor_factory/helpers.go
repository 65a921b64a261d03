package executor_factory

import (
	"context"

	"github.com/nuam-exchange/taxrating-backend/repositories"
)

// TransactionReturnValue runs fn in a transaction and forwards its return
// value alongside the transaction error.
func TransactionReturnValue[ReturnType any](
	ctx context.Context,
	factory TransactionFactory,
	fn func(tx repositories.Transaction) (ReturnType, error),
) (ReturnType, error) {
	var value ReturnType
	transactionErr := factory.Transaction(ctx, func(tx repositories.Transaction) error {
		var fnErr error
		value, fnErr = fn(tx)
		return fnErr
	})
	return value, transactionErr
}

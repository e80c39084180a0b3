package ports

import "context"

// Transactor scopes a function to one transactional unit of work.
// Repositories called with the context passed to fn join the same
// transaction; any error rolls the whole unit back.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

package repositories

import "errors"

var (
	// ErrDuplicateEmail is returned when a user insert hits the unique email
	// index. The API layer needs to tell this apart from generic storage
	// failures to answer with a specific message.
	ErrDuplicateEmail = errors.New("email já cadastrado")

	// ErrNotFound is returned by lookups that matched nothing, and by update
	// and delete only when a repository was built in strict mode.
	ErrNotFound = errors.New("registro não encontrado")
)

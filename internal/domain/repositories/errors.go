package repositories

type RepositoryError struct {
	message string
}

func (e *RepositoryError) Error() string {
	return e.message
}

var (
	ErrNotFound          = &RepositoryError{"record not found"}
	ErrDuplicateUser     = &RepositoryError{"user already exists"}
	ErrDuplicateTracking = &RepositoryError{"tracking id already exists"}
	ErrInvalidID         = &RepositoryError{"invalid record id"}
)

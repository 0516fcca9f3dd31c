package usecase

import "errors"

var (
	// ErrMigrationPartial marks a legacy migration that failed partway.
	// Non-fatal: login proceeds with whatever was migrated.
	ErrMigrationPartial = errors.New("legacy migration partially failed")

	// ErrBackupRead marks an export aborted because a collection could not
	// be read. Fatal to that export only; no partial backups.
	ErrBackupRead = errors.New("backup read failed")
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}

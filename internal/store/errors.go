package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDeviceAlreadyRegistered is returned when an attempt to register a
	// device fails because a device with the same identifier already exists.
	ErrDeviceAlreadyRegistered = errors.New("device already registered")

	// ErrDeviceNotFound is returned when a query expected to match a device
	// record produces an empty result set.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrBackupNotSaved is returned when an INSERT of a backup record
	// completes without error but the number of affected rows is zero,
	// indicating that nothing was actually persisted.
	ErrBackupNotSaved = errors.New("backup was not saved")

	// ErrBackupNotFound is returned when a query or update targets a backup
	// (identified by id and device_id) that does not exist in the database.
	ErrBackupNotFound = errors.New("backup was not found")

	// ErrVersionConflict is returned when an optimistic-locking check fails:
	// the version supplied by the client does not match the current version
	// stored in the database, meaning the record was modified since the
	// client last synchronized.
	ErrVersionConflict = errors.New("backup version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan backup row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan backup rows")
)

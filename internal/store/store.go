package store

import (
	"fmt"
	"io/fs"
)

// Open returns the Repository for driver. migrationsFS is only read by the
// sqlite driver.
func Open(driver, dsn string, migrationsFS fs.FS) (Repository, error) {
	switch driver {
	case "", DriverMemory:
		return NewMemoryStore(), nil
	case DriverSQLite:
		return NewSQLiteStore(dsn, migrationsFS)
	default:
		return nil, fmt.Errorf("unknown store driver '%s' (must be %s or %s)", driver, DriverMemory, DriverSQLite)
	}
}

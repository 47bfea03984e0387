package store

import (
	"fmt"
	"path/filepath"

	"github.com/sadopc/focusboard/internal/logging"
)

const (
	DriverFile   = "file"
	DriverMemory = "memory"

	dbFilename   = "focusboard.db"
	fileStoreDir = "records"
)

// Options select the backend Open tries first.
type Options struct {
	Driver string
	Dir    string
}

// Open returns the first backend that works, starting at opts.Driver and
// falling back to the file store in opts.Dir and finally to memory. It never
// fails; the returned name says which backend is in use.
func Open(opts Options) (KV, string) {
	type attempt struct {
		name string
		open func() (KV, error)
	}

	sqliteAttempt := func(driver string) attempt {
		return attempt{driver, func() (KV, error) {
			return NewSQLite(filepath.Join(opts.Dir, dbFilename), driver)
		}}
	}
	fileAttempt := attempt{DriverFile, func() (KV, error) {
		return NewFileKV(filepath.Join(opts.Dir, fileStoreDir))
	}}

	var chain []attempt
	switch opts.Driver {
	case DriverMemory:
		logging.Info("store", "using in-memory backend")
		return NewMemoryKV(), DriverMemory
	case DriverFile:
		chain = append(chain, fileAttempt)
	case DriverSQLite3:
		chain = append(chain, sqliteAttempt(DriverSQLite3), fileAttempt)
	default:
		chain = append(chain, sqliteAttempt(DriverSQLite), fileAttempt)
	}

	if opts.Dir != "" {
		for _, a := range chain {
			kv, err := a.open()
			if err == nil {
				logging.Info("store", "using %s backend in %s", a.name, opts.Dir)
				return kv, a.name
			}
			logging.Warn("store", "%v: %v", fmt.Errorf("%w: %s", ErrUnavailable, a.name), err)
		}
	}

	logging.Warn("store", "falling back to in-memory storage; data will not survive a restart")
	return NewMemoryKV(), DriverMemory
}

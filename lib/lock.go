package rss2maildir

import (
	"github.com/gofrs/flock"
	"github.com/spf13/viper"
)

// AcquireLock takes the cross-process single-instance lock without blocking.
// It returns the held lock, or ok=false when another instance already holds
// it. The lock is kept for the lifetime of the process.
func AcquireLock() (lock *flock.Flock, ok bool, err error) {
	lock = flock.New(viper.GetString("lock"))

	ok, err = lock.TryLock()
	if err != nil {
		return nil, false, err
	}

	return lock, ok, nil
}

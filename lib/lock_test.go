package rss2maildir

import (
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestAcquireLockIsExclusive(t *testing.T) {
	initViper(t)
	viper.Set("lock", filepath.Join(t.TempDir(), "test.lock"))

	lock, ok, err := AcquireLock()
	require.Nil(t, err)
	require.True(t, ok)
	defer lock.Unlock()

	_, ok, err = AcquireLock()
	require.Nil(t, err)
	require.False(t, ok)
}

func TestAcquireLockAfterRelease(t *testing.T) {
	initViper(t)
	viper.Set("lock", filepath.Join(t.TempDir(), "test.lock"))

	lock, ok, err := AcquireLock()
	require.Nil(t, err)
	require.True(t, ok)
	require.Nil(t, lock.Unlock())

	lock, ok, err = AcquireLock()
	require.Nil(t, err)
	require.True(t, ok)
	lock.Unlock()
}

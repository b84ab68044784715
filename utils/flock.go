package utils

import (
	"errors"
	"os"
	"syscall"
)

// ErrLocked the lock is held by another process
var ErrLocked = errors.New("locked by another process")

// FLock is a file-based lock
type FLock struct {
	fh *os.File
}

// NewFLock creates new Flock-based lock (unlocked first)
func NewFLock(path string) (*FLock, error) {
	fh, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, os.FileMode(0644))
	if err != nil {
		return nil, err
	}
	return &FLock{fh: fh}, nil
}

// TryLock acquires the lock, non-blocking
func (lock *FLock) TryLock() (bool, error) {
	err := syscall.Flock(int(lock.fh.Fd()), syscall.LOCK_EX|syscall.LOCK_NB)
	switch err {
	case nil:
		return true, nil
	case syscall.EWOULDBLOCK:
		return false, nil
	}
	return false, err
}

// Unlock releases the lock. The file stays, unlinking it would let two
// processes lock different inodes of the same path.
func (lock *FLock) Unlock() error {
	err := syscall.Flock(int(lock.fh.Fd()), syscall.LOCK_UN)
	lock.fh.Close()
	return err
}

// Acquire creates and takes the lock at path or fails with ErrLocked
func Acquire(path string) (*FLock, error) {
	lock, err := NewFLock(path)
	if err != nil {
		return nil, err
	}
	ok, err := lock.TryLock()
	if err != nil || !ok {
		lock.fh.Close()
		if err == nil {
			err = ErrLocked
		}
		return nil, err
	}
	return lock, nil
}

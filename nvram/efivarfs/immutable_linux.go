//go:build linux

package efivarfs

import (
	"os"

	"golang.org/x/sys/unix"
)

// FS_IMMUTABLE_FL from linux/fs.h; x/sys/unix exports the flag ioctls
// but not the flag bit itself.
const fsImmutableFL = 0x10

// clearImmutable drops the immutable flag efivarfs places on variable
// files so they can be rewritten or removed.
func clearImmutable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	flags, err := unix.IoctlGetInt(int(f.Fd()), unix.FS_IOC_GETFLAGS)
	if err != nil {
		// Backing filesystems without flag ioctls (tmpfs in tests) have
		// nothing to clear.
		if err == unix.ENOTTY || err == unix.EOPNOTSUPP || err == unix.EINVAL {
			return nil
		}
		return err
	}
	if flags&fsImmutableFL == 0 {
		return nil
	}
	return unix.IoctlSetPointerInt(int(f.Fd()), unix.FS_IOC_SETFLAGS, flags&^fsImmutableFL)
}

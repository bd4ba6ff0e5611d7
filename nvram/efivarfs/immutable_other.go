//go:build !linux

package efivarfs

// clearImmutable is a no-op off Linux; only efivarfs sets the immutable
// inode flag.
func clearImmutable(string) error { return nil }

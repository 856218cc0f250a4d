package elfscan

import (
	"io"
	"os"
)

var elfMagic = [4]byte{0x7f, 'E', 'L', 'F'}

// IsELF reports whether the file at path starts with the ELF magic bytes.
// It reads at most four bytes. Any failure to open or read the file,
// including a file shorter than the magic, yields false.
func IsELF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	var magic [4]byte
	if _, err := io.ReadFull(f, magic[:]); err != nil {
		return false
	}
	return magic == elfMagic
}

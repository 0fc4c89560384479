// Package storage defines the corpus file-system abstraction.
package storage

// Provider is the interface for corpus file operations. All paths are
// relative to the corpus root.
type Provider interface {
	// List returns the file names of every document in the corpus root,
	// sorted lexicographically. Subdirectories and dot-prefixed entries
	// are ignored.
	List() ([]string, error)
	// Read returns the raw bytes of the file at path.
	Read(path string) ([]byte, error)
	// Write atomically writes content to path.
	Write(path string, content []byte) error
	// Delete removes the file at path.
	Delete(path string) error
	// Move renames oldPath to newPath.
	Move(oldPath, newPath string) error
	// Mkdir creates the directory at path, failing if it already exists.
	Mkdir(path string) error
	// Exists reports whether a file or directory exists at path.
	Exists(path string) (bool, error)
	// Root returns the absolute corpus root directory.
	Root() string
}

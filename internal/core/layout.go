package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// ObjectFileName builds the file name for one exported artifact of a
// development object: object name and type suffix joined with the
// extension, all lowercase.
func ObjectFileName(name string, suffix string, ext string) string {
	return strings.ToLower(name + suffix + "." + ext)
}

// ObjectFilePath is ObjectFileName placed inside dir. An empty dir
// leaves the file in the working directory.
func ObjectFilePath(dir string, name string, suffix string, ext string) string {
	return filepath.Join(dir, ObjectFileName(name, suffix, ext))
}

// PackageDir maps a package path below the walk root onto a directory
// under base. Package names become lowercase directory names.
func PackageDir(base string, path []string) string {
	segments := make([]string, 0, len(path)+1)
	segments = append(segments, base)
	for _, name := range path {
		segments = append(segments, strings.ToLower(name))
	}
	return filepath.Join(segments...)
}

// EnsureDir creates dir and any missing parents. Existing directories
// are left untouched.
func EnsureDir(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("directory is empty")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create directory").
			WithCause(err)
	}
	return nil
}

// WriteSourceFile writes one ABAP source part into dir.
func WriteSourceFile(dir string, name string, suffix string, source string) error {
	if err := os.WriteFile(ObjectFilePath(dir, name, suffix, "abap"), []byte(source), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write source file").
			WithCause(err)
	}
	return nil
}

// WriteMetadataFile writes one serialized metadata document into dir.
func WriteMetadataFile(dir string, name string, suffix string, payload []byte) error {
	if err := os.WriteFile(ObjectFilePath(dir, name, suffix, "xml"), payload, 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write metadata file").
			WithCause(err)
	}
	return nil
}

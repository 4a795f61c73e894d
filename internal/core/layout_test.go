package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectFileName(t *testing.T) {
	tests := []struct {
		name     string
		object   string
		suffix   string
		ext      string
		expected string
	}{
		{name: "program source", object: "ZHELLO", suffix: ".prog", ext: "abap", expected: "zhello.prog.abap"},
		{name: "mixed case class metadata", object: "ZCL_Hello_World", suffix: ".clas", ext: "xml", expected: "zcl_hello_world.clas.xml"},
		{name: "test classes include", object: "ZCL_HELLO_WORLD", suffix: ".clas.testclasses", ext: "abap", expected: "zcl_hello_world.clas.testclasses.abap"},
		{name: "interface source", object: "ZIF_GREET", suffix: ".intf", ext: "abap", expected: "zif_greet.intf.abap"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ObjectFileName(tt.object, tt.suffix, tt.ext))
		})
	}
}

func TestObjectFilePath(t *testing.T) {
	got := ObjectFilePath(filepath.Join("repo", "src"), "ZHELLO", ".prog", "abap")
	assert.Equal(t, filepath.Join("repo", "src", "zhello.prog.abap"), got)

	assert.Equal(t, "zhello.prog.abap", ObjectFilePath("", "ZHELLO", ".prog", "abap"))
}

func TestPackageDir(t *testing.T) {
	base := filepath.Join("repo", "src")
	tests := []struct {
		name     string
		path     []string
		expected string
	}{
		{name: "root package", path: nil, expected: base},
		{name: "direct subpackage", path: []string{"ZPKG_SUB"}, expected: filepath.Join(base, "zpkg_sub")},
		{name: "nested subpackage", path: []string{"ZPKG_SUB", "ZPKG_DEEP"}, expected: filepath.Join(base, "zpkg_sub", "zpkg_deep")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, PackageDir(base, tt.path)); diff != "" {
				t.Fatalf("unexpected package dir (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEnsureDirCreatesAndIsIdempotent(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	require.NoError(t, EnsureDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	require.NoError(t, EnsureDir(dir))
}

func TestEnsureDirRejectsEmptyPath(t *testing.T) {
	err := EnsureDir("  ")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestWriteSourceFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteSourceFile(dir, "ZHELLO", ".prog", "REPORT zhello.\n"))

	data, err := os.ReadFile(filepath.Join(dir, "zhello.prog.abap"))
	require.NoError(t, err)
	assert.Equal(t, "REPORT zhello.\n", string(data))
}

func TestWriteMetadataFile(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, WriteMetadataFile(dir, "ZCL_HELLO_WORLD", ".clas", []byte("<VSEOCLASS/>")))

	data, err := os.ReadFile(filepath.Join(dir, "zcl_hello_world.clas.xml"))
	require.NoError(t, err)
	assert.Equal(t, "<VSEOCLASS/>", string(data))
}

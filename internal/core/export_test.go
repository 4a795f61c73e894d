package core

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abap-checkout/internal/types"
)

type fakeObjectRepository struct {
	programs   map[string]string
	interfaces map[string]string
	classes    map[string]types.Class
}

func (f fakeObjectRepository) FetchProgram(_ context.Context, name string) (string, error) {
	source, ok := f.programs[name]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("adt object not found")
	}
	return source, nil
}

func (f fakeObjectRepository) FetchInterface(_ context.Context, name string) (string, error) {
	source, ok := f.interfaces[name]
	if !ok {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("adt object not found")
	}
	return source, nil
}

func (f fakeObjectRepository) FetchClass(_ context.Context, name string) (types.Class, error) {
	class, ok := f.classes[name]
	if !ok {
		return types.Class{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("adt object not found")
	}
	return class, nil
}

type fakeSerializer struct {
	records []types.VSEOClass
}

func (f *fakeSerializer) RepoMetadata(types.DotAbapGit) ([]byte, error) {
	return []byte("repo metadata"), nil
}

func (f *fakeSerializer) ClassMetadata(record types.VSEOClass) ([]byte, error) {
	f.records = append(f.records, record)
	return []byte("class metadata"), nil
}

func TestProgramExporterWritesSource(t *testing.T) {
	dir := t.TempDir()
	repo := fakeObjectRepository{programs: map[string]string{"ZHELLO": "REPORT zhello.\n"}}

	exporter := ProgramExporter{Objects: repo}
	require.NoError(t, exporter.Export(t.Context(), "ZHELLO", dir))

	data, err := os.ReadFile(filepath.Join(dir, "zhello.prog.abap"))
	require.NoError(t, err)
	assert.Equal(t, "REPORT zhello.\n", string(data))
}

func TestInterfaceExporterWritesSource(t *testing.T) {
	dir := t.TempDir()
	repo := fakeObjectRepository{interfaces: map[string]string{"ZIF_GREET": "INTERFACE zif_greet PUBLIC.\nENDINTERFACE.\n"}}

	exporter := InterfaceExporter{Objects: repo}
	require.NoError(t, exporter.Export(t.Context(), "ZIF_GREET", dir))

	data, err := os.ReadFile(filepath.Join(dir, "zif_greet.intf.abap"))
	require.NoError(t, err)
	assert.Equal(t, "INTERFACE zif_greet PUBLIC.\nENDINTERFACE.\n", string(data))
}

func TestClassExporterWritesAllParts(t *testing.T) {
	dir := t.TempDir()
	class := types.Class{
		Name:               "ZCL_HELLO_WORLD",
		Description:        "Say hello!",
		MasterLanguage:     "EN",
		Active:             true,
		FixPointArithmetic: true,
		Source: types.ClassSource{
			Main:        "CLASS zcl_hello_world DEFINITION PUBLIC.\nENDCLASS.\n",
			LocalsDef:   "* local definitions\n",
			LocalsImp:   "* local implementations\n",
			TestClasses: "* test classes\n",
		},
	}
	repo := fakeObjectRepository{classes: map[string]types.Class{"ZCL_HELLO_WORLD": class}}
	serializer := &fakeSerializer{}

	exporter := ClassExporter{Objects: repo, Metadata: serializer}
	require.NoError(t, exporter.Export(t.Context(), "ZCL_HELLO_WORLD", dir))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	expected := []string{
		"zcl_hello_world.clas.abap",
		"zcl_hello_world.clas.locals_def.abap",
		"zcl_hello_world.clas.locals_imp.abap",
		"zcl_hello_world.clas.testclasses.abap",
		"zcl_hello_world.clas.xml",
	}
	if diff := cmp.Diff(expected, names); diff != "" {
		t.Fatalf("unexpected exported files (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(filepath.Join(dir, "zcl_hello_world.clas.xml"))
	require.NoError(t, err)
	assert.Equal(t, "class metadata", string(data))

	require.Len(t, serializer.records, 1)
	assert.Equal(t, "ZCL_HELLO_WORLD", serializer.records[0].ClsName)
	assert.Equal(t, "E", serializer.records[0].Langu)
}

func TestClassRecord(t *testing.T) {
	tests := []struct {
		name     string
		class    types.Class
		expected types.VSEOClass
	}{
		{
			name: "active class with fixed point arithmetic",
			class: types.Class{
				Name:               "ZCL_HELLO_WORLD",
				Description:        "Say hello!",
				MasterLanguage:     "EN",
				Active:             true,
				FixPointArithmetic: true,
			},
			expected: types.VSEOClass{
				ClsName:   "ZCL_HELLO_WORLD",
				Version:   "1",
				Langu:     "E",
				Descript:  "Say hello!",
				State:     "1",
				ClsCCIncl: "X",
				FixPt:     "X",
				Unicode:   "X",
			},
		},
		{
			name: "inactive modeled class",
			class: types.Class{
				Name:           "ZCL_DRAFT",
				MasterLanguage: "DE",
				Modeled:        true,
			},
			expected: types.VSEOClass{
				ClsName:   "ZCL_DRAFT",
				Version:   "0",
				Langu:     "D",
				State:     "0",
				ClsCCIncl: "X",
				FixPt:     " ",
				Unicode:   "X",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ClassRecord(tt.class)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Fatalf("unexpected class record (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassRecordUnknownLanguage(t *testing.T) {
	_, err := ClassRecord(types.Class{Name: "ZCL_X", MasterLanguage: "XX"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestExportRegistryDispatch(t *testing.T) {
	dir := t.TempDir()
	repo := fakeObjectRepository{programs: map[string]string{"ZHELLO": "REPORT zhello.\n"}}
	registry := NewExportRegistry(repo, &fakeSerializer{})

	obj := types.ObjectRef{Type: types.ObjectTypeProgram, Name: "ZHELLO"}
	require.NoError(t, registry.Dispatch(t.Context(), obj, dir))

	_, err := os.Stat(filepath.Join(dir, "zhello.prog.abap"))
	require.NoError(t, err)
}

func TestExportRegistryDispatchUnknownType(t *testing.T) {
	registry := NewExportRegistry(fakeObjectRepository{}, &fakeSerializer{})

	obj := types.ObjectRef{Type: "FUGR/F", Name: "ZFUNCTIONS"}
	err := registry.Dispatch(t.Context(), obj, t.TempDir())
	require.Error(t, err)
	assert.True(t, IsUnsupported(err))
	assert.Equal(t, errbuilder.CodeUnimplemented, errbuilder.CodeOf(err))
}

func TestExporterFailuresAreNotUnsupported(t *testing.T) {
	registry := NewExportRegistry(fakeObjectRepository{}, &fakeSerializer{})

	obj := types.ObjectRef{Type: types.ObjectTypeProgram, Name: "ZMISSING"}
	err := registry.Dispatch(t.Context(), obj, t.TempDir())
	require.Error(t, err)
	assert.False(t, IsUnsupported(err))
	assert.Equal(t, errbuilder.CodeNotFound, errbuilder.CodeOf(err))
}

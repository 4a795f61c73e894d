package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

// Exporter writes every file that belongs to one development object
// into a destination directory.
type Exporter interface {
	Export(ctx context.Context, name string, dir string) error
}

// ProgramExporter writes the report source of a program.
type ProgramExporter struct {
	Objects ports.ObjectRepositoryPort
}

func (e ProgramExporter) Export(ctx context.Context, name string, dir string) error {
	source, err := e.Objects.FetchProgram(ctx, name)
	if err != nil {
		return err
	}
	return WriteSourceFile(dir, name, ".prog", source)
}

// InterfaceExporter writes the definition source of an interface.
type InterfaceExporter struct {
	Objects ports.ObjectRepositoryPort
}

func (e InterfaceExporter) Export(ctx context.Context, name string, dir string) error {
	source, err := e.Objects.FetchInterface(ctx, name)
	if err != nil {
		return err
	}
	return WriteSourceFile(dir, name, ".intf", source)
}

// ClassExporter writes the four source parts of a class plus its
// VSEOCLASS metadata document.
type ClassExporter struct {
	Objects  ports.ObjectRepositoryPort
	Metadata ports.AbapGitXMLPort
}

func (e ClassExporter) Export(ctx context.Context, name string, dir string) error {
	class, err := e.Objects.FetchClass(ctx, name)
	if err != nil {
		return err
	}
	if err := WriteSourceFile(dir, name, ".clas", class.Source.Main); err != nil {
		return err
	}
	if err := WriteSourceFile(dir, name, ".clas.locals_def", class.Source.LocalsDef); err != nil {
		return err
	}
	if err := WriteSourceFile(dir, name, ".clas.locals_imp", class.Source.LocalsImp); err != nil {
		return err
	}
	if err := WriteSourceFile(dir, name, ".clas.testclasses", class.Source.TestClasses); err != nil {
		return err
	}
	record, err := ClassRecord(class)
	if err != nil {
		return err
	}
	payload, err := e.Metadata.ClassMetadata(record)
	if err != nil {
		return err
	}
	return WriteMetadataFile(dir, name, ".clas", payload)
}

// ClassRecord maps class attributes onto the VSEOCLASS structure the
// way abapGit records them.
func ClassRecord(class types.Class) (types.VSEOClass, error) {
	langu, err := SAPLanguageCode(class.MasterLanguage)
	if err != nil {
		return types.VSEOClass{}, err
	}
	record := types.VSEOClass{
		ClsName:  class.Name,
		Version:  "0",
		Langu:    langu,
		Descript: class.Description,
		State:    "1",
		// TODO: read the real CLSCCINCL value from the class includes.
		ClsCCIncl: "X",
		FixPt:     " ",
		Unicode:   "X",
	}
	if class.Active {
		record.Version = "1"
	}
	if class.Modeled {
		record.State = "0"
	}
	if class.FixPointArithmetic {
		record.FixPt = "X"
	}
	return record, nil
}

// ExportRegistry maps object type tags onto exporters. The table is
// fixed at construction time.
type ExportRegistry struct {
	exporters map[types.ObjectType]Exporter
}

func NewExportRegistry(objects ports.ObjectRepositoryPort, metadata ports.AbapGitXMLPort) ExportRegistry {
	return ExportRegistry{
		exporters: map[types.ObjectType]Exporter{
			types.ObjectTypeProgram:   ProgramExporter{Objects: objects},
			types.ObjectTypeClass:     ClassExporter{Objects: objects, Metadata: metadata},
			types.ObjectTypeInterface: InterfaceExporter{Objects: objects},
		},
	}
}

// Dispatch exports the given object through the exporter registered
// for its type tag. Unknown tags yield an error recognized by
// IsUnsupported; exporter failures pass through unchanged.
func (r ExportRegistry) Dispatch(ctx context.Context, obj types.ObjectRef, dir string) error {
	assert.NotEmpty(ctx, obj.Name, "object name must be set")
	exporter, ok := r.exporters[obj.Type]
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeUnimplemented).
			WithMsg(fmt.Sprintf("unsupported object type: %s", obj.Type))
	}
	return exporter.Export(ctx, obj.Name, dir)
}

// IsUnsupported reports whether err marks an object type without a
// registered exporter.
func IsUnsupported(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeUnimplemented
}

package types

// ObjectType is the ADT repository type tag of a development object,
// for example "CLAS/OC" for classes.
type ObjectType string

const (
	ObjectTypeProgram   ObjectType = "PROG/P"
	ObjectTypeClass     ObjectType = "CLAS/OC"
	ObjectTypeInterface ObjectType = "INTF/OI"
	ObjectTypePackage   ObjectType = "DEVC/K"
)

// ObjectRef identifies one development object inside a package.
type ObjectRef struct {
	Type ObjectType
	Name string
}

// PackageContents lists the direct members of a package in server
// order.
type PackageContents struct {
	Subpackages []string
	Objects     []ObjectRef
}

// Class carries the attributes and source parts of an ABAP class.
type Class struct {
	Name               string
	Description        string
	MasterLanguage     string
	Active             bool
	Modeled            bool
	FixPointArithmetic bool
	Source             ClassSource
}

// ClassSource holds the four source parts of a class.
type ClassSource struct {
	Main        string
	LocalsDef   string
	LocalsImp   string
	TestClasses string
}

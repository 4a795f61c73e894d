package types

import "encoding/xml"

// ClassSerializer is the abapGit serializer tag recorded in class
// metadata documents.
const ClassSerializer = "LCL_OBJECT_CLAS"

const (
	FolderLogicFull   = "FULL"
	FolderLogicPrefix = "PREFIX"
)

// DotAbapGit is the repository settings record written to
// .abapgit.xml.
type DotAbapGit struct {
	XMLName        xml.Name `xml:"DATA"`
	MasterLanguage string   `xml:"MASTER_LANGUAGE"`
	StartingFolder string   `xml:"STARTING_FOLDER"`
	FolderLogic    string   `xml:"FOLDER_LOGIC"`
	Ignore         []string `xml:"IGNORE>item"`
}

// NewDotAbapGit returns the settings record for a freshly initialized
// repository. The starting folder must already be wrapped in path
// separators, for example "/src/".
func NewDotAbapGit(startingFolder string) DotAbapGit {
	return DotAbapGit{
		MasterLanguage: "E",
		StartingFolder: startingFolder,
		FolderLogic:    FolderLogicFull,
		Ignore: []string{
			"/.gitignore",
			"/LICENSE",
			"/README.md",
			"/package.json",
			"/.travis.yml",
		},
	}
}

// VSEOClass mirrors the ABAP dictionary structure VSEOCLASS that
// abapGit serializes into .clas.xml metadata documents. Field order
// matches the dictionary definition.
type VSEOClass struct {
	XMLName   xml.Name `xml:"VSEOCLASS"`
	ClsName   string   `xml:"CLSNAME"`
	Version   string   `xml:"VERSION"`
	Langu     string   `xml:"LANGU"`
	Descript  string   `xml:"DESCRIPT"`
	State     string   `xml:"STATE"`
	ClsCCIncl string   `xml:"CLSCCINCL"`
	FixPt     string   `xml:"FIXPT"`
	Unicode   string   `xml:"UNICODE"`
}

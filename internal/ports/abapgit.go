package ports

import "abap-checkout/internal/types"

// AbapGitXMLPort serializes abapGit metadata documents.
type AbapGitXMLPort interface {
	RepoMetadata(doc types.DotAbapGit) ([]byte, error)
	ClassMetadata(record types.VSEOClass) ([]byte, error)
}

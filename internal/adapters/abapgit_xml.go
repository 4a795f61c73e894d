package adapters

import (
	"bytes"
	"encoding/xml"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"abap-checkout/internal/ports"
	"abap-checkout/internal/types"
)

// AbapGitXMLAdapter renders abapGit metadata documents: an asx:abap
// envelope around one serialized record, indented by a single space
// per nesting level. Class documents carry an extra abapGit element
// naming the serializer.
type AbapGitXMLAdapter struct{}

func NewAbapGitXMLAdapter() AbapGitXMLAdapter {
	return AbapGitXMLAdapter{}
}

// The declaration uses lowercase utf-8, unlike xml.Header.
const xmlDeclaration = `<?xml version="1.0" encoding="utf-8"?>` + "\n"

const abapEnvelopeOpen = `<asx:abap xmlns:asx="http://www.sap.com/abapxml" version="1.0">` + "\n" +
	`<asx:values>` + "\n"

const abapEnvelopeClose = `</asx:values>` + "\n" +
	`</asx:abap>` + "\n"

func (a AbapGitXMLAdapter) RepoMetadata(doc types.DotAbapGit) ([]byte, error) {
	return marshalDocument(doc, "")
}

func (a AbapGitXMLAdapter) ClassMetadata(record types.VSEOClass) ([]byte, error) {
	return marshalDocument(record, types.ClassSerializer)
}

// marshalDocument serializes one record into the asx:abap envelope. A
// non-empty serializer wraps the envelope in the abapGit element
// carrying the serializer tag.
func marshalDocument(record interface{}, serializer string) ([]byte, error) {
	body, err := xml.MarshalIndent(record, " ", " ")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to serialize abap record").
			WithCause(err)
	}

	var buf bytes.Buffer
	buf.WriteString(xmlDeclaration)
	if serializer != "" {
		buf.WriteString(`<abapGit version="v1.0.0" serializer="` + serializer + `" serializer_version="v1.0.0">` + "\n")
	}
	buf.WriteString(abapEnvelopeOpen)
	buf.Write(body)
	buf.WriteString("\n")
	buf.WriteString(abapEnvelopeClose)
	if serializer != "" {
		buf.WriteString("</abapGit>\n")
	}
	return buf.Bytes(), nil
}

var _ ports.AbapGitXMLPort = AbapGitXMLAdapter{}

package adapters

import (
	"context"
	"crypto/tls"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"abap-checkout/internal/ports"
	"abap-checkout/internal/shared"
	"abap-checkout/internal/types"
)

// ADTAdapter talks to the ABAP Development Tools REST endpoints of one
// SAP system. Object names are lowercased in request paths; the SAP
// client number travels as the sap-client query parameter on every
// request.
type ADTAdapter struct {
	BaseURL  string
	Client   string
	User     string
	Password string
	HTTP     *http.Client
}

const defaultADTPort = 443
const defaultADTTimeout = 60 * time.Second

func NewADTAdapter(conn types.Connection) ADTAdapter {
	scheme := "https"
	if conn.NoSSL {
		scheme = "http"
	}
	port := conn.Port
	if port <= 0 {
		port = defaultADTPort
	}
	transport := http.DefaultTransport
	if conn.Insecure {
		transport = &http.Transport{TLSClientConfig: &tls.Config{InsecureSkipVerify: true}}
	}
	return ADTAdapter{
		BaseURL:  fmt.Sprintf("%s://%s:%d/sap/bc/adt", scheme, conn.Host, port),
		Client:   conn.Client,
		User:     conn.User,
		Password: conn.Password,
		HTTP:     &http.Client{Timeout: defaultADTTimeout, Transport: transport},
	}
}

func (a ADTAdapter) FetchProgram(ctx context.Context, name string) (string, error) {
	body, err := a.get(ctx, "programs/programs/"+objectURLName(name)+"/source/main", "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (a ADTAdapter) FetchInterface(ctx context.Context, name string) (string, error) {
	body, err := a.get(ctx, "oo/interfaces/"+objectURLName(name)+"/source/main", "text/plain")
	if err != nil {
		return "", err
	}
	return string(body), nil
}

func (a ADTAdapter) FetchClass(ctx context.Context, name string) (types.Class, error) {
	base := "oo/classes/" + objectURLName(name)
	doc, err := a.get(ctx, base, "application/xml")
	if err != nil {
		return types.Class{}, err
	}
	class, err := parseClassDocument(doc)
	if err != nil {
		return types.Class{}, err
	}

	includes := []struct {
		path string
		dest *string
	}{
		{base + "/source/main", &class.Source.Main},
		{base + "/includes/definitions", &class.Source.LocalsDef},
		{base + "/includes/implementations", &class.Source.LocalsImp},
		{base + "/includes/testclasses", &class.Source.TestClasses},
	}
	for _, include := range includes {
		body, err := a.get(ctx, include.path, "text/plain")
		if err != nil {
			return types.Class{}, err
		}
		*include.dest = string(body)
	}
	return class, nil
}

func (a ADTAdapter) Browse(ctx context.Context, name string) (types.PackageContents, error) {
	params := url.Values{}
	params.Set("parent_name", name)
	params.Set("parent_tech_name", name)
	params.Set("parent_type", string(types.ObjectTypePackage))
	params.Set("withShortDescriptions", "true")
	body, err := a.request(ctx, http.MethodPost, "repository/nodestructure?"+params.Encode(), "application/xml")
	if err != nil {
		return types.PackageContents{}, err
	}
	return parsePackageContents(body)
}

func (a ADTAdapter) get(ctx context.Context, path string, accept string) ([]byte, error) {
	return a.request(ctx, http.MethodGet, path, accept)
}

func (a ADTAdapter) request(ctx context.Context, method string, path string, accept string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, a.BaseURL+"/"+path, nil)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create adt request").
			WithCause(err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if strings.TrimSpace(a.Client) != "" {
		query := req.URL.Query()
		query.Set("sap-client", a.Client)
		req.URL.RawQuery = query.Encode()
	}
	if strings.TrimSpace(a.User) != "" {
		req.SetBasicAuth(a.User, a.Password)
	}

	log.Ctx(ctx).Debug().
		Str("method", method).
		Str("url", req.URL.String()).
		Msg("adt request")

	resp, err := a.HTTP.Do(req)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeUnavailable).
			WithMsg("adt request failed").
			WithCause(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if err := statusError(resp.StatusCode, req.URL.String(), body); err != nil {
		return nil, err
	}
	return body, nil
}

func statusError(status int, endpoint string, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	cause := shared.HTTPStatusError(status, endpoint)
	if trimmed := strings.TrimSpace(string(body)); trimmed != "" {
		cause = shared.HTTPStatusErrorWithBody(status, endpoint, trimmed)
	}
	switch status {
	case http.StatusNotFound:
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("adt object not found").
			WithCause(cause)
	case http.StatusUnauthorized:
		return errbuilder.New().
			WithCode(errbuilder.CodeUnauthenticated).
			WithMsg("adt authentication failed").
			WithCause(cause)
	default:
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("adt request failed").
			WithCause(cause)
	}
}

// objectURLName normalizes an object name for use in ADT URIs.
func objectURLName(name string) string {
	return url.PathEscape(strings.ToLower(name))
}

// classDocument carries the attributes of the ADT class description
// document. Attributes are matched by local name regardless of their
// namespace prefix.
type classDocument struct {
	XMLName            xml.Name `xml:"abapClass"`
	Name               string   `xml:"name,attr"`
	Description        string   `xml:"description,attr"`
	MasterLanguage     string   `xml:"masterLanguage,attr"`
	Version            string   `xml:"version,attr"`
	Modeled            string   `xml:"modeled,attr"`
	FixPointArithmetic string   `xml:"fixPointArithmetic,attr"`
}

func parseClassDocument(body []byte) (types.Class, error) {
	var doc classDocument
	if err := xml.Unmarshal(body, &doc); err != nil {
		return types.Class{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse adt class document").
			WithCause(err)
	}
	return types.Class{
		Name:               doc.Name,
		Description:        doc.Description,
		MasterLanguage:     doc.MasterLanguage,
		Active:             doc.Version == "active",
		Modeled:            doc.Modeled == "true",
		FixPointArithmetic: doc.FixPointArithmetic == "true",
	}, nil
}

type nodeStructure struct {
	XMLName xml.Name   `xml:"abap"`
	Nodes   []repoNode `xml:"values>DATA>TREE_CONTENT>SEU_ADT_REPOSITORY_OBJ_NODE"`
}

type repoNode struct {
	ObjectType string `xml:"OBJECT_TYPE"`
	ObjectName string `xml:"OBJECT_NAME"`
}

// parsePackageContents splits a nodestructure response into subpackage
// names and object references, both in server order. Nodes without a
// name are dropped.
func parsePackageContents(body []byte) (types.PackageContents, error) {
	var doc nodeStructure
	if err := xml.Unmarshal(body, &doc); err != nil {
		return types.PackageContents{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to parse adt node structure").
			WithCause(err)
	}

	var contents types.PackageContents
	for _, node := range doc.Nodes {
		name := strings.TrimSpace(node.ObjectName)
		if name == "" {
			continue
		}
		if types.ObjectType(node.ObjectType) == types.ObjectTypePackage {
			contents.Subpackages = append(contents.Subpackages, name)
			continue
		}
		contents.Objects = append(contents.Objects, types.ObjectRef{
			Type: types.ObjectType(node.ObjectType),
			Name: name,
		})
	}
	return contents, nil
}

var _ ports.ObjectRepositoryPort = ADTAdapter{}
var _ ports.PackageBrowserPort = ADTAdapter{}

package openapi

import (
	"errors"
	"net/http"

	v "github.com/Gobd/validated"
	"github.com/getkin/kin-openapi/openapi3"
)

// Response describes an HTTP response with a description and body values.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a single API operation for [Get], [Post], [Put],
// [Patch] and [Delete].
type Endpoint struct {
	Summary     string
	Description string
	Request     v.Describer         // rule validating the request body
	Requests    []v.Describer       // alternative request bodies (oneOf)
	Response    any                 // single 200 response value
	Responses   map[string]Response // full response map, wins over Response
}

// NewRequestMust is like [NewRequest] but panics on error.
func NewRequestMust(rules ...v.Describer) *openapi3.RequestBodyRef {
	o, err := NewRequest(rules...)
	if err != nil {
		panic(err)
	}
	return o
}

// NewRequest documents a JSON request body from the rules that validate it.
func NewRequest(rules ...v.Describer) (*openapi3.RequestBodyRef, error) {
	if len(rules) == 0 {
		return nil, errors.New("no rules given")
	}

	refs := make(openapi3.SchemaRefs, 0, len(rules))
	for _, r := range rules {
		ref, err := v.Schema(r)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	body := openapi3.NewRequestBody().WithRequired(true).WithContent(jsonContent(refs))
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	o, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return o
}

// NewResponse creates an OpenAPI responses object.
// Map key is the status code (e.g. "200", "4xx").
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no values given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for status, resp := range vs {
		refs := make(openapi3.SchemaRefs, 0, len(resp.Bodies))
		for _, body := range resp.Bodies {
			ref, err := NewSchemaRefForValue(body)
			if err != nil {
				return nil, err
			}
			refs = append(refs, ref)
		}

		r := openapi3.NewResponse().WithDescription(resp.Desc)
		if len(refs) > 0 {
			r.Content = jsonContent(refs)
		}
		opts = append(opts, openapi3.WithName(status, r))
	}

	return openapi3.NewResponses(opts...), nil
}

// DocBase returns an empty OpenAPI 3.0.3 document.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// AddPath sets op as the method operation of path, keeping the other
// operations already registered there.
func AddPath(path, method string, doc *openapi3.T, op *openapi3.Operation) {
	item := doc.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	item.SetOperation(method, op)
	doc.Paths.Set(path, item)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description

	switch {
	case len(ep.Requests) > 0:
		op.RequestBody = NewRequestMust(ep.Requests...)
	case ep.Request != nil:
		op.RequestBody = NewRequestMust(ep.Request)
	}

	responses := ep.Responses
	if responses == nil && ep.Response != nil {
		responses = map[string]Response{
			"200": {Desc: "OK", Bodies: []any{ep.Response}},
		}
	}
	if responses != nil {
		op.Responses = NewResponseMust(responses)
	} else {
		op.Responses = openapi3.NewResponses()
	}

	AddPath(path, method, doc, op)
}

// Get registers a GET endpoint on doc.
func Get(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodGet, operationID, ep)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Delete registers a DELETE endpoint on doc.
func Delete(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodDelete, operationID, ep)
}

// Package openapi builds OpenAPI 3 documents whose request bodies are
// described by validation rules from package validated.
//
// Use [DocBase] to create a document and register endpoints with [Get],
// [Post], [Put], [Patch] or [Delete]:
//
//	doc := openapi.DocBase("people", "People API", "1.0")
//	openapi.Post(doc, "/people", "createPerson", openapi.Endpoint{
//	    Request:  person.Rules(dir),
//	    Response: person.Person{},
//	})
//
// Request schemas come from validated.Schema; response schemas are
// generated from the Go values given.
package openapi

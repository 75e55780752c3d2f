package models

import (
	openapi "github.com/sahardevv/OpenAPI.NET"
	"github.com/sahardevv/OpenAPI.NET/ordered"
	"github.com/sahardevv/OpenAPI.NET/writer"
)

// OperationType is an HTTP method a path item can hold.
type OperationType string

const (
	OperationGet     OperationType = "get"
	OperationPut     OperationType = "put"
	OperationPost    OperationType = "post"
	OperationDelete  OperationType = "delete"
	OperationOptions OperationType = "options"
	OperationHead    OperationType = "head"
	OperationPatch   OperationType = "patch"
	OperationTrace   OperationType = "trace"
)

// OperationTypes lists the methods in the order they are written.
var OperationTypes = []OperationType{
	OperationGet, OperationPut, OperationPost, OperationDelete,
	OperationOptions, OperationHead, OperationPatch, OperationTrace,
}

// Paths maps path templates to path items.
type Paths struct {
	Items      *ordered.Map[*PathItem]
	Extensions *Extensions
}

func (p *Paths) GetExtensions() *Extensions { return p.Extensions }

func (p *Paths) WriteAsV3(w writer.Writer) { p.write(w, openapi.V3) }
func (p *Paths) WriteAsV2(w writer.Writer) { p.write(w, openapi.V2) }

func (p *Paths) write(w writer.Writer, v openapi.SpecVersion) {
	w.WriteStartObject()
	for path, item := range p.Items.All() {
		w.WritePropertyName(path)
		if v == openapi.V2 {
			item.WriteAsV2(w)
		} else {
			item.WriteAsV3(w)
		}
	}
	writeExtensions(w, p.Extensions, v)
	w.WriteEndObject()
}

// PathItem holds the operations available on a single path.
type PathItem struct {
	Summary     string
	Description string
	Operations  map[OperationType]*Operation
	Servers     []*Server
	Parameters  []*Parameter
	Extensions  *Extensions
}

func (p *PathItem) GetExtensions() *Extensions { return p.Extensions }

// AddOperation stores op under method t.
func (p *PathItem) AddOperation(t OperationType, op *Operation) {
	if p.Operations == nil {
		p.Operations = make(map[OperationType]*Operation)
	}
	p.Operations[t] = op
}

func (p *PathItem) WriteAsV3(w writer.Writer) {
	w.WriteStartObject()
	writer.WriteProperty(w, "summary", p.Summary)
	writer.WriteProperty(w, "description", p.Description)
	for _, t := range OperationTypes {
		writer.WriteOptionalObject(w, string(t), p.Operations[t], (*Operation).WriteAsV3)
	}
	writer.WriteList(w, "servers", p.Servers, func(w writer.Writer, s *Server) { s.WriteAsV3(w) })
	writer.WriteList(w, "parameters", p.Parameters, func(w writer.Writer, prm *Parameter) { prm.WriteAsV3(w) })
	writeExtensions(w, p.Extensions, openapi.V3)
	w.WriteEndObject()
}

// WriteAsV2 moves summary and description into extensions and drops trace
// operations and servers.
func (p *PathItem) WriteAsV2(w writer.Writer) {
	w.WriteStartObject()
	for _, t := range OperationTypes {
		if t == OperationTrace {
			continue
		}
		writer.WriteOptionalObject(w, string(t), p.Operations[t], (*Operation).WriteAsV2)
	}
	writeParametersV2(w, p.Parameters, nil)
	writer.WriteProperty(w, ExtensionPrefix+"summary", p.Summary)
	writer.WriteProperty(w, ExtensionPrefix+"description", p.Description)
	writeExtensions(w, p.Extensions, openapi.V2)
	w.WriteEndObject()
}

// writeParametersV2 writes the Swagger 2.0 parameter list: regular
// parameters followed by the request body.
func writeParametersV2(w writer.Writer, params []*Parameter, body *RequestBody) {
	var kept []*Parameter
	for _, p := range params {
		if p != nil && p.In != InCookie {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 && body == nil {
		return
	}
	w.WritePropertyName("parameters")
	w.WriteStartArray()
	for _, p := range kept {
		p.WriteAsV2(w)
	}
	if body != nil {
		body.writeAsOperationParametersV2(w)
	}
	w.WriteEndArray()
}

// Package openapi holds the pieces shared by every layer of the OpenAPI
// document model: the diagnostics produced while reading a document, source
// positions, and the dialect enumeration used when writing.
//
// - Read documents with the reader package (JSON or YAML, dialect V2 or V3).
// - Inspect and mutate the typed graph in the models package.
// - Write it back through the writer package under either dialect.
//
// Design policy:
//   - Reading never aborts on recoverable input problems. Loaders record a
//     Diagnostic and keep going, so callers always get a usable partial model.
//   - Diagnostics are collected per read; nothing here is process-global.
//
// Typical usage:
//
//	res, err := reader.Read(ctx, data, reader.Settings{})
//	if err != nil {
//		return err // input was not a document at all
//	}
//	for _, d := range res.Diagnostics {
//		log.Println(d)
//	}
//	out, err := models.SerializeJSON(res.Document, openapi.V2, writer.Settings{Indent: 2})
package openapi

// Package schema turns topic documents into knowledge trees and back.
//
// A topic document is a structured record (already parsed from JSON, YAML or
// Markdown frontmatter) with the shape:
//
//	{
//	  "radacina": <node>
//	}
//	<node> ::= { "entitate": { "nume": string, "domeniu": string, "tip": string } }
//	         | { "intrebare": string, "da": <node>, "nu": <node> }
//
// Basic usage:
//
//	doc, err := schema.ParseDocument("animale.json", raw)
//	if err != nil {
//	    // *DocumentError, errors.Is(err, domain.ErrMalformedDocument)
//	}
//
//	tree, err := schema.DecodeTree("animale.json", doc)
//
// DecodeTree stops at the first defect; Validate walks the whole document and
// reports every defect in an *AggregateError. Every error names the source and
// the offending path (e.g. "radacina.nu.da.entitate.tip").
package schema

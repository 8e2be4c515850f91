// Package manifest loads browser-extension manifests and extracts the list of
// source files they reference.
//
// # Document Model
//
// A manifest is decoded into a Value tree rather than a fixed struct, since
// the fields the extractor cares about are loosely shaped across browsers.
// Lookups on a Value never panic: asking a non-map for a key returns an
// absent Value, so rules can chain lookups and test presence at the end:
//
//	doc, err := manifest.NewLoader().Load("manifest.json")
//	if err != nil {
//	    return err
//	}
//	scripts := doc.Get("background").Get("scripts")
//
// Maps keep the key order of the source document.
//
// # Extraction
//
// The Extractor emits "manifest.json" followed by the output of five rules:
// background scripts, experiment API schema and parent scripts, popup and
// options pages, icons, and locale message files:
//
//	ex := manifest.NewExtractor(manifest.ExtractorOptions{
//	    Locales: manifest.NewOSLocaleLister(".", manifest.DefaultLocalePattern),
//	})
//	sources, err := ex.Extract(doc)
//	fmt.Println(strings.Join(manifest.NormalizeAll(sources), " "))
//
// # Error Handling
//
// The package defines sentinel errors for common failure cases:
//   - ErrFileNotFound: manifest file does not exist or cannot be read
//   - ErrInvalidFormat: file is not valid JSON (or YAML)
//   - ErrKeyNotFound: a required field is missing
//   - ErrUnexpectedType: a required field has the wrong type
package manifest

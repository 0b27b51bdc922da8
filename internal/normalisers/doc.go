// Package normalisers converts uploaded documents into plain text.
//
// Each supported format lives in its own subpackage; Extractor dispatches
// on the declared file type and is the driven.Extractor used by the
// document service.
package normalisers

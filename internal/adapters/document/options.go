// Package document reads, mutates and writes template project XML.
package document

import "github.com/okian/hardcard/pkg/logger"

// DefaultNamespace is the project namespace tried before bare element names.
const DefaultNamespace = "http://www.adobe.com/products/aftereffects/project"

// Option applies a configuration option to the Writer.
type Option func(*Writer)

// WithNamespace sets the namespace URI looked up before bare elements.
func WithNamespace(uri string) Option {
	return func(w *Writer) {
		if uri != "" {
			w.ns = uri
		}
	}
}

// WithLogger sets the logger used for mutation events.
func WithLogger(l logger.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSourcePath records where the document came from; Save uses it when
// no explicit path is given.
func WithSourcePath(path string) Option {
	return func(w *Writer) {
		w.sourcePath = path
	}
}

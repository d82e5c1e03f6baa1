// Package bcol implements a columnar binary value codec: a sequence of
// same-typed scalar values is encoded as an initial literal followed by a
// variable-length instruction stream (Copy/Delta/SetDelta/SetNegDelta/Skip)
// that exploits runs of identical or arithmetically-progressing values, and
// embedded in a host document format as a single binary-subtyped element.
//
// # Basic usage
//
// Building a column:
//
//	b := column.NewBuilder()
//	defer b.Release()
//
//	for i, v := range samples {
//	    if err := b.Append(i, v); err != nil {
//	        return err
//	    }
//	}
//
//	elem := bcol.Wrap(b.Done())
//
// Reading it back:
//
//	view, err := bcol.NewView(elem)
//	if err != nil {
//	    return err
//	}
//
//	for idx, val := range view.All() {
//	    fmt.Println(idx, val)
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the column
// package, covering the common construct/wrap/view path. For compression,
// checksums, and random access, use the column package directly.
package bcol

import (
	"github.com/bcolfmt/bcol/column"
	"github.com/bcolfmt/bcol/element"
)

// NewBuilder creates a column.Builder with the given options.
func NewBuilder(opts ...column.BuilderOption) *column.Builder {
	return column.NewBuilder(opts...)
}

// NewView wraps a host element previously produced by Wrap (or
// column.Wrap/column.WrapCompressed) for decoding.
func NewView(elem element.Value, opts ...column.ViewOption) (column.View, error) {
	return column.NewView(elem, opts...)
}

// Wrap builds the host element that embeds a finished column payload (as
// produced by Builder.Done), ready to be handed to NewView.
func Wrap(payload []byte) element.Value {
	return column.Wrap(payload)
}

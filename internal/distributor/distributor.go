// Package distributor defines the result sink the engine streams findings
// to, plus the plain-text and JSON implementations.
package distributor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/xcorail/redpen/internal/model"
	"github.com/xcorail/redpen/internal/validator"
)

// ResultDistributor receives the run brackets and each finding as it is
// produced. A failing FlushError never aborts a run: the engine logs the
// failure and continues.
type ResultDistributor interface {
	FlushHeader() error
	FlushFooter() error
	FlushError(doc *model.Document, e validator.Error) error
}

// Plain writes findings as one human-readable line each.
type Plain struct {
	w io.Writer
}

// NewPlain creates a plain-text distributor writing to w.
func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (d *Plain) FlushHeader() error { return nil }

func (d *Plain) FlushFooter() error { return nil }

func (d *Plain) FlushError(doc *model.Document, e validator.Error) error {
	_, err := fmt.Fprintf(d.w, "%s:%d: %s: %s\n", doc.FileName, e.LineNum, e.Rule, e.Message)
	return err
}

// JSON writes a findings array, one object per finding, bracketed as a
// single JSON document.
type JSON struct {
	w     io.Writer
	first bool
}

// NewJSON creates a JSON distributor writing to w.
func NewJSON(w io.Writer) *JSON {
	return &JSON{w: w}
}

func (d *JSON) FlushHeader() error {
	d.first = true
	_, err := io.WriteString(d.w, "[")
	return err
}

func (d *JSON) FlushFooter() error {
	_, err := io.WriteString(d.w, "]\n")
	return err
}

func (d *JSON) FlushError(doc *model.Document, e validator.Error) error {
	payload, err := json.Marshal(map[string]any{
		"file":    doc.FileName,
		"rule":    e.Rule,
		"message": e.Message,
		"line":    e.LineNum,
	})
	if err != nil {
		return err
	}
	if !d.first {
		if _, err := io.WriteString(d.w, ","); err != nil {
			return err
		}
	}
	d.first = false
	_, err = d.w.Write(payload)
	return err
}

// Discard drops everything. Used when the caller only wants the returned
// result map.
type Discard struct{}

func (Discard) FlushHeader() error { return nil }

func (Discard) FlushFooter() error { return nil }

func (Discard) FlushError(*model.Document, validator.Error) error { return nil }

package document

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/beevik/etree"
	"github.com/google/uuid"
	"github.com/okian/hardcard/internal/domain/expression"
	"github.com/okian/hardcard/internal/domain/types"
	"github.com/okian/hardcard/pkg/logger"
	"github.com/okian/hardcard/pkg/metrics"
)

const (
	cdataOpen  = "<![CDATA["
	cdataClose = "]]>"
)

// Location identifies a written or removed expression.
type Location struct {
	Composition string                 `json:"comp"`
	Layer       string                 `json:"layer"`
	Property    string                 `json:"property"`
	Target      types.ExpressionTarget `json:"target"`
}

// Entry is one record of the additions or removals log.
type Entry struct {
	ID string `json:"id"`
	Location
	Expression string    `json:"expression,omitempty"`
	At         time.Time `json:"at"`
}

// Found is one expression discovered in the document.
type Found struct {
	Composition string `json:"comp"`
	Layer       string `json:"layer"`
	Property    string `json:"property"`
	Expression  string `json:"expression"`
}

// Discovery is the result of FindWithExpressions.
type Discovery struct {
	Count  int     `json:"count"`
	Layers []Found `json:"layers"`
}

// Failure is one item of AddMultiple that could not be written.
type Failure struct {
	Composition string                 `json:"comp"`
	Layer       string                 `json:"layer"`
	Target      types.ExpressionTarget `json:"target"`
	Error       string                 `json:"error"`
}

// BatchResult reports AddMultiple. Success is false only when stopOnError
// was requested and an item failed; callers must inspect Failures to learn
// whether every item was written.
type BatchResult struct {
	Success  bool       `json:"success"`
	Added    []Location `json:"added"`
	Skipped  int        `json:"skipped"`
	Failures []Failure  `json:"failures"`
	Message  string     `json:"message"`
}

// CompositionStats counts log entries for one composition.
type CompositionStats struct {
	Added   int `json:"added"`
	Removed int `json:"removed"`
}

// Statistics summarizes the mutation logs.
type Statistics struct {
	Session       string                      `json:"session"`
	Added         int                         `json:"added"`
	Removed       int                         `json:"removed"`
	ByComposition map[string]CompositionStats `json:"by_composition"`
}

// Writer owns one parsed project document and mutates it in place.
// Methods are safe for concurrent use; callers should still keep one
// Writer per document.
type Writer struct {
	mu         sync.Mutex
	session    uuid.UUID
	doc        *etree.Document
	ns         string
	sourcePath string
	log        logger.Logger

	added   []Entry
	removed []Entry
}

// Open reads and parses the document at path.
func Open(path string, opts ...Option) (*Writer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data, append([]Option{WithSourcePath(path)}, opts...)...)
}

// Parse builds a Writer from document bytes. Malformed XML yields an error
// wrapping ErrDocumentParse and no Writer.
func Parse(data []byte, opts ...Option) (*Writer, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDocumentParse, err)
	}
	if doc.Root() == nil {
		return nil, fmt.Errorf("%w: no root element", ErrDocumentParse)
	}

	w := &Writer{
		session: uuid.New(),
		doc:     doc,
		ns:      DefaultNamespace,
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w, nil
}

// Session identifies this Writer in logs and statistics.
func (w *Writer) Session() string { return w.session.String() }

// SourcePath returns the path the document was opened from, if any.
func (w *Writer) SourcePath() string { return w.sourcePath }

// AddExpression writes text as the expression of the target property of a
// layer, replacing any expression already there.
func (w *Writer) AddExpression(ctx context.Context, comp, layer string, target types.ExpressionTarget, text string, validate bool) (Location, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.addExpression(ctx, comp, layer, target, text, validate)
}

func (w *Writer) addExpression(ctx context.Context, comp, layer string, target types.ExpressionTarget, text string, validate bool) (Location, error) {
	if !target.Valid() {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	text = stripCDATA(text)
	if validate {
		if violations := expression.Validate(text); len(violations) > 0 {
			metrics.RecordValidationFailure()
			return Location{}, &ValidationError{Violations: violations}
		}
	}

	layerEl, err := w.findLayer(comp, layer)
	if err != nil {
		return Location{}, err
	}

	propName := target.Property()
	prop := FindWithFallback(layerEl, w.ns, tagProperty, propName)
	if prop == nil {
		prop = createChild(layerEl, tagProperty)
		prop.CreateAttr(attrName, propName)
	}

	exprs := FindAllWithFallback(prop, w.ns, tagExpression)
	var exprEl *etree.Element
	if len(exprs) == 0 {
		exprEl = createChild(prop, tagExpression)
	} else {
		exprEl = exprs[0]
		for _, extra := range exprs[1:] {
			prop.RemoveChild(extra)
		}
	}
	if strings.Contains(text, cdataClose) {
		// A CDATA section cannot hold its own terminator.
		exprEl.SetText(text)
	} else {
		exprEl.SetCData(text)
	}

	loc := Location{Composition: comp, Layer: layer, Property: propName, Target: target}
	w.added = append(w.added, Entry{ID: uuid.NewString(), Location: loc, Expression: text, At: time.Now()})
	metrics.RecordExpressionWritten()
	w.log.Debug(ctx, "expression written",
		logger.String("session", w.session.String()),
		logger.String("composition", comp),
		logger.String("layer", layer),
		logger.String("property", propName),
	)
	return loc, nil
}

// RemoveExpression deletes the expression of the target property of a layer.
// Every level down to the expression node must already exist.
func (w *Writer) RemoveExpression(ctx context.Context, comp, layer string, target types.ExpressionTarget) (Location, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !target.Valid() {
		return Location{}, fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	layerEl, err := w.findLayer(comp, layer)
	if err != nil {
		return Location{}, err
	}
	propName := target.Property()
	prop := FindWithFallback(layerEl, w.ns, tagProperty, propName)
	if prop == nil {
		return Location{}, &NotFoundError{Level: LevelProperty, Name: propName}
	}
	exprEl := FindWithFallback(prop, w.ns, tagExpression, "")
	if exprEl == nil {
		return Location{}, &NotFoundError{Level: LevelExpression, Name: propName}
	}
	prop.RemoveChild(exprEl)

	loc := Location{Composition: comp, Layer: layer, Property: propName, Target: target}
	w.removed = append(w.removed, Entry{ID: uuid.NewString(), Location: loc, At: time.Now()})
	metrics.RecordExpressionRemoved()
	w.log.Debug(ctx, "expression removed",
		logger.String("session", w.session.String()),
		logger.String("composition", comp),
		logger.String("layer", layer),
		logger.String("property", propName),
	)
	return loc, nil
}

// AddMultiple writes every enabled item. Failures are collected per item;
// with stopOnError the first failure ends the batch and marks it failed.
// Without stopOnError the batch succeeds even if every item failed.
func (w *Writer) AddMultiple(ctx context.Context, items []types.LayerExpression, validate, stopOnError bool) BatchResult {
	w.mu.Lock()
	defer w.mu.Unlock()

	res := BatchResult{Success: true}
	for _, it := range items {
		if !it.Enabled {
			res.Skipped++
			continue
		}
		loc, err := w.addExpression(ctx, it.Composition, it.Layer, it.Target, it.Expression, validate)
		if err != nil {
			res.Failures = append(res.Failures, Failure{
				Composition: it.Composition,
				Layer:       it.Layer,
				Target:      it.Target,
				Error:       err.Error(),
			})
			w.log.Warn(ctx, "expression not written",
				logger.String("composition", it.Composition),
				logger.String("layer", it.Layer),
				logger.Error(err),
			)
			if stopOnError {
				res.Success = false
				res.Message = fmt.Sprintf("stopped at layer %q after %d added: %v", it.Layer, len(res.Added), err)
				return res
			}
			continue
		}
		res.Added = append(res.Added, loc)
	}
	res.Message = fmt.Sprintf("added %d of %d expressions", len(res.Added), len(items)-res.Skipped)
	if len(res.Failures) > 0 {
		res.Message += fmt.Sprintf(", %d failed", len(res.Failures))
	}
	return res
}

// FindWithExpressions lists every expression in comp, or in every
// composition when comp is empty.
func (w *Writer) FindWithExpressions(comp string) Discovery {
	w.mu.Lock()
	defer w.mu.Unlock()

	var comps []*etree.Element
	if comp == "" {
		comps = FindAllWithFallback(w.doc.Root(), w.ns, tagComposition)
	} else if c := FindWithFallback(w.doc.Root(), w.ns, tagComposition, comp); c != nil {
		comps = []*etree.Element{c}
	}

	d := Discovery{Layers: []Found{}}
	for _, c := range comps {
		compName := c.SelectAttrValue(attrName, "")
		for _, l := range FindAllWithFallback(FindWithFallback(c, w.ns, tagLayers, ""), w.ns, tagLayer) {
			layerName := l.SelectAttrValue(attrName, "")
			for _, p := range FindAllWithFallback(l, w.ns, tagProperty) {
				e := FindWithFallback(p, w.ns, tagExpression, "")
				if e == nil {
					continue
				}
				d.Layers = append(d.Layers, Found{
					Composition: compName,
					Layer:       layerName,
					Property:    p.SelectAttrValue(attrName, ""),
					Expression:  stripCDATA(e.Text()),
				})
			}
		}
	}
	d.Count = len(d.Layers)
	return d
}

// ExportJSON writes the discovery for comp to path as
// {count, layers, message}.
func (w *Writer) ExportJSON(path, comp string) (Discovery, error) {
	d := w.FindWithExpressions(comp)
	scope := "all compositions"
	if comp != "" {
		scope = fmt.Sprintf("composition %q", comp)
	}
	out := struct {
		Discovery
		Message string `json:"message"`
	}{
		Discovery: d,
		Message:   fmt.Sprintf("found %d expressions in %s", d.Count, scope),
	}
	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return d, fmt.Errorf("encode export: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return d, fmt.Errorf("write export %s: %w", path, err)
	}
	return d, nil
}

// Save writes the document to path, or back to its source path when path
// is empty.
func (w *Writer) Save(path string) (string, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if path == "" {
		path = w.sourcePath
	}
	if path == "" {
		return "", ErrNoPath
	}
	if err := w.doc.WriteToFile(path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// String serializes the whole document. It returns "" if serialization
// fails; use Bytes when the error matters.
func (w *Writer) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()

	s, err := w.doc.WriteToString()
	if err != nil {
		return ""
	}
	return s
}

// Bytes serializes the whole document.
func (w *Writer) Bytes() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.doc.WriteToBytes()
}

// Statistics counts additions and removals from the in-memory logs.
func (w *Writer) Statistics() Statistics {
	w.mu.Lock()
	defer w.mu.Unlock()

	st := Statistics{
		Session:       w.session.String(),
		Added:         len(w.added),
		Removed:       len(w.removed),
		ByComposition: make(map[string]CompositionStats),
	}
	for _, e := range w.added {
		cs := st.ByComposition[e.Composition]
		cs.Added++
		st.ByComposition[e.Composition] = cs
	}
	for _, e := range w.removed {
		cs := st.ByComposition[e.Composition]
		cs.Removed++
		st.ByComposition[e.Composition] = cs
	}
	return st
}

// Additions returns a copy of the additions log.
func (w *Writer) Additions() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Entry(nil), w.added...)
}

// Removals returns a copy of the removals log.
func (w *Writer) Removals() []Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]Entry(nil), w.removed...)
}

// Compositions enumerates every composition with its layers in document order.
func (w *Writer) Compositions() []types.Composition {
	w.mu.Lock()
	defer w.mu.Unlock()

	var out []types.Composition
	for _, c := range FindAllWithFallback(w.doc.Root(), w.ns, tagComposition) {
		comp := types.Composition{Name: c.SelectAttrValue(attrName, "")}
		for _, l := range FindAllWithFallback(FindWithFallback(c, w.ns, tagLayers, ""), w.ns, tagLayer) {
			comp.Layers = append(comp.Layers, types.Layer{
				Name: l.SelectAttrValue(attrName, ""),
				Kind: types.ParseLayerKind(l.SelectAttrValue(attrType, "")),
			})
		}
		out = append(out, comp)
	}
	return out
}

func (w *Writer) findLayer(comp, layer string) (*etree.Element, error) {
	c := FindWithFallback(w.doc.Root(), w.ns, tagComposition, comp)
	if c == nil {
		return nil, &NotFoundError{Level: LevelComposition, Name: comp}
	}
	layers := FindWithFallback(c, w.ns, tagLayers, "")
	if layers == nil {
		return nil, &NotFoundError{Level: LevelLayers, Name: comp}
	}
	l := FindWithFallback(layers, w.ns, tagLayer, layer)
	if l == nil {
		return nil, &NotFoundError{Level: LevelLayer, Name: layer}
	}
	return l, nil
}

// stripCDATA unwraps text that arrives already wrapped in a CDATA section.
// Markers inside the text are left alone.
func stripCDATA(s string) string {
	if strings.HasPrefix(s, cdataOpen) && strings.HasSuffix(s, cdataClose) && len(s) >= len(cdataOpen)+len(cdataClose) {
		return s[len(cdataOpen) : len(s)-len(cdataClose)]
	}
	return s
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"github.com/beevik/etree"
	"github.com/goccy/go-yaml"
	"github.com/xiam/lishp/ast"
)

// Output formats
const (
	FormatSExpr = "sexpr"
	FormatTree  = "tree"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatXML   = "xml"
)

var formats = []string{FormatSExpr, FormatTree, FormatJSON, FormatYAML, FormatXML}

func isFormat(name string) bool {
	return slices.Contains(formats, name)
}

// plainValue is the shape values take in JSON and YAML output.
type plainValue struct {
	Type  string       `json:"type" yaml:"type"`
	Value interface{}  `json:"value" yaml:"value"`
	Items []plainValue `json:"items,omitempty" yaml:"items,omitempty"`
	Span  [2]int       `json:"span" yaml:"span"`
}

func toPlain(v *ast.Value) plainValue {
	p := plainValue{
		Type: v.Type().String(),
		Span: [2]int{v.Span().Start, v.Span().End},
	}
	if v.IsList() {
		p.Items = make([]plainValue, 0, v.Len())
		for _, item := range v.List() {
			p.Items = append(p.Items, toPlain(item))
		}
		return p
	}
	p.Value = v.Value()
	return p
}

// xmlBuilder renders a tree as nested XML elements, one per value.
type xmlBuilder struct {
	ast.BaseVisitor

	parent *etree.Element
}

func (b *xmlBuilder) VisitList(items []*ast.Value) bool {
	el := b.parent.CreateElement(ast.ValueTypeList.String())
	for _, item := range items {
		ast.Walk(&xmlBuilder{parent: el}, item)
	}
	return false
}

func (b *xmlBuilder) VisitAtom(atom ast.Value) bool {
	el := b.parent.CreateElement(atom.Type().String())
	switch atom.Type() {
	case ast.ValueTypeNil:
	case ast.ValueTypeString, ast.ValueTypeSymbol:
		el.SetText(atom.Text())
	default:
		el.SetText(string(ast.Encode(&atom)))
	}
	return false
}

// writeValue prints v to w in the given format.
func writeValue(w io.Writer, v *ast.Value, format string) error {
	switch format {
	case FormatSExpr:
		_, err := fmt.Fprintln(w, v.String())
		return err

	case FormatTree:
		ast.Fprint(w, v)
		return nil

	case FormatJSON:
		buf, err := json.MarshalIndent(toPlain(v), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(buf))
		return err

	case FormatYAML:
		buf, err := yaml.Marshal(toPlain(v))
		if err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		_, err = w.Write(buf)
		return err

	case FormatXML:
		doc := etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
		root := doc.CreateElement("lishp")
		ast.Walk(&xmlBuilder{parent: root}, v)
		doc.Indent(2)
		_, err := doc.WriteTo(w)
		return err
	}

	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

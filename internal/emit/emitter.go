// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package emit

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/pvegen/pvegen/internal/paramset"
	"github.com/pvegen/pvegen/internal/util"
	"github.com/pvegen/pvegen/pkg/types"
)

// File is one generated source file.
type File struct {
	// Name is the file name within the output directory
	Name string

	// Content is formatted Go source
	Content []byte
}

// Emitter renders the endpoint tree and interned parameter sets into
// Go source files: client.go, one file per top-level group, and
// models.go. Identical input always produces byte-identical output.
type Emitter struct {
	// Package is the generated package name
	Package string

	// Warns collects rename notices
	Warns *types.Warnings
}

// NewEmitter returns an Emitter for the given package name.
func NewEmitter(pkg string, warns *types.Warnings) *Emitter {
	return &Emitter{Package: pkg, Warns: warns}
}

// Emit renders all files. Output order is client.go, group files in
// sorted order, then models.go.
func (e *Emitter) Emit(root *types.Node, registry *paramset.Registry) ([]File, error) {
	var files []File

	client, err := e.emitClient(root)
	if err != nil {
		return nil, err
	}
	files = append(files, client)

	for _, key := range root.ChildKeys() {
		group, err := e.emitGroup(root.Children[key], registry)
		if err != nil {
			return nil, err
		}
		files = append(files, group)
	}

	models, err := e.emitModels(registry)
	if err != nil {
		return nil, err
	}
	files = append(files, models)
	return files, nil
}

func (e *Emitter) render(name string, tmpl *template.Template, data any) (File, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return File{}, fmt.Errorf("rendering %s: %w", name, err)
	}
	formatted, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		return File{}, fmt.Errorf("formatting %s: %w", name, err)
	}
	return File{Name: name, Content: formatted}, nil
}

// --- client.go ---

type clientView struct {
	Header  string
	Package string
	Groups  []clientGroupView
}

type clientGroupView struct {
	AccessorName string
	TypeName     string
	Path         string
}

func (e *Emitter) emitClient(root *types.Node) (File, error) {
	view := clientView{Header: generatedHeader, Package: e.Package}
	for _, key := range root.ChildKeys() {
		child := root.Children[key]
		view.Groups = append(view.Groups, clientGroupView{
			AccessorName: util.ExportedName(strings.Trim(key, "{}")),
			TypeName:     endpointTypeName(child),
			Path:         child.Path,
		})
	}
	return e.render("client.go", clientTemplate, view)
}

// --- group files ---

type groupView struct {
	Header    string
	Package   string
	Endpoints []endpointView
}

type endpointView struct {
	TypeName string
	Path     string
	Methods  []methodView
	Children []childView
}

type methodView struct {
	Receiver      string
	Name          string
	Doc           string
	TransportCall string
	RequestType   string
}

type childView struct {
	Receiver      string
	AccessorName  string
	ChildTypeName string
	ChildPath     string
	Segment       string
	Param         bool
	ArgName       string
	ArgType       string
	PathExpr      string
}

func (e *Emitter) emitGroup(group *types.Node, registry *paramset.Registry) (File, error) {
	view := groupView{Header: generatedHeader, Package: e.Package}
	group.WalkNodes(func(node *types.Node) {
		view.Endpoints = append(view.Endpoints, e.endpointView(node, registry))
	})
	name := strings.Trim(group.Segment, "{}") + ".go"
	return e.render(name, groupTemplate, view)
}

func (e *Emitter) endpointView(node *types.Node, registry *paramset.Registry) endpointView {
	typeName := endpointTypeName(node)
	view := endpointView{TypeName: typeName, Path: node.Path}

	accessorNames := make(map[string]bool)
	for _, key := range node.ChildKeys() {
		child := node.Children[key]
		cv := e.childView(typeName, node, child)
		if accessorNames[cv.AccessorName] {
			renamed := cv.AccessorName + "2"
			for n := 3; accessorNames[renamed]; n++ {
				renamed = fmt.Sprintf("%s%d", cv.AccessorName, n)
			}
			if e.Warns != nil {
				e.Warns.Add("emit", node.Path,
					"accessor name collision: %s renamed to %s", cv.AccessorName, renamed)
			}
			cv.AccessorName = renamed
		}
		accessorNames[cv.AccessorName] = true
		view.Children = append(view.Children, cv)
	}

	if node.Endpoint != nil {
		for _, method := range node.Endpoint.Methods {
			mv := e.methodView(typeName, node, method, registry)
			if accessorNames[mv.Name] {
				renamed := mv.Name + "Op"
				if e.Warns != nil {
					e.Warns.Add("emit", node.Path,
						"method name collision: %s %s renamed to %s",
						method.Verb, mv.Name, renamed)
				}
				mv.Name = renamed
			}
			view.Methods = append(view.Methods, mv)
		}
	}
	return view
}

func (e *Emitter) methodView(typeName string, node *types.Node, method types.Method, registry *paramset.Registry) methodView {
	mv := methodView{
		Receiver:      typeName,
		Name:          verbMethodName(method),
		Doc:           methodDoc(method, node.Path),
		TransportCall: util.TitleVerb(method.Verb),
	}
	if set := registry.Lookup(node.Path, method.Verb); set != nil {
		mv.RequestType = set.Name
	}
	return mv
}

func (e *Emitter) childView(typeName string, parent, child *types.Node) childView {
	cv := childView{
		Receiver:      typeName,
		ChildTypeName: endpointTypeName(child),
		ChildPath:     child.Path,
		Segment:       child.Segment,
		Param:         child.Param,
	}
	if !child.Param {
		cv.AccessorName = util.ExportedName(child.Segment)
		return cv
	}

	cv.AccessorName = util.ExportedName(child.ParamName)
	cv.ArgName = util.UnexportedName(child.ParamName)
	cv.ArgType = pathParamGoType(child)
	if cv.ArgType == "int64" {
		cv.PathExpr = "strconv.FormatInt(" + cv.ArgName + ", 10)"
	} else {
		cv.PathExpr = "url.PathEscape(" + cv.ArgName + ")"
	}
	return cv
}

// pathParamGoType inspects the placeholder's subtree for a method
// declaring the parameter; integers become int64 arguments, everything
// else stays string. Synthesized nodes defer to their descendants.
func pathParamGoType(node *types.Node) string {
	goType := "string"
	node.WalkNodes(func(n *types.Node) {
		if n.Endpoint == nil {
			return
		}
		for _, method := range n.Endpoint.Methods {
			for _, param := range method.Parameters {
				if param.Name == node.ParamName && param.Type == "integer" {
					goType = "int64"
				}
			}
		}
	})
	return goType
}

func endpointTypeName(node *types.Node) string {
	return util.PathTypeName(node.Path) + "Endpoint"
}

// verbMethodName maps verbs to accessor method names. A GET returning
// an array reads as List.
func verbMethodName(method types.Method) string {
	switch method.Verb {
	case "GET":
		if method.Returns != nil && method.Returns.Type == "array" {
			return "List"
		}
		return "Get"
	case "POST":
		return "Create"
	case "PUT":
		return "Update"
	case "DELETE":
		return "Delete"
	default:
		return util.TitleVerb(method.Verb)
	}
}

func methodDoc(method types.Method, path string) string {
	doc := oneLine(method.Description)
	if doc == "" {
		doc = fmt.Sprintf("performs %s %s.", method.Verb, path)
	}
	return doc
}

// --- models.go ---

type modelsView struct {
	Header  string
	Package string
	Enums   []enumView
	Models  []modelView
}

type enumView struct {
	TypeName  string
	FieldName string
	Values    []enumValueView
}

type enumValueView struct {
	ConstName string
	TypeName  string
	Literal   string
}

type modelView struct {
	Name        string
	Doc         string
	Fields      []fieldView
	Validations []string
}

type fieldView struct {
	GoName string
	GoType string
	Tag    string
	Doc    string
}

func (e *Emitter) emitModels(registry *paramset.Registry) (File, error) {
	view := modelsView{Header: generatedHeader, Package: e.Package}

	sets := append([]*types.ParameterSet(nil), registry.Sets()...)
	sort.Slice(sets, func(i, j int) bool { return sets[i].Name < sets[j].Name })

	for _, set := range sets {
		doc := "carries the parameters of " + usedByPhrase(set.UsedBy[0]) + "."
		e.buildModel(&view, set.Name, doc, set.Params)
	}
	return e.render("models.go", modelsTemplate, view)
}

// buildModel appends one struct, its enum types, and any nested
// composite structs to the view.
func (e *Emitter) buildModel(view *modelsView, name, doc string, params []types.TypedParam) {
	model := modelView{Name: name, Doc: doc}

	for _, param := range params {
		field := fieldView{
			GoName: param.GoName,
			Doc:    oneLine(param.Description),
			Tag:    param.Name,
		}
		if param.Optional {
			field.Tag += ",omitempty"
		}

		switch {
		case param.IsComposite():
			nested := name + param.GoName
			e.buildModel(view, nested,
				"is the "+param.Name+" sub-schema of "+name+".", param.Fields)
			field.GoType = "*" + nested
		case param.EnumValues() != nil && param.GoType == "string":
			enumType := name + param.GoName
			view.Enums = append(view.Enums, e.enumView(enumType, param))
			field.GoType = enumType
		case param.Optional && isScalarValue(param.GoType):
			field.GoType = "*" + param.GoType
		default:
			field.GoType = param.GoType
		}

		model.Validations = append(model.Validations,
			fieldValidations(param, field.GoType)...)
		model.Fields = append(model.Fields, field)
	}
	view.Models = append(view.Models, model)
}

func (e *Emitter) enumView(typeName string, param types.TypedParam) enumView {
	ev := enumView{TypeName: typeName, FieldName: param.GoName}
	for _, value := range param.EnumValues() {
		ev.Values = append(ev.Values, enumValueView{
			ConstName: typeName + util.ExportedName(value),
			TypeName:  typeName,
			Literal:   strconv.Quote(value),
		})
	}
	return ev
}

// isScalarValue reports whether an optional field of this type needs a
// pointer to distinguish absent from zero. Strings ride on omitempty.
func isScalarValue(goType string) bool {
	switch goType {
	case "int64", "float64", "bool":
		return true
	}
	return false
}

// usedByPhrase turns the registry's "path verb" key into "VERB path".
func usedByPhrase(usedBy string) string {
	idx := strings.LastIndex(usedBy, " ")
	if idx < 0 {
		return usedBy
	}
	return usedBy[idx+1:] + " " + usedBy[:idx]
}

func oneLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = strings.TrimRight(s[:idx], " .") + "."
	}
	return s
}

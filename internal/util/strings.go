// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package util provides naming helpers shared by the mapping and
// emission stages.
package util

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// goKeywords are identifiers that cannot be used verbatim in generated
// code. Renames are deterministic: a trailing underscore.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// ExportedName converts a schema identifier to an exported Go name:
// "mac-addr" becomes "MacAddr", "link0" becomes "Link0". A leading
// digit gets an "N" prefix so the result stays a valid identifier.
func ExportedName(name string) string {
	var sb strings.Builder
	for _, part := range splitWords(name) {
		sb.WriteString(titleCaser.String(strings.ToLower(part)))
	}
	result := sb.String()
	if result == "" {
		return "X"
	}
	if result[0] >= '0' && result[0] <= '9' {
		result = "N" + result
	}
	return result
}

// UnexportedName converts a schema identifier to an unexported Go
// name, escaping keywords ("type" becomes "type_").
func UnexportedName(name string) string {
	exported := ExportedName(name)
	result := strings.ToLower(exported[:1]) + exported[1:]
	return EscapeReserved(result)
}

// EscapeReserved appends an underscore to Go keywords.
func EscapeReserved(name string) string {
	if goKeywords[name] {
		return name + "_"
	}
	return name
}

// PathTypeName converts an API path to a PascalCase type name stem,
// including parameter segments by name:
// "/nodes/{node}/qemu/{vmid}/config" becomes "NodesNodeQemuVmidConfig".
func PathTypeName(path string) string {
	var sb strings.Builder
	for _, segment := range strings.Split(strings.Trim(path, "/"), "/") {
		segment = strings.Trim(segment, "{}")
		if segment == "" {
			continue
		}
		sb.WriteString(ExportedName(segment))
	}
	return sb.String()
}

// TitleVerb converts an HTTP verb to its PascalCase form: "GET"
// becomes "Get".
func TitleVerb(verb string) string {
	return titleCaser.String(strings.ToLower(verb))
}

// splitWords splits an identifier on the separators the schema uses
// (hyphen, underscore, dot, brackets).
func splitWords(name string) []string {
	return strings.FieldsFunc(name, func(r rune) bool {
		switch r {
		case '-', '_', '.', '[', ']', '{', '}', '/':
			return true
		}
		return false
	})
}

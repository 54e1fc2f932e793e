// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package typemap converts declared parameter types and format
// identifiers into Go types with validation constraints.
package typemap

// formatEntry is one row of the format dispatch table. An empty GoType
// keeps the declared base type; the format still attaches an implicit
// format constraint so generated validators can check the value shape.
type formatEntry struct {
	GoType string
}

// formatTable maps the schema's format identifiers to Go types. Table
// dispatch keeps the mapper total and makes adding a format a one-line
// change.
var formatTable = map[string]formatEntry{
	// Node identifiers
	"pve-node":      {GoType: "string"},
	"pve-node-list": {GoType: "[]string"},

	// VM/container identifiers
	"pve-vmid":      {GoType: "int64"},
	"pve-vmid-list": {GoType: "[]int64"},

	// Storage
	"pve-storage-id":      {GoType: "string"},
	"pve-storage-id-list": {GoType: "[]string"},

	// Replication
	"pve-replication-job-id":      {GoType: "string"},
	"pve-replication-job-id-list": {GoType: "[]string"},

	// Comma-separated config key list stays a single string.
	"pve-configid-list": {GoType: "string"},

	// Time
	"pve-timezone":       {GoType: "string"},
	"pve-calendar-event": {GoType: "string"},

	// Network
	"pve-iface": {GoType: "string"},
	"ipv4":      {GoType: "string"},
	"ipv6":      {GoType: "string"},
	"ip":        {GoType: "string"},
	"cidr":      {GoType: "string"},
	"mac-addr":  {GoType: "string"},

	// Authentication
	"pve-userid": {GoType: "string"},
	"pve-realm":  {GoType: "string"},
	"password":   {GoType: "string"},
	"token":      {GoType: "string"},

	// Generic value shapes
	"email":    {GoType: "string"},
	"uri":      {GoType: "string"},
	"uuid":     {GoType: "string"},
	"hostname": {GoType: "string"},
}

// KnownFormat reports whether the identifier has a table entry.
func KnownFormat(name string) bool {
	_, ok := formatTable[name]
	return ok
}

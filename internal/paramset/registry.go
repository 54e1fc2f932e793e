// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

// Package paramset deduplicates method parameter lists into shared,
// reusable request models.
package paramset

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/pvegen/pvegen/internal/util"
	"github.com/pvegen/pvegen/pkg/types"
)

// Registry interns parameter sets by canonical content hash. Two
// methods whose parameter lists hash equally share one generated
// model; near-misses never merge. The registry is filled during
// extraction and read-only afterwards.
type Registry struct {
	byHash map[string]*types.ParameterSet
	byName map[string]string
	index  map[string]*types.ParameterSet
	order  []*types.ParameterSet
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byHash: make(map[string]*types.ParameterSet),
		byName: make(map[string]string),
		index:  make(map[string]*types.ParameterSet),
	}
}

// Intern registers the parameter list of one method and returns its
// set. The first consumer of a hash names the set; later consumers
// reuse it and are appended to UsedBy. Interning order must be
// deterministic for names to reproduce across runs.
func (r *Registry) Intern(path, verb string, params []types.TypedParam) *types.ParameterSet {
	if len(params) == 0 {
		return nil
	}

	usedBy := path + " " + verb
	hash := canonicalHash(params)
	if set, ok := r.byHash[hash]; ok {
		set.UsedBy = append(set.UsedBy, usedBy)
		r.index[usedBy] = set
		return set
	}

	set := &types.ParameterSet{
		Name:   r.claimName(path, verb, hash),
		Hash:   hash,
		Params: params,
		UsedBy: []string{usedBy},
	}
	r.byHash[hash] = set
	r.index[usedBy] = set
	r.order = append(r.order, set)
	return set
}

// Lookup returns the set interned for a path/verb pair, or nil.
func (r *Registry) Lookup(path, verb string) *types.ParameterSet {
	return r.index[path+" "+verb]
}

// Sets returns all interned sets in first-interned order.
func (r *Registry) Sets() []*types.ParameterSet {
	return r.order
}

// claimName derives a model name from the first consuming endpoint and
// verb, disambiguating collisions with a stable counter.
func (r *Registry) claimName(path, verb, hash string) string {
	base := util.PathTypeName(path) + util.TitleVerb(verb) + "Request"
	name := base
	for n := 2; ; n++ {
		owner, taken := r.byName[name]
		if !taken {
			r.byName[name] = hash
			return name
		}
		if owner == hash {
			return name
		}
		name = fmt.Sprintf("%s%d", base, n)
	}
}

// canonicalHash computes the content hash of a parameter list over
// (name, Go type, constraints) tuples, recursing into composite
// fields. Descriptions never contribute: documentation edits must not
// change model identity.
func canonicalHash(params []types.TypedParam) string {
	var sb strings.Builder
	writeCanonical(&sb, params)
	sum := sha256.Sum256([]byte(sb.String()))
	return hex.EncodeToString(sum[:])
}

func writeCanonical(sb *strings.Builder, params []types.TypedParam) {
	for _, param := range params {
		sb.WriteString(param.Name)
		sb.WriteByte('|')
		sb.WriteString(param.GoType)
		sb.WriteByte('|')
		if param.Optional {
			sb.WriteString("opt")
		}
		sb.WriteByte('|')
		for _, c := range param.Constraints {
			writeConstraint(sb, c)
		}
		if len(param.Fields) > 0 {
			sb.WriteString("{")
			writeCanonical(sb, param.Fields)
			sb.WriteString("}")
		}
		sb.WriteByte(';')
	}
}

func writeConstraint(sb *strings.Builder, c types.Constraint) {
	sb.WriteString(string(c.Kind))
	sb.WriteByte(':')
	if c.Min != nil {
		sb.WriteString(strconv.FormatFloat(*c.Min, 'g', -1, 64))
	}
	sb.WriteByte(',')
	if c.Max != nil {
		sb.WriteString(strconv.FormatFloat(*c.Max, 'g', -1, 64))
	}
	sb.WriteByte(',')
	if c.MinLen != nil {
		sb.WriteString(strconv.Itoa(*c.MinLen))
	}
	sb.WriteByte(',')
	if c.MaxLen != nil {
		sb.WriteString(strconv.Itoa(*c.MaxLen))
	}
	sb.WriteByte(',')
	sb.WriteString(c.Pattern)
	sb.WriteByte(',')
	sb.WriteString(strings.Join(c.Values, "\x1f"))
	sb.WriteByte(',')
	sb.WriteString(c.Format)
	sb.WriteByte('/')
}

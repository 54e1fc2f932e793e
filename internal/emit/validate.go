// SPDX-FileCopyrightText: 2026 pvegen
// SPDX-License-Identifier: FSL-1.1-MIT

package emit

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pvegen/pvegen/pkg/types"
)

// fieldValidations renders the Validate() statements for one field.
// The statements go through gofmt with the rest of the file, so
// indentation here only needs to be parseable.
func fieldValidations(param types.TypedParam, goType string) []string {
	var out []string
	access := "r." + param.GoName

	for _, c := range param.Constraints {
		switch c.Kind {
		case types.ConstraintRange:
			out = append(out, rangeChecks(param, c, goType, access)...)
		case types.ConstraintLength:
			if goType == "string" {
				out = append(out, lengthChecks(param, c, access)...)
			}
		case types.ConstraintPattern:
			if goType == "string" {
				out = append(out, patternCheck(param, c, access))
			}
		case types.ConstraintFormat:
			if goType == "string" {
				if check := formatCheck(param, c, access); check != "" {
					out = append(out, check)
				}
			}
		}
	}
	return out
}

func rangeChecks(param types.TypedParam, c types.Constraint, goType, access string) []string {
	pointer := strings.HasPrefix(goType, "*")
	base := strings.TrimPrefix(goType, "*")
	if base != "int64" && base != "float64" {
		return nil
	}

	value := access
	guard := ""
	if pointer {
		value = "*" + access
		guard = access + " != nil && "
	}

	var out []string
	if c.Min != nil {
		bound := formatBound(*c.Min, base)
		out = append(out, fmt.Sprintf(
			"if %s%s < %s {\n\treturn fmt.Errorf(\"%s: must be >= %s\")\n}",
			guard, value, bound, param.Name, bound))
	}
	if c.Max != nil {
		bound := formatBound(*c.Max, base)
		out = append(out, fmt.Sprintf(
			"if %s%s > %s {\n\treturn fmt.Errorf(\"%s: must be <= %s\")\n}",
			guard, value, bound, param.Name, bound))
	}
	return out
}

func lengthChecks(param types.TypedParam, c types.Constraint, access string) []string {
	var out []string
	if c.MinLen != nil {
		guard := ""
		if param.Optional {
			guard = access + ` != "" && `
		}
		out = append(out, fmt.Sprintf(
			"if %slen(%s) < %d {\n\treturn fmt.Errorf(\"%s: must be at least %d characters\")\n}",
			guard, access, *c.MinLen, param.Name, *c.MinLen))
	}
	if c.MaxLen != nil {
		out = append(out, fmt.Sprintf(
			"if len(%s) > %d {\n\treturn fmt.Errorf(\"%s: must be at most %d characters\")\n}",
			access, *c.MaxLen, param.Name, *c.MaxLen))
	}
	return out
}

// patternCheck compiles the schema's pattern at validation time: the
// source patterns are Perl-flavored and a handful do not compile as
// RE2, in which case the check is skipped rather than panicking.
func patternCheck(param types.TypedParam, c types.Constraint, access string) string {
	quoted := strconv.Quote(c.Pattern)
	return fmt.Sprintf(
		"if %s != \"\" {\n\tif re, err := regexp.Compile(%s); err == nil && !re.MatchString(%s) {\n\t\treturn fmt.Errorf(\"%s: must match pattern %%s\", %s)\n\t}\n}",
		access, quoted, access, param.Name, quoted)
}

func formatCheck(param types.TypedParam, c types.Constraint, access string) string {
	switch c.Format {
	case "ipv4":
		return fmt.Sprintf(
			"if %s != \"\" {\n\tif ip := net.ParseIP(%s); ip == nil || ip.To4() == nil {\n\t\treturn fmt.Errorf(\"%s: must be an IPv4 address\")\n\t}\n}",
			access, access, param.Name)
	case "ipv6":
		return fmt.Sprintf(
			"if %s != \"\" {\n\tif ip := net.ParseIP(%s); ip == nil || ip.To4() != nil {\n\t\treturn fmt.Errorf(\"%s: must be an IPv6 address\")\n\t}\n}",
			access, access, param.Name)
	case "ip":
		return fmt.Sprintf(
			"if %s != \"\" && net.ParseIP(%s) == nil {\n\treturn fmt.Errorf(\"%s: must be an IP address\")\n}",
			access, access, param.Name)
	case "cidr":
		return fmt.Sprintf(
			"if %s != \"\" {\n\tif _, _, err := net.ParseCIDR(%s); err != nil {\n\t\treturn fmt.Errorf(\"%s: must be CIDR notation\")\n\t}\n}",
			access, access, param.Name)
	case "mac-addr":
		return fmt.Sprintf(
			"if %s != \"\" {\n\tif _, err := net.ParseMAC(%s); err != nil {\n\t\treturn fmt.Errorf(\"%s: must be a MAC address\")\n\t}\n}",
			access, access, param.Name)
	}
	return ""
}

// formatBound renders a numeric bound, preferring integer form for
// integral values on int64 fields.
func formatBound(v float64, base string) string {
	if base == "int64" && v == math.Trunc(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Copyright 2025 go-expint Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// varName builds a table identifier such as e1TaylorCoef.
func varName(section, role string) string {
	title := cases.Title(language.English)
	return "e1" + title.String(section) + title.String(role)
}

// gfmt formats a float64 with the fewest digits that read back exactly.
func gfmt(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeFloatSlice(buf *bytes.Buffer, name string, vals []float64) {
	fmt.Fprintf(buf, "var %s = [...]float64{", name)
	for i, v := range vals {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(gfmt(v))
	}
	buf.WriteString("}\n\n")
}

func writeFloatRows(buf *bytes.Buffer, name string, rows [][]float64) {
	fmt.Fprintf(buf, "var %s = [...][]float64{\n", name)
	for _, row := range rows {
		buf.WriteString("\t{")
		for i, v := range row {
			if i > 0 {
				buf.WriteString(", ")
			}
			buf.WriteString(gfmt(v))
		}
		buf.WriteString("},\n")
	}
	buf.WriteString("}\n\n")
}

// Render derives every table in the plan and emits the generated source
// file, run through the imports processor so the output is always
// gofmt-clean.
func Render(p Plan, pkg string) ([]byte, error) {
	uppers := func(ivs []Interval) []float64 {
		out := make([]float64, len(ivs))
		for i, iv := range ivs {
			out[i] = iv.Upper
		}
		return out
	}
	taylor := make([][]float64, 0, len(p.Taylor))
	for _, iv := range p.Taylor {
		taylor = append(taylor, taylorCoef(iv.Order))
	}
	num := make([][]float64, 0, len(p.Rational))
	den := make([][]float64, 0, len(p.Rational))
	for _, iv := range p.Rational {
		n, d := cfPolys(iv.Order)
		num = append(num, n)
		den = append(den, d)
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by e1gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	writeFloatSlice(&buf, varName("taylor", "upper"), uppers(p.Taylor))
	writeFloatRows(&buf, varName("taylor", "coef"), taylor)
	writeFloatSlice(&buf, varName("rational", "upper"), uppers(p.Rational))
	writeFloatRows(&buf, varName("rational", "num"), num)
	writeFloatRows(&buf, varName("rational", "den"), den)
	return imports.Process("z_e1_tables.go", buf.Bytes(), nil)
}

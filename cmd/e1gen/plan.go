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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Interval is one piece of an approximation plan: the input range ending
// at Upper, approximated at the given polynomial or fraction order.
type Interval struct {
	Upper float64 `toml:"upper"`
	Order int     `toml:"order"`
}

// Plan lists the Taylor intervals covering small arguments and the
// rational intervals covering the rest, in ascending Upper. The last
// rational Upper doubles as the cutoff beyond which E1 underflows.
type Plan struct {
	Taylor   []Interval `toml:"taylor"`
	Rational []Interval `toml:"rational"`
}

// DefaultPlan returns the production plan the shipped tables are built
// from. Interval bounds and orders were tuned offline for sub-ulp mean
// error per region at the lowest order that achieves it.
func DefaultPlan() Plan {
	return Plan{
		Taylor: []Interval{
			{Upper: 0.0053, Order: 4},
			{Upper: 0.053, Order: 8},
			{Upper: 0.6, Order: 15},
			{Upper: 2.15, Order: 37},
		},
		Rational: []Interval{
			{Upper: 4, Order: 46},
			{Upper: 6.1, Order: 24},
			{Upper: 8.15, Order: 20},
			{Upper: 25, Order: 16},
			{Upper: 200, Order: 8},
			{Upper: 740, Order: 5},
		},
	}
}

// LoadPlan reads an approximation plan from a TOML file.
func LoadPlan(path string) (Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Plan{}, err
	}
	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return Plan{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return p, nil
}

// Validate checks that interval uppers increase across the whole plan and
// that orders stay in a range the exact-arithmetic builder handles.
func (p Plan) Validate() error {
	if len(p.Taylor) == 0 || len(p.Rational) == 0 {
		return fmt.Errorf("plan needs at least one taylor and one rational interval")
	}
	last := 0.0
	for _, iv := range append(append([]Interval{}, p.Taylor...), p.Rational...) {
		if iv.Upper <= last {
			return fmt.Errorf("interval uppers must increase: %g follows %g", iv.Upper, last)
		}
		if iv.Order < 1 || iv.Order > 200 {
			return fmt.Errorf("order %d out of range [1, 200]", iv.Order)
		}
		last = iv.Upper
	}
	return nil
}

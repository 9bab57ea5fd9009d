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

// Command e1gen rebuilds the coefficient tables behind the piecewise E1
// fast path and writes them as a generated Go source file.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	planFile string
	output   string
	pkgName  string
)

var rootCmd = &cobra.Command{
	Use:   "e1gen",
	Short: "regenerate the E1 approximation tables",
	Long: `e1gen derives the Taylor and rational coefficient tables used by the
piecewise E1 approximation. Coefficients come from exact rational
arithmetic driven by an approximation plan (interval uppers and orders)
and are rounded to float64 once, so regeneration is deterministic.

Without --plan the built-in production plan is used; the output then
matches the checked-in tables byte for byte.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		plan := DefaultPlan()
		if planFile != "" {
			p, err := LoadPlan(planFile)
			if err != nil {
				return err
			}
			plan = p
		}
		if err := plan.Validate(); err != nil {
			return err
		}
		src, err := Render(plan, pkgName)
		if err != nil {
			return err
		}
		return os.WriteFile(output, src, 0o644)
	},
}

func init() {
	rootCmd.Flags().StringVar(&planFile, "plan", "", "TOML approximation plan (default: built-in production plan)")
	rootCmd.Flags().StringVar(&output, "output", "z_e1_tables.go", "output file")
	rootCmd.Flags().StringVar(&pkgName, "pkg", "expint", "package name for the generated file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

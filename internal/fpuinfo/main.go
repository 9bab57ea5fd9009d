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

// Package main provides a diagnostic tool to print the floating-point
// environment the evaluation paths assume: fused-multiply-add availability
// (which lets the compiler contract polynomial steps), subnormal support in
// the deep E1 tail, and the complex special-value conventions.
package main

import (
	"fmt"
	"math"
	"math/cmplx"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/go-expint/go-expint/expint"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	}
	fmt.Println()

	// Deep tail: E1 passes through the subnormal range before rounding to
	// zero near the 740 cutoff; flush-to-zero arithmetic would truncate it.
	tail := expint.E1(730)
	fmt.Printf("E1(730) = %g (subnormal: %v)\n", tail, tail > 0 && tail < 0x1p-1022)
	fmt.Printf("E1(740) = %g\n", expint.E1(740))

	// Complex conventions the dispatcher relies on.
	czero := complex(0, 0)
	fmt.Printf("1/(0+0i) = %v\n", 1/czero)
	fmt.Printf("En(1, 0) = %v\n", expint.En(1, 0))
	fmt.Printf("Exp(-800+0i) = %v\n", cmplx.Exp(complex(-800, 0)))
	fmt.Printf("math.Exp(710) = %v\n", math.Exp(710))
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasASIMD:    %v (NEON, fused multiply-add)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
}

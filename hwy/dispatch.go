// Copyright 2025 go-highway Authors
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

package hwy

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD, with
	// 64-bit D registers usable on their own).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// Width returns the widest register of the level in bytes.
// Scalar mode reports 16 bytes so lane counts stay meaningful.
func (d DispatchLevel) Width() int {
	switch d {
	case DispatchAVX2:
		return 32
	case DispatchAVX512:
		return 64
	default:
		return 16
	}
}

// target is the dispatch decision shared by every operation.
type target struct {
	level DispatchLevel
	width int
}

// current holds the active target. Set by init() in dispatch_*.go files
// and swapped by SetDispatch.
var current atomic.Pointer[target]

// detected is the level found at init, before any override.
var detected DispatchLevel

func setTarget(level DispatchLevel) {
	width := level.Width()
	if limit := widthLimitEnv(); limit > 0 && level != DispatchScalar {
		width = min(width, limit)
	}
	current.Store(&target{level: level, width: width})
}

func load() *target {
	if t := current.Load(); t != nil {
		return t
	}
	return &target{level: DispatchScalar, width: 16}
}

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return load().level
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return load().width
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return load().level.String()
}

// DetectedLevel returns the level found by CPU detection, ignoring
// SetDispatch and VECN_NO_SIMD.
func DetectedLevel() DispatchLevel {
	return detected
}

// SetDispatch forces the dispatch level and returns a function restoring
// the previous one. It exists for tests and tools comparing the register
// path with the scalar path; it must not race with a level change made
// elsewhere.
func SetDispatch(level DispatchLevel) (restore func()) {
	prev := load()
	setTarget(level)
	return func() { current.Store(prev) }
}

// NoSimdEnv checks if the VECN_NO_SIMD environment variable is set.
// When set, the scalar fallback is used regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("VECN_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// widthLimitEnv returns the register width cap from VECN_SIMD_WIDTH, or 0.
func widthLimitEnv() int {
	val := os.Getenv("VECN_SIMD_WIDTH")
	if val == "" {
		return 0
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	switch n {
	case 8, 16, 32, 64:
		return n
	default:
		return 0
	}
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
func MaxLanes[T Lanes]() int {
	size := SizeOf[T]()
	if size == 0 {
		return 0
	}
	return CurrentWidth() / size
}

// LogDispatch reports the active dispatch decision on logger at debug level.
func LogDispatch(logger *slog.Logger) {
	if logger == nil {
		return
	}
	t := load()
	logger.Debug("hwy dispatch",
		"target", t.level.String(),
		"detected", detected.String(),
		"width", t.width,
		"float_kernels_accelerated", KernelsAccelerated(),
		"no_simd_env", NoSimdEnv(),
	)
}

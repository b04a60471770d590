// SPDX-License-Identifier: MIT

package pairwise

import "github.com/viterin/vek"

// SIMDAvailable reports whether vek runs its accelerated (AVX2+FMA) kernels
// in this process. It is informational: Dists produces the same results
// either way (up to rounding).
func SIMDAvailable() bool {
	return vek.Info().Acceleration
}

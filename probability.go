/* Copyright (C) 2016 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */


package gomotif

/* -------------------------------------------------------------------------- */

import "math"

/* -------------------------------------------------------------------------- */

// Approximation of the probability that a given k-mer occurs at least n
// times in a random sequence of length s. The approximation may exceed one
// if s is large compared to 4^k.
func ProbabilityKmer(s, n, k int) float64 {
  r := 0.0
  for j := n; j <= s/k; j++ {
    p := 1.0
    for i := 1; i <= j; i++ {
      p *= float64(s - i*k + 1)
    }
    r += p*math.Pow(4, float64(k - k*j))
  }
  return r
}

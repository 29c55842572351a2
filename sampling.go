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

import "fmt"
import "math/rand"

/* -------------------------------------------------------------------------- */

// Draw an index with probability proportional to its weight. The weights are
// normalized and accumulated, and the first index whose cumulative sum is at
// least as large as a uniform draw is returned. Indices with zero weight are
// never selected, unless all weights are zero in which case every index is
// equally likely.
func BiasedRandomIndex(rng *rand.Rand, weights []float64) (int, error) {
  if len(weights) == 0 {
    return -1, fmt.Errorf("BiasedRandomIndex(): no weights given: %w", ErrEmptyInput)
  }
  sum := 0.0
  for i, w := range weights {
    if w < 0 {
      return -1, fmt.Errorf("BiasedRandomIndex(): weight `%d' is negative: %w", i, ErrOutOfRange)
    }
    sum += w
  }
  if sum == 0 {
    return rng.Intn(len(weights)), nil
  }
  // compute cumulative probabilities
  cumulative := make([]float64, len(weights))
  t := 0.0
  for i, w := range weights {
    t += w/sum
    cumulative[i] = t
  }
  p    := rng.Float64()*t
  last := -1
  for i := 0; i < len(weights); i++ {
    if weights[i] == 0 {
      continue
    }
    if cumulative[i] >= p {
      return i, nil
    }
    last = i
  }
  // rounding errors
  return last, nil
}

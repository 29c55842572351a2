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
import "strings"

/* -------------------------------------------------------------------------- */

// Number of positions at which two strings of equal length differ. Letters
// are compared case-insensitively.
func HammingDistance(s1, s2 string) (int, error) {
  if len(s1) != len(s2) {
    return 0, fmt.Errorf("HammingDistance(): strings have different lengths `%d' and `%d': %w", len(s1), len(s2), ErrLengthMismatch)
  }
  return hammingDistance(strings.ToUpper(s1), strings.ToUpper(s2)), nil
}

func hammingDistance(s1, s2 string) int {
  d := 0
  for i := 0; i < len(s1); i++ {
    if s1[i] != s2[i] {
      d++
    }
  }
  return d
}

/* -------------------------------------------------------------------------- */

// Minimum Hamming distance between a pattern and all substrings of the
// haystack with the same length as the pattern.
func HammingMin(pattern, haystack string) (int, error) {
  k := len(pattern)
  if len(haystack) < k {
    return 0, fmt.Errorf("HammingMin(): haystack of length `%d' is shorter than pattern of length `%d': %w", len(haystack), k, ErrHaystackTooShort)
  }
  pattern  = strings.ToUpper(pattern)
  haystack = strings.ToUpper(haystack)
  m := k
  for i := 0; i+k <= len(haystack); i++ {
    if d := hammingDistance(pattern, haystack[i:i+k]); d < m {
      m = d
      if m == 0 {
        break
      }
    }
  }
  return m, nil
}

// Sum of HammingMin over a collection of haystacks.
func HammingMinSum(pattern string, haystacks []string) (int, error) {
  s := 0
  for _, haystack := range haystacks {
    if d, err := HammingMin(pattern, haystack); err != nil {
      return 0, err
    } else {
      s += d
    }
  }
  return s, nil
}

/* -------------------------------------------------------------------------- */

// Number of windows in the genome that are within Hamming distance d of the
// pattern.
func CountApproxOccurrences(genome, pattern string, d int) int {
  k := len(pattern)
  if k > len(genome) {
    return 0
  }
  genome  = strings.ToUpper(genome)
  pattern = strings.ToUpper(pattern)
  n := 0
  for i := 0; i+k <= len(genome); i++ {
    if hammingDistance(pattern, genome[i:i+k]) <= d {
      n++
    }
  }
  return n
}

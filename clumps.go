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

func checkClumpArguments(L, t, k int) error {
  if k < 1 {
    return fmt.Errorf("invalid k-mer length `%d': %w", k, ErrOutOfRange)
  }
  if L < 1 {
    return fmt.Errorf("invalid window length `%d': %w", L, ErrOutOfRange)
  }
  if t < 1 {
    return fmt.Errorf("invalid number of repeats `%d': %w", t, ErrOutOfRange)
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// All k-mers that occur at least t times within some window of length L.
// The window slides over the sequence while k-mer counts are updated
// incrementally.
func FindClumps(sequence string, L, t, k int) (KmerSet, error) {
  if err := checkClumpArguments(L, t, k); err != nil {
    return nil, fmt.Errorf("FindClumps(): %w", err)
  }
  r := make(KmerSet)
  if len(sequence) < L || L < k {
    return r, nil
  }
  sequence = strings.ToUpper(sequence)
  // number of k-mers in a window
  m := L-k+1
  counts := make(map[string]int)
  for i := 0; i < m; i++ {
    kmer := sequence[i:i+k]
    if counts[kmer]++; counts[kmer] >= t {
      r.Add(kmer)
    }
  }
  for i := 1; i+L <= len(sequence); i++ {
    counts[sequence[i-1:i-1+k]]--
    kmer := sequence[i+m-1:i+m-1+k]
    if counts[kmer]++; counts[kmer] >= t {
      r.Add(kmer)
    }
  }
  return r, nil
}

// Same as FindClumps but computed from the list of positions of each k-mer:
// a k-mer forms a clump if t consecutive occurrences span at most L letters.
func FindClumpsByPosition(sequence string, L, t, k int) (KmerSet, error) {
  if err := checkClumpArguments(L, t, k); err != nil {
    return nil, fmt.Errorf("FindClumpsByPosition(): %w", err)
  }
  r := make(KmerSet)
  if len(sequence) < L {
    return r, nil
  }
  sequence = strings.ToUpper(sequence)
  positions := make(map[string][]int)
  for i := 0; i+k <= len(sequence); i++ {
    kmer := sequence[i:i+k]
    positions[kmer] = append(positions[kmer], i)
  }
  for kmer, p := range positions {
    for i := 0; i+t-1 < len(p); i++ {
      if p[i+t-1]-p[i]+k <= L {
        r.Add(kmer); break
      }
    }
  }
  return r, nil
}

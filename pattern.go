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

// Number of (possibly overlapping) occurrences of a pattern in a text.
func PatternCount(text, pattern string) (int, error) {
  if len(pattern) == 0 {
    return 0, fmt.Errorf("PatternCount(): pattern cannot be empty: %w", ErrEmptyPattern)
  }
  text    = strings.ToUpper(text)
  pattern = strings.ToUpper(pattern)
  n := 0
  for i := 0; i+len(pattern) <= len(text); i++ {
    if text[i:i+len(pattern)] == pattern {
      n++
    }
  }
  return n, nil
}

/* -------------------------------------------------------------------------- */

// Number of occurrences of every k-mer in the sequence. K-mers are reported
// in upper case.
func FrequencyTable(sequence string, k int) (map[string]int, error) {
  if k < 1 {
    return nil, fmt.Errorf("FrequencyTable(): invalid k-mer length `%d': %w", k, ErrOutOfRange)
  }
  sequence = strings.ToUpper(sequence)
  r := make(map[string]int)
  for i := 0; i+k <= len(sequence); i++ {
    r[sequence[i:i+k]]++
  }
  return r, nil
}

// The most frequent k-mers of a text along with their number of
// occurrences.
func FrequentWords(text string, k int) (KmerSet, int, error) {
  table, err := FrequencyTable(text, k)
  if err != nil {
    return nil, 0, err
  }
  return maxKmers(table)
}

// The k-mers with most approximate occurrences (at most d mismatches) in the
// genome. Candidates are all neighbors of the k-mers of the genome. If revcomp
// is true, approximate occurrences of the reverse complement are added.
func FrequentWordsMismatch(genome string, k, d int, revcomp bool) (KmerSet, int, error) {
  if k < 1 {
    return nil, 0, fmt.Errorf("FrequentWordsMismatch(): invalid k-mer length `%d': %w", k, ErrOutOfRange)
  }
  genome, err := NormalizeSequence(genome)
  if err != nil {
    return nil, 0, err
  }
  candidates := make(KmerSet)
  for i := 0; i+k <= len(genome); i++ {
    if s, err := Neighbors(genome[i:i+k], d); err != nil {
      return nil, 0, err
    } else {
      for kmer, _ := range s {
        candidates.Add(kmer)
      }
    }
  }
  table := make(map[string]int, len(candidates))
  for kmer, _ := range candidates {
    table[kmer] = CountApproxOccurrences(genome, kmer, d)
    if revcomp {
      rc, _ := ReverseComplement(kmer)
      table[kmer] += CountApproxOccurrences(genome, rc, d)
    }
  }
  return maxKmers(table)
}

func maxKmers(table map[string]int) (KmerSet, int, error) {
  m := 0
  for _, c := range table {
    if c > m {
      m = c
    }
  }
  r := make(KmerSet)
  if m == 0 {
    return r, 0, nil
  }
  for kmer, c := range table {
    if c == m {
      r.Add(kmer)
    }
  }
  return r, m, nil
}

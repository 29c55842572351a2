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

/* -------------------------------------------------------------------------- */

func medianDistances(k int, dna []string, f func(kmer string, d int)) error {
  if k < 1 || k > MaxEncodedKmerLength {
    return fmt.Errorf("invalid k-mer length `%d': %w", k, ErrOutOfRange)
  }
  if len(dna) == 0 {
    return fmt.Errorf("no sequences given: %w", ErrEmptyInput)
  }
  dna, err := NormalizeSequences(dna)
  if err != nil {
    return err
  }
  for it := NewKmersIterator(k); it.Ok(); it.Next() {
    kmer := it.Get()
    if d, err := HammingMinSum(kmer, dna); err != nil {
      return err
    } else {
      f(kmer, d)
    }
  }
  return nil
}

// A k-mer that minimizes the sum of minimum Hamming distances to all
// sequences. Among several optimal k-mers the lexicographically smallest one
// is returned.
func MedianString(k int, dna []string) (string, int, error) {
  r := ""
  m := -1
  if err := medianDistances(k, dna, func(kmer string, d int) {
    if m == -1 || d < m {
      r, m = kmer, d
    }
  }); err != nil {
    return "", 0, fmt.Errorf("MedianString(): %w", err)
  }
  return r, m, nil
}

// All k-mers that minimize the sum of minimum Hamming distances.
func MedianStrings(k int, dna []string) (KmerSet, int, error) {
  r := make(KmerSet)
  m := -1
  if err := medianDistances(k, dna, func(kmer string, d int) {
    if m == -1 || d < m {
      r, m = NewKmerSet(kmer), d
    } else
    if d == m {
      r.Add(kmer)
    }
  }); err != nil {
    return nil, 0, fmt.Errorf("MedianStrings(): %w", err)
  }
  return r, m, nil
}

/* -------------------------------------------------------------------------- */

// All (k,d)-motifs, i.e. k-mers that appear with at most d mismatches in
// every sequence.
func MotifEnumeration(dna []string, k, d int) (KmerSet, error) {
  if k < 1 {
    return nil, fmt.Errorf("MotifEnumeration(): invalid k-mer length `%d': %w", k, ErrOutOfRange)
  }
  dna, err := NormalizeSequences(dna)
  if err != nil {
    return nil, err
  }
  r       := make(KmerSet)
  checked := make(KmerSet)
  for _, sequence := range dna {
    for i := 0; i+k <= len(sequence); i++ {
      neighbors, err := Neighbors(sequence[i:i+k], d)
      if err != nil {
        return nil, err
      }
      for kmer, _ := range neighbors {
        if checked.Contains(kmer) {
          continue
        }
        checked.Add(kmer)
        if isMotif(kmer, dna, d) {
          r.Add(kmer)
        }
      }
    }
  }
  return r, nil
}

func isMotif(kmer string, dna []string, d int) bool {
  for _, sequence := range dna {
    if m, err := HammingMin(kmer, sequence); err != nil || m > d {
      return false
    }
  }
  return true
}

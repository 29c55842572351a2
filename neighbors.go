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

// All k-mers within Hamming distance d of the given k-mer. The set is built
// from the last letter towards the first one: a neighbor of the current
// suffix that already uses the full distance budget may only be extended by
// the letter of the k-mer, all others are extended by every letter.
func Neighbors(kmer string, d int) (KmerSet, error) {
  if len(kmer) == 0 {
    return nil, fmt.Errorf("Neighbors(): k-mer cannot be empty: %w", ErrEmptyInput)
  }
  if d < 0 {
    return nil, fmt.Errorf("Neighbors(): invalid distance `%d': %w", d, ErrOutOfRange)
  }
  kmer, err := NormalizeSequence(kmer)
  if err != nil {
    return nil, err
  }
  if d == 0 {
    return NewKmerSet(kmer), nil
  }
  al := NucleotideAlphabet{}
  k  := len(kmer)
  // neighbors of the current suffix along with their distance to it
  suffixNeighbors := make(map[string]int)
  for i := 0; i < al.Length(); i++ {
    c, _ := al.Decode(byte(i))
    if c == kmer[k-1] {
      suffixNeighbors[string(c)] = 0
    } else {
      suffixNeighbors[string(c)] = 1
    }
  }
  for j := k-2; j >= 0; j-- {
    result := make(map[string]int, al.Length()*len(suffixNeighbors))
    for sn, dist := range suffixNeighbors {
      if dist == d {
        result[kmer[j:j+1]+sn] = dist
        continue
      }
      for i := 0; i < al.Length(); i++ {
        c, _ := al.Decode(byte(i))
        if c == kmer[j] {
          result[string(c)+sn] = dist
        } else {
          result[string(c)+sn] = dist+1
        }
      }
    }
    suffixNeighbors = result
  }
  s := make(KmerSet, len(suffixNeighbors))
  for sn, _ := range suffixNeighbors {
    s.Add(sn)
  }
  return s, nil
}

// All k-mers at Hamming distance exactly one.
func ImmediateNeighbors(kmer string) (KmerSet, error) {
  if len(kmer) == 0 {
    return nil, fmt.Errorf("ImmediateNeighbors(): k-mer cannot be empty: %w", ErrEmptyInput)
  }
  kmer, err := NormalizeSequence(kmer)
  if err != nil {
    return nil, err
  }
  al := NucleotideAlphabet{}
  s  := make(KmerSet)
  c  := []byte(kmer)
  for j := 0; j < len(c); j++ {
    for i := 0; i < al.Length(); i++ {
      if x, _ := al.Decode(byte(i)); x != kmer[j] {
        c[j] = x
        s.Add(string(c))
      }
    }
    c[j] = kmer[j]
  }
  return s, nil
}

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

// Largest k such that 4^k fits into a signed 64 bit integer.
const MaxEncodedKmerLength = 31

/* -------------------------------------------------------------------------- */

// Encode a k-mer as a base-4 integer. The length of the k-mer is lost,
// i.e. leading A's can only be recovered if k is known.
func EncodeKmer(kmer string) (int, error) {
  if len(kmer) == 0 {
    return 0, fmt.Errorf("EncodeKmer(): k-mer cannot be empty: %w", ErrEmptyInput)
  }
  if len(kmer) > MaxEncodedKmerLength {
    return 0, fmt.Errorf("EncodeKmer(): k-mer of length `%d' does not fit into an integer: %w", len(kmer), ErrOutOfRange)
  }
  s := 0
  for i := 0; i < len(kmer); i++ {
    r, err := Rank(kmer[i])
    if err != nil {
      return 0, err
    }
    s = 4*s + r
  }
  return s, nil
}

// Decode a base-4 integer into a k-mer of the given length, padding with A's.
func DecodeKmer(value, length int) (string, error) {
  if value < 0 || length < 0 {
    return "", fmt.Errorf("DecodeKmer(): invalid arguments (%d, %d): %w", value, length, ErrOutOfRange)
  }
  c := make([]byte, length)
  for j := length-1; j >= 0; j-- {
    c[j], _ = Symbol(value % 4)
    value   = value / 4
  }
  if value != 0 {
    return "", fmt.Errorf("DecodeKmer(): value does not fit into `%d' letters: %w", length, ErrOutOfRange)
  }
  return string(c), nil
}

/* -------------------------------------------------------------------------- */

// Convert a sequence to upper case and check that it contains only A, C, G,
// and T.
func NormalizeSequence(sequence string) (string, error) {
  al := NucleotideAlphabet{}
  c  := make([]byte, len(sequence))
  for i := 0; i < len(sequence); i++ {
    x, err := al.Code(sequence[i])
    if err != nil {
      return "", fmt.Errorf("NormalizeSequence(): invalid letter at position `%d': %w", i, err)
    }
    c[i], _ = al.Decode(x)
  }
  return string(c), nil
}

func NormalizeSequences(sequences []string) ([]string, error) {
  r := make([]string, len(sequences))
  for i, s := range sequences {
    if t, err := NormalizeSequence(s); err != nil {
      return nil, fmt.Errorf("sequence %d: %w", i, err)
    } else {
      r[i] = t
    }
  }
  return r, nil
}

func ReverseComplement(sequence string) (string, error) {
  al := NucleotideAlphabet{}
  n  := len(sequence)
  c  := make([]byte, n)
  for i := 0; i < n; i++ {
    x, err := al.Complement(sequence[i])
    if err != nil {
      return "", err
    }
    c[n-i-1] = x
  }
  return string(c), nil
}

/* -------------------------------------------------------------------------- */

// Returns the k-mer at the given position of a text.
func KmerAt(text string, position, k int) (string, error) {
  if position < 0 || k < 0 || position+k > len(text) {
    return "", fmt.Errorf("KmerAt(): no %d-mer at position `%d' in a text of length `%d': %w", k, position, len(text), ErrOutOfRange)
  }
  return text[position:position+k], nil
}

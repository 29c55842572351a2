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

type Alphabet interface {
  Code             (i byte) (byte, error)
  Decode           (i byte) (byte, error)
  Complement       (i byte) (byte, error)
  ComplementCoded  (i byte) (byte, error)
  Length           ()       int
  String           ()       string
}

/* -------------------------------------------------------------------------- */

// The four letter DNA alphabet. Codes follow the order A, C, G, T, which is
// also the column order of profile matrices. Input letters are accepted in
// both cases, decoded letters are upper case.
type NucleotideAlphabet struct {
}

func (NucleotideAlphabet) Code(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 0, nil
  case 'C': fallthrough
  case 'c': return 1, nil
  case 'G': fallthrough
  case 'g': return 2, nil
  case 'T': fallthrough
  case 't': return 3, nil
  default:  return 0xFF, fmt.Errorf("Code(): `%c' is not part of the alphabet: %w", i, ErrInvalidSymbol)
  }
}

func (NucleotideAlphabet) Decode(i byte) (byte, error) {
  switch i {
  case 0:  return 'A', nil
  case 1:  return 'C', nil
  case 2:  return 'G', nil
  case 3:  return 'T', nil
  default: return 0xFF, fmt.Errorf("Decode(): `%d' is not a code of the alphabet: %w", int(i), ErrOutOfRange)
  }
}

func (NucleotideAlphabet) ComplementCoded(i byte) (byte, error) {
  switch i {
  case 0:  return 3, nil
  case 1:  return 2, nil
  case 2:  return 1, nil
  case 3:  return 0, nil
  default: return 0xFF, fmt.Errorf("ComplementCoded(): `%d' is not a code of the alphabet: %w", int(i), ErrOutOfRange)
  }
}

func (NucleotideAlphabet) Complement(i byte) (byte, error) {
  switch i {
  case 'A': fallthrough
  case 'a': return 'T', nil
  case 'C': fallthrough
  case 'c': return 'G', nil
  case 'G': fallthrough
  case 'g': return 'C', nil
  case 'T': fallthrough
  case 't': return 'A', nil
  default:  return 0xFF, fmt.Errorf("Complement(): `%c' is not part of the alphabet: %w", i, ErrInvalidSymbol)
  }
}

func (NucleotideAlphabet) Length() int {
  return 4
}

func (NucleotideAlphabet) String() string {
  return "nucleotide alphabet"
}

/* -------------------------------------------------------------------------- */

// Rank of a nucleotide, i.e. A=0, C=1, G=2, T=3.
func Rank(c byte) (int, error) {
  if r, err := (NucleotideAlphabet{}).Code(c); err != nil {
    return -1, err
  } else {
    return int(r), nil
  }
}

// Inverse of Rank.
func Symbol(r int) (byte, error) {
  if r < 0 || r > 3 {
    return 0xFF, fmt.Errorf("Symbol(): rank `%d' is out of range: %w", r, ErrOutOfRange)
  }
  return NucleotideAlphabet{}.Decode(byte(r))
}

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

import "errors"
import "testing"

/* -------------------------------------------------------------------------- */

func TestAlphabet1(test *testing.T) {
  al := NucleotideAlphabet{}
  for i, c := range []byte("ACGTacgt") {
    if x, err := al.Code(c); err != nil || int(x) != i % 4 {
      test.Error("test failed")
    }
  }
  for i, c := range []byte("ACGT") {
    if x, err := al.Decode(byte(i)); err != nil || x != c {
      test.Error("test failed")
    }
  }
  if _, err := al.Code('N'); !errors.Is(err, ErrInvalidSymbol) {
    test.Error("test failed")
  }
  if _, err := al.Decode(4); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
}

func TestAlphabet2(test *testing.T) {
  al := NucleotideAlphabet{}
  for i := 0; i < al.Length(); i++ {
    c1, _ := al.Decode(byte(i))
    c2, _ := al.Complement(c1)
    x,  _ := al.ComplementCoded(byte(i))
    if c3, _ := al.Decode(x); c2 != c3 {
      test.Error("test failed")
    }
    if c4, _ := al.Complement(c2); c4 != c1 {
      test.Error("test failed")
    }
  }
}

func TestRank1(test *testing.T) {
  for r := 0; r < 4; r++ {
    c, err := Symbol(r)
    if err != nil {
      test.Error("test failed")
    }
    if s, err := Rank(c); err != nil || s != r {
      test.Error("test failed")
    }
  }
  if _, err := Rank('x'); !errors.Is(err, ErrInvalidSymbol) {
    test.Error("test failed")
  }
  if _, err := Symbol(4); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
}

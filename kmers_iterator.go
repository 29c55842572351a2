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

//import "fmt"

/* -------------------------------------------------------------------------- */

// Iterates over all 4^k k-mers in lexicographic order (A < C < G < T).
type KmersIterator struct {
  c  []byte
  al   NucleotideAlphabet
  ok   bool
}

func NewKmersIterator(k int) KmersIterator {
  c := make([]byte, k)
  r := KmersIterator{c: c, ok: k > 0}
  for i := 0; i < k; i++ {
    c[i], _ = r.al.Decode(0)
  }
  return r
}

func (obj KmersIterator) Get() string {
  return string(obj.c)
}

func (obj KmersIterator) Ok() bool {
  return obj.ok
}

func (obj *KmersIterator) Next() {
  k := len(obj.c)
  for i := k-1; i >= 0; i-- {
    if obj.incrementPosition(i) {
      return
    }
  }
  obj.ok = false
}

func (obj KmersIterator) incrementPosition(i int) bool {
  if c, _ := obj.al.Code(obj.c[i]); int(c+1) < obj.al.Length() {
    obj.c[i], _ = obj.al.Decode(c+1)
    return true
  } else {
    obj.c[i], _ = obj.al.Decode(0)
    return false
  }
}

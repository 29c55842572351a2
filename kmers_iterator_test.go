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

import "testing"

/* -------------------------------------------------------------------------- */

func TestKmersIterator1(test *testing.T) {
  r := []string{}
  for it := NewKmersIterator(2); it.Ok(); it.Next() {
    r = append(r, it.Get())
  }
  s := []string{
    "AA", "AC", "AG", "AT", "CA", "CC", "CG", "CT",
    "GA", "GC", "GG", "GT", "TA", "TC", "TG", "TT" }
  if len(r) != len(s) {
    test.Fatal("test failed")
  }
  for i := 0; i < len(r); i++ {
    if r[i] != s[i] {
      test.Error("test failed")
    }
  }
}

func TestKmersIterator2(test *testing.T) {
  n := 0
  for it := NewKmersIterator(6); it.Ok(); it.Next() {
    if v, err := EncodeKmer(it.Get()); err != nil || v != n {
      test.Error("test failed")
    }
    n++
  }
  if n != 4096 {
    test.Error("test failed")
  }
  if it := NewKmersIterator(0); it.Ok() {
    test.Error("test failed")
  }
}

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

func TestKmerSet1(test *testing.T) {
  s1 := NewKmerSet("TTA", "ACG", "ACG")
  s2 := NewKmerSet("CCC", "TTA")

  if s1.Len() != 2 || !s1.Contains("ACG") || s1.Contains("CCC") {
    test.Error("test failed")
  }
  r := s1.Union(s2).AsList()
  s := []string{"ACG", "CCC", "TTA"}
  if len(r) != len(s) {
    test.Fatal("test failed")
  }
  for i := 0; i < len(r); i++ {
    if r[i] != s[i] {
      test.Error("test failed")
    }
  }
  // union does not modify its arguments
  if s1.Len() != 2 || s2.Len() != 2 {
    test.Error("test failed")
  }
}

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

import   "errors"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestStringSet1(t *testing.T) {
  ss := EmptyStringSet()
  ss["seq1"] = []byte("ACGTTGCA")

  if r, err := ss.GetSlice("seq1", 2, 6); err != nil || string(r) != "GTTG" {
    t.Error("TestStringSet1 failed")
  }
  if _, err := ss.GetSlice("seq2", 2, 6); err == nil {
    t.Error("TestStringSet1 failed")
  }
  if _, err := ss.GetSlice("seq1", 6, 9); !errors.Is(err, ErrOutOfRange) {
    t.Error("TestStringSet1 failed")
  }
}

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

// Structure containing named sequences.
type StringSet map[string][]byte

/* -------------------------------------------------------------------------- */

func EmptyStringSet() StringSet {
  return make(StringSet)
}

/* -------------------------------------------------------------------------- */

// Sub-sequence [from, to) of the named sequence.
func (s StringSet) GetSlice(name string, from, to int) ([]byte, error) {
  result, ok := s[name]
  if !ok {
    return nil, fmt.Errorf("GetSlice(): invalid sequence name `%s'", name)
  }
  if from < 0 || to > len(result) || from > to {
    return nil, fmt.Errorf("GetSlice(): invalid range [%d, %d): %w", from, to, ErrOutOfRange)
  }
  return result[from:to], nil
}

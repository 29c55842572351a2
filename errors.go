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

/* -------------------------------------------------------------------------- */

var (
  ErrInvalidSymbol    = errors.New("invalid symbol")
  ErrLengthMismatch   = errors.New("length mismatch")
  ErrHaystackTooShort = errors.New("haystack too short")
  ErrEmptyInput       = errors.New("empty input")
  ErrOutOfRange       = errors.New("out of range")
)

// Counting occurrences of an empty pattern is the empty input case.
var ErrEmptyPattern = ErrEmptyInput

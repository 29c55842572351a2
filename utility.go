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

import "compress/gzip"
import "io"
import "os"

/* -------------------------------------------------------------------------- */

// Copy r into a new file, optionally gzip compressed.
func writeFile(filename string, r io.Reader, compress bool) error {
  f, err := os.Create(filename)
  if err != nil {
    return err
  }
  if compress {
    g := gzip.NewWriter(f)
    if _, err := io.Copy(g, r); err != nil {
      f.Close()
      return err
    }
    if err := g.Close(); err != nil {
      f.Close()
      return err
    }
  } else {
    if _, err := io.Copy(f, r); err != nil {
      f.Close()
      return err
    }
  }
  return f.Close()
}

// Check the gzip magic number.
func isGzip(filename string) bool {
  f, err := os.Open(filename)
  if err != nil {
    return false
  }
  defer f.Close()

  b := make([]byte, 2)
  if _, err := io.ReadFull(f, b); err != nil {
    return false
  }
  return b[0] == 0x1f && b[1] == 0x8b
}

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


package progress

/* -------------------------------------------------------------------------- */

import "fmt"
import "io"
import "os"
import "strings"

/* -------------------------------------------------------------------------- */

// Text progress bar for n steps, redrawn every k steps.
type Progress struct {
  N, K, LineWidth int
  Writer          io.Writer
}

/* -------------------------------------------------------------------------- */

func New(n, k int) Progress {
  progress := Progress{N: n, K: 1, LineWidth: 40, Writer: os.Stderr}
  if k > 0 && k <= n {
    progress.K = n/k
  }
  return progress
}

/* -------------------------------------------------------------------------- */

const lineDel = "\033[2K\r"

func (progress Progress) Exec(i int) string {
  var b strings.Builder

  p := 1.0
  if progress.N > 0 {
    p = float64(i)/float64(progress.N)
  }
  b.WriteString(lineDel)
  b.WriteString("|")
  for j := 1; j < progress.LineWidth-1; j++ {
    if float64(j)/float64(progress.LineWidth) < p {
      b.WriteString(">")
    } else {
      b.WriteString(" ")
    }
  }
  fmt.Fprintf(&b, "| %6.2f%% (%d/%d)", p*100, i, progress.N)
  // add newline if finished
  if i >= progress.N {
    b.WriteString("\n")
  }
  return b.String()
}

// Print the bar for step i if i is a multiple of K, or the first or last
// step.
func (progress Progress) Print(i int) {
  if i == 0 || i >= progress.N || i % progress.K == 0 {
    fmt.Fprint(progress.Writer, progress.Exec(i))
  }
}

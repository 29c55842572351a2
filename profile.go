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
import "bufio"
import "bytes"
import "compress/gzip"
import "io"
import "math"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// A profile matrix holds one distribution over A, C, G, T per motif
// position, i.e. Values[j][i] is the probability of letter i at position j.
type ProfileMatrix struct {
  Values [][]float64
}

/* -------------------------------------------------------------------------- */

func EmptyProfileMatrix() ProfileMatrix {
  return ProfileMatrix{}
}

// Build a profile matrix from an aligned collection of motifs. With
// pseudocounts every count is incremented by one (Laplace's rule), so that
// no probability is zero.
func NewProfileMatrix(motifs []string, pseudocounts bool) (ProfileMatrix, error) {
  if len(motifs) == 0 {
    return ProfileMatrix{}, fmt.Errorf("NewProfileMatrix(): motif collection is empty: %w", ErrEmptyInput)
  }
  k := len(motifs[0])
  if k == 0 {
    return ProfileMatrix{}, fmt.Errorf("NewProfileMatrix(): motifs cannot be empty: %w", ErrEmptyInput)
  }
  al     := NucleotideAlphabet{}
  counts := make([][]int, k)
  for j := 0; j < k; j++ {
    counts[j] = make([]int, al.Length())
  }
  for _, motif := range motifs {
    if len(motif) != k {
      return ProfileMatrix{}, fmt.Errorf("NewProfileMatrix(): motifs have different lengths: %w", ErrLengthMismatch)
    }
    for j := 0; j < k; j++ {
      i, err := al.Code(motif[j])
      if err != nil {
        return ProfileMatrix{}, err
      }
      counts[j][i]++
    }
  }
  return newProfileMatrixFromCounts(counts, len(motifs), pseudocounts), nil
}

func newProfileMatrixFromCounts(counts [][]int, n int, pseudocounts bool) ProfileMatrix {
  values := make([][]float64, len(counts))
  for j := 0; j < len(counts); j++ {
    values[j] = make([]float64, len(counts[j]))
    for i, c := range counts[j] {
      if pseudocounts {
        values[j][i] = float64(c+1)/float64(n+len(counts[j]))
      } else {
        values[j][i] = float64(c)/float64(n)
      }
    }
  }
  return ProfileMatrix{values}
}

/* -------------------------------------------------------------------------- */

func (t ProfileMatrix) Length() int {
  return len(t.Values)
}

// Probability of letter c at position j.
func (t ProfileMatrix) Get(c byte, j int) (float64, error) {
  if j < 0 || j >= t.Length() {
    return 0, fmt.Errorf("Get(): position `%d' is out of range: %w", j, ErrOutOfRange)
  }
  i, err := NucleotideAlphabet{}.Code(c)
  if err != nil {
    return 0, err
  }
  return t.Values[j][i], nil
}

// Probability that the profile generates the given sequence.
func (t ProfileMatrix) Probability(sequence string) (float64, error) {
  if len(sequence) != t.Length() {
    return 0, fmt.Errorf("Probability(): sequence has length `%d' but profile has length `%d': %w", len(sequence), t.Length(), ErrLengthMismatch)
  }
  al := NucleotideAlphabet{}
  p  := 1.0
  for j := 0; j < len(sequence); j++ {
    i, err := al.Code(sequence[j])
    if err != nil {
      return 0, err
    }
    p *= t.Values[j][i]
  }
  return p, nil
}

// Probabilities of all windows of the sequence with the length of the
// profile.
func (t ProfileMatrix) Scan(sequence string) ([]float64, error) {
  k := t.Length()
  if k == 0 {
    return nil, fmt.Errorf("Scan(): profile is empty: %w", ErrEmptyInput)
  }
  if len(sequence) < k {
    return nil, fmt.Errorf("Scan(): sequence is shorter than the profile: %w", ErrHaystackTooShort)
  }
  r := make([]float64, len(sequence)-k+1)
  for i := 0; i < len(r); i++ {
    if p, err := t.Probability(sequence[i:i+k]); err != nil {
      return nil, err
    } else {
      r[i] = p
    }
  }
  return r, nil
}

// The window of the sequence with maximum probability in upper case. If
// several windows share the maximum, the left-most one is returned.
func (t ProfileMatrix) MostProbableKmer(sequence string) (string, error) {
  if i, _, err := t.MostProbablePosition(sequence); err != nil {
    return "", err
  } else {
    return strings.ToUpper(sequence[i:i+t.Length()]), nil
  }
}

func (t ProfileMatrix) MostProbablePosition(sequence string) (int, float64, error) {
  p, err := t.Scan(sequence)
  if err != nil {
    return -1, 0, err
  }
  // probabilities are non-negative, so the first window is always taken
  j := -1
  r := -1.0
  for i := 0; i < len(p); i++ {
    if p[i] > r {
      j, r = i, p[i]
    }
  }
  return j, r, nil
}

/* -------------------------------------------------------------------------- */

// Most probable letter at each position, ties are resolved in the order
// A, C, G, T.
func (t ProfileMatrix) Consensus() string {
  c := make([]byte, t.Length())
  for j, v := range t.Values {
    m := 0
    for i := 1; i < len(v); i++ {
      if v[i] > v[m] {
        m = i
      }
    }
    c[j], _ = NucleotideAlphabet{}.Decode(byte(m))
  }
  return string(c)
}

// Sum of the Shannon entropies (base 2) of all positions.
func (t ProfileMatrix) Entropy() float64 {
  r := 0.0
  for _, v := range t.Values {
    r += entropy(v)
  }
  return r
}

func entropy(v []float64) float64 {
  r := 0.0
  for _, x := range v {
    // 0 log 0 = 0
    if x > 0 {
      r -= x*math.Log2(x)
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// Read a profile from a table with one row per letter. Rows are either
// labeled with the letter in the first column, or unlabeled in which case
// they are taken in the order A, C, G, T.
func (t *ProfileMatrix) ReadMatrix(reader io.Reader) error {

  scanner := bufio.NewScanner(reader)
  al      := NucleotideAlphabet{}

  ncols := -1
  rows  := make([][]float64, al.Length())
  nrows := 0

  for scanner.Scan() {
    fields := strings.Fields(scanner.Text())
    // if empty line, continue scanning
    if len(fields) == 0 {
      continue
    }
    i := nrows
    // check if row is labeled
    if _, err := strconv.ParseFloat(fields[0], 64); err != nil {
      if len(fields[0]) != 1 {
        return fmt.Errorf("ReadMatrix(): invalid row label `%s'", fields[0])
      }
      if c, err := al.Code(fields[0][0]); err != nil {
        return fmt.Errorf("ReadMatrix(): %w", err)
      } else {
        i = int(c)
      }
      fields = fields[1:]
    }
    if i >= al.Length() {
      return fmt.Errorf("ReadMatrix(): too many rows")
    }
    // if first line, set number of columns
    if ncols == -1 {
      ncols = len(fields)
    }
    if len(fields) == 0 || len(fields) != ncols {
      return fmt.Errorf("ReadMatrix(): invalid profile matrix")
    }
    data := []float64{}
    // read one row of the matrix
    for _, field := range fields {
      v, err := strconv.ParseFloat(field, 64)
      if err != nil {
        return err
      }
      data = append(data, v)
    }
    rows[i] = data
    nrows++
  }
  if err := scanner.Err(); err != nil {
    return err
  }
  if nrows != al.Length() {
    return fmt.Errorf("ReadMatrix(): profile matrix must have `%d' rows", al.Length())
  }
  for i := 0; i < len(rows); i++ {
    if rows[i] == nil {
      return fmt.Errorf("ReadMatrix(): profile matrix has duplicate rows")
    }
  }
  // transpose
  t.Values = make([][]float64, ncols)
  for j := 0; j < ncols; j++ {
    t.Values[j] = make([]float64, al.Length())
    for i := 0; i < al.Length(); i++ {
      t.Values[j][i] = rows[i][j]
    }
  }
  return nil
}

func (t *ProfileMatrix) ImportMatrix(filename string) error {
  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return t.ReadMatrix(reader)
}

func (t ProfileMatrix) WriteMatrix(writer io.Writer) error {
  al := NucleotideAlphabet{}
  for i := 0; i < al.Length(); i++ {
    c, _ := al.Decode(byte(i))
    if _, err := fmt.Fprintf(writer, "%c", c); err != nil {
      return err
    }
    for j := 0; j < t.Length(); j++ {
      if _, err := fmt.Fprintf(writer, " %v", t.Values[j][i]); err != nil {
        return err
      }
    }
    if _, err := fmt.Fprintf(writer, "\n"); err != nil {
      return err
    }
  }
  return nil
}

func (t ProfileMatrix) ExportMatrix(filename string, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := t.WriteMatrix(writer); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}

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

import   "bytes"
import   "path/filepath"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

var testFasta = `>seq1 first sequence
ACGTTGCA
acgtac

>seq2|second
TTTT
>seq3
GATTACA
`

func TestOrderedStringSet1(t *testing.T) {
  ss := EmptyOrderedStringSet()
  if err := ss.ReadFasta(strings.NewReader(testFasta)); err != nil {
    t.Fatal(err)
  }
  if ss.Len() != 3 {
    t.Fatal("TestOrderedStringSet1 failed")
  }
  r := ss.Strings()
  if r[0] != "ACGTTGCAacgtac" || r[1] != "TTTT" || r[2] != "GATTACA" {
    t.Error("TestOrderedStringSet1 failed")
  }
  if ss.Seqnames[0] != "seq1" || ss.Seqnames[1] != "seq2" || ss.Seqnames[2] != "seq3" {
    t.Error("TestOrderedStringSet1 failed")
  }
}

func TestOrderedStringSet2(t *testing.T) {
  for _, s := range []string{
    "ACGT\n>seq1\nACGT\n",
    ">seq1\nACGT\n>seq1\nACGT\n",
    ">\nACGT\n" } {
    ss := EmptyOrderedStringSet()
    if err := ss.ReadFasta(strings.NewReader(s)); err == nil {
      t.Error("TestOrderedStringSet2 failed")
    }
  }
}

func TestOrderedStringSet3(t *testing.T) {
  ss := NewOrderedStringSet(
    []string{"b", "a"},
    [][]byte{[]byte(strings.Repeat("ACGT", 50)), []byte("TTA")})

  var buffer bytes.Buffer
  if err := ss.WriteFasta(&buffer); err != nil {
    t.Fatal(err)
  }
  for _, compress := range []bool{false, true} {
    filename := filepath.Join(t.TempDir(), "test.fa")
    if err := ss.ExportFasta(filename, compress); err != nil {
      t.Fatal(err)
    }
    r := OrderedStringSet{}
    if err := r.ImportFasta(filename); err != nil {
      t.Fatal(err)
    }
    if r.Len() != 2 || r.Seqnames[0] != "b" || r.Seqnames[1] != "a" {
      t.Error("TestOrderedStringSet3 failed")
    }
    if string(r.Sequences["b"]) != strings.Repeat("ACGT", 50) || string(r.Sequences["a"]) != "TTA" {
      t.Error("TestOrderedStringSet3 failed")
    }
  }
  // lines are wrapped after 80 letters
  if n := strings.Count(buffer.String(), "\n"); n != 6 {
    t.Error("TestOrderedStringSet3 failed")
  }
}

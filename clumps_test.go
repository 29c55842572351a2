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
import "testing"

/* -------------------------------------------------------------------------- */

func TestFindClumps1(test *testing.T) {
  sequence := "CGGACTCGACAGATGTGAAGAACGACAATGTGAAGACTCGACACGACAGAGTGAAGAGAAGAGGAAACATTGTAA"

  if s, err := FindClumps(sequence, 50, 4, 5); err != nil || !equalKmers(s, []string{"CGACA", "GAAGA"}) {
    test.Error("test failed")
  }
  if s, err := FindClumpsByPosition(sequence, 50, 4, 5); err != nil || !equalKmers(s, []string{"CGACA", "GAAGA"}) {
    test.Error("test failed")
  }
}

func TestFindClumps2(test *testing.T) {
  sequence := "CCGTAATGCCTTTCCCTAACAGAGTTTTTCGAACTCGTGTTGTCGAGCGACGGAATTAGATCAGTTAAATGGCAGAAAACTGGCAGGGCTTTTAGTCGTGGGATGATCAGTGGGTAAAGGTGGCGCGGGGTAACGCGCGCTAAGGCTCAGCTGCAACGCGGAGCTGGTGTGTTATCCATTCATGGCAGACAACTAATACGCATAAGCGTAGCCAACCGCATTAGCGTATGAACAAAATAATGCGAGTTGGGCGTACATACAGTTATAGTGTTTACCGATCTCAGGGATATAGAATCCTAA"

  s, err := FindClumps(sequence, 25, 2, 4)
  if err != nil {
    test.Fatal(err)
  }
  if !equalKmers(s, []string{
    "AGCG", "AGCT", "AGTT", "CGCA", "CGCG", "CGTA", "GCAG", "GCAT",
    "GCGC", "GCGT", "GCTG", "GGCA", "GGGT", "GGTA", "GTAA", "GTGG",
    "GTGT", "TACA", "TAGC", "TCGA", "TGGC", "TGGG", "TTTC", "TTTT" }) {
    test.Error("test failed")
  }
  // both methods agree
  for _, r := range [][3]int{{25, 2, 4}, {40, 3, 3}, {10, 2, 2}, {300, 5, 3}, {3, 1, 4}} {
    s1, err1 := FindClumps(sequence, r[0], r[1], r[2])
    s2, err2 := FindClumpsByPosition(sequence, r[0], r[1], r[2])
    if err1 != nil || err2 != nil || !equalKmers(s1, s2.AsList()) {
      test.Errorf("test failed for (L,t,k) = %v", r)
    }
  }
}

func TestFindClumps3(test *testing.T) {
  // sequence shorter than the window
  if s, err := FindClumps("ACGTACGT", 10, 1, 2); err != nil || s.Len() != 0 {
    test.Error("test failed")
  }
  if s, err := FindClumpsByPosition("ACGTACGT", 10, 1, 2); err != nil || s.Len() != 0 {
    test.Error("test failed")
  }
  if _, err := FindClumps("ACGTACGT", 4, 0, 2); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
  if _, err := FindClumpsByPosition("ACGTACGT", 4, 1, 0); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
}

func TestFindClumps4(test *testing.T) {
  sequence := "cggactcgacagatgtgaagaacgacaatgtgaagactcgacacgacagagtgaagagaagaggaaacattgtaa"

  if s, err := FindClumps(sequence, 50, 4, 5); err != nil || !equalKmers(s, []string{"CGACA", "GAAGA"}) {
    test.Error("test failed")
  }
  if s, err := FindClumpsByPosition(sequence, 50, 4, 5); err != nil || !equalKmers(s, []string{"CGACA", "GAAGA"}) {
    test.Error("test failed")
  }
  // mixed case occurrences of the same k-mer are counted together
  if s, err := FindClumps("ACGTacgt", 8, 2, 4); err != nil || !equalKmers(s, []string{"ACGT"}) {
    test.Error("test failed")
  }
}

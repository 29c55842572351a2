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
import "math"
import "math/rand"
import "strings"
import "testing"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

var testSequences = []string{
  "GGCGTTCAGGCA",
  "AAGAATCAGTCA",
  "CAAGGAGTTCGC",
  "CACGTCAATCAC",
  "CAATAATATTCG" }

// ACGTTGCA planted into random sequences, every second copy carries a single
// substitution
var testPlantedSequences = []string{
  "GCTAAAGACAATTACATAACATACACGTCACGTTGGAACT",
  "TGGCCCAGTGACGTTGCATTAAGGGTTAAGTAAGTGTGAT",
  "ATACGCCTTTACTTGCTGTGTCCACACGTTGCTACTGGCA",
  "TTTATTACACTCAGAAACAGAACTCGGGTAACGTTGCAAG",
  "ACGTTGCTGGCGCGCCCTCCTGAAGTGCGTGGACACTCGC",
  "TGAATCTCACGTTGCACCACTCTGCCAAACTCCAGCGCGG",
  "AGTTCCATCACCCTAAGTAACCGAATAAAGGTTGCACTCT",
  "GACTACACGTTGCACATTCCCTTGTCGGAGAGTTATGGAA",
  "AGGACGCTGTCTGAGACTAACATTGCAATAGTGCACACGA",
  "GCACGTTGCAAACTCTATTTGCCGCCTGACAAGTCAATGC" }

/* -------------------------------------------------------------------------- */

func isWindowOf(motifs Motifs, sequences []string) bool {
  if len(motifs) != len(sequences) {
    return false
  }
  for i := 0; i < len(motifs); i++ {
    if !strings.Contains(sequences[i], motifs[i]) {
      return false
    }
  }
  return true
}

func isNonIncreasing(trace []float64) bool {
  for i := 1; i < len(trace); i++ {
    if trace[i] > trace[i-1] {
      return false
    }
  }
  return true
}

/* -------------------------------------------------------------------------- */

func TestGreedyMotifSearch1(test *testing.T) {
  // result must not change between calls
  for i := 0; i < 3; i++ {
    motifs, err := GreedyMotifSearch(testSequences, 3, false)
    if err != nil {
      test.Fatal(err)
    }
    if !motifs.Equals(Motifs{"CAG", "CAG", "CAA", "CAA", "CAA"}) {
      test.Error("test failed")
    }
  }
}

func TestGreedyMotifSearch2(test *testing.T) {
  motifs, err := GreedyMotifSearch(testSequences, 3, true)
  if err != nil {
    test.Fatal(err)
  }
  if !motifs.Equals(Motifs{"TTC", "ATC", "TTC", "ATC", "TTC"}) {
    test.Error("test failed")
  }
}

func TestGreedyMotifSearch3(test *testing.T) {
  r, err := MotifSearch{K: 3, Trace: true}.Greedy(testSequences)
  if err != nil {
    test.Fatal(err)
  }
  if math.Abs(r.Entropy - 0.9709505944546686) > 1e-10 {
    test.Error("test failed")
  }
  if s, _ := r.Motifs.Score(); s != r.Score {
    test.Error("test failed")
  }
  if len(r.Trace) != len(testSequences[0])-2 || !isNonIncreasing(r.Trace) {
    test.Error("test failed")
  }
  // lower case input
  lower := make([]string, len(testSequences))
  for i, s := range testSequences {
    lower[i] = strings.ToLower(s)
  }
  if q, err := (MotifSearch{K: 3}).Greedy(lower); err != nil || !q.Motifs.Equals(r.Motifs) {
    test.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestRandomizedMotifSearch1(test *testing.T) {
  rng := rand.New(rand.NewSource(1))

  motifs, err := RandomizedMotifSearch(rng, testPlantedSequences, 8, 500, true)
  if err != nil {
    test.Fatal(err)
  }
  if !isWindowOf(motifs, testPlantedSequences) {
    test.Error("test failed")
  }
  if s, _ := motifs.Score(); s > 9 {
    test.Errorf("test failed: score %d is too large", s)
  }
}

func TestRandomizedMotifSearch2(test *testing.T) {
  search := MotifSearch{K: 8, Pseudocounts: true, Restarts: 50, Trace: true}

  r1, err := search.Randomized(rand.New(rand.NewSource(7)), testPlantedSequences)
  if err != nil {
    test.Fatal(err)
  }
  pool := threadpool.New(4, 100*4)
  search.Pool = &pool

  r2, err := search.Randomized(rand.New(rand.NewSource(7)), testPlantedSequences)
  if err != nil {
    test.Fatal(err)
  }
  // number of threads does not change the result
  if !r1.Motifs.Equals(r2.Motifs) || r1.Run != r2.Run || r1.Entropy != r2.Entropy {
    test.Error("test failed")
  }
  if len(r1.Trace) == 0 || !isNonIncreasing(r1.Trace) || r1.Trace[len(r1.Trace)-1] != r1.Entropy {
    test.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestGibbsMotifSearch1(test *testing.T) {
  rng := rand.New(rand.NewSource(1))

  motifs, err := GibbsMotifSearch(rng, testPlantedSequences, 8, 300, 100, true)
  if err != nil {
    test.Fatal(err)
  }
  if !isWindowOf(motifs, testPlantedSequences) {
    test.Error("test failed")
  }
  if s, _ := motifs.Score(); s > 9 {
    test.Errorf("test failed: score %d is too large", s)
  }
}

func TestGibbsMotifSearch2(test *testing.T) {
  pool   := threadpool.New(3, 100*3)
  calls  := 0
  search := MotifSearch{K: 8, Pseudocounts: true, Restarts: 10, Iterations: 200, Trace: true}
  search.Hook = func(run int, entropy float64) {
    calls++
  }
  r1, err := search.Gibbs(rand.New(rand.NewSource(3)), testPlantedSequences)
  if err != nil {
    test.Fatal(err)
  }
  search.Pool = &pool

  r2, err := search.Gibbs(rand.New(rand.NewSource(3)), testPlantedSequences)
  if err != nil {
    test.Fatal(err)
  }
  if !r1.Motifs.Equals(r2.Motifs) || r1.Run != r2.Run || r1.Entropy != r2.Entropy {
    test.Error("test failed")
  }
  if calls != 20 {
    test.Error("test failed")
  }
  if len(r1.Trace) != 200 || !isNonIncreasing(r1.Trace) {
    test.Error("test failed")
  }
}

func TestGibbsMotifSearch3(test *testing.T) {
  // a single sequence has no other motifs to build a profile from
  rng := rand.New(rand.NewSource(1))
  r, err := MotifSearch{K: 4, Restarts: 2, Iterations: 10}.Gibbs(rng, []string{"ACGTACGTAA"})
  if err != nil {
    test.Fatal(err)
  }
  if !isWindowOf(r.Motifs, []string{"ACGTACGTAA"}) || r.Entropy != 0.0 || r.Score != 0 {
    test.Error("test failed")
  }
}

/* -------------------------------------------------------------------------- */

func TestMotifSearchErrors1(test *testing.T) {
  rng    := rand.New(rand.NewSource(1))
  search := MotifSearch{K: 5, Restarts: 1, Iterations: 1}

  if _, err := search.Greedy([]string{}); !errors.Is(err, ErrEmptyInput) {
    test.Error("test failed")
  }
  if _, err := search.Randomized(rng, []string{"ACGTAC", "ACG"}); !errors.Is(err, ErrHaystackTooShort) {
    test.Error("test failed")
  }
  if _, err := search.Gibbs(rng, []string{"ACGTAC", "ACGNNC"}); !errors.Is(err, ErrInvalidSymbol) {
    test.Error("test failed")
  }
  if _, err := (MotifSearch{K: 0}).Greedy(testSequences); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
  if _, err := (MotifSearch{K: 3}).Randomized(rng, testSequences); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
  if _, err := (MotifSearch{K: 3, Restarts: 1, Iterations: -1}).Gibbs(rng, testSequences); !errors.Is(err, ErrOutOfRange) {
    test.Error("test failed")
  }
}

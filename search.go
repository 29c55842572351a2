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
import "math/rand"
import "sync"

import "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type MotifSearch struct {
  // length of motifs
  K            int
  // use Laplace pseudocounts when building profiles
  Pseudocounts bool
  // number of independent restarts (randomized and Gibbs search)
  Restarts     int
  // number of iterations of each Gibbs sampling run
  Iterations   int
  // record the best entropy after each iteration of the winning run
  Trace        bool
  // restarts are executed on this pool if not nil
  Pool        *threadpool.ThreadPool
  // called once for every finished restart
  Hook         func(run int, entropy float64)
}

type MotifSearchResult struct {
  Motifs  Motifs
  Entropy float64
  Score   int
  // index of the restart that produced the result
  Run     int
  Trace []float64
}

/* -------------------------------------------------------------------------- */

type motifSearchRun struct {
  motifs  Motifs
  entropy float64
  trace []float64
}

func (obj *motifSearchRun) update(motifs Motifs, entropy float64) bool {
  if entropy < obj.entropy {
    obj.motifs  = motifs.Clone()
    obj.entropy = entropy
    return true
  }
  return false
}

/* -------------------------------------------------------------------------- */

func (obj MotifSearch) prepare(sequences []string) ([]string, error) {
  if len(sequences) == 0 {
    return nil, fmt.Errorf("no sequences given: %w", ErrEmptyInput)
  }
  if obj.K < 1 {
    return nil, fmt.Errorf("invalid motif length `%d': %w", obj.K, ErrOutOfRange)
  }
  sequences, err := NormalizeSequences(sequences)
  if err != nil {
    return nil, err
  }
  for i, sequence := range sequences {
    if len(sequence) < obj.K {
      return nil, fmt.Errorf("sequence %d is shorter than the motif length: %w", i, ErrHaystackTooShort)
    }
  }
  return sequences, nil
}

func (obj MotifSearch) randomMotifs(rng *rand.Rand, sequences []string) Motifs {
  motifs := make(Motifs, len(sequences))
  for i, sequence := range sequences {
    j := rng.Intn(len(sequence)-obj.K+1)
    motifs[i] = sequence[j:j+obj.K]
  }
  return motifs
}

func (obj MotifSearch) newResult(run motifSearchRun, i int) (MotifSearchResult, error) {
  score, err := run.motifs.Score()
  if err != nil {
    return MotifSearchResult{}, err
  }
  r := MotifSearchResult{
    Motifs : run.motifs,
    Entropy: run.entropy,
    Score  : score,
    Run    : i }
  if obj.Trace {
    r.Trace = run.trace
  }
  return r, nil
}

// Execute n independent runs. Random generators of all runs are seeded from
// rng before any run starts, so results do not depend on the number of
// threads. The run with minimum entropy wins, ties are resolved in favor of
// the first run.
func (obj MotifSearch) execute(rng *rand.Rand, n int, f func(rng *rand.Rand) (motifSearchRun, error)) (MotifSearchResult, error) {
  if n < 1 {
    return MotifSearchResult{}, fmt.Errorf("invalid number of restarts `%d': %w", n, ErrOutOfRange)
  }
  seeds := make([]int64, n)
  for i := 0; i < n; i++ {
    seeds[i] = rng.Int63()
  }
  runs := make([]motifSearchRun, n)
  mtx  := sync.Mutex{}
  job  := func(i int) error {
    r, err := f(rand.New(rand.NewSource(seeds[i])))
    if err != nil {
      return err
    }
    runs[i] = r
    if obj.Hook != nil {
      mtx.Lock()
      obj.Hook(i, r.entropy)
      mtx.Unlock()
    }
    return nil
  }
  if obj.Pool == nil {
    for i := 0; i < n; i++ {
      if err := job(i); err != nil {
        return MotifSearchResult{}, err
      }
    }
  } else {
    if err := obj.Pool.RangeJob(0, n, func(i int, pool threadpool.ThreadPool, erf func() error) error {
      return job(i)
    }); err != nil {
      return MotifSearchResult{}, err
    }
  }
  k := 0
  for i := 1; i < n; i++ {
    if runs[i].entropy < runs[k].entropy {
      k = i
    }
  }
  return obj.newResult(runs[k], k)
}

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

/* -------------------------------------------------------------------------- */

// Gibbs sampling with restarts. Each iteration selects one sequence at
// random and replaces its motif by a window drawn with probability
// proportional to the profile of all other motifs. The entropy may increase
// between iterations, therefore every run uses its full number of
// iterations and keeps the best collection it has seen.
func (obj MotifSearch) Gibbs(rng *rand.Rand, sequences []string) (MotifSearchResult, error) {
  sequences, err := obj.prepare(sequences)
  if err != nil {
    return MotifSearchResult{}, fmt.Errorf("Gibbs(): %w", err)
  }
  if obj.Iterations < 0 {
    return MotifSearchResult{}, fmt.Errorf("Gibbs(): invalid number of iterations `%d': %w", obj.Iterations, ErrOutOfRange)
  }
  return obj.execute(rng, obj.Restarts, func(rng *rand.Rand) (motifSearchRun, error) {
    return obj.gibbsRun(rng, sequences)
  })
}

func (obj MotifSearch) gibbsRun(rng *rand.Rand, sequences []string) (motifSearchRun, error) {
  k      := obj.K
  motifs := obj.randomMotifs(rng, sequences)
  best   := motifSearchRun{motifs: motifs.Clone(), entropy: motifs.entropy()}
  others := make(Motifs, 0, len(sequences))
  for it := 0; it < obj.Iterations; it++ {
    i := rng.Intn(len(sequences))
    // profile of all motifs except the i-th one
    others = append(others[:0], motifs[:i]...)
    others = append(others, motifs[i+1:]...)
    weights, err := obj.gibbsWeights(others, sequences[i])
    if err != nil {
      return best, err
    }
    j, err := BiasedRandomIndex(rng, weights)
    if err != nil {
      return best, err
    }
    motifs[i] = sequences[i][j:j+k]
    best.update(motifs, motifs.entropy())
    if obj.Trace {
      best.trace = append(best.trace, best.entropy)
    }
  }
  return best, nil
}

func (obj MotifSearch) gibbsWeights(others Motifs, sequence string) ([]float64, error) {
  // a single sequence leaves no other motifs to build a profile from
  if len(others) == 0 {
    weights := make([]float64, len(sequence)-obj.K+1)
    for i := range weights {
      weights[i] = 1.0
    }
    return weights, nil
  }
  profile, err := others.Profile(obj.Pseudocounts)
  if err != nil {
    return nil, err
  }
  return profile.Scan(sequence)
}

/* -------------------------------------------------------------------------- */

func GibbsMotifSearch(rng *rand.Rand, sequences []string, k, iterations, runs int, pseudocounts bool) (Motifs, error) {
  r, err := MotifSearch{K: k, Pseudocounts: pseudocounts, Iterations: iterations, Restarts: runs}.Gibbs(rng, sequences)
  if err != nil {
    return nil, err
  }
  return r.Motifs, nil
}

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

// Randomized search with restarts. Every restart draws one random window per
// sequence and then repeatedly replaces all motifs by the most probable
// k-mers under the profile of the current motifs. A restart stops at the
// first step that does not strictly decrease the entropy.
func (obj MotifSearch) Randomized(rng *rand.Rand, sequences []string) (MotifSearchResult, error) {
  sequences, err := obj.prepare(sequences)
  if err != nil {
    return MotifSearchResult{}, fmt.Errorf("Randomized(): %w", err)
  }
  return obj.execute(rng, obj.Restarts, func(rng *rand.Rand) (motifSearchRun, error) {
    return obj.randomizedRun(rng, sequences)
  })
}

func (obj MotifSearch) randomizedRun(rng *rand.Rand, sequences []string) (motifSearchRun, error) {
  motifs := obj.randomMotifs(rng, sequences)
  best   := motifSearchRun{motifs: motifs.Clone(), entropy: motifs.entropy()}
  if obj.Trace {
    best.trace = append(best.trace, best.entropy)
  }
  for {
    profile, err := motifs.Profile(obj.Pseudocounts)
    if err != nil {
      return best, err
    }
    for i, sequence := range sequences {
      if motifs[i], err = profile.MostProbableKmer(sequence); err != nil {
        return best, err
      }
    }
    if !best.update(motifs, motifs.entropy()) {
      return best, nil
    }
    if obj.Trace {
      best.trace = append(best.trace, best.entropy)
    }
  }
}

/* -------------------------------------------------------------------------- */

func RandomizedMotifSearch(rng *rand.Rand, sequences []string, k, restarts int, pseudocounts bool) (Motifs, error) {
  r, err := MotifSearch{K: k, Pseudocounts: pseudocounts, Restarts: restarts}.Randomized(rng, sequences)
  if err != nil {
    return nil, err
  }
  return r.Motifs, nil
}

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

/* -------------------------------------------------------------------------- */

// Deterministic greedy search. Each window of the first sequence seeds a
// collection which is extended sequence by sequence with the most probable
// k-mer under the profile of the motifs collected so far.
func (obj MotifSearch) Greedy(sequences []string) (MotifSearchResult, error) {
  sequences, err := obj.prepare(sequences)
  if err != nil {
    return MotifSearchResult{}, fmt.Errorf("Greedy(): %w", err)
  }
  k      := obj.K
  best   := motifSearchRun{}
  motifs := make(Motifs, len(sequences))
  for i := 0; i+k <= len(sequences[0]); i++ {
    motifs[0] = sequences[0][i:i+k]
    for j := 1; j < len(sequences); j++ {
      profile, err := motifs[0:j].Profile(obj.Pseudocounts)
      if err != nil {
        return MotifSearchResult{}, err
      }
      if motifs[j], err = profile.MostProbableKmer(sequences[j]); err != nil {
        return MotifSearchResult{}, err
      }
    }
    if e := motifs.entropy(); i == 0 {
      best.motifs  = motifs.Clone()
      best.entropy = e
    } else {
      best.update(motifs, e)
    }
    if obj.Trace {
      best.trace = append(best.trace, best.entropy)
    }
  }
  return obj.newResult(best, 0)
}

/* -------------------------------------------------------------------------- */

func GreedyMotifSearch(sequences []string, k int, pseudocounts bool) (Motifs, error) {
  r, err := MotifSearch{K: k, Pseudocounts: pseudocounts}.Greedy(sequences)
  if err != nil {
    return nil, err
  }
  return r.Motifs, nil
}

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
import "strings"

/* -------------------------------------------------------------------------- */

// An ordered collection of equal-length motifs, one per source sequence.
type Motifs []string

/* -------------------------------------------------------------------------- */

func (obj Motifs) Clone() Motifs {
  r := make(Motifs, len(obj))
  copy(r, obj)
  return r
}

func (obj Motifs) Equals(b Motifs) bool {
  if len(obj) != len(b) {
    return false
  }
  for i := 0; i < len(obj); i++ {
    if obj[i] != b[i] {
      return false
    }
  }
  return true
}

// Length of the motifs, or -1 if the collection is empty.
func (obj Motifs) K() int {
  if len(obj) == 0 {
    return -1
  }
  return len(obj[0])
}

/* -------------------------------------------------------------------------- */

func (obj Motifs) Profile(pseudocounts bool) (ProfileMatrix, error) {
  return NewProfileMatrix(obj, pseudocounts)
}

func (obj Motifs) Consensus() (string, error) {
  if p, err := obj.Profile(false); err != nil {
    return "", err
  } else {
    return p.Consensus(), nil
  }
}

// Sum of Hamming distances between the consensus and each motif.
func (obj Motifs) Score() (int, error) {
  consensus, err := obj.Consensus()
  if err != nil {
    return 0, err
  }
  s := 0
  for _, motif := range obj {
    s += hammingDistance(consensus, strings.ToUpper(motif))
  }
  return s, nil
}

// Entropy of the (unsmoothed) profile of the collection.
func (obj Motifs) Entropy() (float64, error) {
  if p, err := obj.Profile(false); err != nil {
    return 0, err
  } else {
    return p.Entropy(), nil
  }
}

/* -------------------------------------------------------------------------- */

// Fast path for search heuristics where motifs are known to be valid.
func (obj Motifs) entropy() float64 {
  if e, err := obj.Entropy(); err != nil {
    panic(err)
  } else {
    return e
  }
}

func (obj Motifs) String() string {
  return fmt.Sprint([]string(obj))
}

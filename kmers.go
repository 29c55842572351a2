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

//import "fmt"
import "sort"

/* -------------------------------------------------------------------------- */

type KmerSet map[string]struct{}

func NewKmerSet(kmers ...string) KmerSet {
  s := make(KmerSet)
  for _, kmer := range kmers {
    s[kmer] = struct{}{}
  }
  return s
}

/* -------------------------------------------------------------------------- */

func (obj KmerSet) Add(kmer string) {
  obj[kmer] = struct{}{}
}

func (obj KmerSet) Contains(kmer string) bool {
  _, ok := obj[kmer]
  return ok
}

func (obj KmerSet) Len() int {
  return len(obj)
}

func (obj KmerSet) Union(b ...KmerSet) KmerSet {
  m := make(KmerSet)
  for kmer, _ := range obj {
    m[kmer] = struct{}{}
  }
  for _, bi := range b {
    for kmer, _ := range bi {
      m[kmer] = struct{}{}
    }
  }
  return m
}

// Elements of the set in sorted order.
func (obj KmerSet) AsList() []string {
  r := make([]string, len(obj))
  i := 0
  for kmer, _ := range obj {
    r[i] = kmer; i++
  }
  sort.Strings(r)
  return r
}

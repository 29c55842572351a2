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


package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "bufio"
import   "log"
import   "io"
import   "os"
import   "strconv"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gomotif"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Immediate bool
  Threads   int
  Verbose   int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

func ImportFasta(config Config, filename string) OrderedStringSet {
  s := EmptyOrderedStringSet()
  PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
  if err := s.ImportFasta(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return s
}

func newWriter(filenameOut string) (io.Writer, func()) {
  if filenameOut == "" {
    return os.Stdout, func() {}
  }
  f, err := os.Create(filenameOut)
  if err != nil {
    log.Fatal(err)
  }
  buffer := bufio.NewWriter(f)
  return buffer, func() {
    buffer.Flush()
    f.Close()
  }
}

/* -------------------------------------------------------------------------- */

func printNeighbors(config Config, kmer string, d int, filenameOut string) {
  var neighbors KmerSet
  var err       error
  if config.Immediate {
    neighbors, err = ImmediateNeighbors(kmer)
  } else {
    neighbors, err = Neighbors(kmer, d)
  }
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Found %d neighbors of `%s'\n", neighbors.Len(), kmer)

  writer, closer := newWriter(filenameOut)
  defer closer()
  for _, neighbor := range neighbors.AsList() {
    fmt.Fprintln(writer, neighbor)
  }
}

func countOccurrences(config Config, kmer string, d int, filenameFasta, filenameOut string) {
  kmer, err := NormalizeSequence(kmer)
  if err != nil {
    log.Fatal(err)
  }
  ss     := ImportFasta(config, filenameFasta)
  counts := make([]int, ss.Len())
  pool   := threadpool.New(config.Threads, 100*config.Threads)

  if err := pool.RangeJob(0, ss.Len(), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    sequence, err := NormalizeSequence(string(ss.Sequences[ss.Seqnames[i]]))
    if err != nil {
      return fmt.Errorf("sequence `%s': %w", ss.Seqnames[i], err)
    }
    counts[i] = CountApproxOccurrences(sequence, kmer, d)
    return nil
  }); err != nil {
    log.Fatal(err)
  }
  writer, closer := newWriter(filenameOut)
  defer closer()
  fmt.Fprintf(writer, "%15s %10s\n", "seqname", "count")
  for i, name := range ss.Seqnames {
    fmt.Fprintf(writer, "%15s %10d\n", name, counts[i])
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optImmediate := options.   BoolLong("immediate",  0 ,     "print immediate neighbors only (d = 1)")
  optCount     := options. StringLong("count",      0 , "", "count approximate occurrences in the sequences of a fasta file")
  optThreads   := options.    IntLong("threads",    0 ,  1, "number of threads [default: 1]")
  optVerbose   := options.CounterLong("verbose",   'v',     "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",      'h',     "print help")

  options.SetParameters("<KMER> <D> [OUTPUT]\n")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optThreads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Immediate = *optImmediate
  config.Threads   = *optThreads
  config.Verbose   = *optVerbose

  // parse arguments
  //////////////////////////////////////////////////////////////////////////////
  if len(options.Args()) < 2 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  kmer := options.Args()[0]
  d, err := strconv.ParseInt(options.Args()[1], 10, 64); if err != nil || d < 0 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }
  if *optCount != "" {
    countOccurrences(config, kmer, int(d), *optCount, filenameOut)
  } else {
    printNeighbors(config, kmer, int(d), filenameOut)
  }
}

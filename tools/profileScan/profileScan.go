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

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gomotif"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Threads      int
  Verbose      int
}

type ScanResult struct {
  Position    int
  Kmer        string
  Probability float64
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func ImportProfile(config Config, filename string) ProfileMatrix {
  profile := EmptyProfileMatrix()
  PrintStderr(config, 1, "Reading profile `%s'... ", filename)
  if err := profile.ImportMatrix(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  return profile
}

func ImportFasta(config Config, filename string) OrderedStringSet {
  s := EmptyOrderedStringSet()
  if filename == "" {
    if err := s.ReadFasta(os.Stdin); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
    if err := s.ImportFasta(filename); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return s
}

func WriteResult(config Config, ss OrderedStringSet, results []ScanResult, filenameOut string) {
  var writer io.Writer

  if filenameOut == "" {
    writer = os.Stdout
  } else {
    f, err := os.Create(filenameOut)
    if err != nil {
      log.Fatal(err)
    }
    buffer := bufio.NewWriter(f)
    writer  = buffer
    defer f.Close()
    defer buffer.Flush()
  }
  fmt.Fprintf(writer, "%15s %10s %20s %15s\n", "seqname", "position", "kmer", "probability")
  for i, name := range ss.Seqnames {
    fmt.Fprintf(writer, "%15s %10d %20s %15e\n", name, results[i].Position, results[i].Kmer, results[i].Probability)
  }
}

/* -------------------------------------------------------------------------- */

func scanSequences(config Config, profile ProfileMatrix, ss OrderedStringSet) ([]ScanResult, error) {
  pool    := threadpool.New(config.Threads, 100*config.Threads)
  results := make([]ScanResult, ss.Len())
  k       := profile.Length()

  if err := pool.RangeJob(0, ss.Len(), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    sequence, err := NormalizeSequence(string(ss.Sequences[ss.Seqnames[i]]))
    if err != nil {
      return fmt.Errorf("sequence `%s': %w", ss.Seqnames[i], err)
    }
    j, p, err := profile.MostProbablePosition(sequence)
    if err != nil {
      return fmt.Errorf("sequence `%s': %w", ss.Seqnames[i], err)
    }
    results[i] = ScanResult{Position: j, Kmer: sequence[j:j+k], Probability: p}
    return nil
  }); err != nil {
    return nil, err
  }
  return results, nil
}

func profileScan(config Config, filenameProfile, filenameFasta, filenameOut string) {
  profile := ImportProfile(config, filenameProfile)
  ss      := ImportFasta(config, filenameFasta)

  PrintStderr(config, 1, "Scanning %d sequences... ", ss.Len())
  results, err := scanSequences(config, profile, ss)
  if err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
  WriteResult(config, ss, results, filenameOut)
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optThreads := options.    IntLong("threads",  0 ,  1, "number of threads [default: 1]")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<PROFILE.table> [<INPUT.fasta> [OUTPUT.table]]\n")
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
  config.Threads = *optThreads
  config.Verbose = *optVerbose

  // parse arguments
  //////////////////////////////////////////////////////////////////////////////
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameProfile := options.Args()[0]
  filenameFasta   := ""
  filenameOut     := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  profileScan(config, filenameProfile, filenameFasta, filenameOut)
}

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
import   "strings"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gomotif"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  K             int
  Window        int
  Repeats       int
  ByPosition    bool
  FrequentWords bool
  Mismatches    int
  Revcomp       bool
  Threads       int
  Verbose       int
}

type Result struct {
  Kmers KmerSet
  Count int
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

func WriteResult(config Config, ss OrderedStringSet, results []Result, filenameOut string) {
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
  if config.FrequentWords {
    fmt.Fprintf(writer, "%15s %10s %s\n", "seqname", "count", "kmers")
    for i, name := range ss.Seqnames {
      fmt.Fprintf(writer, "%15s %10d %s\n", name, results[i].Count, strings.Join(results[i].Kmers.AsList(), ","))
    }
  } else {
    fmt.Fprintf(writer, "%15s %s\n", "seqname", "kmers")
    for i, name := range ss.Seqnames {
      fmt.Fprintf(writer, "%15s %s\n", name, strings.Join(results[i].Kmers.AsList(), ","))
    }
  }
}

/* -------------------------------------------------------------------------- */

func scanSequence(config Config, sequence string) (Result, error) {
  sequence, err := NormalizeSequence(sequence)
  if err != nil {
    return Result{}, err
  }
  r := Result{}
  switch {
  case config.FrequentWords && (config.Mismatches > 0 || config.Revcomp):
    r.Kmers, r.Count, err = FrequentWordsMismatch(sequence, config.K, config.Mismatches, config.Revcomp)
  case config.FrequentWords:
    r.Kmers, r.Count, err = FrequentWords(sequence, config.K)
  case config.ByPosition:
    r.Kmers, err = FindClumpsByPosition(sequence, config.Window, config.Repeats, config.K)
  default:
    r.Kmers, err = FindClumps(sequence, config.Window, config.Repeats, config.K)
  }
  return r, err
}

func findClumps(config Config, filenameFasta, filenameOut string) {
  ss      := ImportFasta(config, filenameFasta)
  results := make([]Result, ss.Len())
  pool    := threadpool.New(config.Threads, 100*config.Threads)

  PrintStderr(config, 1, "Scanning %d sequences... ", ss.Len())
  if err := pool.RangeJob(0, ss.Len(), func(i int, pool threadpool.ThreadPool, erf func() error) error {
    if r, err := scanSequence(config, string(ss.Sequences[ss.Seqnames[i]])); err != nil {
      return fmt.Errorf("sequence `%s': %w", ss.Seqnames[i], err)
    } else {
      results[i] = r
    }
    return nil
  }); err != nil {
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

  optWindow     := options.    IntLong("window",         'L', 500, "window length [default: 500]")
  optRepeats    := options.    IntLong("repeats",        't',   3, "minimum number of occurrences within a window [default: 3]")
  optByPosition := options.   BoolLong("by-position",     0 ,      "compute clumps from k-mer positions")
  optFrequent   := options.   BoolLong("frequent-words",  0 ,      "report most frequent k-mers instead of clumps")
  optMismatches := options.    IntLong("mismatches",     'd',   0, "number of mismatches for frequent words [default: 0]")
  optRevcomp    := options.   BoolLong("revcomp",         0 ,      "count reverse complements for frequent words")
  optThreads    := options.    IntLong("threads",         0 ,   1, "number of threads [default: 1]")
  optVerbose    := options.CounterLong("verbose",        'v',      "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",           'h',      "print help")

  options.SetParameters("<K> [<INPUT.fasta> [OUTPUT.table]]\n")
  options.Parse(os.Args)

  // parse options
  //////////////////////////////////////////////////////////////////////////////
  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if *optWindow < 1 || *optRepeats < 1 || *optMismatches < 0 || *optThreads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Window        = *optWindow
  config.Repeats       = *optRepeats
  config.ByPosition    = *optByPosition
  config.FrequentWords = *optFrequent
  config.Mismatches    = *optMismatches
  config.Revcomp       = *optRevcomp
  config.Threads       = *optThreads
  config.Verbose       = *optVerbose

  // parse arguments
  //////////////////////////////////////////////////////////////////////////////
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if k, err := strconv.ParseInt(options.Args()[0], 10, 64); err != nil || k < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  } else {
    config.K = int(k)
  }
  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  findClumps(config, filenameFasta, filenameOut)
}

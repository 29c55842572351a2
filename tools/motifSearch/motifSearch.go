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
import   "math/rand"
import   "os"
import   "strconv"
import   "strings"
import   "time"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/gomotif"
import   "github.com/pbenner/gomotif/lib/progress"
import   "github.com/pbenner/threadpool"

/* -------------------------------------------------------------------------- */

type Config struct {
  Method        string `mapstructure:"method"`
  K             int    `mapstructure:"k"`
  Pseudocounts  bool   `mapstructure:"pseudocounts"`
  Restarts      int    `mapstructure:"restarts"`
  Iterations    int    `mapstructure:"iterations"`
  Seed          int64  `mapstructure:"seed"`
  Threads       int    `mapstructure:"threads"`
  SaveProfile   string `mapstructure:"save-profile"`
  SaveTracePlot string `mapstructure:"save-trace-plot"`
  Verbose       int    `mapstructure:"verbose"`
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

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

func WriteResult(config Config, ss OrderedStringSet, result MotifSearchResult, filenameOut string) {
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
  consensus, err := result.Motifs.Consensus()
  if err != nil {
    log.Fatal(err)
  }
  fmt.Fprintf(writer, "# method    : %s\n", config.Method)
  fmt.Fprintf(writer, "# consensus : %s\n", consensus)
  fmt.Fprintf(writer, "# score     : %d\n", result.Score)
  fmt.Fprintf(writer, "# entropy   : %f\n", result.Entropy)
  for i, name := range ss.Seqnames {
    // position of the first occurrence of the motif
    j := strings.Index(strings.ToUpper(string(ss.Sequences[name])), result.Motifs[i])
    fmt.Fprintf(writer, "%s\t%d\t%s\n", name, j, result.Motifs[i])
  }
}

func ExportProfile(config Config, motifs Motifs, filename string) {
  profile, err := motifs.Profile(config.Pseudocounts)
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Writing profile to `%s'... ", filename)
  if err := profile.ExportMatrix(filename, false); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func newMotifSearch(config Config, pool *threadpool.ThreadPool) MotifSearch {
  search := MotifSearch{
    K           : config.K,
    Pseudocounts: config.Pseudocounts,
    Restarts    : config.Restarts,
    Iterations  : config.Iterations,
    Trace       : config.SaveTracePlot != "",
    Pool        : pool }
  if config.Verbose >= 2 && (config.Method == "randomized" || config.Method == "gibbs") {
    p    := progress.New(config.Restarts, 100)
    done := 0
    p.Print(0)
    // calls are serialized by the search
    search.Hook = func(run int, entropy float64) {
      done++
      p.Print(done)
    }
  }
  return search
}

func medianSearch(config Config, sequences []string) (MotifSearchResult, error) {
  median, _, err := MedianString(config.K, sequences)
  if err != nil {
    return MotifSearchResult{}, err
  }
  sequences, err = NormalizeSequences(sequences)
  if err != nil {
    return MotifSearchResult{}, err
  }
  // best matching window of each sequence
  motifs := make(Motifs, len(sequences))
  for i, sequence := range sequences {
    best := -1
    for j := 0; j+config.K <= len(sequence); j++ {
      if d, _ := HammingDistance(median, sequence[j:j+config.K]); best == -1 || d < best {
        motifs[i], best = sequence[j:j+config.K], d
      }
    }
  }
  score, err := motifs.Score()
  if err != nil {
    return MotifSearchResult{}, err
  }
  entropy, err := motifs.Entropy()
  if err != nil {
    return MotifSearchResult{}, err
  }
  return MotifSearchResult{Motifs: motifs, Score: score, Entropy: entropy}, nil
}

func motifSearch(config Config, filenameFasta, filenameOut string) {
  ss        := ImportFasta(config, filenameFasta)
  sequences := ss.Strings()
  if len(sequences) == 0 {
    log.Fatal("no sequences found")
  }
  pool   := threadpool.New(config.Threads, 100*config.Threads)
  search := newMotifSearch(config, &pool)
  rng    := rand.New(rand.NewSource(config.Seed))

  var result MotifSearchResult
  var err    error

  PrintStderr(config, 1, "Running %s motif search (k=%d, seed=%d)...\n", config.Method, config.K, config.Seed)
  switch config.Method {
  case "greedy"    : result, err = search.Greedy(sequences)
  case "randomized": result, err = search.Randomized(rng, sequences)
  case "gibbs"     : result, err = search.Gibbs(rng, sequences)
  case "median"    : result, err = medianSearch(config, sequences)
  default:
    log.Fatalf("invalid search method `%s'", config.Method)
  }
  if err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Best motifs found in run %d with entropy %f\n", result.Run, result.Entropy)
  WriteResult(config, ss, result, filenameOut)

  if config.SaveProfile != "" {
    ExportProfile(config, result.Motifs, config.SaveProfile)
  }
  if config.SaveTracePlot != "" && len(result.Trace) > 0 {
    saveTracePlot(config, config.SaveTracePlot, result.Trace)
  }
}

/* -------------------------------------------------------------------------- */

func main() {
  log.SetFlags(0)

  config  := Config{}
  options := getopt.New()

  optMethod       := options. StringLong("method",          0 , "gibbs", "search method [greedy, randomized, gibbs (default), median]")
  optPseudocounts := options.   BoolLong("pseudocounts",    0 ,          "use Laplace pseudocounts when building profiles")
  optRestarts     := options.    IntLong("restarts",        0 ,     20,  "number of random restarts [default: 20]")
  optIterations   := options.    IntLong("iterations",      0 ,   1000,  "number of iterations of each Gibbs sampling run [default: 1000]")
  optSeed         := options. StringLong("seed",            0 ,     "",  "seed of the random number generator [default: current time]")
  optThreads      := options.    IntLong("threads",         0 ,      1,  "number of threads [default: 1]")
  optConfig       := options. StringLong("config",          0 ,     "",  "read search parameters from a yaml, json, or toml file")
  optSaveProfile  := options. StringLong("save-profile",    0 ,     "",  "save profile of the best motifs to the given file")
  optSavePlot     := options. StringLong("save-trace-plot", 0 ,     "",  "plot the entropy trace of the best run (pdf, png, or svg)")
  optVerbose      := options.CounterLong("verbose",        'v',          "verbose level [-v or -vv]")
  optHelp         := options.   BoolLong("help",           'h',          "print help")

  options.SetParameters("<K> [<INPUT.fasta> [OUTPUT.table]]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) < 1 || len(options.Args()) > 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  k, err := strconv.ParseInt(options.Args()[0], 10, 64); if err != nil {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Method        = strings.ToLower(*optMethod)
  config.K             = int(k)
  config.Pseudocounts  = *optPseudocounts
  config.Restarts      = *optRestarts
  config.Iterations    = *optIterations
  config.Threads       = *optThreads
  config.SaveProfile   = *optSaveProfile
  config.SaveTracePlot = *optSavePlot
  config.Verbose       = *optVerbose
  if *optSeed == "" {
    config.Seed = time.Now().UnixNano()
  } else {
    if seed, err := strconv.ParseInt(*optSeed, 10, 64); err != nil {
      log.Fatalf("invalid seed `%s'", *optSeed)
    } else {
      config.Seed = seed
    }
  }
  if *optConfig != "" {
    if err := importParameters(&config, *optConfig); err != nil {
      log.Fatal(err)
    }
  }
  if config.K < 1 || config.Restarts < 1 || config.Iterations < 0 || config.Threads < 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  filenameFasta := ""
  filenameOut   := ""
  if len(options.Args()) >= 2 {
    filenameFasta = options.Args()[1]
  }
  if len(options.Args()) == 3 {
    filenameOut   = options.Args()[2]
  }
  motifSearch(config, filenameFasta, filenameOut)
}

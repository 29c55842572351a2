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
import   "strings"

import   "github.com/spf13/viper"

/* -------------------------------------------------------------------------- */

// Read search parameters from a configuration file. Parameters missing in
// the file keep the values given on the command line.
func importParameters(config *Config, filename string) error {
  v := viper.New()
  v.SetConfigFile(filename)

  v.SetDefault("method",          config.Method)
  v.SetDefault("k",               config.K)
  v.SetDefault("pseudocounts",    config.Pseudocounts)
  v.SetDefault("restarts",        config.Restarts)
  v.SetDefault("iterations",      config.Iterations)
  v.SetDefault("seed",            config.Seed)
  v.SetDefault("threads",         config.Threads)
  v.SetDefault("save-profile",    config.SaveProfile)
  v.SetDefault("save-trace-plot", config.SaveTracePlot)
  v.SetDefault("verbose",         config.Verbose)

  if err := v.ReadInConfig(); err != nil {
    return fmt.Errorf("reading parameter file `%s' failed: %w", filename, err)
  }
  if err := v.Unmarshal(config); err != nil {
    return fmt.Errorf("invalid parameter file `%s': %w", filename, err)
  }
  config.Method = strings.ToLower(config.Method)
  return nil
}

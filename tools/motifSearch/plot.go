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

import   "log"

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

/* -------------------------------------------------------------------------- */

func newTracePlot(config Config, trace []float64) (*plot.Plot, error) {
  xy := make(plotter.XYs, len(trace))
  for i := 0; i < len(trace); i++ {
    xy[i].X = float64(i)
    xy[i].Y = trace[i]
  }
  p := plot.New()
  p.Title.Text   = config.Method + " motif search"
  p.X.Label.Text = "iteration"
  p.Y.Label.Text = "entropy"

  if err := plotutil.AddLines(p, xy); err != nil {
    return nil, err
  }
  return p, nil
}

func saveTracePlot(config Config, filename string, trace []float64) {
  p, err := newTracePlot(config, trace)
  if err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatalf("saving plot to `%s' failed: %v", filename, err)
  }
  PrintStderr(config, 1, "Wrote entropy trace plot to `%s'\n", filename)
}

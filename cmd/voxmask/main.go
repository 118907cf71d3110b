// Command-line driver for the voxmask sparse boolean grid.
// Builds a grid, runs a small fill-and-carve workload, and reports the
// materialised structure.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/janelia-flyem/voxmask/grid"
	"github.com/janelia-flyem/voxmask/voxmask"
)

var (
	// Display usage if true.
	showHelp = flag.Bool("help", false, "")

	// Run in verbose mode if true.
	runVerbose = flag.Bool("verbose", false, "")

	// Path to a TOML configuration file.
	configFile = flag.String("config", "", "")

	// Path to a log file.  Overrides the configuration file.
	logFile = flag.String("logfile", "", "")

	// Side of the cubic region filled by the demo workload.
	fillSide = flag.Int64("fillside", 16, "")
)

const helpMessage = `
voxmask exercises a sparse boolean volumetric grid

Usage: voxmask [options]

	-config     =string   Path to TOML configuration file.
	-logfile    =string   Path to log file; overrides the configuration file.
	-fillside   =number   Side of the cubic region filled by the demo workload.
	-verbose    (flag)    Run in verbose mode.
	-h, -help   (flag)    Show this message.

The configuration file may provide the grid shape and logging setup:

	[grid]
	shape = [3, 3]

	[logging]
	logfile = "/path/to/voxmask.log"
	max_log_size = 500  # MB
	max_log_age = 30    # days
`

type tomlConfig struct {
	Grid    gridConfig
	Logging voxmask.LogConfig
}

type gridConfig struct {
	Shape []uint8
}

func main() {
	flag.Usage = func() {
		fmt.Print(helpMessage)
	}
	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	config := tomlConfig{Grid: gridConfig{Shape: []uint8{3, 3}}}
	if *configFile != "" {
		if _, err := toml.DecodeFile(*configFile, &config); err != nil {
			fmt.Printf("Could not decode TOML config: %v\n", err)
			os.Exit(1)
		}
	}
	if *logFile != "" {
		config.Logging.Logfile = *logFile
	}
	config.Logging.SetLogger()
	if *runVerbose {
		voxmask.SetLogMode(voxmask.DebugMode)
	}

	g, err := grid.New(grid.Shape(config.Grid.Shape))
	if err != nil {
		voxmask.Criticalf("Invalid grid shape: %v\n", err)
		os.Exit(1)
	}
	voxmask.Infof("Running demo workload on shape %s grid\n", g.Shape())

	runWorkload(g, *fillSide)

	fmt.Println(g.Stats())
	voxmask.Shutdown()
}

// runWorkload fills a solid cube of the given side at the origin, then
// carves the half-side cube back out of its corner.
func runWorkload(g *grid.Grid, side int64) {
	timelog := voxmask.NewTimeLog()

	var p voxmask.Point3d
	for p[0] = 0; p[0] < side; p[0]++ {
		for p[1] = 0; p[1] < side; p[1]++ {
			for p[2] = 0; p[2] < side; p[2]++ {
				g.Set(p, true)
			}
		}
	}
	timelog.Infof("Filled %d^3 region", side)

	carve := side / 2
	corner := voxmask.Point3d{side - carve, side - carve, side - carve}
	for p[0] = 0; p[0] < carve; p[0]++ {
		for p[1] = 0; p[1] < carve; p[1]++ {
			for p[2] = 0; p[2] < carve; p[2]++ {
				g.Reset(corner.Add(p))
			}
		}
	}
	timelog.Infof("Carved %d^3 region back out", carve)
}

package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/ngrash/go-chrono/calmath"
	"github.com/ngrash/go-chrono/tsparse"
	"github.com/ngrash/go-chrono/tzres"
)

var (
	gridFlag = flag.Duration("grid", 15*time.Minute, "Grid to round to")
	zoneFlag = flag.String("zone", "", "Default zone for timestamps without a zone designator")
)

const format = "2006-01-02T15:04:05.000000Z07:00"

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) != 1 {
		fmt.Println("Usage: tsround [-grid 15m] [-zone Europe/Helsinki] <timestamp>")
		os.Exit(1)
	}

	var def *time.Location
	if *zoneFlag != "" {
		loc, err := tzres.Resolve(*zoneFlag)
		if err != nil {
			fmt.Println("resolving zone:", err)
			os.Exit(1)
		}
		def = loc
	}

	in, err := tsparse.ParseIn(args[0], def)
	if err != nil {
		fmt.Println("parsing:", err)
		os.Exit(1)
	}

	fmt.Println("parsed =", in.Format(format))
	fmt.Println("floor  =", calmath.Floor(in.Time, *gridFlag).Format(format))
	fmt.Println("ceil   =", calmath.Ceil(in.Time, *gridFlag).Format(format))
}

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/ngrash/go-chrono/tzres"
)

var windowsFlag = flag.Bool("windows", false, "Also print the Windows zone display name")

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		fmt.Println("Usage: tzoffset [-windows] <zone> [<zone> ...]")
		os.Exit(1)
	}

	for _, id := range args {
		loc, err := tzres.Resolve(id)
		if err != nil {
			fmt.Println("resolving zone:", err)
			os.Exit(1)
		}
		hours, err := tzres.CurrentOffsetHours(id)
		if err != nil {
			fmt.Println("resolving offset:", err)
			os.Exit(1)
		}
		fmt.Printf("%s = %s, UTC%+d\n", id, loc, hours)
		if *windowsFlag {
			if win, ok := tzres.ToWindows(loc.String()); ok {
				fmt.Println("  windows =", win)
			} else {
				fmt.Println("  windows = (none)")
			}
		}
	}
}

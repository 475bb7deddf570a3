package main

import (
	"os"

	"github.com/ayoisaiah/pomo/app"
	"github.com/ayoisaiah/pomo/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}

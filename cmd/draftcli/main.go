// Command draftcli inspects and edits a decoded drawing from the terminal.
//
// Usage:
//
//	draftcli summary plan.json
//	draftcli layers plan.json
//	draftcli texts plan.json
//	draftcli call plan.json get_area '{"id":"1A"}'
package main

import (
	"fmt"
	"os"

	"github.com/draftkit/draftkit"
)

func main() {
	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}
	command, drawing := os.Args[1], os.Args[2]

	session, err := draftkit.Open(drawing)
	if err != nil {
		fmt.Fprintf(os.Stderr, "draftcli: %v\n", err)
		os.Exit(1)
	}

	switch command {
	case "summary":
		err = printSummary(os.Stdout, session.Summary())
	case "layers":
		err = printLayers(os.Stdout, session.Store().Layers())
	case "texts":
		err = printTexts(os.Stdout, session.Summary())
	case "call":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		args := "{}"
		if len(os.Args) > 4 {
			args = os.Args[4]
		}
		err = callTool(os.Stdout, session, os.Args[3], args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "draftcli: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: draftcli <summary|layers|texts|call> <drawing.json> [tool] [args-json]")
}

// Command radial renders radial bar charts from JSON datasets.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tmaycock/radial-toolkit/pkg/chart"
	"github.com/tmaycock/radial-toolkit/pkg/radial"
)

const usage = `radial - radial bar chart toolkit

Usage:
  radial <command> [options]

Commands:
  render     Render a dataset to SVG or PNG
  info       Show dataset information
  validate   Validate a dataset file
  sample     Write the built-in sample dataset as JSON

Examples:
  radial render data.json -o chart.svg
  radial render data.json -o chart.png --print
  radial render data.json -o chart.svg -w 800 -H 800 -t "Feature importance"
  radial sample -o data.json
  radial info data.json

Use "radial <command> -h" for more information about a command.
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		cmdRender(args)
	case "info":
		cmdInfo(args)
	case "validate":
		cmdValidate(args)
	case "sample":
		cmdSample(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		fmt.Print(usage)
		os.Exit(1)
	}
}

func cmdRender(args []string) {
	if len(args) < 1 || args[0] == "-h" {
		fmt.Fprintln(os.Stderr, "Usage: radial render <input.json> [-o output] [--print] [-w width] [-H height] [-t title]")
		os.Exit(1)
	}

	input := args[0]
	var output, title string
	usePrint := false
	width, height := 0, 0

	for i := 1; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		case "--print":
			usePrint = true
		case "-w", "--width":
			if i+1 < len(args) {
				width, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "-H", "--height":
			if i+1 < len(args) {
				height, _ = strconv.Atoi(args[i+1])
				i++
			}
		case "-t", "--title":
			if i+1 < len(args) {
				title = args[i+1]
				i++
			}
		}
	}

	d, err := chart.LoadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", input, err)
		os.Exit(1)
	}

	style := radial.DefaultStyle()
	if usePrint {
		style = radial.PrintStyle()
	}
	if width > 0 {
		style.Width = width
	}
	if height > 0 {
		style.Height = height
	}
	style.Title = title

	c, err := radial.New(d, style)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if output == "" {
		ext := filepath.Ext(input)
		output = strings.TrimSuffix(input, ext) + ".svg"
	}

	switch filepath.Ext(output) {
	case ".svg":
		err = os.WriteFile(output, []byte(c.SVG()), 0644)
	case ".png":
		f, ferr := os.Create(output)
		if ferr != nil {
			err = ferr
			break
		}
		err = c.PNG(f)
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown output format: %s\n", filepath.Ext(output))
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}

	fmt.Printf("Written: %s\n", output)
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: radial info <input.json>")
		os.Exit(1)
	}

	d, err := chart.LoadFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", args[0], err)
		os.Exit(1)
	}

	if d.Name != "" {
		fmt.Printf("Name:    %s\n", d.Name)
	}
	fmt.Printf("Records: %d\n", len(d.Records))
	fmt.Printf("Max:     %s\n", strconv.FormatFloat(d.MaxValue(), 'f', -1, 64))
	for _, r := range d.Sorted() {
		fmt.Printf("  %-14s %s\n", r.Label, strconv.FormatFloat(r.Value, 'f', -1, 64))
	}
}

func cmdValidate(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: radial validate <input.json>")
		os.Exit(1)
	}

	if _, err := chart.LoadFile(args[0]); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Valid")
}

func cmdSample(args []string) {
	output := "sample.json"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-o", "--output":
			if i+1 < len(args) {
				output = args[i+1]
				i++
			}
		}
	}

	if err := chart.WriteFile(output, chart.Default(), true); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", output, err)
		os.Exit(1)
	}
	fmt.Printf("Written: %s\n", output)
}

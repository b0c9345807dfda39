package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"

	"github.com/rawbytedev/packbits/pkg/checksum"
)

type sumResult struct {
	File      string `json:"file"`
	Algorithm string `json:"algorithm"`
	Value     string `json:"value"`
}

func runSum(args []string) error {
	fs := flag.NewFlagSet("sum", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "emit JSON instead of a table")
	algos := fs.String("a", "", "comma-separated algorithms (default: all)")
	fs.Parse(args)
	if fs.NArg() == 0 {
		return errors.New("sum: at least one file expected")
	}

	names := checksum.Names()
	if *algos != "" {
		names = strings.Split(*algos, ",")
	}

	var results []sumResult
	for _, path := range fs.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, name := range names {
			fn, err := checksum.ByName(strings.TrimSpace(name))
			if err != nil {
				return fmt.Errorf("sum: %q: %w", name, err)
			}
			results = append(results, sumResult{
				File:      path,
				Algorithm: strings.TrimSpace(name),
				Value:     fmt.Sprintf("0x%x", fn(data)),
			})
		}
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"File", "Algorithm", "Value"})
	for _, r := range results {
		table.Append([]string{r.File, r.Algorithm, r.Value})
	}
	table.Render()
	return nil
}

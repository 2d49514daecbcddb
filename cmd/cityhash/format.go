package main

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"
	"github.com/segmentio/encoding/json"
)

type result struct {
	Name      string `json:"name"`
	Algorithm string `json:"algorithm"`
	Size      int    `json:"size"`
	// Group is shared by the inputs with identical content, numbered in
	// order of first appearance.
	Group int32       `json:"group"`
	Sum   fingerprint `json:"hash"`
}

type format struct {
	name string
	// bits is the only hash size the format can render, zero means any.
	bits  int
	write func(io.Writer, []result) error
}

var formats = map[string]*format{
	"text":  {name: "text", write: writeText},
	"json":  {name: "json", write: writeJSON},
	"table": {name: "table", write: writeTable},
	"uuid":  {name: "uuid", bits: 128, write: writeUUID},
}

func lookupFormat(name string) (*format, error) {
	if f, ok := formats[strings.ToLower(name)]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("unknown format %q (expected one of %s)", name, strings.Join(formatNames(), ", "))
}

func formatNames() []string {
	names := make([]string, 0, len(formats))
	for name := range formats {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// writeText prints one "<hash>  <name>" line per result, the layout of the
// sha256sum family of tools.
func writeText(w io.Writer, results []result) error {
	b := bufio.NewWriter(w)
	for _, r := range results {
		fmt.Fprintf(b, "%s  %s\n", r.Sum, r.Name)
	}
	return b.Flush()
}

// writeJSON prints one JSON object per line.
func writeJSON(w io.Writer, results []result) error {
	enc := json.NewEncoder(w)
	for i := range results {
		if err := enc.Encode(&results[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeTable(w io.Writer, results []result) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Name", "Algorithm", "Size", "Group", "Hash"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	for _, r := range results {
		table.Append([]string{r.Name, r.Algorithm, strconv.Itoa(r.Size), strconv.Itoa(int(r.Group)), r.Sum.String()})
	}
	table.Render()
	return nil
}

func writeUUID(w io.Writer, results []result) error {
	b := bufio.NewWriter(w)
	for _, r := range results {
		id, err := uuid.FromBytes(r.Sum)
		if err != nil {
			return fmt.Errorf("%s: %w", r.Name, err)
		}
		fmt.Fprintf(b, "%s  %s\n", id, r.Name)
	}
	return b.Flush()
}

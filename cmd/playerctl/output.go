package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/goccy/go-json"

	"github.com/sandai/players/src/domain/player"
)

// Output formats players as text or json.
type Output struct {
	format string
	w      io.Writer
}

func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

func (o *Output) Players(list []*player.Player) error {
	if o.format == "json" {
		enc := json.NewEncoder(o.w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	}

	tw := tabwriter.NewWriter(o.w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tDISPLAY NAME\tACTIVE\tCREATED AT")
	for _, p := range list {
		fmt.Fprintf(tw, "%s\t%s\t%t\t%s\n", p.ID(), p.DisplayName(), p.IsActive(), p.CreatedAt().Format(time.RFC3339))
	}
	return tw.Flush()
}

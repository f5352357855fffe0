package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/SebastiaanKlippert/go-jdn"
)

func render(w io.Writer, format string, results []jdn.ConversionResult) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(results); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		return renderText(w, results)
	}
	return fmt.Errorf("unsupported output format %q", format)
}

func renderText(w io.Writer, results []jdn.ConversionResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "JDN\tGREGORIAN\tJULIAN\tWEEKDAY")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.JDN, r.ISO, jdn.FormatIso(r.Julian), r.DayOfWeek)
	}
	return tw.Flush()
}

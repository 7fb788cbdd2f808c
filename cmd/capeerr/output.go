package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"

	"github.com/avila-r/cape"
	"github.com/avila-r/cape/property"
	"github.com/avila-r/cape/trait"
)

var (
	red  = color.New(color.FgRed).SprintFunc()
	bold = color.New(color.Bold).SprintFunc()
)

// codeInfo describes one bound class.
type codeInfo struct {
	Code      string   `json:"code" yaml:"code"`
	Value     int32    `json:"value" yaml:"value"`
	Symbol    string   `json:"symbol" yaml:"symbol"`
	Interface string   `json:"interface" yaml:"interface"`
	Class     string   `json:"class" yaml:"class"`
	Lineage   []string `json:"lineage" yaml:"lineage"`
	Traits    []string `json:"traits,omitempty" yaml:"traits,omitempty"`
	Payload   []string `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// translation is the outcome of running a bare failure through the gateway.
type translation struct {
	Code        string `json:"code" yaml:"code"`
	Interface   string `json:"interface" yaml:"interface"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Summary     string `json:"summary" yaml:"summary"`
	Trace       string `json:"trace,omitempty" yaml:"trace,omitempty"`
}

func describe(class *cape.ErrorClass) codeInfo {
	info := codeInfo{
		Code:      class.Code.Hex(),
		Value:     int32(class.Code),
		Symbol:    class.Code.String(),
		Interface: class.Interface,
		Class:     class.Name,
	}

	for _, ancestor := range class.Lineage() {
		info.Lineage = append(info.Lineage, ancestor.Interface)
	}

	for t := range class.Traits {
		info.Traits = append(info.Traits, t.String())
	}
	slices.Sort(info.Traits)

	info.Payload = payloadOf(class)
	return info
}

// payloadOf lists the property keys an error of class carries besides the
// generic ECapeUser fields.
func payloadOf(class *cape.ErrorClass) []string {
	var keys []string
	if class.Has(trait.Argument()) {
		keys = append(keys, property.Position)
	}
	if class.Has(trait.Boundaries()) {
		keys = append(keys, property.LowerBound, property.UpperBound, property.Value, property.Type)
	}
	if class.Is(cape.BadInvOrder) {
		keys = append(keys, property.RequestedOperation)
	}
	if class.Is(cape.PersistenceNotFound) {
		keys = append(keys, property.ItemName)
	}
	return keys
}

type formatter func(w io.Writer, data any) error

func formatterFor(format string) (formatter, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return writeTable, nil
	case "json":
		return writeJSON, nil
	case "yaml":
		return writeYAML, nil
	default:
		return nil, errors.NotValidf("output format %q", format)
	}
}

func render(cmd *cobra.Command, data any) error {
	format, err := formatterFor(viper.GetString("output.format"))
	if err != nil {
		return err
	}
	return format(cmd.OutOrStdout(), data)
}

func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return errors.Trace(encoder.Encode(data))
}

func writeYAML(w io.Writer, data any) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(data); err != nil {
		return errors.Trace(err)
	}
	return errors.Trace(encoder.Close())
}

func writeTable(w io.Writer, data any) error {
	switch v := data.(type) {
	case []codeInfo:
		if len(v) == 0 {
			_, err := fmt.Fprintln(w, "No codes found.")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "CODE\tSYMBOL\tINTERFACE\tCLASS")
		for _, row := range v {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Code, row.Symbol, row.Interface, row.Class)
		}
		return tw.Flush()
	case codeInfo:
		fields(w,
			"Code", fmt.Sprintf("%s (%d)", v.Code, v.Value),
			"Symbol", v.Symbol,
			"Interface", v.Interface,
			"Class", v.Class,
			"Lineage", strings.Join(v.Lineage, " < "),
			"Traits", strings.Join(v.Traits, ", "),
			"Payload", strings.Join(v.Payload, ", "),
		)
		return nil
	case translation:
		fields(w,
			"Code", v.Code,
			"Interface", v.Interface,
			"Name", v.Name,
			"Description", v.Description,
			"Summary", v.Summary,
			"Trace", v.Trace,
		)
		return nil
	default:
		_, err := fmt.Fprintln(w, data)
		return err
	}
}

// fields prints label/value pairs, skipping empty values.
func fields(w io.Writer, pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		if pairs[i+1] == "" {
			continue
		}
		fmt.Fprintf(w, "%s %s\n", bold(fmt.Sprintf("%-12s", pairs[i]+":")), pairs[i+1])
	}
}

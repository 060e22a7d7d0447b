package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/martijn/bizdesk/internal/api/util"
)

const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"

	timeLayout = "2006-01-02 15:04:05"
)

var outputFormat string

// resolveOutput picks the output format: the --output flag when given,
// otherwise a table on a terminal and JSON when piped.
func resolveOutput(w io.Writer) (string, error) {
	switch strings.ToLower(outputFormat) {
	case outputTable, outputJSON, outputYAML:
		return strings.ToLower(outputFormat), nil
	case "":
		if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return outputTable, nil
		}
		return outputJSON, nil
	default:
		return "", fmt.Errorf("invalid output format: %s (expected table, json or yaml)", outputFormat)
	}
}

// render writes v as JSON or YAML, or hands a tabwriter to table.
func render(cmd *cobra.Command, v interface{}, table func(w *tabwriter.Writer)) error {
	out := cmd.OutOrStdout()
	format, err := resolveOutput(out)
	if err != nil {
		return err
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		return writeYAML(out, v)
	default:
		w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		table(w)
		return w.Flush()
	}
}

// writeYAML goes through JSON so YAML keys match the API's field names.
func writeYAML(out io.Writer, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	plainStyle(&node)

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return enc.Close()
}

// plainStyle drops the flow and quoting styles inherited from JSON.
func plainStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		plainStyle(c)
	}
}

// listFlags are shared by every list subcommand.
type listFlags struct {
	query   string
	order   string
	page    int
	perPage int
}

func (f *listFlags) register(cmd *cobra.Command, queryExample, orderExample string) {
	cmd.Flags().StringVarP(&f.query, "query", "q", "", "filter, e.g. "+queryExample)
	cmd.Flags().StringVar(&f.order, "order", "", "ordering, e.g. "+orderExample)
	cmd.Flags().IntVar(&f.page, "page", 1, "page number (1-based)")
	cmd.Flags().IntVar(&f.perPage, "per-page", 0, "page size, 0 for all")
}

func (f *listFlags) parse(fields util.FieldSet) (util.ListFilter, error) {
	return util.ParseListFilter(util.ListParams{
		Query:   f.query,
		Order:   f.order,
		Page:    strconv.Itoa(f.page),
		PerPage: strconv.Itoa(f.perPage),
	}, fields)
}

func parseIDArg(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid id: %s", arg)
	}
	return id, nil
}

// confirm asks a yes/no question on the command's input unless skip is set.
func confirm(cmd *cobra.Command, skip bool, prompt string) bool {
	if skip {
		return true
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (yes/no): ", prompt)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if strings.TrimSpace(answer) != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")
		return false
	}
	return true
}

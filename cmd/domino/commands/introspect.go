package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/marshallshelly/domino/cmd/domino/output"
	"github.com/marshallshelly/domino/pkg/naming"
	"github.com/marshallshelly/domino/pkg/schema"
	"github.com/marshallshelly/domino/pkg/typemap"
)

var (
	// Introspect flags
	tableName string
)

// introspectCmd shows what scaffold would see
var introspectCmd = &cobra.Command{
	Use:   "introspect",
	Short: "Introspect database schema",
	Long: `Introspect lists tables and their columns together with the model name
and the attribute type each column maps to. Columns with an unmapped type are
shown with a dash and are left out of model generation.

Examples:
  domino introspect --db db/development.sqlite3     # Show all tables
  domino introspect --table users                   # Show specific table
  domino introspect --json                          # Output in JSON format`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntrospect(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(introspectCmd)

	introspectCmd.Flags().StringVarP(&tableName, "table", "t", "", "Specific table to introspect")
}

// tableInfo is the introspect view of a table.
type tableInfo struct {
	Name    string       `json:"name"`
	Model   string       `json:"model"`
	Columns []columnInfo `json:"columns"`
}

type columnInfo struct {
	schema.Column
	Type string `json:"type,omitempty"`
}

func runIntrospect(ctx context.Context) error {
	conn, err := openSource(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close()
	}()

	tables := []string{tableName}
	if tableName == "" {
		tables, err = conn.Tables(ctx)
		if err != nil {
			return fmt.Errorf("failed to introspect schema: %w", err)
		}
	}

	if len(tables) == 0 {
		output.Warning("No tables found in database")
		return nil
	}

	infos, err := describeTables(ctx, conn, naming.New(cfg.Naming), tables)
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if tableName != "" {
			return enc.Encode(infos[0])
		}
		return enc.Encode(infos)
	}

	output.Section(fmt.Sprintf("Database Schema (%d tables)", len(infos)))
	for _, info := range infos {
		printTable(info)
		fmt.Println()
	}
	return nil
}

func describeTables(ctx context.Context, src schema.Source, namer *naming.Namer, tables []string) ([]tableInfo, error) {
	infos := make([]tableInfo, 0, len(tables))
	for _, table := range tables {
		columns, err := src.Columns(ctx, table)
		if err != nil {
			return nil, fmt.Errorf("failed to introspect table %s: %w", table, err)
		}

		info := tableInfo{Name: table, Model: namer.ModelName(table)}
		for _, col := range columns {
			ci := columnInfo{Column: col}
			if t, ok := typemap.Map(col.SQLType); ok {
				ci.Type = t.String()
			}
			info.Columns = append(info.Columns, ci)
		}
		infos = append(infos, info)
	}
	return infos, nil
}

func printTable(info tableInfo) {
	title := fmt.Sprintf("Table: %s → %s", info.Name, info.Model)
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", len([]rune(title))))
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tSQL TYPE\tNULLABLE\tATTRIBUTE")
	_, _ = fmt.Fprintln(w, "----\t--------\t--------\t---------")

	for _, col := range info.Columns {
		nullable := "NO"
		if col.Nullable {
			nullable = "YES"
		}

		attr := col.Type
		switch {
		case col.Name == schema.PrimaryKeyColumn:
			attr = "(primary key)"
		case attr == "":
			attr = "-"
		}

		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", col.Name, col.SQLType, nullable, attr)
	}
	_ = w.Flush()
}

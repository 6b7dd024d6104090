package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/qlbm-go/qlbm/store"
)

var catalogPath string // Render catalog database

// writeRenderList prints one row per render, newest first.
func writeRenderList(ctx context.Context, w io.Writer, db *store.DB) error {
	renders, err := db.ListRenders(ctx)
	if err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOMPONENT\tBACKEND\tCREATED")
	for _, r := range renders {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.ID, r.Component, r.Backend, r.CreatedAt.Format(time.RFC3339))
	}
	return tw.Flush()
}

// writeRender prints a stored render. Text content is written as is; binary
// content (PNG) is only summarized unless raw is set.
func writeRender(ctx context.Context, w io.Writer, db *store.DB, id string, raw bool) error {
	r, err := db.GetRender(ctx, id)
	if err != nil {
		return err
	}
	if raw || utf8.Valid(r.Content) {
		_, err = w.Write(r.Content)
		return err
	}
	_, err = fmt.Fprintf(w, "render %s: %s drawn with %s, %d bytes of binary content (use --raw to write it)\n",
		r.ID, r.Component, r.Backend, len(r.Content))
	return err
}

func openCatalog() *store.DB {
	db, err := store.Open(catalogPath)
	if err != nil {
		logrus.Fatalf("Opening catalog %s: %v", catalogPath, err)
	}
	return db
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Browse renders recorded with `qlbm draw --store`",
}

// --- qlbm catalog list ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded renders",
	Run: func(cmd *cobra.Command, args []string) {
		db := openCatalog()
		defer db.Close()
		if err := writeRenderList(cmd.Context(), os.Stdout, db); err != nil {
			logrus.Fatalf("Listing renders: %v", err)
		}
	},
}

// --- qlbm catalog show ---

var catalogRaw bool // Write binary content to stdout

var catalogShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a recorded render",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		db := openCatalog()
		defer db.Close()
		if err := writeRender(cmd.Context(), os.Stdout, db, args[0], catalogRaw); err != nil {
			logrus.Fatalf("Showing render: %v", err)
		}
	},
}

func init() {
	catalogCmd.PersistentFlags().StringVar(&catalogPath, "store", "qlbm.db", "Render catalog database")
	catalogShowCmd.Flags().BoolVar(&catalogRaw, "raw", false, "Write binary content to stdout")

	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogShowCmd)
	rootCmd.AddCommand(catalogCmd)
}

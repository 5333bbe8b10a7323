package main

import (
	"fmt"
	"strings"

	"webterm/internal/catalog"

	"github.com/spf13/cobra"
)

func newCatalogCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect virtual filesystem catalogs",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the active catalog as YAML",
		Long: `Dump prints the catalog sessions would use: the configured catalog file,
or the built-in tree. The output is a valid catalog file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(opts.cfg)
			if err != nil {
				return err
			}
			data, err := c.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "check FILE",
		Short: "Validate a catalog file",
		Long: `Check loads a catalog file and reports its size. Files that are listed in a
directory but have no content are reported as warnings; cat fails on them.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := catalog.LoadFile(args[0])
			if err != nil {
				return err
			}
			for _, path := range missingFiles(c) {
				fmt.Fprintf(cmd.OutOrStdout(), "warning: %s is listed but has no content\n", path)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%d directories, %d files)\n",
				args[0], len(c.Directories()), len(c.Files()))
			return nil
		},
	})

	return cmd
}

// missingFiles returns the listed file children that have no content entry
func missingFiles(c *catalog.Catalog) []string {
	var missing []string
	for _, dir := range c.Directories() {
		children, err := c.ListChildren(dir)
		if err != nil {
			continue
		}
		for _, child := range children {
			if child == "" || strings.HasSuffix(child, "/") {
				continue
			}
			if !c.HasFile(dir + child) {
				missing = append(missing, dir+child)
			}
		}
	}
	return missing
}

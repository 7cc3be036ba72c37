package main

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	dropcap "github.com/goliatone/go-dropcap"
	"github.com/goliatone/go-dropcap/pkg/validation"
)

var outputFormat string

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "Print the ordered field schema",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := hostFromFlags()
		if err != nil {
			return err
		}
		schema, err := h.Schema(dropcap.Slug)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), outputFormat, schema.Fields)
	},
}

var descriptorCmd = &cobra.Command{
	Use:   "descriptor",
	Short: "Print the module descriptor",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := hostFromFlags()
		if err != nil {
			return err
		}
		schema, err := h.Schema(dropcap.Slug)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), outputFormat, schema.Descriptor)
	},
}

var transitionsCmd = &cobra.Command{
	Use:   "transitions",
	Short: "Print the transition map",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := hostFromFlags()
		if err != nil {
			return err
		}
		transitions, err := h.Transitions(dropcap.Slug)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), outputFormat, transitions)
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the attribute schema (OpenAPI schema object, JSON)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		h, err := hostFromFlags()
		if err != nil {
			return err
		}
		handle, err := h.Registry().Get(dropcap.Slug)
		if err != nil {
			return err
		}
		return encode(cmd.OutOrStdout(), "json", validation.Schema(handle.Fields()))
	},
}

func init() {
	for _, cmd := range []*cobra.Command{fieldsCmd, descriptorCmd, transitionsCmd} {
		cmd.Flags().StringVarP(&outputFormat, "format", "f", "json", "output format (json or yaml)")
		rootCmd.AddCommand(cmd)
	}
	rootCmd.AddCommand(schemaCmd)
}

func encode(w io.Writer, format string, value any) error {
	switch format {
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

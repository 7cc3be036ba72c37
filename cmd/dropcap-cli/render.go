package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-dropcap/pkg/host"
	"github.com/goliatone/go-dropcap/pkg/modules/dropcap"
	"github.com/goliatone/go-dropcap/pkg/validation"
)

var (
	renderAttrs       string
	renderLetter      string
	renderBody        string
	renderInteractive bool
	renderWatch       bool
	renderStrict      bool
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one instance and print its markup and stylesheet",
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderAttrs, "attrs", "a", "", "YAML file of instance attributes")
	renderCmd.Flags().StringVar(&renderLetter, "letter", "", "drop cap letter (overrides --attrs)")
	renderCmd.Flags().StringVar(&renderBody, "body", "", "body content (overrides --attrs)")
	renderCmd.Flags().BoolVarP(&renderInteractive, "interactive", "i", false, "prompt for letter, body and letter background")
	renderCmd.Flags().BoolVarP(&renderWatch, "watch", "w", false, "re-render when the --attrs file changes")
	renderCmd.Flags().BoolVar(&renderStrict, "strict", false, "fail when attributes do not validate")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	h, logger, err := newHost(cfg, nil)
	if err != nil {
		return err
	}
	if renderWatch && renderAttrs == "" {
		return fmt.Errorf("--watch requires --attrs")
	}

	once := func() error {
		attrs, err := collectAttrs()
		if err != nil {
			return err
		}
		return renderOnce(cmd.Context(), cmd.OutOrStdout(), h, logger, attrs)
	}
	if err := once(); err != nil {
		return err
	}
	if !renderWatch {
		return nil
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	return watchFile(ctx, renderAttrs, logger, func() {
		if err := once(); err != nil {
			logger.Error().Err(err).Msg("re-render failed")
		}
	})
}

func collectAttrs() (map[string]string, error) {
	attrs := map[string]string{}
	if renderAttrs != "" {
		loaded, err := loadAttrs(renderAttrs)
		if err != nil {
			return nil, err
		}
		attrs = loaded
	}
	if renderLetter != "" {
		attrs[dropcap.FieldLetter] = renderLetter
	}
	if renderBody != "" {
		attrs[dropcap.FieldContent] = renderBody
	}
	if renderInteractive {
		if err := promptAttrs(attrs); err != nil {
			return nil, err
		}
	}
	return attrs, nil
}

func loadAttrs(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attrs: %w", err)
	}
	attrs := map[string]string{}
	if err := yaml.Unmarshal(data, &attrs); err != nil {
		return nil, fmt.Errorf("parse attrs: %w", err)
	}
	return attrs, nil
}

func promptAttrs(attrs map[string]string) error {
	letter := attrs[dropcap.FieldLetter]
	if letter == "" {
		letter = dropcap.DefaultLetter
	}
	if err := survey.AskOne(&survey.Input{
		Message: "Drop cap letter:",
		Default: letter,
	}, &letter); err != nil {
		return fmt.Errorf("prompt letter: %w", err)
	}
	attrs[dropcap.FieldLetter] = letter

	body := attrs[dropcap.FieldContent]
	if err := survey.AskOne(&survey.Multiline{
		Message: "Body text:",
		Default: body,
	}, &body); err != nil {
		return fmt.Errorf("prompt body: %w", err)
	}
	attrs[dropcap.FieldContent] = body

	color := attrs[dropcap.FieldBackgroundColor]
	if err := survey.AskOne(&survey.Input{
		Message: "Letter background color (empty for none):",
		Default: color,
	}, &color); err != nil {
		return fmt.Errorf("prompt background: %w", err)
	}
	if strings.TrimSpace(color) != "" {
		attrs[dropcap.FieldBackgroundColor] = color
	}
	return nil
}

func renderOnce(ctx context.Context, out io.Writer, h *host.Host, logger zerolog.Logger, attrs map[string]string) error {
	handle, err := h.Registry().Get(dropcap.Slug)
	if err != nil {
		return err
	}
	result := validation.ValidateAttributes(handle.Fields(), attrs)
	for _, issue := range result.Issues {
		logger.Warn().Str("field", issue.Field).Str("value", issue.Value).Msg(issue.Message)
	}
	if renderStrict {
		if err := result.Err(); err != nil {
			return err
		}
	}

	h.Reset()
	fragment, err := h.RenderInstance(ctx, dropcap.Slug, attrs, "")
	if err != nil {
		return err
	}
	fmt.Fprintln(out, fragment.HTML)
	if sheet := h.Stylesheet(); sheet != "" {
		fmt.Fprintln(out, "<style>")
		fmt.Fprint(out, sheet)
		fmt.Fprintln(out, "</style>")
	}
	return nil
}

// watchFile calls onChange whenever path is written or recreated. The parent
// directory is watched so atomic saves are seen.
func watchFile(ctx context.Context, path string, logger zerolog.Logger, onChange func()) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("absolute path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	logger.Info().Str("path", abs).Msg("watching attributes for changes")

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				logger.Debug().Str("event", event.Op.String()).Msg("attributes changed")
				onChange()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error().Err(err).Msg("file watcher error")
		}
	}
}

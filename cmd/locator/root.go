package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pharmacy-locator/internal/bootstrap"
	"github.com/pharmacy-locator/internal/config"
	"github.com/pharmacy-locator/internal/pkg/logger"
	"github.com/pharmacy-locator/internal/usecase/dto"
)

type options struct {
	location  string
	situation string
	radius    int
	limit     int
	format    string
	verbose   bool
}

// locateFunc - точка подмены сценария в тестах
type locateFunc func(ctx context.Context, situation, location string, radiusM, limit int) *dto.LocatorResponse

func newRootCmd(out io.Writer) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "locator",
		Short:   "Find the nearest pharmacies to a location",
		Version: version,
		Long: `
locator геокодирует текст локации и печатает ближайшие аптеки из OpenStreetMap:
сначала те, у которых есть телефон, e-mail или сайт, затем остальные.

$ locator --location "Paris, France" --limit 3 --format pretty
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			log, err := logger.NewCLI(opts.verbose)
			if err != nil {
				return err
			}
			defer log.Sync()

			app := bootstrap.New(cmd.Context(), cfg, log)
			defer app.Close()

			return run(cmd.Context(), out, opts, app.Locator.Locate)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.location, "location", "l", "", "location text, e.g. \"Paris, France\"")
	flags.StringVarP(&opts.situation, "situation", "s", "", "free-text context echoed in the response")
	flags.IntVarP(&opts.radius, "radius", "r", 0, "search radius in meters (default from SEARCH_DEFAULT_RADIUS)")
	flags.IntVarP(&opts.limit, "limit", "n", 0, "maximum number of results (default from SEARCH_DEFAULT_LIMIT)")
	flags.StringVarP(&opts.format, "format", "f", dto.FormatJSON, "output format: json or pretty")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging to stderr")
	_ = cmd.MarkFlagRequired("location")

	return cmd
}

func run(ctx context.Context, out io.Writer, opts *options, locate locateFunc) error {
	if strings.TrimSpace(opts.location) == "" {
		return fmt.Errorf("no location provided")
	}

	format := strings.ToLower(opts.format)
	if format != dto.FormatJSON && format != dto.FormatPretty {
		return fmt.Errorf("unknown format %q: want json or pretty", opts.format)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	resp := locate(ctx, opts.situation, opts.location, opts.radius, opts.limit)

	if format == dto.FormatPretty && resp.Status == dto.StatusOK {
		_, err := fmt.Fprintln(out, dto.RenderPretty(resp))
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(resp)
}

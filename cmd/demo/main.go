package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/comalice/chainx"
	"github.com/comalice/chainx/internal/production"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout))
}

// realMain returns the process exit code so deferred cleanup runs before
// main exits: 0 on success or help, 2 for bad flags or config, 1 otherwise.
func realMain(args []string, stdout io.Writer) int {
	var opts Options
	if _, err := flags.ParseArgs(&opts, args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return 0
		}
		return 2
	}

	cfg, err := LoadConfig(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	cfg = opts.Apply(cfg)

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, stdout, logger); err != nil {
		logger.Error("demo failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// run builds the table, renders it to out and optionally persists it.
func run(ctx context.Context, cfg Config, out io.Writer, logger *zap.Logger) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	table, err := chainx.NewHashTableWithSize(cfg.Rows)
	if err != nil {
		return err
	}
	logger.Info("table created",
		zap.Int("rows", table.Rows()),
		zap.Stringer("strategy", table.Strategy()),
	)

	for i := 0; i < cfg.Keys; i++ {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("interrupted after %d keys: %w", i, err)
			}
		}
		table.Insert(cfg.Prefix + strconv.Itoa(i))
	}
	logger.Debug("keys inserted", zap.Int("keys", table.Size()))

	dump := table.Dump()
	if err := render(out, cfg, dump); err != nil {
		return err
	}

	if cfg.Persist == "" {
		return nil
	}
	p, err := newPersister(cfg.Persist, cfg.Dir)
	if err != nil {
		return err
	}
	snap := production.NewSnapshot(cfg.TableID, table)
	if err := p.Save(ctx, snap); err != nil {
		return fmt.Errorf("persist %s: %w", cfg.TableID, err)
	}
	logger.Info("snapshot saved",
		zap.String("table", snap.TableID),
		zap.String("version", snap.Version),
		zap.String("dir", cfg.Dir),
	)
	return nil
}

func render(out io.Writer, cfg Config, d chainx.Dump) error {
	v := &production.DefaultVisualizer{}
	var (
		data []byte
		err  error
	)
	switch cfg.Format {
	case "dot":
		data = []byte(v.ExportDOT(d))
	case "json":
		data, err = v.ExportJSON(d)
		data = append(data, '\n')
	case "yaml":
		data, err = v.ExportYAML(d)
	case "report":
		data = []byte(production.Analyze(d, cfg.TopK).String())
	default:
		data = []byte(v.ExportText(d))
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", cfg.Format, err)
	}
	if _, err := out.Write(data); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func newPersister(encoding, dir string) (production.Persister, error) {
	switch encoding {
	case "json":
		p, err := production.NewJSONPersister(dir)
		if err != nil {
			return nil, err
		}
		return p, nil
	case "yaml":
		p, err := production.NewYAMLPersister(dir)
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	return nil, fmt.Errorf("unknown persist encoding %q", encoding)
}

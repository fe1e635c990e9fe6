// chaincomplete computes completions for the request snapshots given as
// arguments and prints the results as YAML.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/davecgh/go-spew/spew"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/drogan2233/movecomplete/pkg/completion"
	"github.com/drogan2233/movecomplete/pkg/completionconfig"
	"github.com/drogan2233/movecomplete/pkg/snapshot"
)

func main() {
	log.SetPrefix("chaincomplete: ")
	log.SetFlags(0) // don't print timestamps

	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// response is the output record of one request.
type response struct {
	Request string            `yaml:"request"`
	Result  completion.Result `yaml:"result"`
}

func newApp(stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "chaincomplete",
		Usage:     "complete Move name chains and use declarations",
		ArgsUsage: "REQUEST.yaml...",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "engine configuration file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "override the configured log level",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "write results to this file instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump the decoded engine inputs to stderr",
			},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return fmt.Errorf("at least one request file is required")
	}

	cfg := completionconfig.Default()
	if filename := c.String("config"); filename != "" {
		var err error
		if cfg, err = completionconfig.Load(filename); err != nil {
			return err
		}
	}
	if level := c.String("log-level"); level != "" {
		cfg.LogLevel = level
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: zerolog.SyncWriter(c.App.ErrWriter), NoColor: true}).
		Level(level).
		With().Timestamp().
		Logger()

	engine, err := completion.NewEngine(cfg.Options(logger)...)
	if err != nil {
		return err
	}

	responses, err := completeAll(c, engine, logger)
	if err != nil {
		return err
	}

	if output := c.String("output"); output != "" {
		return snapshot.WriteYAMLFile(output, responses)
	}
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(responses); err != nil {
		return err
	}
	return enc.Close()
}

// completeAll runs the requests concurrently.  Responses keep the argument
// order.
func completeAll(c *cli.Context, engine *completion.Engine, logger zerolog.Logger) ([]response, error) {
	filenames := c.Args().Slice()
	responses := make([]response, len(filenames))
	inputs := make([]*snapshot.Inputs, len(filenames))

	for i, filename := range filenames {
		snap, err := snapshot.ReadFile(filename)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if inputs[i], err = snap.Inputs(); err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		if c.Bool("dump") {
			fmt.Fprintf(c.App.ErrWriter, "# %s\n", filename)
			spew.Fdump(c.App.ErrWriter, inputs[i].Cursor, inputs[i].Aliases)
		}
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, filename := range filenames {
		g.Go(func() error {
			in := inputs[i]
			result := engine.Complete(in.Index, in.Aliases, in.Cursor)
			logger.Info().
				Str("request", filename).
				Int("candidates", len(result.Candidates)).
				Bool("finalized", result.Finalized).
				Msg("completed")
			responses[i] = response{Request: filename, Result: result}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return responses, nil
}

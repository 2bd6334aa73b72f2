// genpost pre-generates puzzle descriptions in bulk. Minimization
// dominates generation time on large boards, so batches are spread
// over a worker pool and streamed to stdout (or a file) one
// "params:desc:solution" line at a time.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/signpost-server/internal/signpost"
)

var log = logrus.New()

var (
	paramsStr string
	count     int
	seed      uint64
	workers   int
	outPath   string
	logPath   string
	withSolve bool
)

func init() {
	flag.StringVar(&paramsStr, "params", "4x4c", `board parameters, e.g. "7x7" or "5x5c"`)
	flag.IntVar(&count, "count", 1, "number of puzzles to generate")
	flag.Uint64Var(&seed, "seed", 0, "random seed (0 picks a random one)")
	flag.IntVar(&workers, "workers", 4, "number of concurrent generators")
	flag.StringVar(&outPath, "out", "-", `output file ("-" for stdout)`)
	flag.StringVar(&logPath, "log", "", "also log to a rotated file")
	flag.BoolVar(&withSolve, "solutions", false, "append the solution to each line")
}

func setupLogging() error {
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logPath == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logPath,
		MaxSize:    50, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.InfoLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return err
	}
	log.AddHook(hook)
	return nil
}

func main() {
	flag.Parse()

	if err := setupLogging(); err != nil {
		log.Fatal("unable to set up logging: ", err)
	}

	params, err := signpost.ParseParams(paramsStr)
	if err != nil {
		log.Fatal("invalid params: ", err)
	}
	if err := params.Validate(true); err != nil {
		log.Fatal("invalid params: ", err)
	}

	out := os.Stdout
	if outPath != "-" {
		out, err = os.Create(outPath)
		if err != nil {
			log.Fatal("unable to create output file: ", err)
		}
		defer out.Close()
	}

	if seed == 0 {
		seed = rand.Uint64()
	}
	log.WithFields(logrus.Fields{
		"params":  params.String(),
		"count":   count,
		"seed":    seed,
		"workers": workers,
	}).Info("generating")

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	w := bufio.NewWriter(out)
	defer w.Flush()

	var mu sync.Mutex
	jobs := make(chan int)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(jobs)
		for i := range count {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for worker := range workers {
		r := rand.New(rand.NewPCG(seed, uint64(worker)))
		g.Go(func() error {
			for i := range jobs {
				desc, solution, err := params.NewGameDesc(r)
				if err != nil {
					return fmt.Errorf("puzzle %d: %w", i, err)
				}

				line := params.String() + ":" + desc
				if withSolve {
					line += ":" + solution
				}

				mu.Lock()
				_, err = fmt.Fprintln(w, line)
				mu.Unlock()
				if err != nil {
					return err
				}

				log.WithFields(logrus.Fields{
					"n":    i,
					"desc": desc,
				}).Debug("generated")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatal("generation failed: ", err)
	}

	log.Info("done")
}

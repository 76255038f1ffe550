// Command euclid-check runs the catalogue of classical theorems and reports
// whether each of them holds numerically.
//
// Usage:
//
//	euclid-check [-j workers] [-run regexp] [-v] [-no-color]
//
// The exit status is 1 if any theorem fails, and 2 for invalid flags.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"regexp"
	"runtime"
	"sync"
	"text/tabwriter"

	"github.com/logrusorgru/aurora"

	"honnef.co/go/euclid"
	"honnef.co/go/euclid/internal/theorem"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type outcome struct {
	theorem.Theorem
	res theorem.Result
	err error
}

func (o outcome) ok() bool { return o.err == nil && o.res.OK() }

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("euclid-check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		flagParallel = fs.Int("j", runtime.GOMAXPROCS(0), "Number of parallel workers")
		flagVerbose  = fs.Bool("v", false, "Log failed constructions to stderr")
		flagRun      = fs.String("run", "", "Only check theorems whose name matches this regexp")
		flagNoColor  = fs.Bool("no-color", false, "Disable colored output")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *flagParallel < 1 {
		fmt.Fprintf(stderr, "-j must be at least 1, got %d\n", *flagParallel)
		return 2
	}
	filter, err := regexp.Compile(*flagRun)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -run pattern: %v\n", err)
		return 2
	}

	if *flagVerbose {
		euclid.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer euclid.SetLogger(nil)
	}

	var selected []theorem.Theorem
	for _, th := range theorem.All() {
		if filter.MatchString(th.Name) {
			selected = append(selected, th)
		}
	}
	if len(selected) == 0 {
		fmt.Fprintln(stdout, "no theorems match")
		return 0
	}

	outcomes := check(selected, *flagParallel)
	if !report(stdout, outcomes, aurora.NewAurora(!*flagNoColor)) {
		return 1
	}
	return 0
}

// check runs the theorems on up to n workers. Outcomes keep the order of ths.
func check(ths []theorem.Theorem, n int) []outcome {
	out := make([]outcome, len(ths))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for range min(n, len(ths)) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				res, err := ths[i].Check()
				euclid.Logger().Debug("checked theorem", "name", ths[i].Name, "max", res.Max(), "err", err)
				out[i] = outcome{ths[i], res, err}
			}
		}()
	}
	for i := range ths {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return out
}

// report prints one line per outcome and reports whether all passed.
func report(w io.Writer, outcomes []outcome, au aurora.Aurora) bool {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	pass := 0
	for _, o := range outcomes {
		var status aurora.Value
		if o.ok() {
			status = au.Green("PASS")
			pass++
		} else {
			status = au.Red("FAIL")
		}
		if o.err != nil {
			fmt.Fprintf(tw, "%s\t%s\terror: %v\n", status, o.Name, o.err)
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\tmax %.3g\tmean %.3g\n", status, o.Name, o.res.Max(), o.res.Mean())
	}
	tw.Flush()
	fmt.Fprintf(w, "%d/%d passed\n", pass, len(outcomes))
	return pass == len(outcomes)
}

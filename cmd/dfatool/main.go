// Command dfatool compiles pattern programs into automata and reports their
// expressions, accepted words, and verdicts.
//
// Usage:
//
//	dfatool -config patterns.yaml [-pattern name] [-export dir]
//	dfatool -alphabet 01ab -src "exactly 2 [01]; oneormore [ab]; accept" 01ab 1a
package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
)

func main() {
	fset := flag.NewFlagSet("dfatool", flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var opts options
	fset.StringVar(&opts.configPath, "config", "", "path to a YAML pattern config")
	fset.StringVar(&opts.pattern, "pattern", "", "only run the named pattern from the config")
	fset.StringVar(&opts.exportDir, "export", "", "write each automaton as YAML into this directory")
	fset.StringVar(&opts.alphabet, "alphabet", "", "alphabet for -src")
	fset.StringVar(&opts.source, "src", "", "pattern program to compile instead of a config")
	fset.IntVar(&opts.wordLimit, "words", 0, "maximum words to print per pattern (0 keeps the config value, -1 is unlimited)")
	fset.BoolVar(&opts.deterministic, "deterministic", false, "fail on overlapping outbound labels")
	fset.Parse(os.Args[1:])
	opts.inputs = fset.Args()

	code := 0
	if err := run(opts, os.Stdout); err != nil {
		klog.Errorf("dfatool: %v", err)
		code = 1
	}
	klog.Flush()
	os.Exit(code)
}

// Package flagx lets several loaders share one command line: each one picks
// out the flags it owns and parses only those.
package flagx

import (
	"flag"
	"io"
	"strings"
)

// Pick returns the arguments that belong to the allowed flags, keeping
// their order. Both "-f value" and "-f=value" forms are recognised; a
// following token that starts with "-" is never taken as a value.
func Pick(args []string, allowed ...string) []string {
	set := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		set[f] = struct{}{}
	}

	picked := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if name, _, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(arg, "-") {
			if _, known := set[name]; known {
				picked = append(picked, arg)
			}
			continue
		}

		if _, known := set[arg]; !known {
			continue
		}
		picked = append(picked, arg)
		if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			picked = append(picked, args[i+1])
			i++
		}
	}
	return picked
}

// ConfigPath returns the JSON config file named by -c or -config, or "".
// When both are given the last one wins.
func ConfigPath(args []string) string {
	var path string

	fs := flag.NewFlagSet("config", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(Pick(args, "-c", "-config", "--config"))

	return path
}

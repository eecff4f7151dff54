// Package flagx helps several components share os.Args: each one filters
// the arguments down to the flags it owns before parsing them with pflag.
package flagx

import (
	"strings"

	"github.com/spf13/pflag"
)

// FilterArgs returns the subset of args made of allowed flags and their
// values. Both "-f value" and "--flag=value" forms are recognised; a
// separate value is taken only when it does not itself look like a flag.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// ConfigFile extracts the config file path given with -c or --config.
// It returns "" when neither is present or the value is malformed.
func ConfigFile(args []string) string {
	var path string

	fs := pflag.NewFlagSet("config", pflag.ContinueOnError)
	fs.StringVarP(&path, "config", "c", "", "path to config file (yaml or json)")
	_ = fs.Parse(FilterArgs(args, []string{"-c", "--config"}))

	return path
}

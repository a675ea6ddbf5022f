package cli

import (
	"github.com/spf13/pflag"
)

// OptionalString returns the flag's value if it was set on the command line,
// nil otherwise. Update commands use it to tell "unchanged" from "set empty".
func OptionalString(flags *pflag.FlagSet, name string) *string {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetString(name)
	if err != nil {
		return nil
	}
	return &v
}

// OptionalBool is OptionalString for boolean flags.
func OptionalBool(flags *pflag.FlagSet, name string) *bool {
	if !flags.Changed(name) {
		return nil
	}
	v, err := flags.GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// SetFlags lists the names of the flags given on the command line.
func SetFlags(flags *pflag.FlagSet) []string {
	var names []string
	flags.Visit(func(f *pflag.Flag) {
		names = append(names, f.Name)
	})
	return names
}

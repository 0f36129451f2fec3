// Command qualifiers resolves device-configuration qualifier strings.
//
// Usage:
//
//	qualifiers <command> [flags]
//
// Commands:
//
//	parse        Resolve a qualifier string and print the configuration
//	profiles     List, show and validate device profiles
//	log          View and analyze resolution trace files (.qlog)
//	interactive  Resolve qualifiers from a prompt
//	version      Show version information
//
// Examples:
//
//	# Resolve against the latest API level
//	qualifiers parse fr-rFR-land-hdpi
//
//	# Resolve at Jelly Bean and print YAML
//	qualifiers parse --api 16 --output yaml ar-night
//
//	# Rotate a profile to landscape
//	qualifiers parse --base "$(qualifiers profiles show phone --qualifiers)" +land
//
//	# Record every resolution and inspect the trace
//	qualifiers --protocol-log run.qlog parse land
//	qualifiers log view run.qlog
package main

import (
	"os"

	"github.com/resconfig/resconfig-go/cmd/qualifiers/commands"
)

func main() {
	os.Exit(commands.Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

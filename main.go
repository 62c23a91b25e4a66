package main

import (
	"flag"
	"fmt"
	"os"

	"grimm.is/groctl/cmd"
	"grimm.is/groctl/internal/brand"
)

func main() {
	// Bare invocation runs apply: resolve the default-route device and
	// enable UDP GRO forwarding on it.
	if len(os.Args) < 2 {
		if err := cmd.RunApply("", false, false); err != nil {
			fmt.Fprintf(os.Stderr, "Apply failed: %v\n", err)
			os.Exit(1)
		}
		return
	}

	switch os.Args[1] {
	case "apply":
		applyFlags := flag.NewFlagSet("apply", flag.ExitOnError)
		configFile := applyFlags.String("config", "", "Configuration file")
		applyFlags.StringVar(configFile, "c", "", "Configuration file (short)")

		dryRun := applyFlags.Bool("dry-run", false, "Print operations without applying")
		applyFlags.BoolVar(dryRun, "n", false, "Dry run (short)")

		verbose := applyFlags.Bool("verbose", false, "Debug logging")
		applyFlags.BoolVar(verbose, "v", false, "Debug logging (short)")

		applyFlags.Parse(os.Args[2:])

		if err := cmd.RunApply(*configFile, *dryRun, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Apply failed: %v\n", err)
			os.Exit(1)
		}

	case "check":
		checkFlags := flag.NewFlagSet("check", flag.ExitOnError)
		configFile := checkFlags.String("config", "", "Configuration file")
		checkFlags.StringVar(configFile, "c", "", "Configuration file (short)")

		verbose := checkFlags.Bool("verbose", false, "Verbose output")
		checkFlags.BoolVar(verbose, "v", false, "Verbose output (short)")

		checkFlags.Parse(os.Args[2:])

		if err := cmd.RunCheck(*configFile, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}

	case "show":
		showFlags := flag.NewFlagSet("show", flag.ExitOnError)
		configFile := showFlags.String("config", "", "Configuration file")
		showFlags.StringVar(configFile, "c", "", "Configuration file (short)")

		jsonOut := showFlags.Bool("json", false, "JSON output")

		showFlags.Parse(os.Args[2:])

		if err := cmd.RunShow(*configFile, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "Show failed: %v\n", err)
			os.Exit(1)
		}

	case "revert":
		revertFlags := flag.NewFlagSet("revert", flag.ExitOnError)
		configFile := revertFlags.String("config", "", "Configuration file")
		revertFlags.StringVar(configFile, "c", "", "Configuration file (short)")

		verbose := revertFlags.Bool("verbose", false, "Debug logging")
		revertFlags.BoolVar(verbose, "v", false, "Debug logging (short)")

		revertFlags.Parse(os.Args[2:])

		if err := cmd.RunRevert(*configFile, *verbose); err != nil {
			fmt.Fprintf(os.Stderr, "Revert failed: %v\n", err)
			os.Exit(1)
		}

	case "version":
		fmt.Printf("%s version %s\n", brand.Name, brand.Version)
		fmt.Printf("Build: %s\n", brand.BuildTime)

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Printf(`%s - %s

Usage:
  %s [command] [options]

Commands:
  apply     Enable UDP GRO forwarding on the default route device (default)
            Options: --config (-c) <file>, --dry-run (-n), --verbose (-v)
  check     Report whether the device is optimally configured
            Options: --config (-c) <file>, --verbose (-v)
  show      Display a device report (driver, link, offload features)
            Options: --config (-c) <file>, --json
  revert    Return managed offload features to kernel defaults
            Options: --config (-c) <file>, --verbose (-v)
  version   Print version info

Running with no arguments is equivalent to "%s apply". Apply prints
"success!" or "failure!" depending on whether the feature change took.

Configuration is optional and read from %s when present.
`,
		brand.Name, brand.Description,
		brand.LowerName,
		brand.LowerName,
		brand.DefaultConfigDir+"/"+brand.ConfigFileName)
}

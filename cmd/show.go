package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"grimm.is/groctl/internal/offload"
)

// RunShow prints a report of the default-route device: driver, link
// settings, and offload feature states.
func RunShow(configFile string, jsonOut bool) error {
	cfg, logger, err := setup(configFile, false)
	if err != nil {
		return err
	}

	device, err := resolveDevice(cfg, logger)
	if err != nil {
		return fmt.Errorf("couldn't determine the default route device: %w", err)
	}

	m, err := offload.NewManager(logger)
	if err != nil {
		return err
	}
	defer m.Close()

	report, err := m.Report(device)
	if err != nil {
		return err
	}

	if jsonOut {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	printReport(report)
	return nil
}

func printReport(report *offload.Report) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "Device:\t%s\n", report.Device)
	if report.Driver.Driver != "" {
		fmt.Fprintf(w, "Driver:\t%s %s\n", report.Driver.Driver, report.Driver.Version)
	}
	if report.Driver.BusInfo != "" {
		fmt.Fprintf(w, "Bus:\t%s\n", report.Driver.BusInfo)
	}
	if report.Link != nil && report.Link.Speed > 0 {
		fmt.Fprintf(w, "Link:\t%d Mb/s %s duplex\n", report.Link.Speed, report.Link.Duplex)
	}

	fmt.Fprintln(w)
	names := make([]string, 0, len(report.Features))
	for name := range report.Features {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s:\t%s\n", name, onOff(report.Features[name]))
	}

	fmt.Fprintln(w)
	if !report.Status.Supported {
		fmt.Fprintf(w, "UDP GRO forwarding:\tunsupported\n")
	} else if report.Status.Optimal() {
		fmt.Fprintf(w, "UDP GRO forwarding:\toptimal\n")
	} else {
		fmt.Fprintf(w, "UDP GRO forwarding:\tsuboptimal\n")
	}
}

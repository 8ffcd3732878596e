// Package cmd contains auxiliary CLI subcommands.
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/smazurov/lightnode/internal/hal"
	"github.com/smazurov/lightnode/internal/sysfs"
)

// CreateProbeCmd creates the probe command, which checks which light
// control files exist on this device without writing to any of them.
func CreateProbeCmd() *cobra.Command {
	probeCmd := &cobra.Command{
		Use:   "probe",
		Short: "Probe light control file availability",
		Long:  `Checks every sysfs control file the service would use and reports which ones exist on this device. Nothing is written.`,
		Run: func(cmd *cobra.Command, args []string) {
			root, _ := cmd.Flags().GetString("sysfs-root")
			runProbe(root)
		},
	}
	probeCmd.Flags().String("sysfs-root", "", "Prefix prepended to control paths (for testing against a fake sysfs tree)")
	return probeCmd
}

func runProbe(root string) {
	writer := sysfs.New(root, slog.Default())
	controls := hal.DefaultControls()

	checks := []struct {
		name string
		path string
	}{
		{"red brightness", controls.RedBrightness},
		{"red blink", controls.RedBlink},
		{"green brightness", controls.GreenBrightness},
		{"green blink", controls.GreenBlink},
		{"blue brightness", controls.BlueBrightness},
		{"blue blink", controls.BlueBlink},
		{"lcd backlight", controls.LCDBacklight},
		{"panel backlight", controls.PanelBacklight},
		{"button backlight", controls.ButtonBacklight},
		{"persistence mode", controls.Persistence},
	}

	missing := 0
	for _, check := range checks {
		status := "ok"
		if !writer.Exists(check.path) {
			status = "missing"
			missing++
		}
		fmt.Printf("%-18s %-8s %s\n", check.name, status, check.path)
	}

	fmt.Printf("\n%d of %d controls present\n", len(checks)-missing, len(checks))

	if !writer.Exists(controls.LCDBacklight) && writer.Exists(controls.PanelBacklight) {
		fmt.Println("backlight will use the panel fallback node")
	}
}

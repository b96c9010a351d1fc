// Package main runs the roster report.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	platformcmd "github.com/louisbranch/tavernstats/internal/platform/cmd"
	"github.com/louisbranch/tavernstats/internal/platform/config"
	"github.com/louisbranch/tavernstats/internal/tools/rosterreport"
)

func main() {
	cfg, err := rosterreport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = platformcmd.RunWithTelemetry(ctx, platformcmd.ServiceRosterReport, func(ctx context.Context) error {
		return rosterreport.Run(ctx, cfg, os.Stdout)
	})
	stop()
	if err != nil {
		config.Exitf("Error: %v", err)
	}
}

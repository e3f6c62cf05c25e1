package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dotX12/subnetcalc/internal/logger"
	"github.com/dotX12/subnetcalc/internal/render"
	"github.com/dotX12/subnetcalc/internal/subnet"
	"github.com/dotX12/subnetcalc/internal/web"
)

var (
	logLevel    string
	subnetCount int
	listenAddr  string
	version     = "dev" // set at build time via -ldflags
)

func main() {
	// Setup logger
	log := logger.New()
	logger.SetGlobalLogger(log)

	rootCmd := &cobra.Command{
		Use:           "subnetcalc",
		Short:         "IPv4 subnetting calculator",
		Long:          `Computes network, broadcast, wildcard and host-range facts for an IPv4 block and splits blocks into equally sized subnets.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Update logger level if specified
			if logLevel != "" {
				log = logger.NewWithLevel(logLevel)
				logger.SetGlobalLogger(log)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	infoCmd := &cobra.Command{
		Use:   "info <cidr> | info <address> <mask>",
		Short: "Show addressing facts for a single block",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runInfo,
	}

	splitCmd := &cobra.Command{
		Use:   "split <cidr> | split <address> <mask>",
		Short: "Split a block into equally sized subnets",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runSplit,
	}
	splitCmd.Flags().IntVarP(&subnetCount, "count", "n", 2, "Desired number of subnets (rounded up to a power of two)")

	hostsCmd := &cobra.Command{
		Use:   "hosts <count>",
		Short: "Find the smallest subnet fitting the given number of hosts",
		Args:  cobra.ExactArgs(1),
		RunE:  runHosts,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator as a web form",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Listen address")

	rootCmd.AddCommand(infoCmd, splitCmd, hostsCmd, serveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	calc := subnet.NewCalculator(logger.Global().Logger)

	var (
		info *subnet.Info
		err  error
	)
	if len(args) == 1 {
		info, err = calc.DescribeCIDR(args[0])
	} else {
		info, err = calc.Describe(args[0], args[1])
	}
	if err != nil {
		return err
	}

	render.NewRenderer(cmd.OutOrStdout()).Info(info)
	return nil
}

func runSplit(cmd *cobra.Command, args []string) error {
	calc := subnet.NewCalculator(logger.Global().Logger)

	var (
		result *subnet.Result
		err    error
	)
	if len(args) == 1 {
		result, err = calc.PartitionCIDR(args[0], subnetCount)
	} else {
		result, err = calc.Partition(args[0], args[1], subnetCount)
	}
	if err != nil {
		return err
	}

	render.NewRenderer(cmd.OutOrStdout()).Result(result)
	return nil
}

func runHosts(cmd *cobra.Command, args []string) error {
	hosts, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("host count %q is not an integer", args[0])
	}

	calc := subnet.NewCalculator(logger.Global().Logger)
	mask, err := calc.MaskForHosts(hosts)
	if err != nil {
		return err
	}

	render.NewRenderer(cmd.OutOrStdout()).Mask(hosts, mask)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logger.Global()
	calc := subnet.NewCalculator(log.Logger)

	srv := web.NewServer(log.Logger, calc, listenAddr)
	return srv.ListenAndServe()
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
	"k8s.io/klog/v2"

	"github.com/rpcpool/solana-slotfinder/slotfinder"
)

func newCmd_Find() *cli.Command {
	var (
		timestampRaw   string
		endpoint       string
		apiKey         string
		configFilepath string
		connectTimeout time.Duration
		totalTimeout   time.Duration
		probeWidth     int
		scanBudget     int
		outputJSON     bool
		verbose        bool
	)
	return &cli.Command{
		Name:        "find",
		Usage:       "Find the latest finalized slot at or before a given time.",
		Description: "Binary-searches the chain for the highest slot whose block time is at or before the given timestamp, and prints that slot's block metadata.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "timestamp",
				Aliases:     []string{"t"},
				Usage:       "Target time: unix seconds (1750921805) or calendar string (2025-06-26T10:21:08Z)",
				Required:    true,
				Destination: &timestampRaw,
			},
			&cli.StringFlag{
				Name:        "endpoint",
				Usage:       "JSON-RPC endpoint",
				Value:       slotfinder.DefaultEndpoint,
				EnvVars:     []string{"SLOTFINDER_ENDPOINT"},
				Destination: &endpoint,
			},
			&cli.StringFlag{
				Name:        "api-key",
				Aliases:     []string{"k"},
				Usage:       "API key sent as the x-api-key header",
				EnvVars:     []string{"SLOTFINDER_API_KEY", "HELIUS_API_KEY"},
				Destination: &apiKey,
			},
			&cli.StringFlag{
				Name:        "config",
				Usage:       "Path to a YAML or JSON config file ({endpoint, api_key}); flags take precedence",
				EnvVars:     []string{"SLOTFINDER_CONFIG"},
				Destination: &configFilepath,
			},
			&cli.DurationFlag{
				Name:        "connect-timeout",
				Usage:       "Connection establishment timeout per request",
				Value:       slotfinder.DefaultConnectTimeout,
				Destination: &connectTimeout,
			},
			&cli.DurationFlag{
				Name:        "total-timeout",
				Usage:       "Total timeout per request",
				Value:       slotfinder.DefaultTotalTimeout,
				Destination: &totalTimeout,
			},
			&cli.IntFlag{
				Name:        "probe-width",
				Usage:       "Maximum offset probed around a slot with no block time",
				Value:       slotfinder.DefaultNeighborProbeWidth,
				Destination: &probeWidth,
			},
			&cli.IntFlag{
				Name:        "scan-budget",
				Usage:       "Maximum forward probes when canonicalizing duplicate timestamps",
				Value:       slotfinder.DefaultHighestMatchScanBudget,
				Destination: &scanBudget,
			},
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "Print the result as JSON",
				Destination: &outputJSON,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Usage:       "Print performance details and the raw block metadata",
				Destination: &verbose,
			},
		},
		Action: func(c *cli.Context) error {
			target, err := parseTimestamp(timestampRaw)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}

			if configFilepath != "" {
				config, err := loadConfig(configFilepath)
				if err != nil {
					return cli.Exit(fmt.Sprintf("failed to load config file %q: %s", configFilepath, err.Error()), 1)
				}
				if err := config.Validate(); err != nil {
					return cli.Exit(err.Error(), 1)
				}
				if !c.IsSet("endpoint") && config.Endpoint != "" {
					endpoint = config.Endpoint
				}
				if apiKey == "" {
					apiKey = config.APIKey
				}
			}
			if apiKey == "" {
				return cli.Exit("no API key provided; use --api-key or set SLOTFINDER_API_KEY", 1)
			}

			klog.Infof("searching for slot with block time %d or right before it", target)
			klog.V(1).Infof("using RPC endpoint %s", endpoint)

			startedAt := time.Now()
			result, err := slotfinder.FindSlotAtOrBefore(c.Context, target, slotfinder.Config{
				Endpoint:               endpoint,
				APIKey:                 apiKey,
				ConnectTimeout:         connectTimeout,
				TotalTimeout:           totalTimeout,
				NeighborProbeWidth:     probeWidth,
				HighestMatchScanBudget: scanBudget,
			})
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			took := time.Since(startedAt)

			if outputJSON {
				return fasterJson.NewEncoder(os.Stdout).Encode(result)
			}

			fmt.Println("Found block:")
			fmt.Printf("  Slot: %s\n", humanize.Comma(int64(result.Slot)))
			fmt.Printf("  Block hash: %s\n", result.Block.Blockhash)
			if result.Block.BlockTime != nil {
				fmt.Printf("  Block time: %d (%s)\n", *result.Block.BlockTime, time.Unix(*result.Block.BlockTime, 0).UTC().Format(time.RFC3339))
			}
			if result.Block.BlockHeight != nil {
				fmt.Printf("  Block height: %s\n", humanize.Comma(int64(*result.Block.BlockHeight)))
			}
			if result.Block.BlockTime != nil {
				switch diff := *result.Block.BlockTime - target; {
				case diff == 0:
					fmt.Println("  This block exactly matches the requested timestamp.")
				case diff < 0:
					fmt.Printf("  This block is %d seconds before the requested timestamp.\n", -diff)
				default:
					fmt.Printf("  This block is %d seconds after the requested timestamp.\n", diff)
					klog.Warning("found a block after the requested timestamp, which should not happen")
				}
			}
			fmt.Printf("Search completed in %.2f seconds\n", took.Seconds())
			if verbose {
				fmt.Printf("Block explorer: https://explorer.solana.com/block/%d\n", result.Slot)
				spew.Dump(result.Block)
			}
			return nil
		},
	}
}

/*
main.go - Application entry point

PURPOSE:
  The wagecalc binary wraps the wage engine in two thin callers:

    wagecalc compute --rate 1000 --start 22:00 --end 06:00
    wagecalc serve --port 8080 [--policy policy.json]

STARTUP SEQUENCE (serve):
  1. Parse flags
  2. Load the policy file, if any, via the factory
  3. Build engine, handler, and router
  4. Start the HTTP server with graceful shutdown

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM the server stops accepting connections and waits up
  to 30s for active requests to complete.

CONFIGURATION:
  All config via flags. The engine itself takes no ambient configuration;
  the policy is an explicit parameter everywhere.

SEE ALSO:
  - api/server.go: Router configuration
  - factory/policy.go: Policy file format
*/
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/warp/wage-engine/api"
	"github.com/warp/wage-engine/factory"
	"github.com/warp/wage-engine/wage"
)

func main() {
	root := &cobra.Command{
		Use:   "wagecalc",
		Short: "Shift wage calculator with night differential",
	}
	root.AddCommand(computeCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// =============================================================================
// COMPUTE COMMAND
// =============================================================================

func computeCmd() *cobra.Command {
	var (
		rateStr  string
		startStr string
		endStr   string

		nightStart    float64
		nightEnd      float64
		multiplier    float64
		bucketMinutes int
	)

	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute the pay breakdown for a single shift",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := factory.NewPolicyFactory().FromJSON(factory.PolicyJSON{
				NightStartHour:  &nightStart,
				NightEndHour:    &nightEnd,
				NightMultiplier: &multiplier,
				BucketMinutes:   &bucketMinutes,
			})
			if err != nil {
				return err
			}

			// Same preprocessing the UI applies as the user types; the
			// engine still strictly validates the masked value.
			start := api.MaskTimeField(startStr)
			end := api.MaskTimeField(endStr)

			breakdown, err := wage.NewEngine(policy).Compute(rateStr, start, end)
			if err != nil {
				return err
			}

			printBreakdown(breakdown)
			return nil
		},
	}

	cmd.Flags().StringVar(&rateStr, "rate", "", "Hourly rate (positive number)")
	cmd.Flags().StringVar(&startStr, "start", "", "Shift start HH:MM")
	cmd.Flags().StringVar(&endStr, "end", "", "Shift end HH:MM")
	cmd.MarkFlagRequired("rate")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")

	cmd.Flags().Float64Var(&nightStart, "night-start", wage.DefaultNightStartHour, "Night window start hour (inclusive)")
	cmd.Flags().Float64Var(&nightEnd, "night-end", wage.DefaultNightEndHour, "Night window end hour (exclusive)")
	cmd.Flags().Float64Var(&multiplier, "multiplier", 1.25, "Night premium multiplier")
	cmd.Flags().IntVar(&bucketMinutes, "bucket-minutes", 15, "Classification bucket size in minutes")

	return cmd
}

func printBreakdown(b *wage.Breakdown) {
	fmt.Printf("Shift:        %s -> %s (%.2fh)\n", b.Start, b.End, b.TotalHours)
	fmt.Printf("Normal hours: %.2f  (pay %s)\n", b.NormalHours, b.NormalPay)
	fmt.Printf("Night hours:  %.2f  (pay %s)\n", b.NightHours, b.NightPay)
	fmt.Printf("Total pay:    %s\n", b.TotalPay)
}

// =============================================================================
// SERVE COMMAND
// =============================================================================

func serveCmd() *cobra.Command {
	var (
		port       int
		policyPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wage calculator HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := wage.DefaultPolicy()
			if policyPath != "" {
				data, err := os.ReadFile(policyPath)
				if err != nil {
					return fmt.Errorf("failed to read policy file: %w", err)
				}
				policy, err = factory.NewPolicyFactory().ParsePolicy(string(data))
				if err != nil {
					return err
				}
				log.Printf("Loaded policy from %s", policyPath)
			}

			handler := api.NewHandler(wage.NewEngine(policy))
			router := api.NewRouter(handler)

			server := &http.Server{
				Addr:         fmt.Sprintf(":%d", port),
				Handler:      router,
				ReadTimeout:  15 * time.Second,
				WriteTimeout: 15 * time.Second,
				IdleTimeout:  60 * time.Second,
			}

			go func() {
				log.Printf("Server starting on http://localhost:%d", port)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalf("Server failed: %v", err)
				}
			}()

			quit := make(chan os.Signal, 1)
			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
			<-quit

			log.Println("Shutting down server...")

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Println("Server stopped")
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", 8080, "HTTP server port")
	cmd.Flags().StringVar(&policyPath, "policy", "", "Path to a JSON differential-policy file")

	return cmd
}

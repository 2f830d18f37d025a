package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/addchain/collator/engine/collator"
	"github.com/addchain/collator/engine/relay"
	"github.com/addchain/collator/module/component"
	"github.com/addchain/collator/module/irrecoverable"
	"github.com/addchain/collator/module/local"
	"github.com/addchain/collator/module/metrics"
	"github.com/addchain/collator/module/util"
	pstate "github.com/addchain/collator/state/parachain"
	bstorage "github.com/addchain/collator/storage/badger"
)

const (
	keyMetricsPort    = "metrics-port"
	keyCompressPoV    = "compress-pov"
	keyCacheSize      = "cache-size"
	keyRoundInterval  = "round-interval"
	keyParaID         = "para-id"
	keyRestartOnError = "restart-on-error"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the collator against a local relay chain",
	Args:  cobra.NoArgs,
	RunE:  run,
}

func init() {
	rootCmd.AddCommand(runCmd)

	flags := runCmd.Flags()
	flags.Uint(keyMetricsPort, 8080, "port of the prometheus /metrics endpoint, 0 disables it")
	flags.Bool(keyCompressPoV, true, "compress the proof of validity before submission when that shrinks it")
	flags.Uint(keyCacheSize, bstorage.DefaultCacheSize, "number of head states cached in memory")
	flags.Duration(keyRoundInterval, relay.DefaultRoundInterval, "time between two relay chain rounds")
	flags.Uint32(keyParaID, collator.DefaultParaID, "para id announced in candidate descriptors")
	flags.Bool(keyRestartOnError, false, "restart the collator on irrecoverable errors instead of exiting")

	for _, key := range []string{keyMetricsPort, keyCompressPoV, keyCacheSize, keyRoundInterval, keyParaID, keyRestartOnError} {
		_ = viper.BindPFlag(key, flags.Lookup(key))
	}
}

func run(cmd *cobra.Command, _ []string) (err error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := bstorage.InMemory()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			err = multierror.Append(err, fmt.Errorf("could not close db: %w", closeErr))
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	cacheMetrics := metrics.NewCacheCollector(registry)
	collatorMetrics := metrics.NewCollatorCollector(registry)
	relayMetrics := metrics.NewRelayCollector(registry)

	heads := bstorage.NewHeadStates(cacheMetrics, db, viper.GetUint(keyCacheSize))
	chain, err := pstate.Bootstrap(log, heads)
	if err != nil {
		return fmt.Errorf("could not bootstrap parachain state: %w", err)
	}

	me, err := local.Ephemeral()
	if err != nil {
		return err
	}
	log.Info().
		Hex("collator_id", me.CollatorID()).
		Uint32("para_id", viper.GetUint32(keyParaID)).
		Msg("collator identity generated")

	metricsPort := viper.GetUint(keyMetricsPort)
	interval := viper.GetDuration(keyRoundInterval)
	opts := []collator.OptionFunc{
		collator.WithParaID(viper.GetUint32(keyParaID)),
		collator.WithPoVCompression(viper.GetBool(keyCompressPoV)),
	}

	factory := func() (component.Component, error) {
		engine := collator.New(log, collatorMetrics, chain, me, opts...)
		driver := relay.New(log, relayMetrics, engine, engine.ValidationCode(), chain.Genesis(), interval)

		builder := component.NewComponentManagerBuilder().
			AddWorker(component.StartAndWait(engine)).
			AddWorker(component.StartAndWait(driver)).
			AddWorker(func(ctx irrecoverable.SignalerContext, ready component.ReadyFunc) {
				ready()
				select {
				case <-ctx.Done():
					return
				case <-util.AllReady(engine, driver):
				}
				log.Info().Msg("collator and relay driver ready")

				<-ctx.Done()
				<-util.AllDone(engine, driver)
				log.Info().Msg("collator and relay driver shut down")
			})
		if metricsPort != 0 {
			builder.AddWorker(component.StartAndWait(metrics.NewServer(log, metricsPort, registry)))
		}
		return builder.Build(), nil
	}

	restart := viper.GetBool(keyRestartOnError)
	onError := func(err error) component.ErrorHandlingResult {
		if restart {
			log.Error().Err(err).Msg("irrecoverable error, restarting collator")
			return component.ErrorHandlingRestart
		}
		log.Error().Err(err).Msg("irrecoverable error, stopping collator")
		return component.ErrorHandlingStop
	}

	log.Info().Msg("collator starting")
	err = component.RunComponent(ctx, factory, onError)
	if errors.Is(err, context.Canceled) {
		log.Info().Msg("collator stopped")
		return nil
	}
	if err != nil {
		return fmt.Errorf("collator failed: %w", err)
	}
	return nil
}

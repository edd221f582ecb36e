package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/niksmo/storefront/config"
	"github.com/niksmo/storefront/internal/adapter"
	"github.com/niksmo/storefront/pkg/sigctx"
	"github.com/spf13/pflag"
	"github.com/twmb/franz-go/pkg/kadm"
	"github.com/twmb/franz-go/pkg/kerr"
	"github.com/twmb/franz-go/pkg/kgo"
)

const cleanupDelete = "delete"

type flags struct {
	partitions        int32
	replicationFactor int16
	minISR            int
	retention         time.Duration
}

func main() {
	sigCtx, closeApp := sigctx.NotifyContext()
	defer closeApp()

	f := getFlagsValues()
	cfg := config.Load()
	if !cfg.Broker.Enabled() {
		fmt.Println("broker.seed_brokers is empty, nothing to create")
		return
	}

	cl := createClient(cfg)
	defer cl.Close()

	printStart(cfg, f)
	defer printComplete(time.Now())

	if err := makeTopics(sigCtx, cl, f, cfg.Broker.Topics.Orders); err != nil {
		printFail(err)
		return
	}
}

func getFlagsValues() flags {
	pflag.CommandLine.ParseErrorsWhitelist.UnknownFlags = true
	partitions := pflag.Int32P("partitions", "p", 3, "partitions per topic")
	rf := pflag.Int16P("replication-factor", "r", 3, "replicas per partition")
	minISR := pflag.Int("min-insync-replicas", 1, "min.insync.replicas")
	retention := pflag.Duration("retention", 7*24*time.Hour, "retention.ms")
	pflag.Parse()
	return flags{*partitions, *rf, *minISR, *retention}
}

func createClient(cfg config.Config) *kadm.Client {
	opts := []kgo.Opt{kgo.SeedBrokers(cfg.Broker.SeedBrokers...)}

	if tlsFiles := cfg.Broker.TLS; tlsFiles.Enabled() {
		tlsCfg, err := adapter.LoadTLSConfig(tlsFiles.CA, tlsFiles.Cert, tlsFiles.Key)
		if err != nil {
			printFail(err)
			panic(err)
		}
		opts = append(opts, kgo.DialTLSConfig(tlsCfg))
	}

	cl, err := kadm.NewOptClient(opts...)
	if err != nil {
		panic(err) // develop mistake
	}
	return cl
}

func topicConfig(f flags) map[string]*string {
	var (
		cleanupPolicy = cleanupDelete
		minISR        = strconv.Itoa(f.minISR)
		retentionMs   = strconv.FormatInt(f.retention.Milliseconds(), 10)
	)
	return map[string]*string{
		"cleanup.policy":      &cleanupPolicy,
		"min.insync.replicas": &minISR,
		"retention.ms":        &retentionMs,
	}
}

func makeTopics(
	ctx context.Context, cl *kadm.Client, f flags, topics ...string,
) error {
	responses, err := cl.CreateTopics(
		ctx,
		f.partitions,
		f.replicationFactor,
		topicConfig(f),
		topics...,
	)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range responses.Sorted() {
		err := res.Err
		if err != nil {
			if errors.Is(res.Err, kerr.TopicAlreadyExists) {
				fmt.Printf("topic: %q already exists\n", res.Topic)
			} else {
				errs = append(errs, fmt.Errorf("topic %q: %w", res.Topic, err))
			}
			continue
		}
		fmt.Printf("topic: %q successfully created\n", res.Topic)
	}

	return errors.Join(errs...)
}

func printStart(cfg config.Config, f flags) {
	fmt.Printf(`initializing topics (partitions=%d, replicas=%d)...
	- %q

`,
		f.partitions,
		f.replicationFactor,
		cfg.Broker.Topics.Orders,
	)
}

func printComplete(start time.Time) {
	fmt.Printf("\ncomplete in %s\n", time.Since(start))
}

func printFail(err error) {
	fmt.Printf("failed to create topics: \n%s\n", err)
}

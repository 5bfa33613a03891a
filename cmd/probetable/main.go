package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"

	Probe_Table "github.com/g-m-twostay/probe-table"
	"github.com/g-m-twostay/probe-table/Maps/Metrics"
	"github.com/g-m-twostay/probe-table/Maps/ProbeMap"
	"github.com/g-m-twostay/probe-table/Maps/SyncMap"
	"github.com/jessevdk/go-flags"
	"github.com/op/go-logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var log = logging.MustGetLogger("main")

var stdoutLogFormat = logging.MustStringFormatter(
	`%{color:reset}%{color}%{time:15:04:05.000} [%{shortfunc}] [%{level}] %{message}`,
)

type Run struct {
	Ops         uint    `short:"n" long:"ops" default:"100000" description:"number of operations to run"`
	Keys        uint32  `short:"k" long:"keys" default:"10000" description:"keys are drawn from [0,keys)"`
	Seed        uint64  `short:"s" long:"seed" default:"1" description:"seed of the workload and of the key hash"`
	AddRatio    float64 `long:"add" default:"0.5" description:"share of Add operations"`
	DeleteRatio float64 `long:"delete" default:"0.25" description:"share of Delete operations, the rest are Get"`
	Duplicates  bool    `long:"duplicates" description:"add keys that are already present instead of skipping them"`
	Capacity    uint    `long:"capacity" default:"500" description:"initial capacity of the table"`
	Step        uint    `long:"step" default:"23" description:"probe step, odd and coprime with the capacity"`
	Resize      float64 `long:"resize" default:"0.5" description:"load factor that doubles the capacity"`
	Rehash      float64 `long:"rehash" default:"0.2" description:"tombstone fraction that rebuilds the table in place"`
	LogLevel    string  `short:"l" long:"loglevel" default:"info" description:"set the logging level [debug, info, notice, warning, error, critical]"`
	MetricsAddr string  `long:"metrics-addr" description:"serve /metrics on this address after the run until interrupted"`
}

var errMismatch = errors.New("map disagreed with the model")

func (x *Run) Execute(args []string) error {
	if err := setupLogging(x.LogLevel); err != nil {
		return err
	}
	if x.Keys == 0 {
		return fmt.Errorf("keys must be positive")
	}
	m, err := ProbeMap.New[uint32, uint32](Probe_Table.IntHash[uint32](Probe_Table.Hasher(x.Seed)),
		ProbeMap.WithInitialCapacity(x.Capacity),
		ProbeMap.WithProbeStep(x.Step),
		ProbeMap.WithResizeLoadFactor(x.Resize),
		ProbeMap.WithRehashLoadFactor(x.Rehash))
	if err != nil {
		return err
	}
	M := SyncMap.New[uint32, uint32](m)

	w := workload{ops: x.Ops, keys: x.Keys, add: x.AddRatio, del: x.DeleteRatio, duplicates: x.Duplicates}
	res := w.run(M, rand.New(rand.NewPCG(x.Seed, x.Seed)))
	log.Infof("%d adds, %d deletes, %d hits, %d misses", res.Adds, res.Deletes, res.Hits, res.Misses)
	log.Infof("size %d, capacity %d, used %d, deleted %d, %d resizes, %d rehashes", res.Stats.Size, res.Stats.Capacity,
		res.Stats.UsedElements, res.Stats.Deleted, res.Stats.Resizes, res.Stats.Rehashes)
	if res.Mismatches > 0 {
		return fmt.Errorf("%w: %d times", errMismatch, res.Mismatches)
	}

	if x.MetricsAddr == "" {
		return nil
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(Metrics.NewCollector("run", M))
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	log.Noticef("serving metrics on %s", x.MetricsAddr)
	return http.ListenAndServe(x.MetricsAddr, mux)
}

func setupLogging(level string) error {
	lvl, err := logging.LogLevel(level)
	if err != nil {
		return err
	}
	backendStdout := logging.NewLogBackend(os.Stdout, "", 0)
	leveled := logging.SetBackend(logging.NewBackendFormatter(backendStdout, stdoutLogFormat))
	leveled.SetLevel(lvl, "")
	return nil
}

func newParser() *flags.Parser {
	parser := flags.NewParser(nil, flags.Default)
	parser.AddCommand("run",
		"run a random workload",
		"The run command drives a probe table with random Add, Delete and Get calls and checks every result against a model",
		&Run{})
	return parser
}

func main() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for sig := range c {
			log.Noticef("Received %s", sig)
			os.Exit(1)
		}
	}()

	if _, err := newParser().Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Error(err)
		os.Exit(1)
	}
}

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/perfgate/perfgate/pkg/conf"
	"github.com/perfgate/perfgate/pkg/executor"
	"github.com/perfgate/perfgate/pkg/gate"
	"github.com/perfgate/perfgate/pkg/utils/errutil"
)

const appName = "perfgate"

var configDumpFlag = conf.NewBoolFlag("config_dump", "Dump the current configuration as an environment script and exit", false)

func main() {
	conf.SetAppName(appName)
	conf.SetHelp("Benchmark regression gate. Measures the trunk and branch variants with an external benchmark harness and fails the pipeline only when a regression reproduces across two independent measurement passes.")

	err := conf.ParseFlags()
	errutil.CheckWithContext(err, "Cannot parse command line flags")

	if configDumpFlag.Value() {
		fmt.Println(conf.DumpConfig())
		return
	}

	logrus.SetLevel(conf.LogLevel())
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})

	for name, value := range conf.GetFlags() {
		logrus.Debugf("Flag %s=%q", name, value)
	}

	session, err := gate.NewSession(gate.ArtifactDirFlag.Value())
	errutil.CheckWithContext(err, "Cannot create artifact directory")

	logFile, err := session.OpenLog()
	errutil.CheckWithContext(err, "Cannot create session log file")

	// Mirror logging into the session artifact area.
	logrus.SetOutput(io.MultiWriter(logFile, os.Stderr))
	logrus.Infof("Starting %s with session id %s", appName, session.ID)
	logrus.Infof("Artifacts stored in %q", session.Dir)

	local := executor.NewLocal(session.Dir)
	harness := gate.NewHarness(local, gate.DefaultHarnessConfig(), session)
	g := gate.New(harness, gate.NewDataDir(gate.DataDirFlag.Value()), session)

	result, err := g.Run()
	errutil.CheckWithContext(err, "Benchmark harness execution failed")

	exitCode := gate.Report(os.Stdout, result)

	logFile.Close()
	logrus.Exit(exitCode)
}

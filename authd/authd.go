/*
 * Authority
 *
 * Copyright 2021-2030 The NeoDB Authors.
 * Code is licensed under the GPLv3.
 *
 */

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/sealdb/authority/config"
	"github.com/sealdb/authority/ctl"
	"github.com/sealdb/authority/monitor"
	"github.com/sealdb/authority/rule"
	"github.com/sealdb/authority/version"

	"github.com/sealdb/mysqlstack/xlog"
)

var (
	flagConf string
)

func init() {
	flag.StringVar(&flagConf, "c", "", "authority config file")
	flag.StringVar(&flagConf, "config", "", "authority config file")
}

func usage() {
	fmt.Println("Usage: " + os.Args[0] + " [-c|--config] <authority-config-file>")
}

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	log := xlog.NewStdLog(xlog.Level(xlog.DEBUG))

	fmt.Println(version.GetBanner())
	fmt.Printf("version: [%v]\n", version.GetFullVersion())

	// config
	flag.Usage = func() { usage() }
	flag.Parse()
	if flagConf == "" {
		usage()
		os.Exit(0)
	}

	conf, err := config.LoadConfig(flagConf)
	if err != nil {
		log.Panic("authd.load.config.error[%+v]", err)
	}
	log.SetLevel(conf.Log.Level)

	// Rule store.
	standard, err := rule.NewStandard(log, conf.Users)
	if err != nil {
		log.Panic("authd.load.rule.error[%+v]", err)
	}

	// Monitor.
	monitor.Start(log, conf.Monitor.MonitorAddress)

	// Admin portal.
	admin := ctl.NewAdmin(log, conf, standard)
	admin.Start()

	// Handle SIGINT and SIGTERM.
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	log.Info("authd.signal:%+v", <-ch)

	admin.Stop()
}

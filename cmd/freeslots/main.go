package main

import (
	stdlog "log"
	"os"

	"github.com/nikmy/freeslots/internal/planner"
	"github.com/nikmy/freeslots/internal/report"
	"github.com/nikmy/freeslots/pkg/errors"
	"github.com/nikmy/freeslots/pkg/logger"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		stdlog.Fatal(errors.WrapFail(err, "load config"))
	}

	log, err := logger.New(cfg.Environment)
	if err != nil {
		stdlog.Fatal(errors.WrapFail(err, "init logger"))
	}

	_, err = planner.New(log, report.NewPrinter(os.Stdout)).Run(cfg.Meeting)
	if err != nil {
		log.Error(errors.WrapFail(err, "find common slots"))
		os.Exit(1)
	}
}

package main

import (
	"flag"

	"github.com/sirupsen/logrus"

	"github.com/milk9111/zompocalypse/logger"
)

func main() {
	cfg := config{}
	flag.IntVar(&cfg.ticks, "ticks", 60*60*10, "number of ticks to run")
	flag.Uint64Var(&cfg.seed, "seed", 1, "spawn seed")
	flag.StringVar(&cfg.level, "level", "", "map name in levels/ (defaults to the map in game.yaml)")
	flag.Float64Var(&cfg.dt, "dt", 1.0/60, "seconds per tick")
	flag.Parse()

	logger.Init()

	s, err := run(cfg, logger.Log)
	if err != nil {
		logger.Log.WithError(err).Fatal("soak")
	}
	logger.Log.WithFields(logrus.Fields{
		"wave":   s.Wave,
		"phase":  s.Phase.String(),
		"lives":  s.Lives,
		"health": s.Health,
	}).Info("soak finished")
}

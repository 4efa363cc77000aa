// Package retention removes log files older than a retention period.
//
//	log, _ := logger.New(logger.Config{FileName: "app.log", FilePath: "logs"})
//	retention.New(log.FilePath(), log).Sweep(7)
package retention

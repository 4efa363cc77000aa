// Package logger provides a typed, timestamped file logger with an optional
// colored console echo.
//
// # Entries
//
// Every entry has a type. The five canonical types are ERROR, INFO, WARNING,
// CRITICAL and DEBUG; they are case-insensitive and accept short forms (ERR
// or E, INF or I, WARN or W, CRIT or C, DBG or D). Any other label is a
// custom type, upper-cased and always written.
//
// Entries are appended to the log file as
//
//	[05-03-2024 14:22:01.123] [INFO] message
//
// and echoed to the console with a per-type color for the tag.
//
// # Profiles
//
// The active profile decides which canonical types are written:
//
//	DEFAULT     ERROR INFO WARNING CRITICAL
//	DEBUG       ERROR INFO WARNING CRITICAL DEBUG
//	PRODUCTIVE  ERROR INFO CRITICAL
//	ERROR       ERROR
//	CRITICAL    CRITICAL
//	NONE        (custom types only)
//
// The short names DEF, DBG, PROD, ERR and CRIT are accepted. When
// Config.Profile is empty the LOGGER_PROFILE environment variable is used.
//
// # Usage
//
//	log, err := logger.New(logger.Config{
//	    FileName: "app_%yyyy%-%MM%-%dd%.log",
//	    FilePath: "logs",
//	    Profile:  "prod",
//	})
//	if err != nil {
//	    return err
//	}
//	log.Info("server started")
//	log.Entry("audit", "user admin logged in")
//
// Or initialize the package-level default once:
//
//	logger.Init(logger.Config{FileName: "app.log", FilePath: "logs"})
//	logger.Infof("listening on %d", 8080)
//
// # Failures
//
// Logging calls never return errors. A failed file append is reported as an
// ERROR entry through the same logger, so it is dropped when the active
// profile excludes ERROR.
package logger

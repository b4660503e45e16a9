// Package main starts the joykeys daemon.
package main

import "flag"

// main is the entrypoint for the joykeys daemon.
func main() {
	skipCalib := flag.Bool("skip-calibration", false, "Skip startup calibration and use nominal values")
	flag.Parse()

	if err := run(*skipCalib); err != nil {
		logFatal(err)
	}
}

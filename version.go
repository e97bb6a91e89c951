package main

import "fmt"

// Set at build time via -ldflags.
var (
	version   string = "dev"
	gitSHA1   string = "unknown"
	buildDate string = "unknown"
)

func BuildVersion() string {
	if gitSHA1 == "unknown" {
		return version
	}
	return fmt.Sprintf("%s (git:%s, built %s)", version, gitSHA1, buildDate)
}

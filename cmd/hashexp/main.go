package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		log.Error().Err(err).Msg("[hashexp] experiment failed")
		os.Exit(1)
	}
}

const usage = "   <dataSource>: 1 ==> random numbers\n" +
	"                 2 ==> date values\n" +
	"                 3 ==> word list\n" +
	"   <loadFactor>: the ratio alpha = n/m\n" +
	"   <debugLevel>: 0 ==> print summary only\n" +
	"                 1 ==> summary + dump to file\n" +
	"                 2 ==> print debugging for each insert\n"

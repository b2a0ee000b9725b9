package main

import "flag"

type CLIOpts struct {
	doLog      bool
	configFile string
	exportDir  string
}

func parseCLIOpts() CLIOpts {
	var opt CLIOpts
	flag.BoolVar(&opt.doLog, "log", false, "Print debugging output to stdout")
	flag.StringVar(&opt.configFile, "config", "", "Use the specified config file instead of the default one")
	flag.StringVar(&opt.exportDir, "o", "", "Directory Ctrl+S saves the drawing to (overrides ExportDir)")
	flag.Parse()

	return opt
}

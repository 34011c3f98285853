// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"github.com/ezrec/funge/fingerprint"
	"github.com/ezrec/funge/interp"
	"github.com/ezrec/funge/io"
)

func main() {
	var config string
	var input string
	var output string
	var verbose bool

	flag.StringVar(&config, "c", "", "TOML configuration file")
	flag.StringVar(&input, "i", "-", "Program input")
	flag.StringVar(&output, "o", "-", "Program output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("%v: no program file", os.Args[0])
	}

	conf := DefaultConfig()
	if len(config) != 0 {
		var err error
		conf, err = LoadConfig(config)
		if err != nil {
			log.Fatalf("%v: %v", config, err)
		}
	}

	name := flag.Arg(0)
	source, err := os.ReadFile(name)
	if err != nil {
		log.Fatalf("%v: %v", name, err)
	}

	inf := os.Stdin
	if input != "-" {
		inf, err = os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	ouf := os.Stdout
	if output != "-" {
		ouf, err = os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
	}

	in := interp.New(source)
	in.Verbose = verbose
	in.MaxTicks = conf.Limits.MaxTicks
	in.Files = &io.Bridge{
		AllowFiles: conf.Access.Files,
		AllowExec:  conf.Access.Exec,
	}
	in.Info = &io.Info{
		AllowFiles: conf.Access.Files,
		AllowExec:  conf.Access.Exec,
		Arguments:  append([]string{name}, flag.Args()[1:]...),
		Extra:      conf.Env,
	}

	out := bufio.NewWriter(ouf)
	in.Input = io.NewConsole(inf, out)

	for _, script := range conf.Fingerprints.Scripts {
		s, err := fingerprint.LoadScript(script)
		if err != nil {
			log.Fatalf("%v: %v", script, err)
		}
		in.Prints.Register(s)
	}

	exit, err := in.Run()
	out.Flush()

	// os.Exit skips deferred calls, so close the redirections here.
	if inf != os.Stdin {
		inf.Close()
	}
	if ouf != os.Stdout {
		ouf.Close()
	}

	if err != nil {
		log.Fatal(err)
	}

	os.Exit(int(exit))
}

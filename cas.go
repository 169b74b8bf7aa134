// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"robpike.io/cas/config"
	"robpike.io/cas/expr"
	"robpike.io/cas/parse"
	"robpike.io/cas/scan"
	"robpike.io/cas/value"
)

var (
	execute = flag.Bool("e", false, "execute arguments as a single expression")
	prompt  = flag.String("prompt", "", "command prompt")
	debug   = flag.String("debug", "", "comma-separated debug switches: tokens, parse, simplify, panic")
)

var conf config.Config

func main() {
	flag.Usage = usage
	flag.Parse()

	conf.SetPrompt(*prompt)
	for _, d := range strings.Split(*debug, ",") {
		if d != "" {
			conf.SetDebug(d, true)
		}
	}

	expr.SetConfig(&conf)

	if *execute {
		runArgs()
		return
	}

	if flag.NArg() > 0 {
		for i := 0; i < flag.NArg(); i++ {
			name := flag.Arg(i)
			var fd io.Reader
			var err error
			interactive := false
			if name == "-" {
				interactive = true
				fd = os.Stdin
			} else {
				fd, err = os.Open(name)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "cas: %s\n", err)
				os.Exit(1)
			}
			scanner := scan.New(&conf, name, bufio.NewReader(fd))
			parser := parse.NewParser(&conf, name, scanner)
			if !run(parser, os.Stdout, interactive) {
				break
			}
		}
		return
	}

	scanner := scan.New(&conf, "<stdin>", bufio.NewReader(os.Stdin))
	parser := parse.NewParser(&conf, "<stdin>", scanner)
	for !run(parser, os.Stdout, true) {
	}
}

func runArgs() {
	scanner := scan.New(&conf, "<args>", strings.NewReader(strings.Join(flag.Args(), " ")))
	parser := parse.NewParser(&conf, "<args>", scanner)
	run(parser, os.Stdout, false)
}

// run runs until EOF or error. The return value says whether we completed without error.
func run(p *parse.Parser, writer io.Writer, interactive bool) (success bool) {
	defer func() {
		if conf.Debug("panic") {
			return
		}
		err := recover()
		if err == nil {
			return
		}
		if err, ok := err.(value.Error); ok {
			fmt.Fprintf(os.Stderr, "%s: %s\n", p.Loc(), err)
			success = false
			return
		}
		panic(err)
	}()
	for {
		if interactive {
			fmt.Fprint(writer, conf.Prompt())
		}
		v, ok := p.Line()
		if v != nil {
			fmt.Fprintln(writer, v)
		}
		if !ok {
			return true
		}
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: cas [options] [file ...]\n")
	fmt.Fprintf(os.Stderr, "Flags:\n")
	flag.PrintDefaults()
	os.Exit(2)
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Prettyhtml renders discussion text as HTML.
//
// Usage:
//
//	prettyhtml [-refs refs.yaml] [-title] [-url url] [-v] [file...]
//
// Prettyhtml reads the named files, or else standard input, renders each as
// a post body (or, with -title, as a title linking to -url) and prints the
// HTML to standard output.
//
// The -refs file says which references exist:
//
//	users: [alice, bob]
//	tags: [go, rust]
//	comments: [12, 14]
//
// With -v, the usernames, tags and comment ids that were linked are printed
// to standard error as YAML.
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"rsc.io/prettify"
)

var (
	refsFile = pflag.String("refs", "", "YAML `file` listing known users, tags and comments")
	title    = pflag.BoolP("title", "t", false, "render input as a title")
	postURL  = pflag.StringP("url", "u", "", "link target for titles")
	verbose  = pflag.BoolP("verbose", "v", false, "print linked references to standard error")
	trace    = pflag.String("trace", "error", "trace `level`: debug, info or error")
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: prettyhtml [flags] [file...]\n")
	pflag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("prettyhtml: ")
	pflag.Usage = usage
	pflag.Parse()

	if err := setupTracing(*trace); err != nil {
		log.Fatal(err)
	}
	r, err := loadRefs(*refsFile)
	if err != nil {
		log.Fatal(err)
	}

	args := pflag.Args()
	if len(args) == 0 {
		if isatty.IsTerminal(os.Stdin.Fd()) {
			usage()
		}
		do(os.Stdin, r)
		return
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			log.Fatal(err)
		}
		do(f, r)
		f.Close()
	}
}

func do(f *os.File, r prettify.Resolver) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	out := render(string(data), prettify.Cache(r))
	os.Stdout.WriteString(out.HTML)
	os.Stdout.WriteString("\n")
	if *verbose {
		if err := writeRefs(os.Stderr, out); err != nil {
			log.Fatal(err)
		}
	}
}

func render(text string, r prettify.Resolver) *prettify.Output {
	if *title {
		return prettify.Title(text, *postURL, r)
	}
	return prettify.Body(text, r)
}

// refs is the format of the -refs file and of the -v report.
type refs struct {
	Users    []string `yaml:"users,omitempty"`
	Tags     []string `yaml:"tags,omitempty"`
	Comments []int32  `yaml:"comments,omitempty"`
}

// loadRefs reads the -refs file. An empty name resolves nothing.
func loadRefs(file string) (*prettify.Set, error) {
	if file == "" {
		return prettify.NewSet(nil, nil, nil), nil
	}
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	r, err := parseRefs(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return r, nil
}

func parseRefs(data []byte) (*prettify.Set, error) {
	var rf refs
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return nil, err
	}
	return prettify.NewSet(rf.Users, rf.Tags, rf.Comments), nil
}

func writeRefs(w io.Writer, out *prettify.Output) error {
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(refs{Users: out.Usernames, Tags: out.HashTags, Comments: out.CommentRefs})
}

var traceLevels = map[string]string{
	"debug": "Debug",
	"info":  "Info",
	"error": "Error",
}

// setupTracing sends the library's traces to the standard logger.
func setupTracing(level string) error {
	l, ok := traceLevels[level]
	if !ok {
		return fmt.Errorf("unknown trace level %q", level)
	}
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.prettify":  l,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		return err
	}
	tracing.SetTraceSelector(trace2go.Selector())
	return nil
}

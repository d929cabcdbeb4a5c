package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/jsonv/ir"

	"github.com/scott-cotton/cli"
)

func readFile(cc *cli.Context, path string) ([]byte, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return d, nil
}

func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*ir.Node, error) {
	d, err := readFile(cc, path)
	if err != nil {
		return nil, err
	}
	return cfg.decode(d)
}

// getish reads arg as document text when asString is set and as a file
// path otherwise.
func getish(cfg *MainConfig, cc *cli.Context, arg string, asString bool) (*ir.Node, error) {
	if asString {
		return cfg.decode([]byte(arg))
	}
	return getObjFile(cfg, cc, arg)
}

// eachFile calls f with the document of every file in files, or of stdin
// when files is empty.
func eachFile(cfg *MainConfig, cc *cli.Context, files []string, f func(name string, doc *ir.Node) error) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := getObjFile(cfg, cc, file)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := f(file, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
	}
	return nil
}

package main

import (
	"fmt"
	"log"
	"os"

	"github.com/seitarof/gen-record/internal/cli"
	"github.com/seitarof/gen-record/internal/generator"
	"github.com/seitarof/gen-record/internal/source"
)

var version = "dev"

func main() {
	cfg, err := cli.ParseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if cfg.ShowVersion {
		fmt.Println(version)
		return
	}

	var loader cli.Loader
	if cfg.FromSchema() {
		loader = cli.NewSchemaLoader()
	} else {
		loader = cli.NewSourceLoader(source.New())
	}

	f := generator.NewGoimportsFormatter()
	w := generator.NewFileWriter()
	g := generator.New(f, w)

	runner := cli.NewRunner(loader, g)
	if err := runner.Run(cfg); err != nil {
		log.Fatal(err)
	}
}

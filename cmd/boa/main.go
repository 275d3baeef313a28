package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/apawn/boa/ast"
	"github.com/apawn/boa/generator"
	"github.com/apawn/boa/parser"
)

var log = logrus.New()

func main() {
	var (
		evalCode string
		dumpAST  bool
		verbose  bool
	)

	cmd := cobra.Command{
		Use:   "boa [file.js]",
		Short: "Parse JavaScript source and print the syntax tree or regenerated source",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			source, name, err := readSource(evalCode, args)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{"input": name, "bytes": len(source)}).Debug("parsing")

			program, err := parser.ParseFile(source)
			if err != nil {
				if kind, ok := parser.ErrorKindOf(err); ok {
					log.WithField("kind", kind).Debug("parse failed")
				}
				return errors.Wrapf(err, "parse %s", name)
			}

			if dumpAST {
				fmt.Println(ast.Dump(program))
			} else {
				fmt.Println(generator.Generate(program))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&evalCode, "eval", "e", "", "parse inline source instead of a file")
	cmd.Flags().BoolVar(&dumpAST, "ast", false, "print the structural tree dump instead of regenerated source")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := cmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func readSource(evalCode string, args []string) (source, name string, err error) {
	if evalCode != "" {
		return evalCode, "<eval>", nil
	}
	if len(args) == 0 {
		return "", "", errors.New("no input: pass a file or use -e")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", errors.Wrapf(err, "read %s", args[0])
	}
	return string(data), args[0], nil
}

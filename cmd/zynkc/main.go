package main

import (
	"fmt"
	"log"
	"os"

	"github.com/dangerclosesec/zynk/lang/generator"
	"github.com/dangerclosesec/zynk/lang/parser"
	"github.com/spf13/cobra"
)

var (
	verbose bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tokensCmd)
	rootCmd.AddCommand(parseCmd)
}

var rootCmd = &cobra.Command{
	Use:   "zynkc",
	Short: "Zynkc is the Zynk to C++ compiler",
	Long:  `Zynkc tokenizes and parses Zynk source files and emits equivalent C++ source text.`,
}

var buildCmd = &cobra.Command{
	Use:   "build [path]",
	Short: "Compile a Zynk file to C++",
	Long: `Compile a Zynk file to C++ and print both stages. If the path is a
directory, ` + parser.DefaultFileName + ` inside it is compiled instead.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := parser.LoadSource(args[0])
		if err != nil {
			log.Fatalf("Failed to load source: %v", err)
		}

		program, parseErrors, err := parser.Parse(source)
		if err != nil {
			log.Fatalf("Failed to tokenize source: %v", err)
		}

		if len(parseErrors) > 0 {
			fmt.Println("Parsing errors:")
			for _, parseErr := range parseErrors {
				fmt.Println("  - " + parseErr)
			}
			// Generation still runs over whatever parsed
		}

		fmt.Println()
		fmt.Println("          ⇊     User input   ⇊")
		fmt.Println("----- Zynk ----------------------")
		fmt.Println(source)
		fmt.Println("----- Zynk ----------------------")

		fmt.Println()
		fmt.Println("          ⇊ Compiler results ⇊")
		fmt.Println("----- C++ -----------------------")
		fmt.Println(generator.Generate(program))
		fmt.Println("----- C++ -----------------------")
	},
}

var tokensCmd = &cobra.Command{
	Use:   "tokens [path]",
	Short: "Dump the token stream of a Zynk file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		source, err := parser.LoadSource(args[0])
		if err != nil {
			log.Fatalf("Failed to load source: %v", err)
		}

		tokens, err := parser.Tokenize(source)
		if err != nil {
			log.Fatalf("Failed to tokenize source: %v", err)
		}

		for _, tok := range tokens {
			if verbose {
				fmt.Printf("%-7s %q (line %d, column %d)\n", tok.Type, tok.Literal, tok.Line, tok.Column)
			} else {
				fmt.Printf("%-7s %q\n", tok.Type, tok.Literal)
			}
		}
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse [path]",
	Short: "Parse a Zynk file and display its statements",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		program, parseErrors, err := parser.ParseFile(args[0])
		if err != nil {
			log.Fatalf("Failed to parse file: %v", err)
		}

		if len(parseErrors) > 0 {
			fmt.Println("Parsing errors:")
			for _, parseErr := range parseErrors {
				fmt.Println("  - " + parseErr)
			}
			os.Exit(1)
		}

		fmt.Printf("Successfully parsed %s\n", program.Source)
		fmt.Printf("Found %d statements\n", len(program.Statements))

		if verbose {
			for i, stmt := range program.Statements {
				fmt.Printf("  %d: %#v\n", i, stmt)
			}
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

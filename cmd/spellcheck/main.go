// Command spellcheck is the line-mode and interactive CLI front end for
// the spell-checking engine.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"spellcheck/internal/checker"
	"spellcheck/internal/config"
)

// maxFileReportSuggestions caps how many suggestions are shown per miss in
// file-report mode, matching the original tool's terser file output.
const maxFileReportSuggestions = 3

var (
	configPath     string
	dictionaryPath string
	wordToCheck    string
	interactive    bool
	caseSensitive  bool
	ignoreNumbers  bool
	ignoreURLs     bool
	maxSuggestions int
	addWord        string
	removeWord     string
	showStats      bool

	rootCmd = &cobra.Command{
		Use:   "spellcheck [flags] [FILE]",
		Short: "dictionary-based spell checker",
		Args:  cobra.MaximumNArgs(1),
		RunE:  run,
	}
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&configPath, "config", "C", "", "load an INI-style config file before other flags")
	flags.StringVarP(&dictionaryPath, "dictionary", "d", "dictionaries/en_US.dict", "load lexicon from PATH")
	flags.StringVarP(&wordToCheck, "word", "w", "", "check WORD")
	flags.BoolVarP(&interactive, "interactive", "i", false, "interactive REPL")
	flags.BoolVarP(&caseSensitive, "case-sensitive", "c", false, "disable case-folding in checks")
	flags.BoolVar(&ignoreNumbers, "ignore-numbers", false, "ignore numeric tokens")
	flags.BoolVar(&ignoreURLs, "ignore-urls", false, "ignore URL tokens")
	flags.IntVarP(&maxSuggestions, "suggestions", "s", 0, "set suggestion cap")
	flags.StringVarP(&addWord, "add", "a", "", "add WORD to the dictionary")
	flags.StringVarP(&removeWord, "remove", "r", "", "remove WORD from the dictionary")
	flags.BoolVar(&showStats, "stats", false, "print lexicon statistics")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "spellcheck: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg := checker.DefaultConfig()
	dictPath := dictionaryPath

	if configPath != "" {
		settings, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("could not load config %s: %w", configPath, err)
		}
		cfg = settings.Checker
		dictPath = settings.DictionaryPath
		if cmd.Flags().Changed("dictionary") {
			dictPath = dictionaryPath
		}
	}

	if cmd.Flags().Changed("case-sensitive") {
		cfg.CaseSensitive = caseSensitive
	}
	if cmd.Flags().Changed("ignore-numbers") {
		cfg.IgnoreNumbers = ignoreNumbers
	}
	if cmd.Flags().Changed("ignore-urls") {
		cfg.IgnoreURLs = ignoreURLs
	}
	if cmd.Flags().Changed("suggestions") {
		cfg.Suggester.MaxSuggestions = maxSuggestions
	}

	c := checker.New(cfg)
	if !c.LoadDictionary(dictPath) {
		fmt.Fprintf(os.Stderr, "could not load dictionary: %s\n", dictPath)
	}

	if addWord != "" {
		if err := c.AddWord(addWord); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}
	if removeWord != "" {
		if err := c.RemoveWord(removeWord); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
	}

	switch {
	case showStats:
		printStats(c)
	case wordToCheck != "":
		checkWord(c, wordToCheck)
	case interactive:
		runInteractive(c)
	case len(args) > 0:
		checkFile(c, args[0])
	default:
		return cmd.Help()
	}
	return nil
}

func checkWord(c *checker.Checker, word string) {
	if c.IsCorrect(word) {
		fmt.Printf("%q is spelled correctly.\n", word)
		return
	}
	suggestions := c.Suggestions(word)
	if len(suggestions) == 0 {
		fmt.Printf("Word: %q - No suggestions found.\n", word)
		return
	}
	fmt.Printf("Word: %q - Suggestions: %s\n", word, strings.Join(suggestions, ", "))
}

func checkFile(c *checker.Checker, path string) {
	misses, err := c.CheckFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if len(misses) == 0 {
		fmt.Println("No spelling errors found!")
		return
	}
	for _, m := range misses {
		suggestions := c.Suggestions(m.Word)
		if len(suggestions) > maxFileReportSuggestions {
			suggestions = suggestions[:maxFileReportSuggestions]
		}
		if len(suggestions) == 0 {
			fmt.Printf("Line %d, Column %d: %q\n", m.Line, m.Column, m.Word)
			continue
		}
		fmt.Printf("Line %d, Column %d: %q -> %s\n", m.Line, m.Column, m.Word, strings.Join(suggestions, ", "))
	}
}

func printStats(c *checker.Checker) {
	size, memBytes := c.Stats()
	fmt.Printf("(%d, %d) KB\n", size, memBytes/1024)
}

func runInteractive(c *checker.Checker) {
	fmt.Println("Interactive spell check. Type 'help' for commands.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "quit", "exit":
			return
		case "help":
			printInteractiveHelp()
		case "stats":
			printStats(c)
		case "add":
			if len(fields) < 2 {
				fmt.Println("usage: add <word>")
				continue
			}
			if err := c.AddWord(fields[1]); err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("added %q\n", fields[1])
		case "remove":
			if len(fields) < 2 {
				fmt.Println("usage: remove <word>")
				continue
			}
			if err := c.RemoveWord(fields[1]); err != nil {
				fmt.Printf("error: %v\n", err)
				continue
			}
			fmt.Printf("removed %q\n", fields[1])
		default:
			checkWord(c, fields[0])
		}
	}
}

func printInteractiveHelp() {
	fmt.Println(`commands:
  <word>          check a word
  add <word>      add a word to the dictionary
  remove <word>   remove a word from the dictionary
  stats           show lexicon statistics
  help            show this message
  quit, exit      leave interactive mode`)
}

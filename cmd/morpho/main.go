// Command morpho tags tokens, compiles lexicons and prints paradigms from
// the command line.
//
//	morpho tag [-lexicon path] [-config path] [file]
//	morpho compile <src.txt|src.yaml> <dst.db>
//	morpho forms [-lexicon path] [-config path] <lemma>...
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/gonuts/commander"

	"github.com/mova-institute/morpho"
	"github.com/mova-institute/morpho/lexicon"
)

var cmd = &commander.Command{
	UsageLine: os.Args[0] + " tag|compile|forms",
	Short:     "Ukrainian morphological analysis",
}

func init() {
	cmd.Subcommands = []*commander.Command{
		tagCommand(),
		compileCommand(),
		formsCommand(),
	}
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "**error**: %v\n", err)
	os.Exit(1)
}

func main() {
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		exit(err)
	}
}

func addAnalyzerFlags(c *commander.Command) *commander.Command {
	c.Flag.String("lexicon", "", "path to the lexicon (.db, .yaml or .txt); overrides the config")
	c.Flag.String("config", "", "path to a YAML config file")
	return c
}

// openAnalyzer builds an analyzer from the -config and -lexicon flags.
func openAnalyzer(c *commander.Command) (*morpho.Analyzer, error) {
	configPath := c.Flag.Lookup("config").Value.(flag.Getter).Get().(string)
	lexiconPath := c.Flag.Lookup("lexicon").Value.(flag.Getter).Get().(string)

	cfg := morpho.Config{CacheSize: morpho.DefaultCacheSize}
	if configPath != "" {
		var err error
		if cfg, err = morpho.LoadConfig(configPath); err != nil {
			return nil, err
		}
	}
	if lexiconPath != "" {
		cfg.Lexicon = lexiconPath
	}
	log.Printf("loading lexicon from %s …", cfg.Lexicon)
	return morpho.Open(context.Background(), cfg)
}

// ---- tag ----------------------------------------------------------------

func tagCommand() *commander.Command {
	return addAnalyzerFlags(&commander.Command{
		Run:       runTag,
		UsageLine: "tag [options] [file]",
		Short:     "tag tokens read one per line",
		Long: `
tag reads tokens one per line from file, or from standard input, and prints
one "token<TAB>lemma<TAB>tag" line per interpretation. Each token is tagged
knowing the token on the next line.
`,
		Flag: *flag.NewFlagSet("morpho-tag", flag.ExitOnError),
	})
}

func runTag(c *commander.Command, args []string) error {
	an, err := openAnalyzer(c)
	if err != nil {
		return err
	}
	in := io.Reader(os.Stdin)
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open %s: %w", args[0], err)
		}
		defer f.Close()
		in = f
	}
	tokens, err := readTokens(in)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	return writeTagged(out, an, tokens)
}

func readTokens(r io.Reader) ([]string, error) {
	var tokens []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if tok := strings.TrimSpace(sc.Text()); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens, sc.Err()
}

func writeTagged(w io.Writer, an *morpho.Analyzer, tokens []string) error {
	for i, tok := range tokens {
		next := ""
		if i+1 < len(tokens) {
			next = tokens[i+1]
		}
		for _, t := range an.TagOrX(tok, next) {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%s\n", tok, t.Lemma(), t); err != nil {
				return err
			}
		}
	}
	return nil
}

// ---- compile ------------------------------------------------------------

func compileCommand() *commander.Command {
	return &commander.Command{
		Run:       runCompile,
		UsageLine: "compile <src> <dst.db>",
		Short:     "compile a text or YAML lexicon into SQLite",
		Flag:      *flag.NewFlagSet("morpho-compile", flag.ExitOnError),
	}
}

func runCompile(c *commander.Command, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("compile: want 2 arguments, got %d", len(args))
	}
	ctx := context.Background()
	l, err := lexicon.Open(ctx, args[0])
	if err != nil {
		return err
	}
	if err := lexicon.SaveSQLite(ctx, l, args[1]); err != nil {
		return err
	}
	log.Printf("compiled %d lexemes into %s", l.Len(), args[1])
	return nil
}

// ---- forms --------------------------------------------------------------

func formsCommand() *commander.Command {
	return addAnalyzerFlags(&commander.Command{
		Run:       runForms,
		UsageLine: "forms [options] <lemma>...",
		Short:     "print the paradigms of lemmas",
		Flag:      *flag.NewFlagSet("morpho-forms", flag.ExitOnError),
	})
}

func runForms(c *commander.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("forms: no lemma given")
	}
	an, err := openAnalyzer(c)
	if err != nil {
		return err
	}
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	for _, lemma := range args {
		paradigms := an.Forms(lemma)
		if len(paradigms) == 0 {
			fmt.Fprintf(out, "%s\tnot found\n", lemma)
			continue
		}
		for i, p := range paradigms {
			fmt.Fprintf(out, "# %s (%d)\n", lemma, i+1)
			for _, f := range p {
				fmt.Fprintf(out, "%s\t%s\n", f.Form, f.Tag)
			}
		}
	}
	return nil
}

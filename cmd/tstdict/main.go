// Command tstdict loads a word list into a ternary search trie and
// answers the prefix queries listed in a TOML task file.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/profile"
	"gopkg.in/inconshreveable/log15.v2"

	tst "github.com/IMax153/ternary-search-trie"
	"github.com/IMax153/ternary-search-trie/cmd/tstdict/config"
	"github.com/IMax153/ternary-search-trie/display"

	flag "github.com/ogier/pflag"
)

var (
	taskFile = flag.StringP("task", "t", "task.toml", "Task file in TOML format")
	memprof  = flag.Bool("profile", false, "Write a memory profile to the working directory")
)

func main() {
	flag.Parse()
	if *memprof {
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	logger := log15.Root()
	logger.SetHandler(log15.StdoutHandler)

	cfg, err := config.ReadConfig(*taskFile)
	if err != nil {
		logger.Crit("read task file", "file", *taskFile, "err", err)
		os.Exit(1)
	}

	tr, err := load(cfg.Wordlist)
	if err != nil {
		logger.Crit("load word list", "file", cfg.Wordlist, "err", err)
		os.Exit(1)
	}
	logger.Info("word list loaded", "file", cfg.Wordlist, "words", tr.Size())

	for _, q := range cfg.Query {
		matches := tr.KeysWithPrefix(q.Prefix)
		if q.Limit > 0 && len(matches) > q.Limit {
			matches = matches[:q.Limit]
		}
		logger.Info("query", "prefix", q.Prefix, "matches", len(matches))
		for _, m := range matches {
			fmt.Println(m)
		}
	}

	if cfg.Print {
		fmt.Print(display.Tree(tr))
	}
}

// load builds a trie from a word list, one word per line, mapping each
// word to its line number. Blank lines are skipped.
func load(path string) (*tst.Trie[int], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	tr := tst.New[int]()
	scanner := bufio.NewScanner(f)
	line := 0
	for scanner.Scan() {
		line++
		w := strings.TrimSpace(scanner.Text())
		if w == "" {
			continue
		}
		if err := tr.Set(w, line); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	return tr, scanner.Err()
}

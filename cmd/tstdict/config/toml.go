package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Wordlist string // one word per line
	Print    bool   // dump the tree after the queries
	Query    []struct {
		Prefix string
		Limit  int // 0 - 1024, 0 means unlimited
	}
}

func ReadConfig(fpath string) (*Config, error) {
	// For error message
	type query struct {
		Prefix string
		Limit  limit
	}
	type conf struct {
		Wordlist string
		Print    bool
		Query    []query
	}
	var cf conf
	md, err := toml.DecodeFile(fpath, &cf)
	if err != nil {
		return nil, err
	}
	if !md.IsDefined("wordlist") && !md.IsDefined("Wordlist") {
		cf.Wordlist = "words.txt"
	}

	cfg := &Config{
		Wordlist: cf.Wordlist,
		Print:    cf.Print,
	}
	for _, q := range cf.Query {
		cfg.Query = append(cfg.Query, struct {
			Prefix string
			Limit  int
		}{
			Prefix: q.Prefix,
			Limit:  int(q.Limit),
		})
	}
	return cfg, nil
}

type limit int

func (l *limit) UnmarshalTOML(v interface{}) error {
	var i int64
	var ok bool
	if i, ok = v.(int64); !ok {
		return fmt.Errorf("can't convert '%+v' to int64", v)
	}
	if i < 0 || i > 1024 {
		return errors.New("integer out of range [0, 1024]")
	}
	*l = limit(i)
	return nil
}

// Package main provides the hashid command-line front-end. It assembles a
// codec configuration from flags, an optional TOML file and the HASHID_SALT
// environment variable, then runs one encode/decode operation per
// invocation. Results go to stdout, diagnostics to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/katalvlaran/hashid/codec"
)

var (
	configPath = flag.String("config", "", "path to TOML config file")
	saltFlag   = flag.String("salt", "", "salt (overrides config file and "+codec.DefaultEnvKey+")")
	alphaFlag  = flag.String("alphabet", "", "custom alphabet (at least 16 unique symbols)")
	minLength  = flag.Int("min-length", -1, "minimum hash length (default: config file value or 0)")
	promptSalt = flag.Bool("prompt-salt", false, "read the salt interactively without echo")
	logLevel   = flag.String("log-level", "info", "log level (debug, info, warn, error)")
)

var errUsage = errors.New("usage: hashid [flags] encode N [N...] | decode HASH | encode-hex HEX | decode-hex HASH")

func main() {
	if err := run(); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, errUsage.Error())
			flag.PrintDefaults()
			os.Exit(2)
		}
		slog.Error("hashid failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	flag.Parse()

	if err := setupLogger(*logLevel); err != nil {
		return err
	}

	args := flag.Args()
	if len(args) < 2 {
		return errUsage
	}

	c, err := buildCodec()
	if err != nil {
		return err
	}

	command, operands := args[0], args[1:]
	switch command {
	case "encode":
		numbers := make([]int64, 0, len(operands))
		for _, arg := range operands {
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return fmt.Errorf("not an integer: %q", arg)
			}
			numbers = append(numbers, n)
		}
		hash := c.Encode(numbers)
		if hash == "" {
			return errors.New("nothing encoded: input is empty or contains a negative number")
		}
		fmt.Println(hash)
	case "decode":
		numbers, err := c.DecodeWithError(operands[0])
		if err != nil {
			return fmt.Errorf("decoding %q: %w", operands[0], err)
		}
		parts := make([]string, len(numbers))
		for i, n := range numbers {
			parts[i] = strconv.FormatInt(n, 10)
		}
		fmt.Println(strings.Join(parts, " "))
	case "encode-hex":
		hash, err := c.EncodeHex(operands[0])
		if err != nil {
			return err
		}
		fmt.Println(hash)
	case "decode-hex":
		hex, err := c.DecodeHex(operands[0])
		if err != nil {
			return fmt.Errorf("decoding %q: %w", operands[0], err)
		}
		fmt.Println(hex)
	default:
		return errUsage
	}

	return nil
}

// buildCodec resolves the configuration with flag > file > environment
// precedence and constructs the codec. The salt itself is never logged.
func buildCodec() (*codec.Codec, error) {
	var fileCfg *fileConfig
	if *configPath != "" {
		cfg, err := loadConfig(*configPath)
		if err != nil {
			return nil, err
		}
		fileCfg = cfg
		slog.Debug("config file loaded", "path", *configPath)
	}

	var opts []codec.Option

	salt := *saltFlag
	if *promptSalt {
		read, err := readSaltPrompt()
		if err != nil {
			return nil, err
		}
		salt = read
	}
	if salt == "" && fileCfg != nil {
		salt = fileCfg.Salt
	}
	if salt != "" {
		opts = append(opts, codec.WithSalt(salt))
	}
	// An empty salt here is fine: codec.New falls back to HASHID_SALT.

	alpha := *alphaFlag
	if alpha == "" && fileCfg != nil {
		alpha = fileCfg.Alphabet
	}
	if alpha != "" {
		opts = append(opts, codec.WithAlphabet(alpha))
	}

	length := *minLength
	if length < 0 && fileCfg != nil {
		length = fileCfg.MinLength
	}
	if length >= 0 {
		opts = append(opts, codec.WithMinLength(length))
	}

	c, err := codec.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("building codec: %w", err)
	}
	slog.Debug("codec ready", "min_length", c.MinLength(), "alphabet_size", len(c.Alphabet()))

	return c, nil
}

// readSaltPrompt reads the salt from the terminal without echoing it, so it
// stays out of shell history and process listings.
func readSaltPrompt() (string, error) {
	fmt.Fprint(os.Stderr, "salt: ")
	salt, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading salt: %w", err)
	}

	return string(salt), nil
}

func setupLogger(level string) error {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return fmt.Errorf("unknown log level: %q", level)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))

	return nil
}

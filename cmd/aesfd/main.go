// Command aesfd is the CLI entry point: encrypt/decrypt raw binary
// buffers through the engine, or run its self-test report.
//
// The prior flag set here (validate-phase3/phase3-benchmark/phase-3/summary)
// became a small set of cobra subcommands instead, and the emoji-banner
// text-harness reader (hex-token input file -> packed struct output) is
// dropped since it scopes that harness outside the core contract; this CLI
// reads and writes raw binary on stdin/stdout instead.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"aesfd"
)

var (
	keyHex     string
	ivHex      string
	modeStr    string
	configPath string
	verbose    bool
)

// tracker gives every Context the CLI constructs a create/destroy audit
// trail instead of a bare defer ctx.Destroy(), so the process can also
// report what's still live if a command is extended to hold contexts open
// longer than one invocation.
var tracker = aesfd.NewLifecycleTracker()

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "aesfd",
		Short: "AES engine with a Hamming-code fault-detection overlay",
	}
	root.PersistentFlags().StringVar(&keyHex, "key", "", "hex-encoded key (16/24/32 bytes)")
	root.PersistentFlags().StringVar(&ivHex, "iv", "", "hex-encoded 16-byte IV/counter (cbc/ctr)")
	root.PersistentFlags().StringVar(&modeStr, "mode", "ecb", "cipher mode: ecb, cbc, ctr")
	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (overrides --mode/syndrome defaults; explicit --mode still wins)")
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	root.AddCommand(encryptCmd(), decryptCmd(), selftestCmd(), reportCmd())
	return root
}

func setupLogging() {
	if verbose {
		l := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			Level(zerolog.DebugLevel).With().Timestamp().Logger()
		aesfd.SetLogger(l)
	}
}

// resolveConfig loads --config if given and applies it under the CLI
// flags: an explicitly passed --mode always wins over the file, since the
// flag is the more specific, closer-to-the-call-site setting.
func resolveConfig(cmd *cobra.Command) (aesfd.EngineConfig, error) {
	cfg := aesfd.DefaultConfig()
	if configPath != "" {
		loaded, err := aesfd.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if cmd.Flags().Changed("mode") {
		cfg.Mode = aesfd.Mode(modeStr)
	}
	return cfg, nil
}

func loadContext(cfg aesfd.EngineConfig) (*aesfd.Context, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("--key: %w", err)
	}

	if cfg.Mode == aesfd.ModeECB {
		ctx, err := aesfd.NewContext(key)
		if err != nil {
			return nil, err
		}
		return ctx.WithSyndromeConvention(cfg.SyndromeConvention()), nil
	}

	if ivHex == "" {
		return nil, fmt.Errorf("--iv is required for mode %q", cfg.Mode)
	}
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("--iv: %w", err)
	}
	ctx, err := aesfd.NewContextWithIV(key, iv)
	if err != nil {
		return nil, err
	}
	return ctx.WithSyndromeConvention(cfg.SyndromeConvention()), nil
}

func runCrypt(cmd *cobra.Command, encrypt bool) error {
	setupLogging()
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	ctx, err := loadContext(cfg)
	if err != nil {
		return err
	}
	id := fmt.Sprintf("cli-%s-%d", cfg.Mode, os.Getpid())
	if err := tracker.Track(id, ctx); err != nil {
		return err
	}
	defer tracker.Destroy(id)

	buf, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	switch cfg.Mode {
	case aesfd.ModeECB:
		if encrypt {
			err = ctx.EncryptECB(buf)
		} else {
			err = ctx.DecryptECB(buf)
		}
	case aesfd.ModeCBC:
		if encrypt {
			err = ctx.EncryptCBC(buf)
		} else {
			err = ctx.DecryptCBC(buf)
		}
	case aesfd.ModeCTR:
		err = ctx.XCryptCTR(buf)
	default:
		return fmt.Errorf("unsupported mode %q", cfg.Mode)
	}
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(buf)
	return err
}

func encryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt stdin to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, true)
		},
	}
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt stdin to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCrypt(cmd, false)
		},
	}
}

func selftestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Run the NIST KAT suite and fault-injection scenarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			report, err := aesfd.RunSelfTest()
			if err != nil {
				return err
			}
			fmt.Print(report.String())
			if !report.Pass() {
				os.Exit(1)
			}
			return nil
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Like selftest, but exits 0 even when a check fails; prints the full engine report",
		RunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			report, err := aesfd.RunSelfTest()
			if err != nil {
				return err
			}
			fmt.Print(report.String())
			return nil
		},
	}
}

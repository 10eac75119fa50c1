package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"affineriot/internal"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// app carries state shared by the subcommands of one root command.
type app struct {
	cfgFile string
	cfg     internal.Config
}

// newRootCmd builds a fresh command tree. Tests call it once per case.
func newRootCmd() *cobra.Command {
	a := &app{}
	cmd := &cobra.Command{
		Use:   "affineriot",
		Short: "Affine cipher over the alphabet A-Z0-9",
		Long: `AffineRiot enciphers and deciphers text with the affine cipher
x -> (a*x + b) mod 36 over the alphabet A-Z0-9.

Spaces survive as the marker XMEZERAX; diacritics are folded and
punctuation is dropped. Ciphertext is printed in blocks of five.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := internal.LoadConfig(cmd, a.cfgFile)
			if err != nil {
				return usageError(err)
			}
			a.cfg = cfg
			internal.SetVerbose(cfg.Verbose)
			internal.InitLang(cfg.Lang)
			internal.SetColorEnabled(cfg.Color && isTerminal(cmd.OutOrStdout()))
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError(err)
	})

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default: affineriot.yaml in the user config dir, /etc/affineriot or .)")
	pf.Bool("verbose", false, "Log every transform stage to stderr")
	pf.Bool("no-color", false, "Disable colored output")
	pf.String("lang", "en", `Message language ("en", "cs")`)
	pf.Int("group", internal.GroupSize, "Ciphertext block size")

	cmd.AddCommand(
		a.newTransformCmd(internal.ModeEncipher),
		a.newTransformCmd(internal.ModeDecipher),
		a.newModeCmd(),
		a.newKeysCmd(),
		a.newAlphabetCmd(),
		a.newSelfTestCmd(),
		a.newConfigCmd(),
	)
	return cmd
}

func addKeyFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("key-a", "a", 5, "Multiplicative key a (coprime with 36)")
	cmd.Flags().IntP("key-b", "b", 8, "Additive key b (taken mod 36)")
}

func (a *app) newTransformCmd(mode internal.Mode) *cobra.Command {
	// --verify and --qr only exist on encipher; decipher rejects them as unknown flags.
	cmd := a.transformCmd(mode.String()+" [text ...]", func() (internal.Mode, error) { return mode, nil }, mode == internal.ModeEncipher)
	cmd.Aliases = []string{mode.String()[:1]}
	switch mode {
	case internal.ModeEncipher:
		cmd.Short = "Encipher text (from arguments or stdin)"
	case internal.ModeDecipher:
		cmd.Short = "Decipher text (from arguments or stdin)"
	}
	return cmd
}

// newModeCmd is the direction-toggle form: one command, --mode picks the way.
func (a *app) newModeCmd() *cobra.Command {
	var modeName string
	cmd := a.transformCmd("transform [text ...]", func() (internal.Mode, error) {
		m, err := internal.ParseMode(modeName)
		if err != nil {
			return 0, usageError(err)
		}
		return m, nil
	}, true)
	cmd.Short = "Encipher or decipher, chosen by --mode"
	cmd.Flags().StringVarP(&modeName, "mode", "m", "encipher", "encipher (e) or decipher (d)")
	return cmd
}

// errEncipherOnly rejects encipher-only flags on a decipher run.
var errEncipherOnly = errors.New("--verify and --qr apply to encipher only")

func (a *app) transformCmd(use string, mode func() (internal.Mode, error), encipherFlags bool) *cobra.Command {
	var (
		passphrase string
		prompt     bool
		verify     bool
		showQR     bool
	)
	cmd := &cobra.Command{
		Use:  use,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mode()
			if err != nil {
				return err
			}
			if m == internal.ModeDecipher && (verify || showQR) {
				return usageError(errEncipherOnly)
			}
			text, err := readText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}
			key, err := a.resolveKey(cmd, passphrase, prompt)
			if err != nil {
				return err
			}
			internal.LogKeyDiagnostics(key)

			engine := &internal.Engine{Group: a.cfg.Group, Observer: internal.LogObserver{}}
			var out string
			if m == internal.ModeEncipher && verify {
				out, err = engine.EncipherVerified(key, text)
			} else {
				out, err = engine.Transform(m, key, text)
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			if m == internal.ModeEncipher && showQR && out != "" {
				code, err := internal.RenderQR(out)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}
	addKeyFlags(cmd)
	if encipherFlags {
		cmd.Flags().BoolVar(&verify, "verify", false, "Decipher the result and compare before printing (encipher only)")
		cmd.Flags().BoolVar(&showQR, "qr", false, "Also print the ciphertext as a QR code (encipher only)")
	}
	cmd.Flags().StringVar(&passphrase, "passphrase", "", "Derive the key from a passphrase instead of -a/-b")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "Prompt for the passphrase (no echo); overrides --passphrase")
	cmd.Flags().String("kdf", "argon2id", "Passphrase KDF: argon2id or none")
	cmd.Flags().Uint32("kdf-mem", 64, "Argon2id memory in MB")
	cmd.Flags().Uint32("kdf-time", 3, "Argon2id iterations")
	return cmd
}

// resolveKey picks the passphrase-derived key when one is given, else -a/-b
// as merged with the config file and environment.
func (a *app) resolveKey(cmd *cobra.Command, passphrase string, prompt bool) (internal.Key, error) {
	if prompt {
		p, err := internal.PromptForPassphrase(cmd.ErrOrStderr())
		if err != nil {
			return internal.Key{}, usageError(err)
		}
		passphrase = p
	}
	if passphrase != "" {
		key, err := internal.KeyFromPassphrase(passphrase, a.cfg.KDF)
		if err != nil {
			return internal.Key{}, usageError(err)
		}
		return key, nil
	}
	return internal.NewKey(a.cfg.Key.A, a.cfg.Key.B)
}

// readText joins args with spaces, or reads all of r when there are none.
// A single trailing newline from stdin is dropped. Zero-length text is rejected.
func readText(r io.Reader, args []string) (string, error) {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(r)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		text = strings.TrimSuffix(strings.TrimSuffix(string(b), "\n"), "\r")
	}
	if len(text) == 0 {
		return "", internal.ErrEmptyText
	}
	return text, nil
}

func (a *app) newKeysCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List every valid multiplicative key a",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := internal.ListValidKeysA()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(keys)
			}
			for _, k := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), k)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as a JSON array")
	return cmd
}

func (a *app) newAlphabetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alphabet",
		Short: "Show the plain and cipher alphabets for a key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := a.cfg.Key
			if !internal.IsValidKeyA(k.A) {
				internal.Warnf("a=%d is not coprime with %d; the cipher alphabet has repeats", k.A, internal.Modulus)
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, internal.T("label_key", map[string]any{"A": k.A, "B": k.B, "Mod": internal.Modulus}))
			fmt.Fprintln(w, internal.Style(internal.T("label_plain_alphabet", nil), internal.Bold, internal.Blue))
			fmt.Fprintln(w, internal.Alphabet)
			fmt.Fprintln(w, internal.Style(internal.T("label_cipher_alphabet", nil), internal.Bold, internal.Blue))
			fmt.Fprintln(w, internal.Style(internal.PreviewCipherAlphabet(k.A, k.B), internal.Cyan))
			if dec, err := internal.PreviewDecipherAlphabet(k); err == nil {
				fmt.Fprintln(w, internal.Style(internal.T("label_decipher_alphabet", nil), internal.Bold, internal.Blue))
				fmt.Fprintln(w, internal.Style(dec, internal.Gray))
			}
			return nil
		},
	}
	addKeyFlags(cmd)
	return cmd
}

func (a *app) newSelfTestCmd() *cobra.Command {
	var (
		rounds int
		seed   int64
	)
	cmd := &cobra.Command{
		Use:   "selftest",
		Short: "Run randomized round-trip checks for every valid a",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}
			internal.Debugf("self-test seed %d", seed)
			fmt.Fprintln(cmd.OutOrStdout(), internal.Banner(version))
			failed := internal.RunSelfTest(cmd.OutOrStdout(), rand.New(rand.NewSource(seed)), rounds)
			if failed > 0 {
				return fmt.Errorf("self-test: %d key(s) failed", failed)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&rounds, "rounds", 8, "Random texts per key")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = time based)")
	return cmd
}

func (a *app) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
		// The file may not exist yet, so it is not loaded here.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lang, _ := cmd.Flags().GetString("lang")
			internal.InitLang(lang)
			return nil
		},
	}
	var system, force bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfgFile
			if path == "" {
				p, err := internal.ConfigPath(system)
				if err != nil {
					return err
				}
				path = p
			}
			if _, err := os.Stat(path); err == nil && !force {
				return usageError(fmt.Errorf("%s already exists (use --force to overwrite)", path))
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}
			if err := internal.WriteConfigFile(path, internal.DefaultConfig()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), internal.T("config_written", map[string]any{"Path": path}))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, "Write the system-wide config instead of the user one")
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	cmd.AddCommand(initCmd)
	return cmd
}

// isTerminal reports whether w is a terminal; buffers and pipes are not.
func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

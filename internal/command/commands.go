package command

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/dmitrymomot/sigtoken"
	"github.com/dmitrymomot/sigtoken/pkg/canonical"
	"github.com/dmitrymomot/sigtoken/pkg/logger"
)

var (
	errNoData         = errors.New("nothing to sign: pass a value, --list values or --field key=value")
	errNoToken        = errors.New("token argument is required")
	errVerifyFailed   = errors.New("token verification failed")
	errBadField       = errors.New("field must be key=value")
	errTooManyScalars = errors.New("more than one value: use --list or --field")
)

func secretFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "secret",
		Aliases: []string{"s"},
		Usage:   "Signing secret (defaults to SIGTOKEN_SECRET)",
	}
}

// SignCommand returns the sign subcommand.
func SignCommand() *cli.Command {
	return &cli.Command{
		Name:      "sign",
		Usage:     "Sign a value, a list or a set of fields",
		ArgsUsage: "[value...]",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.BoolFlag{
				Name:    "list",
				Aliases: []string{"l"},
				Usage:   "Treat arguments as an ordered list",
			},
			&cli.StringSliceFlag{
				Name:    "field",
				Aliases: []string{"f"},
				Usage:   "Add a map entry as `key=value` (repeatable)",
			},
		},
		Action: signAction,
	}
}

func signAction(c *cli.Context) error {
	st := getState(c)

	data, err := dataFromArgs(c.Args().Slice(), c.Bool("list"), c.StringSlice("field"))
	if err != nil {
		return err
	}

	kp, err := keypairFor(st, firstNonEmpty(c.String("secret"), st.cfg.Secret))
	if err != nil {
		return err
	}

	tok, err := kp.Sign(data)
	if err != nil {
		return err
	}

	st.log.Debug("token signed",
		logger.Command("sign"),
		logger.KeyID(kp.ID()),
		logger.DataKind(data.Kind().String()),
		logger.TokenSize(len(tok)),
	)

	view := tokenView{Token: tok, KeyID: kp.ID()}
	return render(c.App.Writer, st.cfg.Output, view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, tok)
		return err
	})
}

// VerifyCommand returns the verify subcommand.
func VerifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "verify",
		Usage:     "Verify a token and print its data",
		ArgsUsage: "<token>",
		Flags: []cli.Flag{
			secretFlag(),
			&cli.StringFlag{
				Name:    "public-key",
				Aliases: []string{"p"},
				Usage:   "Base64 public key (defaults to SIGTOKEN_PUBLIC_KEY)",
			},
		},
		Action: verifyAction,
	}
}

func verifyAction(c *cli.Context) error {
	st := getState(c)

	token := c.Args().First()
	if token == "" {
		return errNoToken
	}

	key, err := verificationKey(st, c.String("public-key"), c.String("secret"))
	if err != nil {
		return err
	}

	verify, err := sigtoken.Verifier(key, st.options()...)
	if err != nil {
		return err
	}

	res := verify(token)
	if err := render(c.App.Writer, st.cfg.Output, newResultView(res), func(w io.Writer) error {
		if !res.OK {
			return nil
		}
		return writeData(w, res.Data)
	}); err != nil {
		return err
	}

	if !res.OK {
		return errors.Join(errVerifyFailed, res.Err)
	}
	st.log.Info("token verified", logger.Command("verify"), logger.DataKind(res.Data.Kind().String()))
	return nil
}

// DecodeCommand returns the decode subcommand.
func DecodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Show a token's payload and data without verifying the signature",
		ArgsUsage: "<token>",
		Action:    decodeAction,
	}
}

func decodeAction(c *cli.Context) error {
	st := getState(c)

	token := c.Args().First()
	if token == "" {
		return errNoToken
	}

	res := sigtoken.Decode(token)
	if !res.OK {
		return res.Err
	}

	return render(c.App.Writer, st.cfg.Output, newResultView(res), func(w io.Writer) error {
		if _, err := fmt.Fprintf(w, "payload: %s\n", res.Payload); err != nil {
			return err
		}
		return writeData(w, res.Data)
	})
}

// KeypairCommand returns the keypair subcommand.
func KeypairCommand() *cli.Command {
	return &cli.Command{
		Name:   "keypair",
		Usage:  "Print the public key derived from a secret",
		Flags:  []cli.Flag{secretFlag()},
		Action: keypairAction,
	}
}

func keypairAction(c *cli.Context) error {
	st := getState(c)

	kp, err := keypairFor(st, firstNonEmpty(c.String("secret"), st.cfg.Secret))
	if err != nil {
		return err
	}

	view := keypairView{PublicKey: kp.PublicKey.String(), KeyID: kp.ID()}
	return render(c.App.Writer, st.cfg.Output, view, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "public key: %s\nkey id:     %s\n", view.PublicKey, view.KeyID)
		return err
	})
}

// dataFromArgs builds the value to sign. Fields win over --list; a single
// bare argument is a scalar.
func dataFromArgs(args []string, list bool, fields []string) (canonical.Value, error) {
	if len(fields) > 0 {
		m := make(map[string]any, len(fields))
		for _, f := range fields {
			k, v, ok := strings.Cut(f, "=")
			if !ok || k == "" {
				return canonical.Value{}, fmt.Errorf("%w: %q", errBadField, f)
			}
			switch prev := m[k].(type) {
			case nil:
				m[k] = v
			case string:
				m[k] = []string{prev, v}
			case []string:
				m[k] = append(prev, v)
			}
		}
		return canonical.Map(m), nil
	}

	if list {
		if len(args) == 0 {
			return canonical.Value{}, errNoData
		}
		items := make([]any, len(args))
		for i, a := range args {
			items[i] = a
		}
		return canonical.List(items...), nil
	}

	switch len(args) {
	case 0:
		return canonical.Value{}, errNoData
	case 1:
		return canonical.String(args[0]), nil
	default:
		return canonical.Value{}, errTooManyScalars
	}
}

// verificationKey prefers an explicit public key over a secret, and flags
// over configuration.
func verificationKey(st *state, pubArg, secretArg string) (sigtoken.VerificationKey, error) {
	if pubArg != "" {
		return sigtoken.ParsePublicKey(pubArg)
	}
	if secretArg != "" {
		return sigtoken.Secret(secretArg), nil
	}
	if st.cfg.PublicKey != "" {
		return sigtoken.ParsePublicKey(st.cfg.PublicKey)
	}
	if st.cfg.Secret != "" {
		return sigtoken.Secret(st.cfg.Secret), nil
	}
	return nil, sigtoken.ErrMissingVerificationKey
}

func keypairFor(st *state, secret string) (sigtoken.Keypair, error) {
	if st.cache != nil {
		return st.cache.Keypair(secret)
	}
	return sigtoken.MakeKeypair(secret)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

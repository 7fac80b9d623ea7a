package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aussiebroadwan/doorman/pkg/authsdk"
	"github.com/aussiebroadwan/doorman/pkg/cryptox"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

func newApp(out io.Writer, in io.Reader) *cli.App {
	p := &prompter{out: out, in: bufio.NewReader(in)}

	return &cli.App{
		Name:      "authctl",
		Usage:     "register, log in and inspect accounts on a doorman auth service",
		Writer:    out,
		ErrWriter: out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "url",
				Usage:   "base URL of the auth service",
				Value:   "http://localhost:8080",
				EnvVars: []string{"DOORMAN_URL"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "per-request timeout",
				Value: 10 * time.Second,
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "create an account and print its access token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Usage: "display name", Required: true},
					&cli.StringFlag{Name: "email", Usage: "login email", Required: true},
					&cli.StringFlag{Name: "password", Usage: "password (prompted when omitted)", EnvVars: []string{"DOORMAN_PASSWORD"}},
					&cli.BoolFlag{Name: "generate-password", Usage: "generate a random password and print it"},
				},
				Action: func(c *cli.Context) error {
					password := c.String("password")
					if c.Bool("generate-password") {
						pw, err := cryptox.GeneratePassword()
						if err != nil {
							return err
						}
						password = pw
						fmt.Fprintf(out, "generated password: %s\n", password)
					}
					if password == "" {
						var err error
						if password, err = p.password(); err != nil {
							return err
						}
					}

					tok, err := sdk(c).Register(c.Context, authsdk.RegisterRequest{
						Name:     c.String("name"),
						Email:    c.String("email"),
						Password: password,
					})
					if err != nil {
						return describe(err)
					}
					fmt.Fprintln(out, tok.AccessToken)
					return nil
				},
			},
			{
				Name:  "login",
				Usage: "log in and print an access token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Usage: "login email (prompted when omitted)"},
					&cli.StringFlag{Name: "password", Usage: "password (prompted when omitted)", EnvVars: []string{"DOORMAN_PASSWORD"}},
				},
				Action: func(c *cli.Context) error {
					email := c.String("email")
					if email == "" {
						var err error
						if email, err = p.line("Email"); err != nil {
							return err
						}
					}
					password := c.String("password")
					if password == "" {
						var err error
						if password, err = p.password(); err != nil {
							return err
						}
					}

					tok, err := sdk(c).Login(c.Context, authsdk.LoginRequest{Email: email, Password: password})
					if err != nil {
						return describe(err)
					}
					fmt.Fprintln(out, tok.AccessToken)
					return nil
				},
			},
			{
				Name:  "me",
				Usage: "show the account an access token belongs to",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Usage: "access token", EnvVars: []string{"DOORMAN_TOKEN"}, Required: true},
				},
				Action: func(c *cli.Context) error {
					me, err := sdk(c).Me(c.Context, c.String("token"))
					if err != nil {
						return describe(err)
					}
					return printJSON(out, me)
				},
			},
			{
				Name:  "health",
				Usage: "check service liveness, or readiness with --ready",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "ready", Usage: "query /readyz instead of /livez"},
				},
				Action: func(c *cli.Context) error {
					client := sdk(c)
					var (
						h   *authsdk.HealthResponse
						err error
					)
					if c.Bool("ready") {
						h, err = client.GetReadiness(c.Context)
					} else {
						h, err = client.GetLiveness(c.Context)
					}
					if h != nil {
						if perr := printJSON(out, h); perr != nil {
							return perr
						}
					}
					if err != nil {
						return describe(err)
					}
					return nil
				},
			},
		},
	}
}

func sdk(c *cli.Context) *authsdk.SDKClient {
	client := authsdk.NewSDKClient(c.String("url"))
	client.HTTPClient.Timeout = c.Duration("timeout")
	return client
}

// describe flattens an API error and its field details into one message.
func describe(err error) error {
	var apiErr *authsdk.APIError
	if !errors.As(err, &apiErr) || len(apiErr.Details) == 0 {
		return err
	}

	parts := make([]string, 0, len(apiErr.Details))
	for field, reason := range apiErr.Details {
		parts = append(parts, field+": "+reason)
	}
	return fmt.Errorf("%w (%s)", err, strings.Join(parts, ", "))
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

type prompter struct {
	out io.Writer
	in  *bufio.Reader
}

func (p *prompter) line(prompt string) (string, error) {
	if _, err := fmt.Fprint(p.out, prompt+": "); err != nil {
		return "", err
	}
	line, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// password reads without echo from the terminal. When stdin is not a
// terminal it falls back to reading a line so scripts can pipe input.
func (p *prompter) password() (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return p.line("Password")
	}

	if _, err := fmt.Fprint(p.out, "Password: "); err != nil {
		return "", err
	}
	pw, err := readPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", err
	}
	return string(pw), nil
}

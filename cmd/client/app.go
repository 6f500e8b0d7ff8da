package main

import (
	"daily/client"
	"daily/config"
	accountDto "daily/internal/domains/account/model/dto"
	memoDto "daily/internal/domains/memo/model/dto"
	todoDto "daily/internal/domains/todo/model/dto"
	"daily/shared/envelope"
	"encoding/json"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"
)

const (
	flagBaseURL  = "base-url"
	flagTimeout  = "timeout"
	flagID       = "id"
	flagTitle    = "title"
	flagContent  = "content"
	flagStatus   = "status"
	flagSearch   = "search"
	flagAccount  = "account"
	flagPassword = "password"
	flagName     = "name"

	exitCodeNotSuccess = 1
)

type runner struct {
	out    io.Writer
	client *client.Client
}

// newApp builds the command tree. Every command prints the answered envelope
// as JSON and exits non-zero unless it reports success.
func newApp(out io.Writer) *cli.App {
	r := &runner{out: out}

	return &cli.App{
		Name:   "daily",
		Usage:  "call the daily API",
		Writer: out,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagBaseURL, Usage: "API base URL", EnvVars: []string{"CLIENT_BASE_URL"}},
			&cli.IntFlag{Name: flagTimeout, Usage: "request timeout in seconds, 0 for none", EnvVars: []string{"CLIENT_TIMEOUT_SECONDS"}},
		},
		Before:   r.setup,
		Commands: []*cli.Command{r.accountCommands(), r.memoCommands(), r.todoCommands()},
	}
}

func (r *runner) setup(c *cli.Context) error {
	conf := &config.Config{}

	if c.IsSet(flagBaseURL) {
		conf.Client.BaseURL = c.String(flagBaseURL)
		conf.Client.TimeoutSeconds = c.Int(flagTimeout)
	} else {
		conf = config.Get()
	}

	r.client = client.New(conf)

	return nil
}

func (r *runner) print(env envelope.Envelope) error {
	payload, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	fmt.Fprintln(r.out, string(payload))

	if !env.IsSuccess() {
		return cli.Exit("", exitCodeNotSuccess)
	}

	return nil
}

func (r *runner) accountCommands() *cli.Command {
	return &cli.Command{
		Name:  "account",
		Usage: "login and registration",
		Subcommands: []*cli.Command{
			{
				Name:  "login",
				Usage: "log in with a plain password; it is hashed before sending",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagAccount, Required: true},
					&cli.StringFlag{Name: flagPassword, Required: true},
				},
				Action: func(c *cli.Context) error {
					return r.print(r.client.Login(c.Context, c.String(flagAccount), client.HashPassword(c.String(flagPassword))))
				},
			},
			{
				Name:  "register",
				Usage: "create an account",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: flagName, Required: true},
					&cli.StringFlag{Name: flagAccount, Required: true},
					&cli.StringFlag{Name: flagPassword, Required: true},
				},
				Action: func(c *cli.Context) error {
					return r.print(r.client.Register(c.Context, accountDto.RegisterRequest{
						Name:    c.String(flagName),
						Account: c.String(flagAccount),
						Pwd:     client.HashPassword(c.String(flagPassword)),
					}))
				},
			},
		},
	}
}

func (r *runner) memoCommands() *cli.Command {
	entryFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: flagTitle},
			&cli.StringFlag{Name: flagContent},
			&cli.IntFlag{Name: flagStatus},
		}
	}

	return &cli.Command{
		Name:  "memo",
		Usage: "manage memos",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list memos, optionally filtered by --search",
				Flags: []cli.Flag{&cli.StringFlag{Name: flagSearch}},
				Action: func(c *cli.Context) error {
					if c.IsSet(flagSearch) {
						return r.print(r.client.QueryMemos(c.Context, c.String(flagSearch)))
					}

					return r.print(r.client.GetAllMemos(c.Context))
				},
			},
			{
				Name:  "add",
				Flags: entryFlags(),
				Action: func(c *cli.Context) error {
					return r.print(r.client.AddMemo(c.Context, memoDto.AddMemoRequest{
						Title:   c.String(flagTitle),
						Content: c.String(flagContent),
						Status:  c.Int(flagStatus),
					}))
				},
			},
			{
				Name:  "edit",
				Flags: append([]cli.Flag{&cli.IntFlag{Name: flagID, Required: true}}, entryFlags()...),
				Action: func(c *cli.Context) error {
					return r.print(r.client.EditMemo(c.Context, memoDto.EditMemoRequest{
						MemoID:  c.Int(flagID),
						Title:   c.String(flagTitle),
						Content: c.String(flagContent),
						Status:  c.Int(flagStatus),
					}))
				},
			},
			{
				Name:  "delete",
				Flags: []cli.Flag{&cli.IntFlag{Name: flagID, Required: true}},
				Action: func(c *cli.Context) error {
					return r.print(r.client.DeleteMemo(c.Context, c.Int(flagID)))
				},
			},
		},
	}
}

func (r *runner) todoCommands() *cli.Command {
	entryFlags := func() []cli.Flag {
		return []cli.Flag{
			&cli.StringFlag{Name: flagTitle},
			&cli.StringFlag{Name: flagContent},
			&cli.IntFlag{Name: flagStatus, Usage: "0 active, 1 completed"},
		}
	}

	return &cli.Command{
		Name:  "todo",
		Usage: "manage todos",
		Subcommands: []*cli.Command{
			{
				Name:  "stats",
				Usage: "total, completed and completion rate",
				Action: func(c *cli.Context) error {
					return r.print(r.client.ToDoStatistics(c.Context))
				},
			},
			{
				Name:  "list",
				Usage: "list todos by --status (0 all, 1 active, 2 completed) and --search",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: flagStatus},
					&cli.StringFlag{Name: flagSearch},
				},
				Action: func(c *cli.Context) error {
					return r.print(r.client.QueryToDos(c.Context, c.Int(flagStatus), c.String(flagSearch)))
				},
			},
			{
				Name:  "add",
				Flags: entryFlags(),
				Action: func(c *cli.Context) error {
					return r.print(r.client.AddToDo(c.Context, todoDto.AddToDoRequest{
						Title:   c.String(flagTitle),
						Content: c.String(flagContent),
						Status:  c.Int(flagStatus),
					}))
				},
			},
			{
				Name:  "edit",
				Flags: append([]cli.Flag{&cli.IntFlag{Name: flagID, Required: true}}, entryFlags()...),
				Action: func(c *cli.Context) error {
					return r.print(r.client.EditToDo(c.Context, todoDto.EditToDoRequest{
						ToDoID:  c.Int(flagID),
						Title:   c.String(flagTitle),
						Content: c.String(flagContent),
						Status:  c.Int(flagStatus),
					}))
				},
			},
			{
				Name:  "delete",
				Flags: []cli.Flag{&cli.IntFlag{Name: flagID, Required: true}},
				Action: func(c *cli.Context) error {
					return r.print(r.client.DeleteToDo(c.Context, c.Int(flagID)))
				},
			},
			{
				Name:  "toggle",
				Usage: "flip a todo between active and completed",
				Flags: []cli.Flag{&cli.IntFlag{Name: flagID, Required: true}},
				Action: func(c *cli.Context) error {
					return r.print(r.client.ToggleToDo(c.Context, c.Int(flagID)))
				},
			},
		},
	}
}

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/arjungandhi/contactbook"
)

const usage = `
USAGE: contacts <command>

Commands:
	add    - Add a contact
	list   - Displays a list of existing contacts
	count  - Display how many contacts you have (alias: size)
	export - Print all contacts as vCards
`

func init() {
	cobra.EnableCaseInsensitive = true
}

type app struct {
	cfg    *contactbook.Config
	logger zerolog.Logger
}

func (a *app) store() (*contactbook.Store, error) {
	return contactbook.OpenStore(a.cfg, a.logger)
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, usage)
}

// newCommand builds a subcommand that takes no arguments. Any argument or
// flag prints the usage banner instead of running it.
func newCommand(use, short string, run func(cmd *cobra.Command) error) *cobra.Command {
	return &cobra.Command{
		Use:                use,
		Short:              short,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 {
				printUsage(cmd.OutOrStdout())
				return nil
			}
			return run(cmd)
		},
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:                "contacts",
		Short:              "a small local contact book",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 && args[0] != "-h" && args[0] != "--help" {
				fmt.Fprintln(cmd.OutOrStdout(), "Command not recognized.")
			}
			printUsage(cmd.OutOrStdout())
			return nil
		},
	}
	root.SetHelpFunc(func(cmd *cobra.Command, _ []string) {
		printUsage(cmd.OutOrStdout())
	})

	addCmd := newCommand("add", "add a contact", func(cmd *cobra.Command) error {
		c, err := contactbook.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()).PromptContact()
		if err != nil {
			return err
		}
		s, err := a.store()
		if err != nil {
			return err
		}
		if err := s.Append(c); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), contactbook.SavedMessage)
		return nil
	})

	listCmd := newCommand("list", "list all contacts", func(cmd *cobra.Command) error {
		contacts, err := a.load()
		if err != nil {
			return noContacts(cmd, err)
		}
		fmt.Fprint(cmd.OutOrStdout(), contactbook.FormatList(contacts))
		return nil
	})

	countCmd := newCommand("count", "show how many contacts you have", func(cmd *cobra.Command) error {
		s, err := a.store()
		if err != nil {
			return err
		}
		n, err := s.Count()
		if err != nil {
			return noContacts(cmd, err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), contactbook.FormatCount(n))
		return nil
	})
	countCmd.Aliases = []string{"size"}

	exportCmd := newCommand("export", "print all contacts as vCards", func(cmd *cobra.Command) error {
		contacts, err := a.load()
		if err != nil {
			return noContacts(cmd, err)
		}
		return contactbook.WriteVCards(cmd.OutOrStdout(), contacts)
	})

	root.AddCommand(addCmd, listCmd, countCmd, exportCmd)
	return root
}

func (a *app) load() ([]contactbook.Contact, error) {
	s, err := a.store()
	if err != nil {
		return nil, err
	}
	return s.List()
}

// noContacts turns the missing data file into the informational message and
// passes every other error through.
func noContacts(cmd *cobra.Command, err error) error {
	if !errors.Is(err, contactbook.ErrNoContacts) {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), contactbook.NoContactsMessage)
	return nil
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	cfg, err := contactbook.LoadConfig()
	if err != nil {
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	logger, closer := newLogger(cfg, errOut)
	defer closer.Close()

	if args == nil {
		args = []string{}
	}
	root := newRootCmd(&app{cfg: cfg, logger: logger})
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	if err := root.Execute(); err != nil {
		logger.Debug().Err(err).Strs("args", args).Msg("command failed")
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

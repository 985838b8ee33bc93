package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/roadnet/network"
)

const (
	ERROR_STATUS_CODE = 1
	USAGE_STATUS_CODE = 2

	COMMAND_NAME = "roadnet"
)

const ROADNET_CMD_HELP = `Usage: roadnet <command> [flags] [args]

Commands:
` + "%s" + `
Common flags:
  -config path   YAML config file (default ` + DEFAULT_CONFIG_FILE + ` when present)
  -file path     network file (overrides the config "network" entry)

Run 'roadnet help <command>' for the flags of one command.
`

var errUsage = errors.New("usage")

func main() {
	statusCode := _main(os.Args, os.Stdout, os.Stderr)
	if statusCode != 0 {
		os.Exit(statusCode)
	}
}

func _main(args []string, outW io.Writer, errW io.Writer) (statusCode int) {
	if len(args) < 2 {
		printHelp(errW)
		return USAGE_STATUS_CODE
	}

	subCommand := args[1]
	subCommandArgs := args[2:]

	//help <command> is turned into <command> -h
	if subCommand == "help" && len(subCommandArgs) > 0 {
		subCommand = subCommandArgs[0]
		subCommandArgs = []string{"-h"}
	}

	switch subCommand {
	case "help", "-h", "--help":
		printHelp(outW)
		return 0
	}

	idx := slices.IndexFunc(COMMANDS, func(c *command) bool { return c.name == subCommand })
	if idx < 0 {
		fmt.Fprintf(errW, "unknown command '%s'\n", subCommand)
		printHelp(errW)
		return USAGE_STATUS_CODE
	}
	cmd := COMMANDS[idx]

	flags := flag.NewFlagSet(subCommand, flag.ContinueOnError)
	flags.SetOutput(errW)
	flags.Usage = func() {
		fmt.Fprintf(errW, "Usage: %s %s [flags] %s\n\n%s\n\nFlags:\n", COMMAND_NAME, cmd.name, cmd.args, cmd.summary)
		flags.PrintDefaults()
	}
	var configFile, networkFile string
	flags.StringVar(&configFile, "config", "", "YAML config file")
	flags.StringVar(&networkFile, "file", "", "network file")
	var limit *int
	if cmd.name == ALTERNATIVES_SUBCMD {
		limit = flags.Int("limit", 0, "maximum number of routes, shortest included (default from config, else 5)")
	}

	if err := flags.Parse(subCommandArgs); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return USAGE_STATUS_CODE
	}
	if flags.NArg() != cmd.arity {
		fmt.Fprintf(errW, "%s: expected %d argument(s), got %d\n", cmd.name, cmd.arity, flags.NArg())
		flags.Usage()
		return USAGE_STATUS_CODE
	}

	//configuration
	config, err := readConfig(configFile)
	if err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}
	if networkFile == "" {
		networkFile = config.Network
	}
	if networkFile == "" {
		fmt.Fprintln(errW, "no network file: pass -file or set 'network' in the config")
		return USAGE_STATUS_CODE
	}
	if limit != nil && *limit > 0 {
		config.Alternatives.Limit = *limit
	}

	logger := config.Logger(errW).With().Str("cmd", cmd.name).Logger()

	state := &session{
		out:    outW,
		logger: logger,
		config: config,
		file:   networkFile,
	}
	if err := state.load(cmd.mutates); err != nil {
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	changed, err := cmd.run(state, flags.Args())
	if err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(errW, err)
			return USAGE_STATUS_CODE
		}
		fmt.Fprintln(errW, err)
		return ERROR_STATUS_CODE
	}

	if changed {
		if err := network.SaveFile(state.file, state.net, state.blocked); err != nil {
			fmt.Fprintln(errW, err)
			return ERROR_STATUS_CODE
		}
		logger.Info().Str("file", state.file).Msg("network saved")
	}
	return 0
}

func readConfig(file string) (Config, error) {
	if file != "" {
		return ReadConfig(file, true)
	}
	return ReadConfig(DEFAULT_CONFIG_FILE, false)
}

func printHelp(w io.Writer) {
	list := ""
	for _, c := range COMMANDS {
		list += fmt.Sprintf("  %-13s %s\n", c.name, c.summary)
	}
	fmt.Fprintf(w, ROADNET_CMD_HELP, list)
}

// session is the network a command works on.
type session struct {
	out     io.Writer
	logger  zerolog.Logger
	config  Config
	file    string
	net     *network.Network
	blocked *network.Blocked
}

// load reads the network file. Editing commands may start from a file that
// does not exist yet.
func (s *session) load(allowMissing bool) error {
	net, blocked, err := network.LoadFile(s.file, network.WithLogger(s.logger))
	switch {
	case err == nil:
	case allowMissing && errors.Is(err, os.ErrNotExist):
		s.logger.Info().Str("file", s.file).Msg("starting a new network")
		net, blocked = network.New(), network.NewBlocked()
	default:
		return err
	}
	s.net, s.blocked = net, blocked
	return nil
}

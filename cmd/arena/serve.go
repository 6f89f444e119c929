package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/neon-arena/internal/platform/tui"
	"github.com/vovakirdan/neon-arena/internal/storage"
)

var (
	flagSSHAddr    string
	flagSSHHostKey string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the arena over SSH",
	Long: `Starts an SSH server; every connection gets its own arena. Sound is
not streamed over SSH, so remote sessions are silent.

Connect with:
  ssh -p 2222 localhost

Examples:
  arena serve
  arena serve --addr :23234
  arena serve --host-key ./keys/arena_ed25519`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "addr", "", "Listen address (default from config, :2222)")
	serveCmd.Flags().StringVar(&flagSSHHostKey, "host-key", "", "Host key path, generated if missing")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if flagSSHAddr != "" {
		cfg.SSH.Address = flagSSHAddr
	}
	if flagSSHHostKey != "" {
		cfg.SSH.HostKey = flagSSHHostKey
	}

	logger, closeLog, err := newLogger(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	ledger, err := storage.OpenLedger()
	if err != nil {
		return err
	}
	defer ledger.Close()

	srv, err := tui.NewSSHServer(cfg, ledger, logger.WithPrefix("arena-ssh"))
	if err != nil {
		return err
	}
	return srv.ListenAndServe(cmd.Context())
}

package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clippy-oss/whatsapp-bridged/internal/config"
)

// NewRootCommand builds the bridge's cobra root command. Its RunE
// resolves the Config and hands it to run, supplied by the caller
// (cmd/whatsapp-bridge), since dispatch needs the device store and
// services constructed from the resolved Config.
func NewRootCommand(run func(cfg *config.Config) error) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "whatsapp-bridge",
		Short: "WhatsApp bridge daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Resolve(v)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	if err := config.BindFlags(cmd, v); err != nil {
		panic(err)
	}

	return cmd
}

// Package cli contém os comandos do metricsctl
package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix     = "METRICSCTL"
	defaultAPIURL = "http://localhost:8000"
)

// NewRootCmd monta o metricsctl com os subcomandos validate e push
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "metricsctl",
		Short:         "Validate and upload business metrics files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		NewValidateCmd(),
		NewPushCmd(v),
	)

	return root
}

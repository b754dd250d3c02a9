package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newHostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "host",
		Short: "Print the CUDA version supported by the host NVIDIA driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := newAppService().Host(cmd.Context())
			if err != nil {
				return err
			}
			log.Debug().Str("driver", result.DriverVersion).Msg("host driver detected")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.CUDAVersion)
			return err
		},
	}
}

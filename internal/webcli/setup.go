// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package webcli

import (
	"github.com/spf13/cobra"

	"go.jetify.com/go2web/internal/installer"
)

func setupCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "setup",
		Short: "Install go2web into the active Python environment",
		Long: "Upgrade pip and install the go2web package next to this binary in " +
			"editable mode, so source edits take effect without reinstalling.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inst := &installer.Installer{Stderr: cmd.ErrOrStderr()}
			return inst.Run(cmd.Context(), cmd.OutOrStdout())
		},
	}

	return command
}

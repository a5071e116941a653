// Copyright 2024 Jetify Inc. and contributors. All rights reserved.
// Use of this source code is governed by the license in the LICENSE file.

package webcli

import (
	"fmt"

	"github.com/spf13/cobra"

	"go.jetify.com/go2web/internal/cache"
	"go.jetify.com/go2web/internal/ux"
)

func cacheCmd() *cobra.Command {
	command := &cobra.Command{
		Use:   "cache",
		Short: "Manage the response cache",
	}

	command.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the cache directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), cache.Default().Dir)
			return nil
		},
	})

	command.AddCommand(&cobra.Command{
		Use:   "clean",
		Short: "Remove all cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c := cache.Default()
			if err := c.Clean(); err != nil {
				return err
			}
			ux.Fsuccess(cmd.ErrOrStderr(), "cleaned response cache at %s\n", c.Dir)
			return nil
		},
	})

	return command
}

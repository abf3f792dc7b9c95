package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/webbundle/internal/app"
	"go.trai.ch/webbundle/internal/core/domain"
)

func (c *CLI) newBundleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Compile the wasm application and assemble the dist directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			srcDir, _ := cmd.Flags().GetString("src")
			distDir, _ := cmd.Flags().GetString("dist")
			tmpDir, _ := cmd.Flags().GetString("tmp")
			baseURL, _ := cmd.Flags().GetString("base-url")
			version, _ := cmd.Flags().GetString("wasm-version")
			release, _ := cmd.Flags().GetBool("release")
			workspaceRoot, _ := cmd.Flags().GetString("workspace-root")
			watchDirs, _ := cmd.Flags().GetStringArray("watch-dir")

			return c.app.Bundle(cmd.Context(), app.BundleOptions{
				ConfigPath: configPath,
				Overrides: domain.Options{
					SrcDir:         srcDir,
					DistDir:        distDir,
					TmpDir:         tmpDir,
					BaseURL:        baseURL,
					Version:        version,
					Release:        release,
					WorkspaceRoot:  workspaceRoot,
					ExtraWatchDirs: watchDirs,
				},
			})
		},
	}
	cmd.Flags().StringP("config", "c", "", "Config file path (default: webbundle.yaml if present)")
	cmd.Flags().String("src", "", "Source directory of the wasm application")
	cmd.Flags().String("dist", "", "Destination directory for the bundled artifacts")
	cmd.Flags().String("tmp", "", "Scratch directory for toolchain output (default: a throwaway temp dir)")
	cmd.Flags().String("base-url", "", "Base URL injected into the entry template (default: /)")
	cmd.Flags().String("wasm-version", "", "Version embedded into the wasm module filename")
	cmd.Flags().Bool("release", false, "Compile in release mode instead of dev mode")
	cmd.Flags().String("workspace-root", "", "Workspace root holding the toolchain target directory (default: working directory)")
	cmd.Flags().StringArray("watch-dir", nil, "Additional directory to declare as build input (repeatable)")
	return cmd
}

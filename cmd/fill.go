// -- cmd/fill.go --
package cmd

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/xkilldash9x/vaultfill-cli/api/schemas"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/builder"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/totp"
	"github.com/xkilldash9x/vaultfill-cli/internal/autofill/trust"
	"github.com/xkilldash9x/vaultfill-cli/internal/config"
	"github.com/xkilldash9x/vaultfill-cli/internal/observability"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// newFillCmd creates and configures the `fill` command.
func newFillCmd() *cobra.Command {
	fillCmd := &cobra.Command{
		Use:   "fill",
		Short: "Generate a fill script for a page field catalog and a vault item",
		PreRunE: func(cmd *cobra.Command, args []string) error {
			// Bind flags to their corresponding Viper keys so command-line
			// flags override values from the config file and environment.
			bindings := map[string]string{
				"fill.allow_hidden_fields": "allow-hidden",
				"fill.only_empty_fields":   "only-empty",
				"fill.fill_new_password":   "new-password",
				"fill.allow_totp_autofill": "totp",
				"fill.action_delay_ms":     "delay",
			}
			for key, flag := range bindings {
				if err := viper.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
					return err
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger().Named("fill")

			// Re-resolve the config now that the flags are bound, so flag
			// overrides land with the right precedence.
			cfg, err := config.NewConfigFromViper(viper.GetViper())
			if err != nil {
				return err
			}

			catalogPath, _ := cmd.Flags().GetString("catalog")
			itemPath, _ := cmd.Flags().GetString("item")
			tabURL, _ := cmd.Flags().GetString("tab-url")
			outputPath, _ := cmd.Flags().GetString("output")

			catalog, err := loadCatalog(catalogPath, logger)
			if err != nil {
				return err
			}
			item, err := loadItem(itemPath)
			if err != nil {
				return err
			}
			if tabURL == "" {
				tabURL = catalog.DocumentURL
			}

			eval := trust.NewEvaluator(
				trust.NewStaticEquivalents(cfg.Match.EquivalentDomains),
				cfg.Match.URIMatchMode(),
				logger,
			)
			gen := builder.New(eval, totp.New(), logger)

			opts := builder.Options{
				TabURL:                   tabURL,
				CanAccessInvisibleFields: cfg.Fill.AllowHiddenFields,
				OnlyEmptyFields:          cfg.Fill.OnlyEmptyFields,
				FillNewPassword:          cfg.Fill.FillNewPassword,
				AllowTotpAutofill:        cfg.Fill.AllowTotpAutofill,
				SkipUsernameOnlyFill:     !cfg.Fill.AllowUsernameOnlyFill,
				ActionDelayMs:            cfg.Fill.ActionDelayMs,
			}

			script, err := gen.FillScript(ctx, catalog, item, opts)
			if err != nil {
				return err
			}
			if script == nil {
				// Nothing fillable; emit an empty script so callers always
				// get well-formed output.
				logger.Warn("Item has nothing to fill for this page",
					zap.String("item", item.ID),
					zap.Int("kind", int(item.Kind)))
				script = &schemas.FillScript{Script: []schemas.FillAction{}, SavedURLs: []string{}}
			}

			return writeScript(cmd, script, outputPath, logger)
		},
	}

	fillCmd.Flags().String("catalog", "", "Path to the page field catalog JSON (required)")
	fillCmd.Flags().String("item", "", "Path to the vault item JSON (required)")
	fillCmd.Flags().String("tab-url", "", "Top-level tab URL for iframe trust (defaults to the catalog's document URL)")
	fillCmd.Flags().StringP("output", "o", "", "Output file path for the script. If unset, the script is printed to stdout.")

	// Fill behavior override flags.
	fillCmd.Flags().Bool("allow-hidden", false, "Consider fields that are not currently viewable. (Overrides config/env)")
	fillCmd.Flags().Bool("only-empty", false, "Skip password fields that already carry a value. (Overrides config/env)")
	fillCmd.Flags().Bool("new-password", false, "Target autocomplete=\"new-password\" fields. (Overrides config/env)")
	fillCmd.Flags().Bool("totp", true, "Fill verification-code fields from the item's TOTP seed. (Overrides config/env)")
	fillCmd.Flags().Int("delay", 20, "Delay in milliseconds between script operations. (Overrides config/env)")

	_ = fillCmd.MarkFlagRequired("catalog")
	_ = fillCmd.MarkFlagRequired("item")

	return fillCmd
}

// loadCatalog reads, decodes and normalizes a page field catalog.
func loadCatalog(path string, logger *zap.Logger) (*schemas.PageFieldCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var catalog schemas.PageFieldCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	catalog.Normalize()
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("Loaded page field catalog",
		zap.String("url", catalog.DocumentURL),
		zap.Int("fields", len(catalog.Fields)))
	return &catalog, nil
}

// loadItem reads and decodes a vault item.
func loadItem(path string) (*schemas.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading item: %w", err)
	}
	var item schemas.Item
	if err := json.Unmarshal(raw, &item); err != nil {
		return nil, fmt.Errorf("decoding item: %w", err)
	}
	return &item, nil
}

// writeScript emits the script as JSON to the output file or stdout.
func writeScript(cmd *cobra.Command, script *schemas.FillScript, outputPath string, logger *zap.Logger) error {
	out, err := json.MarshalIndent(script, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding script: %w", err)
	}
	out = append(out, '\n')

	if outputPath == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing script: %w", err)
	}
	logger.Info("Fill script written",
		zap.String("path", outputPath),
		zap.Int("actions", len(script.Script)))
	return nil
}

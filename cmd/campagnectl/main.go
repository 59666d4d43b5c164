// Command campagnectl administre les campagnes d'assistanat depuis le terminal,
// avec la même session locale (courriel, trimestre sélectionné) que le shell web.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uqo/assistanat_client/internal/app"
	rootservices "github.com/uqo/assistanat_client/services"

	"github.com/spf13/cobra"
)

// opener construit l'application à partir de la configuration résolue.
type opener func(ctx context.Context, cfg rootservices.Config) (*app.App, error)

type globalFlags struct {
	apiURL    string
	storePath string
	ephemeral bool
	fixtures  bool
	output    string
	logLevel  string
}

func main() {
	if err := rootCmd(app.New).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Erreur: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd(open opener) *cobra.Command {
	flags := &globalFlags{}
	var session *app.App

	cmd := &cobra.Command{
		Use:           "campagnectl",
		Short:         "Gestion des campagnes d'assistanat UQO",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			switch flags.output {
			case "json", "yaml":
			default:
				return fmt.Errorf("format de sortie %q inconnu (json, yaml)", flags.output)
			}

			rootservices.LoadDotEnv()
			cfg, err := rootservices.LoadConfig()
			if err != nil {
				return err
			}
			if flags.apiURL != "" {
				cfg.APIBaseURL = strings.TrimSuffix(flags.apiURL, "/")
			}
			if flags.storePath != "" {
				cfg.StorePath = flags.storePath
			}
			if flags.ephemeral {
				cfg.StorePath = ""
			}
			if flags.fixtures {
				cfg.UseFixtures = true
			}
			if flags.logLevel != "" {
				cfg.LogLevel = flags.logLevel
			}
			rootservices.ConfigureLogging(cfg.LogLevel)

			session, err = open(cmd.Context(), cfg)
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if session == nil {
				return nil
			}
			return session.Close()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.apiURL, "api", "", "URL de base de l'API (remplace API_BASE_URL)")
	pf.StringVar(&flags.storePath, "store", "", "Fichier SQLite de la session locale (remplace STORE_PATH)")
	pf.BoolVar(&flags.ephemeral, "ephemeral", false, "Session en mémoire, rien n'est conservé")
	pf.BoolVar(&flags.fixtures, "fixtures", false, "Lire les campagnes depuis les données de démonstration")
	pf.StringVarP(&flags.output, "output", "o", "yaml", "Format de sortie (json, yaml)")
	pf.StringVar(&flags.logLevel, "log-level", "", "Niveau de journal (debug, info, warn, error)")

	current := func() *app.App { return session }
	cmd.AddCommand(
		loginCmd(current, flags),
		logoutCmd(current, flags),
		campagneCmd(current, flags),
		trimestreCmd(current, flags),
		candidatureCmd(current, flags),
		uqoCmd(current, flags),
		&cobra.Command{
			Use:   "version",
			Short: "Affiche la version",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "campagnectl %s\n", version)
			},
		},
	)
	return cmd
}

const version = "0.1.0"

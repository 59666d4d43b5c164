package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/uqo/assistanat_client/internal/app"
	"github.com/uqo/assistanat_client/internal/navigation"
	"github.com/uqo/assistanat_client/models"

	"github.com/spf13/cobra"
)

var (
	errLoginRequired = errors.New("connexion requise: campagnectl login <courriel>")
	errNoCampagne    = errors.New("aucune campagne: campagnectl campagne create <trimestre>")
)

func printer(cmd *cobra.Command, flags *globalFlags) func(v interface{}) error {
	return func(v interface{}) error {
		return render(cmd.OutOrStdout(), flags.output, v)
	}
}

// requireSession applique le garde de navigation à une commande d'administration.
func requireSession(cmd *cobra.Command, a *app.App, page string) error {
	d := a.Guard.Resolve(cmd.Context(), navigation.Target{Name: page, FullPath: cmd.CommandPath(), RequiresAuth: true})
	if d.Allow {
		return nil
	}
	switch d.RedirectName {
	case navigation.RouteLogin:
		return errLoginRequired
	case navigation.RouteCreateFirstCampagne:
		return errNoCampagne
	}
	return fmt.Errorf("accès refusé (%s)", d.RedirectName)
}

func parseTrimestre(raw string) (models.Trimestre, error) {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("trimestre %q invalide", raw)
	}
	t := models.Trimestre(v)
	if t.Saison() < 1 || t.Saison() > 3 {
		return 0, fmt.Errorf("trimestre %d invalide (AAAAS, S de 1 à 3)", v)
	}
	return t, nil
}

// trimestreOrSelected lit le trimestre en argument, sinon la sélection courante.
func trimestreOrSelected(a *app.App, args []string) (models.Trimestre, error) {
	if len(args) > 0 {
		return parseTrimestre(args[0])
	}
	return a.SelectedTrimestre()
}

func loginCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "login <courriel>",
		Short: "Ouvre la session locale",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := a.Login(cmd.Context(), args[0]); err != nil {
				return err
			}
			if _, err := a.RefreshTrimestres(cmd.Context()); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "avertissement: campagnes indisponibles: %v\n", err)
			}
			return printer(cmd, flags)(map[string]interface{}{
				"email":     a.Email(cmd.Context()),
				"selection": a.Selection.Snapshot(),
			})
		},
	}
}

func logoutCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Ferme la session locale",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return current().Logout(cmd.Context())
		},
	}
}

func campagneCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "campagne", Short: "Campagnes d'assistanat"}

	list := &cobra.Command{
		Use:   "list",
		Short: "Liste les campagnes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "campagnes"); err != nil {
				return err
			}
			campagnes, err := a.RefreshTrimestres(cmd.Context())
			if err != nil {
				return err
			}
			return printer(cmd, flags)(campagnes)
		},
	}

	show := &cobra.Command{
		Use:   "show [trimestre]",
		Short: "Affiche une campagne et ses cours (trimestre sélectionné par défaut)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, navigation.RouteDashboard); err != nil {
				return err
			}
			t, err := trimestreOrSelected(a, args)
			if err != nil {
				return err
			}
			campagne, err := a.Campagnes.GetCampagne(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(campagne)
		},
	}

	var cours []string
	create := &cobra.Command{
		Use:   "create <trimestre>",
		Short: "Crée une campagne et la sélectionne",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			err := requireSession(cmd, a, "campagnes")
			if err != nil && !errors.Is(err, errNoCampagne) {
				return err
			}
			t, err := parseTrimestre(args[0])
			if err != nil {
				return err
			}
			req := models.CampagneCreateRequest{Trimestre: t, Cours: []models.CampagneCoursItem{}}
			for _, sigle := range cours {
				req.Cours = append(req.Cours, models.CampagneCoursItem{Sigle: strings.ToUpper(strings.TrimSpace(sigle))})
			}
			created, err := a.CreateCampagne(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(created)
		},
	}
	create.Flags().StringSliceVar(&cours, "cours", nil, "Sigles des cours de la campagne (INF1563,INF1573)")

	sync := &cobra.Command{
		Use:   "sync [trimestre]",
		Short: "Resynchronise la campagne avec l'horaire UQO",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "campagnes"); err != nil {
				return err
			}
			t, err := trimestreOrSelected(a, args)
			if err != nil {
				return err
			}
			out, err := a.CampagneSvc.SyncCampagne(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(out)
		},
	}

	approve := &cobra.Command{
		Use:   "approve <trimestre> <sigle> <groupe> [activite]",
		Short: "Approuve le changement en attente d'une séance ou d'une activité",
		Args:  cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "campagnes"); err != nil {
				return err
			}
			t, err := parseTrimestre(args[0])
			if err != nil {
				return err
			}
			var out *models.ApprovalResponse
			if len(args) == 4 {
				id, convErr := strconv.Atoi(args[3])
				if convErr != nil {
					return fmt.Errorf("activité %q invalide", args[3])
				}
				out, err = a.CampagneSvc.ApproveActiviteChange(cmd.Context(), t, args[1], args[2], id)
			} else {
				out, err = a.CampagneSvc.ApproveSeanceChange(cmd.Context(), t, args[1], args[2])
			}
			if err != nil {
				return err
			}
			return printer(cmd, flags)(out)
		},
	}

	cmd.AddCommand(list, show, create, sync, approve)
	return cmd
}

func trimestreCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "trimestre", Short: "Trimestre sélectionné et trimestres connus"}

	list := &cobra.Command{
		Use:   "list",
		Short: "Affiche la sélection",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return printer(cmd, flags)(current().Selection.Snapshot())
		},
	}

	use := &cobra.Command{
		Use:   "use <trimestre>",
		Short: "Sélectionne un trimestre connu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			t, err := parseTrimestre(args[0])
			if err != nil {
				return err
			}
			known := false
			for _, o := range a.Selection.Options() {
				if o == t {
					known = true
				}
			}
			if !known {
				return fmt.Errorf("trimestre %d inconnu; campagnectl trimestre add %d", t, t)
			}
			a.Selection.SetSelectedValue(cmd.Context(), t)
			return printer(cmd, flags)(a.Selection.Snapshot())
		},
	}

	add := &cobra.Command{
		Use:   "add <trimestre>",
		Short: "Ajoute un trimestre connu",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			t, err := parseTrimestre(args[0])
			if err != nil {
				return err
			}
			a.Selection.UpdateTrimestreOptions(cmd.Context(), t)
			return printer(cmd, flags)(a.Selection.Snapshot())
		},
	}

	cmd.AddCommand(list, use, add)
	return cmd
}

func candidatureCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "candidature", Short: "Candidatures étudiantes"}

	list := &cobra.Command{
		Use:   "list [trimestre]",
		Short: "Liste les candidats d'un trimestre (sélection par défaut)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "candidatures"); err != nil {
				return err
			}
			t, err := trimestreOrSelected(a, args)
			if err != nil {
				return err
			}
			out, err := a.CandidatSvc.GetCandidatures(cmd.Context(), t)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(out)
		},
	}

	var dest string
	resume := &cobra.Command{
		Use:   "resume <id>",
		Short: "Télécharge le CV d'une candidature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "candidatures"); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant %q invalide", args[0])
			}
			cv := a.CandidatSvc.DownloadResume(cmd.Context(), id)
			if cv == nil {
				return fmt.Errorf("CV de la candidature %d introuvable", id)
			}
			path := dest
			if path == "" {
				path = cv.Filename
			}
			if path == "" {
				path = fmt.Sprintf("%d_resume.pdf", id)
			}
			if err := os.WriteFile(path, cv.Content, 0o644); err != nil {
				return err
			}
			return printer(cmd, flags)(map[string]interface{}{
				"fichier":      path,
				"octets":       len(cv.Content),
				"content_type": cv.ContentType,
			})
		},
	}
	resume.Flags().StringVar(&dest, "out", "", "Fichier de destination (nom fourni par l'API par défaut)")

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Supprime une candidature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := current()
			if err := requireSession(cmd, a, "candidatures"); err != nil {
				return err
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identifiant %q invalide", args[0])
			}
			return a.CandidatSvc.DeleteCandidature(cmd.Context(), id)
		},
	}

	cmd.AddCommand(list, resume, remove)
	return cmd
}

func uqoCmd(current func() *app.App, flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{Use: "uqo", Short: "Répertoire des cours et programmes UQO"}

	var departement, cycle string
	cours := &cobra.Command{
		Use:   "cours",
		Short: "Liste les cours d'un département",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current().UQOSvc.GetCours(cmd.Context(), departement)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(out)
		},
	}
	programmes := &cobra.Command{
		Use:   "programmes",
		Short: "Liste les programmes d'un département",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := current().UQOSvc.GetProgrammes(cmd.Context(), departement, cycle)
			if err != nil {
				return err
			}
			return printer(cmd, flags)(out)
		},
	}
	cmd.PersistentFlags().StringVar(&departement, "departement", "informatique", "Département UQO")
	programmes.Flags().StringVar(&cycle, "cycle", "1", "Cycle d'études")

	cmd.AddCommand(cours, programmes)
	return cmd
}

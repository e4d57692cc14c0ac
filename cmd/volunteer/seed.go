package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgo/volunteer/internal/model"
	"github.com/forgo/volunteer/internal/seed"
)

func newSeedCmd(a *app) *cobra.Command {
	var matchEmail string

	cmd := &cobra.Command{
		Use:   "seed [file]",
		Short: "Load a TOML seed file and list opportunities",
		Long: "Load organizations, opportunities and volunteers from a TOML seed file.\n" +
			"The file defaults to seed.path from the configuration.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.Seed.Path
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				return errors.New("no seed file given and seed.path is not configured")
			}

			f, err := seed.ParseFile(path)
			if err != nil {
				return err
			}
			svc, err := a.services()
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			res, err := seed.NewLoader(svc, a.logger).Load(ctx, f)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "loaded %d organizations, %d volunteers\n", len(res.Organizations), len(res.Volunteers))
			printOpportunities(w, "opportunities", svc.Opportunities.ListOpportunities())

			if matchEmail == "" {
				return nil
			}
			vol, ok := svc.UserRepo.GetUserByEmail(matchEmail).(*model.Volunteer)
			if !ok {
				return model.NewNotFoundError("volunteer " + matchEmail)
			}
			printOpportunities(w, "matches for "+matchEmail, svc.Matching.FindMatches(ctx, vol))
			return nil
		},
	}

	cmd.Flags().StringVar(&matchEmail, "match", "", "print matches for the volunteer with this email")
	return cmd
}

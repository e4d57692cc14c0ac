package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forgo/volunteer/internal/model"
	"github.com/forgo/volunteer/internal/service"
)

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a register, post, match and apply walkthrough",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := a.services()
			if err != nil {
				return err
			}
			if err := runDemo(cmd.Context(), cmd, svc); err != nil {
				return err
			}
			if a.registry != nil {
				return printCounters(cmd.OutOrStdout(), a.registry)
			}
			return nil
		},
	}
}

func runDemo(ctx context.Context, cmd *cobra.Command, svc *service.Services) error {
	w := cmd.OutOrStdout()

	vol := model.NewVolunteer().SetName("Vic").SetEmail("v@x.com").SetPassword("pw")
	if err := vol.AddInterest("env"); err != nil {
		return err
	}
	org := model.NewOrganization().SetName("Green Org").SetEmail("o@x.com").SetPassword("pw")
	rival := model.NewOrganization().SetName("Other Org").SetEmail("r@x.com").SetPassword("pw")

	for _, u := range []model.User{vol, org, rival} {
		if _, err := svc.Users.Register(ctx, u); err != nil {
			return err
		}
		fmt.Fprintf(w, "registered %s %s\n", u.Role(), u.Base().Email)
	}

	if err := login(ctx, svc, org); err != nil {
		return err
	}
	opp, err := svc.Opportunities.PostOpportunity(ctx,
		org.CreateOpportunity().SetTitle("Cleanup").SetInterest("env").SetLocation("Park"))
	if err != nil {
		return err
	}
	printOpportunities(w, "posted", []*model.Opportunity{opp})

	if err := login(ctx, svc, rival); err != nil {
		return err
	}
	_, err = svc.Opportunities.CloseOpportunity(ctx, opp)
	if !errors.Is(err, model.ErrAuthorization) {
		return fmt.Errorf("expected authorization error closing a foreign opportunity, got %v", err)
	}
	fmt.Fprintf(w, "%s cannot close #%d: %v\n", rival.Email, opp.ID, err)

	if err := login(ctx, svc, vol); err != nil {
		return err
	}
	matches := svc.Matching.FindMatches(ctx, vol)
	printOpportunities(w, "matches for "+vol.Email, matches)
	if len(matches) == 0 {
		return nil
	}

	application, err := svc.Applications.Apply(ctx, matches[0])
	if err != nil {
		return err
	}
	printApplication(w, application)

	if _, err := svc.Applications.UpdateStatus(ctx, application, "ACCEPTED"); err != nil {
		return err
	}
	printApplication(w, application)

	svc.Users.Logout(ctx)
	return nil
}

func login(ctx context.Context, svc *service.Services, user model.User) error {
	acct := user.Base()
	if !svc.Users.Login(ctx, acct.Email, acct.Password) {
		return fmt.Errorf("login failed for %s", acct.Email)
	}
	return nil
}

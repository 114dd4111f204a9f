package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"academy/internal/app"
	"academy/internal/domain/campaign"
	"academy/internal/domain/inquiry"

	"github.com/spf13/cobra"
)

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo campaigns and inquiries for local development",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			return runSeed(cmd.Context(), cmd.OutOrStdout(), a, time.Now().UTC())
		},
	}
}

func runSeed(ctx context.Context, out io.Writer, a *app.App, now time.Time) error {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}
	priority := func(p int) *int { return &p }

	campaigns := []campaign.CreateCampaignRequest{
		{Text: "Spring intake is open: enrol before the 30th", Priority: priority(5), StartDate: day(-3), EndDate: day(27)},
		{Text: "Free trial lesson every Saturday", BackgroundColor: "#1e3a8a", Priority: priority(2), StartDate: day(-10), EndDate: day(60)},
		{Text: "Summer camp registration", BackgroundColor: "#facc15", TextColor: "#111827", StartDate: day(30), EndDate: day(90)},
	}
	for i := range campaigns {
		c, err := a.Campaign.Create(ctx, &campaigns[i], "seed")
		if err != nil {
			return fmt.Errorf("seed campaign: %w", err)
		}
		fmt.Fprintf(out, "Campaign %s: %q\n", c.ID, c.Text)
	}

	inquiries := []inquiry.CreateInquiryRequest{
		{Name: "Aigerim", PhoneNumber: "+7 701 555 0101", EmailID: "aigerim@example.com", Subject: "Weekend classes"},
		{Name: "Daniyar", PhoneNumber: "+7 702 555 0102", EmailID: "daniyar@example.com", Subject: "Group discounts", Description: "We are three siblings."},
	}
	for i := range inquiries {
		inq, err := a.Inquiry.Create(ctx, &inquiries[i])
		if err != nil {
			return fmt.Errorf("seed inquiry: %w", err)
		}
		fmt.Fprintf(out, "Inquiry %s: %s\n", inq.ID, inq.Subject)
	}

	return nil
}

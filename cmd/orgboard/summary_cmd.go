package main

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/orgboard-io/orgboard/modules/org/domain"
	"github.com/orgboard-io/orgboard/modules/org/gateway"
	"github.com/orgboard-io/orgboard/modules/org/services"
	"github.com/orgboard-io/orgboard/modules/org/state"
	"github.com/orgboard-io/orgboard/pkg/configuration"
)

func newSummaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Load the full organisation snapshot and print collection counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			logger := conf.Logger()

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			pool, err := pgxpool.New(ctx, conf.Database.ConnectionString())
			if err != nil {
				return err
			}
			defer pool.Close()

			store := state.NewStore(state.Snapshot{})
			loader := services.NewLoadService(store, gateway.NewPostgresGateway(pool), logger)
			if err := loader.Load(ctx); err != nil {
				return err
			}

			snap := store.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "departments:        %d\n", len(snap.Departments))
			fmt.Fprintf(out, "functions:          %d\n", len(snap.Functions))
			fmt.Fprintf(out, "responsibilities:   %d\n", len(snap.Responsibilities))
			fmt.Fprintf(out, "grades:             %d\n", len(snap.Grades))
			fmt.Fprintf(out, "staff:              %d\n", len(snap.Staff))
			fmt.Fprintf(out, "teams:              %d\n", len(snap.CrossFunctionalTeams))
			fmt.Fprintf(out, "team members:       %d\n", len(snap.TeamMembers))
			fmt.Fprintf(out, "workflows:          %d\n", len(snap.Workflows))
			fmt.Fprintf(out, "workflow steps:     %d\n", len(snap.WorkflowSteps))
			fmt.Fprintf(out, "compliance tags:    %d\n", len(snap.ComplianceTags))
			fmt.Fprintf(out, "company numbers:    %d\n", len(snap.CompanyNumbers))
			fmt.Fprintf(out, "allocations:        %d\n", len(snap.CompanyNumberAllocations))
			fmt.Fprintf(out, "users:              %d\n", len(snap.Users))

			managed, acting, unmanaged := 0, 0, 0
			for _, d := range snap.Departments {
				switch domain.StatusOf(d, snap.Staff, snap.Grades, snap.AppSettings.MaxManagerGradeLevel) {
				case domain.DepartmentManaged:
					managed++
				case domain.DepartmentActing:
					acting++
				default:
					unmanaged++
				}
			}
			fmt.Fprintf(out, "department status:  %d managed, %d acting, %d unmanaged\n", managed, acting, unmanaged)
			return nil
		},
	}
}

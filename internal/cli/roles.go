package cli

import (
	"career-navigator/internal/delivery/http/dto"
	"career-navigator/internal/usecase"

	"github.com/spf13/cobra"
)

func newRolesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List catalog roles and their required skills",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			var uc *usecase.Career
			uc, err = root.careerUsecase(cmd)
			if err != nil {
				return err
			}

			roles := uc.ListRoles(cmd.Context())
			out := make([]dto.RoleResponse, 0, len(roles))
			for _, r := range roles {
				out = append(out, dto.NewRoleResponse(r))
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}
}

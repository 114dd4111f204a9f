package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"academy/internal/app"
	"academy/internal/domain/admin"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newAdminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Manage admin accounts",
	}

	cmd.AddCommand(newAdminCreateCmd())
	cmd.AddCommand(newAdminListCmd())

	return cmd
}

// ---------- admin create ----------

type adminCreateOptions struct {
	username    string
	password    string
	role        string
	permissions []string
}

func newAdminCreateCmd() *cobra.Command {
	var opts adminCreateOptions

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		Example: `  academyctl admin create --username root --role super_admin
  academyctl admin create --username editor --password secret123 --permission campaigns:write`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.password == "" {
				pw, err := promptPassword(cmd.OutOrStdout())
				if err != nil {
					return err
				}
				opts.password = pw
			}

			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			return runAdminCreate(cmd.Context(), cmd.OutOrStdout(), a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.username, "username", "", "admin username (required)")
	cmd.Flags().StringVar(&opts.password, "password", "", "admin password (prompted if omitted)")
	cmd.Flags().StringVar(&opts.role, "role", string(admin.RoleAdmin), "admin or super_admin")
	cmd.Flags().StringSliceVar(&opts.permissions, "permission", nil, "extra capability on top of the role defaults (repeatable)")
	_ = cmd.MarkFlagRequired("username")

	return cmd
}

func runAdminCreate(ctx context.Context, out io.Writer, a *app.App, opts adminCreateOptions) error {
	if len(opts.password) < 8 {
		return errors.New("password must be at least 8 characters")
	}

	user, created, err := a.Admins.Bootstrap(ctx, admin.BootstrapInput{
		Username:    opts.username,
		Password:    opts.password,
		Role:        admin.Role(strings.TrimSpace(opts.role)),
		Permissions: opts.permissions,
	})
	if err != nil {
		return err
	}
	if !created {
		return fmt.Errorf("admin %q already exists", user.Username)
	}

	fmt.Fprintf(out, "Created %s %q\n", user.Role, user.Username)
	fmt.Fprintf(out, "  Permissions: %s\n", strings.Join(user.EffectivePermissions().Strings(), ", "))
	return nil
}

func promptPassword(out io.Writer) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("--password is required when stdin is not a terminal")
	}

	fmt.Fprint(out, "Password: ")
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(out, "Confirm password: ")
	confirm, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(pw) != string(confirm) {
		return "", errors.New("passwords do not match")
	}
	return string(pw), nil
}

// ---------- admin list ----------

func newAdminListCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List admin accounts",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			defer a.Close()

			return runAdminList(cmd.Context(), cmd.OutOrStdout(), a, jsonOutput)
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	return cmd
}

func runAdminList(ctx context.Context, out io.Writer, a *app.App, jsonOutput bool) error {
	admins, err := a.Admins.List(ctx)
	if err != nil {
		return err
	}

	if jsonOutput {
		if admins == nil {
			admins = []admin.AdminUser{}
		}
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(admins)
	}

	if len(admins) == 0 {
		fmt.Fprintln(out, "No admin accounts. Use 'academyctl admin create' to add one.")
		return nil
	}

	fmt.Fprintf(out, "%-24s %-12s %-8s %s\n", "USERNAME", "ROLE", "ACTIVE", "LAST LOGIN")
	for _, u := range admins {
		active := "yes"
		if !u.IsActive {
			active = "no"
		}
		lastLogin := "never"
		if u.LastLoginAt != nil {
			lastLogin = u.LastLoginAt.UTC().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "%-24s %-12s %-8s %s\n", u.Username, u.Role, active, lastLogin)
	}
	return nil
}

package ctl

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/dmitrijs2005/imagevault/internal/netx"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/spf13/cobra"
)

func newMigrateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the catalog schema (PostgreSQL migrations or the DynamoDB table)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Migrate(cmd.Context(), app.ConfigPath); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "catalog schema is up to date")
			return nil
		},
	}
}

type listFlags struct {
	owner  string
	after  string
	before string
	limit  int
	cursor string
	all    bool
}

func parseFlagTime(name, v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &t, nil
}

func (f listFlags) request() (*api.ListAssetsRequest, error) {
	req := &api.ListAssetsRequest{OwnerID: f.owner, Cursor: f.cursor}
	var err error
	if req.CreatedAfter, err = parseFlagTime("after", f.after); err != nil {
		return nil, err
	}
	if req.CreatedBefore, err = parseFlagTime("before", f.before); err != nil {
		return nil, err
	}
	if f.limit != 0 {
		limit := f.limit
		req.Limit = &limit
	}
	return req, nil
}

func newListCmd(app *App) *cobra.Command {
	var f listFlags
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List completed assets, oldest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := f.request()
			if err != nil {
				return err
			}
			return app.withClient(cmd, func(ctx context.Context, c AssetClient) error {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "ASSET_ID\tOWNER\tCREATED\tNAME\tTYPE\tBYTES")
				for {
					page, err := c.ListAssets(ctx, req)
					if err != nil {
						return err
					}
					for _, a := range page.Records {
						fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\n",
							a.ID, a.OwnerID, a.CreatedAt.Format(time.RFC3339), a.DisplayName, a.ContentType, a.ByteSize)
					}
					if !page.HasMore {
						break
					}
					if !f.all {
						if err := tw.Flush(); err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "more results: --cursor %s\n", page.Cursor)
						return nil
					}
					req.Cursor = page.Cursor
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVarP(&f.owner, "owner", "o", "", "only assets of this owner")
	cmd.Flags().StringVar(&f.after, "after", "", "created at or after (RFC 3339)")
	cmd.Flags().StringVar(&f.before, "before", "", "created at or before (RFC 3339)")
	cmd.Flags().IntVarP(&f.limit, "limit", "n", 0, "page size (server default when 0)")
	cmd.Flags().StringVar(&f.cursor, "cursor", "", "resume from a previous page")
	cmd.Flags().BoolVarP(&f.all, "all", "a", false, "follow cursors until the last page")
	return cmd
}

func newDownloadURLCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "download-url <asset_id>",
		Short: "Print a short-lived download handle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(cmd, func(ctx context.Context, c AssetClient) error {
				res, err := c.GetDownload(ctx, &api.GetDownloadRequest{AssetID: args[0]})
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s %s\n", res.DownloadHandle.Method, res.DownloadHandle.URL)
				fmt.Fprintf(out, "expires in %ds, file %q (%s)\n", res.ExpiresIn, res.DisplayName, res.ContentType)
				return nil
			})
		},
	}
}

func newDownloadCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "download <asset_id>",
		Short: "Fetch an asset's bytes into a local file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(cmd, func(ctx context.Context, c AssetClient) error {
				res, err := c.GetDownload(ctx, &api.GetDownloadRequest{AssetID: args[0]})
				if err != nil {
					return err
				}
				data, err := netx.Fetch(ctx, app.HTTP, res.DownloadHandle.URL)
				if err != nil {
					return err
				}
				path := output
				if path == "" {
					path = filepath.Base(res.DisplayName)
				}
				if err := os.WriteFile(path, data, 0o644); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes to %s\n", len(data), path)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "O", "", "destination file (defaults to the display name)")
	return cmd
}

func newDeleteCmd(app *App) *cobra.Command {
	var owner string
	cmd := &cobra.Command{
		Use:   "delete <asset_id>",
		Short: "Delete an asset's bytes and record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(cmd, func(ctx context.Context, c AssetClient) error {
				res, err := c.DeleteAsset(ctx, &api.DeleteAssetRequest{AssetID: args[0], OwnerID: owner})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", res.AssetID, res.Status)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&owner, "owner", "o", "", "owner of the asset")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}

package ctl

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/imagevault/internal/netx"
	"github.com/dmitrijs2005/imagevault/internal/server/api"
	"github.com/spf13/cobra"
)

type uploadFlags struct {
	owner       string
	name        string
	contentType string
	tags        []string
	description string
}

// detectContentType prefers the file extension and falls back to sniffing.
func detectContentType(path string, data []byte) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err == nil {
			return mt
		}
	}
	return http.DetectContentType(data)
}

// upload runs the three steps: reserve, transfer to the handle, confirm.
func (a *App) upload(ctx context.Context, c AssetClient, path string, f uploadFlags) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	name := f.name
	if name == "" {
		name = filepath.Base(path)
	}
	ct := f.contentType
	if ct == "" {
		ct = detectContentType(path, data)
	}

	res, err := c.ReserveUpload(ctx, &api.ReserveUploadRequest{
		OwnerID:     f.owner,
		DisplayName: name,
		ContentType: ct,
		ByteSize:    int64(len(data)),
		Tags:        f.tags,
		Description: f.description,
	})
	if err != nil {
		return "", fmt.Errorf("reserve: %w", err)
	}

	h := res.UploadHandle
	if err := netx.Transfer(ctx, a.HTTP, h.Method, h.URL, h.Headers, data); err != nil {
		return res.AssetID, fmt.Errorf("transfer: %w", err)
	}

	if _, err := c.ConfirmUpload(ctx, &api.ConfirmUploadRequest{
		AssetID:     res.AssetID,
		OwnerID:     f.owner,
		DisplayName: name,
		ContentType: ct,
		ByteSize:    int64(len(data)),
		Tags:        f.tags,
		Description: f.description,
	}); err != nil {
		return res.AssetID, fmt.Errorf("confirm: %w", err)
	}
	return res.AssetID, nil
}

func newUploadCmd(app *App) *cobra.Command {
	var f uploadFlags
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload an image: reserve, transfer and confirm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.withClient(cmd, func(ctx context.Context, c AssetClient) error {
				id, err := app.upload(ctx, c, args[0], f)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&f.owner, "owner", "o", "", "owner of the asset")
	cmd.Flags().StringVar(&f.name, "name", "", "display name (defaults to the file name)")
	cmd.Flags().StringVar(&f.contentType, "content-type", "", "MIME type (detected when empty)")
	cmd.Flags().StringSliceVarP(&f.tags, "tag", "t", nil, "tag, repeatable")
	cmd.Flags().StringVar(&f.description, "description", "", "free-text description")
	_ = cmd.MarkFlagRequired("owner")
	return cmd
}
